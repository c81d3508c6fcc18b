// Package nestegg analyzes a personal retirement (401k) portfolio against
// benchmark instruments.
//
// The core functionalities include:
//   - Transaction ingestion: reading the exports of the plan administrator,
//     merging and deduplicating them into typed Transactions.
//   - Contribution history: aggregating contributions per calendar day and
//     extracting the dividend distributions.
//   - Benchmark simulation: replaying every contribution into a single
//     instrument at that day's price, as if the money had been invested there.
//   - Comparison: ranking several instruments against the actual portfolio
//     value, or blending a weighted allocation into a single curve.
//   - Summary: contribution totals, year-to-date room under the annual cap and
//     the realized return of the actual portfolio.
//
// Prices, current portfolio value and contribution caps come from small
// collaborator interfaces (PriceProvider, CurrentValueProvider,
// ContributionLimitProvider) so that the engine stays pure and testable.
//
// This package serves as the foundational logic for the `nestegg`
// command-line tool.
package nestegg

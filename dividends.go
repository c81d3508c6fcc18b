package nestegg

import (
	"slices"

	"github.com/etnz/nestegg/date"
)

// DefaultDividendThreshold is the amount at or below which a distribution is
// considered noise (rounding credits, fee rebates) rather than a dividend.
const DefaultDividendThreshold = 5

// Dividend is a dividend distribution received by the plan.
type Dividend struct {
	Date   date.Date
	Name   string
	Amount Money
}

// DividendSeries is the list of dividends in date order.
type DividendSeries []Dividend

// ExtractDividends returns the "Dividends and Earnings" transactions whose
// amount is strictly greater than threshold, in date order.
//
// Dividends of the same day keep their input order.
func ExtractDividends(txs []Transaction, threshold Money) DividendSeries {
	var series DividendSeries
	for _, tx := range txs {
		if tx.Category != DividendsAndEarnings {
			continue
		}
		amount := tx.Amount()
		if !amount.GreaterThan(threshold) {
			continue
		}
		series = append(series, Dividend{Date: tx.Day(), Name: tx.Name, Amount: amount})
	}
	slices.SortStableFunc(series, func(a, b Dividend) int { return a.Date.Compare(b.Date) })
	return series
}

// Total returns the sum of all dividends.
func (d DividendSeries) Total() Money {
	var total Money
	for _, div := range d {
		total = total.Add(div.Amount)
	}
	return total
}

// Dates returns the distinct dividend dates, sorted.
func (d DividendSeries) Dates() []date.Date {
	days := make([]date.Date, 0, len(d))
	for _, div := range d {
		days = append(days, div.Date)
	}
	return slices.Compact(days)
}

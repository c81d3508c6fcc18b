package nestegg

import (
	"fmt"
	"time"

	"github.com/etnz/nestegg/date"
)

// Summary gathers the headline figures of the actual portfolio.
type Summary struct {
	CurrentValue        Money
	TotalContribution   Money
	TotalDividends      Money
	YTDContribution     Money
	MaxContribution     Money // cap for the current year.
	AllowedContribution Money // MaxContribution - YTDContribution.
	First, Last         date.Date
	Days                int // time in the market.
	TotalReturn         Percent
	YoYReturn           Percent
}

// Summarize computes the portfolio summary as of 'today'.
//
// Year to date contributions are the ones made strictly after January 1st of
// today's year. The time in the market spans from the first to the last
// transaction.
func Summarize(c ContributionSeries, d DividendSeries, txs []Transaction, current, limit Money, today date.Date) (*Summary, error) {
	total := c.Total()
	if total.IsZero() {
		return nil, fmt.Errorf("cannot summarize: %w", ErrNoContribution)
	}
	first, last := Span(txs)
	s := &Summary{
		CurrentValue:      current,
		TotalContribution: total,
		TotalDividends:    d.Total().orCurrency(total.cur),
		YTDContribution:   c.Since(date.New(today.Year(), time.January, 1)).orCurrency(total.cur),
		MaxContribution:   limit,
		First:             first,
		Last:              last,
		Days:              last.DaysSince(first),
	}
	s.AllowedContribution = limit.Sub(s.YTDContribution)

	var err error
	if s.TotalReturn, err = TotalReturn(current, total); err != nil {
		return nil, fmt.Errorf("cannot compute total return: %w", err)
	}
	if s.YoYReturn, err = AnnualizedReturn(current, total, s.Days); err != nil {
		return nil, fmt.Errorf("cannot compute yearly return: %w", err)
	}
	s.TotalReturn, s.YoYReturn = s.TotalReturn.Round(), s.YoYReturn.Round()
	return s, nil
}

// TimeInMarket returns the time in the market like "3 years 12 days", with 365 days years.
func (s *Summary) TimeInMarket() string {
	return fmt.Sprintf("%d years %d days", s.Days/365, s.Days%365)
}

// Figure is a labeled, formatted summary value.
type Figure struct {
	Label string
	Value string
}

// Figures returns the summary figures in display order.
func (s *Summary) Figures() []Figure {
	return []Figure{
		{"Current portfolio value", s.CurrentValue.String()},
		{"Total Contribution", s.TotalContribution.String()},
		{"Total Dividends", s.TotalDividends.String()},
		{"Total time in the market", s.TimeInMarket()},
		{"Total return", s.TotalReturn.String()},
		{"YoY return", s.YoYReturn.String()},
		{"YTD Contribution", s.YTDContribution.String()},
		{"Max Contribution for this year", s.MaxContribution.String()},
		{"Allowed Contribution left", s.AllowedContribution.String()},
	}
}

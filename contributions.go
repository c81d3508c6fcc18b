package nestegg

import (
	"fmt"

	"github.com/etnz/nestegg/date"
)

// ContributionPoint is the total amount contributed on a given day.
type ContributionPoint struct {
	Date   date.Date
	Amount Money
}

// ContributionSeries is the list of contributions, one per calendar day, in
// strictly increasing date order.
type ContributionSeries []ContributionPoint

// AggregateContributions sums the Contribution transactions per calendar day.
//
// Transactions of other categories are ignored, so an input without any
// contribution yields an empty series. An empty input is ErrEmptyInput.
func AggregateContributions(txs []Transaction) (ContributionSeries, error) {
	if len(txs) == 0 {
		return nil, fmt.Errorf("cannot aggregate contributions: %w", ErrEmptyInput)
	}
	var perDay date.History[Money]
	for _, tx := range txs {
		if tx.Category != Contribution {
			continue
		}
		day := tx.Day()
		sum, _ := perDay.Get(day)
		perDay.Append(day, sum.Add(tx.Amount()))
	}

	series := make(ContributionSeries, 0, perDay.Len())
	for day, amount := range perDay.Values() {
		series = append(series, ContributionPoint{Date: day, Amount: amount})
	}
	return series, nil
}

// First returns the date of the first contribution.
func (c ContributionSeries) First() date.Date {
	if len(c) == 0 {
		return date.Date{}
	}
	return c[0].Date
}

// Last returns the date of the last contribution.
func (c ContributionSeries) Last() date.Date {
	if len(c) == 0 {
		return date.Date{}
	}
	return c[len(c)-1].Date
}

// Days returns the number of days between the first and the last contribution.
func (c ContributionSeries) Days() int { return c.Last().DaysSince(c.First()) }

// Total returns the sum of all contributions.
func (c ContributionSeries) Total() Money {
	var total Money
	for _, p := range c {
		total = total.Add(p.Amount)
	}
	return total
}

// Since returns the sum of contributions made strictly after 'day'.
func (c ContributionSeries) Since(day date.Date) Money {
	var total Money
	for _, p := range c {
		if p.Date.After(day) {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// Dates returns the contribution dates.
func (c ContributionSeries) Dates() []date.Date {
	days := make([]date.Date, len(c))
	for i, p := range c {
		days[i] = p.Date
	}
	return days
}

package nestegg

import (
	"fmt"

	"github.com/etnz/nestegg/date"
	"github.com/shopspring/decimal"
)

// BenchmarkRow is the state of a simulated benchmark portfolio on a
// contribution day.
type BenchmarkRow struct {
	Date              date.Date
	Price             Money
	Contribution      Money
	Units             Quantity // bought that day.
	TotalUnits        Quantity
	TotalContribution Money
	Value             Money
	Return            Percent
}

// BenchmarkPortfolio is the hypothetical portfolio obtained by investing every
// contribution into a single instrument.
type BenchmarkPortfolio struct {
	Ticker string
	Rows   []BenchmarkRow
}

// Last returns the last row of the simulation.
func (b *BenchmarkPortfolio) Last() BenchmarkRow { return b.Rows[len(b.Rows)-1] }

// Values returns the value of the benchmark portfolio per day.
func (b *BenchmarkPortfolio) Values() *date.History[Money] {
	h := new(date.History[Money])
	for _, row := range b.Rows {
		h.Append(row.Date, row.Value)
	}
	return h
}

var hundred = decimal.NewFromInt(100)

// Simulate invests each contribution into the instrument at that day's price.
//
// Only days with both a contribution and a price are simulated (no
// interpolation). Fewer than two such days is ErrInsufficientData, a price that
// is not strictly positive is ErrInvalidPrice.
func Simulate(c ContributionSeries, p *PriceSeries) (*BenchmarkPortfolio, error) {
	type joined struct {
		contribution ContributionPoint
		price        decimal.Decimal
	}
	var rows []joined
	for _, cp := range c {
		if price, ok := p.Get(cp.Date); ok {
			rows = append(rows, joined{cp, price})
		}
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s has %d common dates with contributions: %w", p.Ticker, len(rows), ErrInsufficientData)
	}

	b := &BenchmarkPortfolio{Ticker: p.Ticker, Rows: make([]BenchmarkRow, 0, len(rows))}
	var totalUnits Quantity
	var totalContribution Money
	for _, r := range rows {
		if !r.price.IsPositive() {
			return nil, fmt.Errorf("%s price on %s is %v: %w", p.Ticker, r.contribution.Date, r.price, ErrInvalidPrice)
		}
		amount := r.contribution.Amount
		price := Money{value: r.price, cur: amount.cur}

		units := amount.DivPrice(price)
		totalUnits = totalUnits.Add(units)
		totalContribution = totalContribution.Add(amount)
		value := price.Mul(totalUnits)

		var ret Percent
		if !totalContribution.IsZero() {
			f, _ := value.value.Div(totalContribution.value).Sub(decimal.NewFromInt(1)).Mul(hundred).Float64()
			ret = Percent(f).Round()
		}

		b.Rows = append(b.Rows, BenchmarkRow{
			Date:              r.contribution.Date,
			Price:             price,
			Contribution:      amount,
			Units:             units,
			TotalUnits:        totalUnits,
			TotalContribution: totalContribution,
			Value:             value,
			Return:            ret,
		})
	}
	return b, nil
}

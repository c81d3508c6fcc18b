package nestegg

import (
	"github.com/etnz/nestegg/date"
	"github.com/shopspring/decimal"
)

// PriceSeries is the daily price history of an instrument.
//
// Only trading days are present: prices are never interpolated.
type PriceSeries struct {
	Ticker   string
	Currency string
	date.History[decimal.Decimal]
}

// NewPriceSeries returns an empty price series for ticker.
func NewPriceSeries(ticker, currency string) *PriceSeries {
	return &PriceSeries{Ticker: ticker, Currency: currency}
}

// Price returns the price on 'day' as a Money.
func (p *PriceSeries) Price(day date.Date) (Money, bool) {
	v, ok := p.Get(day)
	return Money{value: v, cur: p.Currency}, ok
}

// Between returns a copy of the series restricted to [from, to].
func (p *PriceSeries) Between(from, to date.Date) *PriceSeries {
	r := date.Range{From: from, To: to}
	out := NewPriceSeries(p.Ticker, p.Currency)
	for day, v := range p.Values() {
		if r.Contains(day) {
			out.Append(day, v)
		}
	}
	return out
}

package nestegg

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/etnz/nestegg/date"
	"github.com/shopspring/decimal"
)

// PerformanceYears is the default length of the trailing performance window.
const PerformanceYears = 3

// TrailingWindow returns the 'years' long window ending on 'today', with 365 days years.
func TrailingWindow(today date.Date, years int) (from, to date.Date) {
	return today.Add(-365 * years), today
}

// FundPerformance is the price change of a fund over a window.
type FundPerformance struct {
	Ticker                string
	First, Last           date.Date // first and last trading days in the window.
	FirstPrice, LastPrice Money
	Change                Percent // (LastPrice/FirstPrice - 1) × 100, rounded to 2 decimals.
}

// PerformanceTable ranks funds by price change, worst first.
type PerformanceTable struct {
	From, To date.Date
	Rows     []FundPerformance
	Excluded []string // funds with less than two prices in the window.
}

// Performance computes the price change of each ticker over [from, to] and
// sorts them by increasing change. Ties keep the input order.
func Performance(ctx context.Context, prices PriceProvider, tickers []string, from, to date.Date) (*PerformanceTable, error) {
	t := &PerformanceTable{From: from, To: to}
	for _, ticker := range tickers {
		p, err := prices.GetPrices(ctx, ticker, from, to)
		if err != nil {
			return nil, fmt.Errorf("cannot get prices of %s: %w", ticker, err)
		}
		days := p.Days()
		if len(days) < 2 {
			log.Printf("%s has %d prices between %s and %s, excluded", ticker, len(days), from, to)
			t.Excluded = append(t.Excluded, ticker)
			continue
		}
		first, last := days[0], days[len(days)-1]
		firstPrice, _ := p.Price(first)
		lastPrice, _ := p.Price(last)
		if !firstPrice.IsPositive() {
			return nil, fmt.Errorf("%s costs %v on %s: %w", ticker, firstPrice, first, ErrInvalidPrice)
		}
		change, _ := lastPrice.value.Div(firstPrice.value).Sub(decimal.NewFromInt(1)).Mul(hundred).Round(2).Float64()
		t.Rows = append(t.Rows, FundPerformance{
			Ticker:     ticker,
			First:      first,
			Last:       last,
			FirstPrice: firstPrice,
			LastPrice:  lastPrice,
			Change:     Percent(change),
		})
	}
	slices.SortStableFunc(t.Rows, func(a, b FundPerformance) int {
		switch {
		case a.Change < b.Change:
			return -1
		case a.Change > b.Change:
			return 1
		}
		return 0
	})
	return t, nil
}

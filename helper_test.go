package nestegg

import (
	"time"

	"github.com/etnz/nestegg/date"
	"github.com/shopspring/decimal"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// day is a helper to create a date from an ISO string.
func day(s string) date.Date { return date.MustParse(s) }

// at returns a timestamp on day 's', in the afternoon, to check that the time of day is ignored.
func at(s string) time.Time { return day(s).Time().Add(14 * time.Hour) }

// contribution is a helper to create a contribution transaction of 'amount'.
func contribution(on string, amount float64) Transaction {
	return Transaction{
		Date:      at(on),
		Ticker:    "FUND",
		Name:      "Target Fund",
		Category:  Contribution,
		Units:     Q(1),
		UnitPrice: USD(amount),
	}
}

// dividend is a helper to create a dividend transaction of 'amount'.
func dividend(on string, amount float64) Transaction {
	return Transaction{
		Date:      at(on),
		Ticker:    "FUND",
		Name:      "Target Fund",
		Category:  DividendsAndEarnings,
		Units:     Q(1),
		UnitPrice: USD(amount),
	}
}

// series is a helper to create a contribution series from date/amount pairs.
func series(points ...any) ContributionSeries {
	var c ContributionSeries
	for i := 0; i < len(points); i += 2 {
		c = append(c, ContributionPoint{Date: day(points[i].(string)), Amount: USD(points[i+1].(float64))})
	}
	return c
}

// prices is a helper to create a price series from date/price pairs.
func prices(ticker string, points ...any) *PriceSeries {
	p := NewPriceSeries(ticker, "USD")
	for i := 0; i < len(points); i += 2 {
		p.Append(day(points[i].(string)), decimal.NewFromFloat(points[i+1].(float64)))
	}
	return p
}

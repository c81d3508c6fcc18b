package nestegg

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/etnz/nestegg/date"
)

// Holding is an instrument of a target allocation.
type Holding struct {
	Ticker string  `json:"ticker"`
	Name   string  `json:"name,omitempty"`
	Weight Percent `json:"weight"`
}

// Allocation is a weighted list of instruments. Weights are in percent and
// should sum to 100.
type Allocation []Holding

// Total returns the sum of the weights.
func (a Allocation) Total() Percent {
	var total Percent
	for _, h := range a {
		total += h.Weight
	}
	return total
}

// Validate checks that weights are not negative and do not sum to zero.
func (a Allocation) Validate() error {
	for _, h := range a {
		if h.Weight < 0 {
			return fmt.Errorf("%s has weight %v: %w", h.Ticker, h.Weight, ErrInvalidAllocation)
		}
	}
	if a.Total() == 0 {
		return fmt.Errorf("weights sum to zero: %w", ErrInvalidAllocation)
	}
	return nil
}

// BlendedPoint is the value of the blended portfolio on a given day.
type BlendedPoint struct {
	Date                date.Date
	Holdings            []Money // weighted value of each holding, in BlendedPortfolio.Allocation order.
	WithoutDividends    Money
	Dividend            Money // received that day.
	CumulativeDividends Money
	WithDividends       Money
	Benchmark           Money
	HasBenchmark        bool // false when the benchmark has no price that day.
}

// BlendedPortfolio is the simulated value of an allocation over the
// contribution history, with and without the dividends received.
type BlendedPortfolio struct {
	Allocation Allocation // rated holdings.
	Benchmark  string
	Points     []BlendedPoint
	Excluded   []string // unratable holdings.
}

// Last returns the last point of the blended series.
func (b *BlendedPortfolio) Last() BlendedPoint { return b.Points[len(b.Points)-1] }

// Blend simulates each holding of the allocation, scales it by its weight and
// sums the results into a single curve. The cumulative dividends received are
// added on top to obtain a second curve. A single 'benchmark' instrument is
// simulated alongside for comparison, it may be empty.
//
// Holdings are observed on their own trading days only, between observations
// the last value is carried forward (0 before the first one).
func (co *Comparator) Blend(ctx context.Context, c ContributionSeries, allocation Allocation, dividends DividendSeries, benchmark string) (*BlendedPortfolio, error) {
	if err := allocation.Validate(); err != nil {
		return nil, err
	}
	if total := allocation.Total(); !total.Equal(100) {
		log.Printf("allocation weights sum to %v, not 100%%", total)
	}

	blend := &BlendedPortfolio{Benchmark: benchmark}
	var values []*date.History[Money]
	for _, h := range allocation {
		b, err := co.simulate(ctx, c, h.Ticker)
		if errors.Is(err, ErrInsufficientData) {
			log.Printf("%s excluded from allocation: %v", h.Ticker, err)
			blend.Excluded = append(blend.Excluded, h.Ticker)
			continue
		}
		if err != nil {
			return nil, err
		}
		blend.Allocation = append(blend.Allocation, h)
		values = append(values, b.Values())
	}
	if len(blend.Allocation) == 0 {
		return nil, fmt.Errorf("no holding of the allocation can be simulated: %w", ErrInsufficientData)
	}

	var bench *date.History[Money]
	if benchmark != "" {
		b, err := co.simulate(ctx, c, benchmark)
		switch {
		case errors.Is(err, ErrInsufficientData):
			log.Printf("benchmark %s excluded: %v", benchmark, err)
		case err != nil:
			return nil, err
		default:
			bench = b.Values()
		}
	}

	// dividends received per day.
	var received date.History[Money]
	for _, d := range dividends {
		sum, _ := received.Get(d.Date)
		received.Append(d.Date, sum.Add(d.Amount))
	}

	currency := c[0].Amount.cur
	var cumulative Money
	for day := range date.Union(c.Dates(), received.Days()) {
		p := BlendedPoint{Date: day, Holdings: make([]Money, len(values)), WithoutDividends: M(0, currency)}
		for i, v := range values {
			value, _ := v.ValueAsOf(day) // zero before the first observation.
			p.Holdings[i] = value.Scale(blend.Allocation[i].Weight.Fraction())
			p.WithoutDividends = p.WithoutDividends.Add(p.Holdings[i])
		}
		p.Dividend, _ = received.Get(day)
		p.Dividend = p.Dividend.orCurrency(currency)
		cumulative = cumulative.Add(p.Dividend)
		p.CumulativeDividends = cumulative
		p.WithDividends = p.WithoutDividends.Add(cumulative)
		if bench != nil {
			p.Benchmark, p.HasBenchmark = bench.Get(day)
		}
		blend.Points = append(blend.Points, p)
	}
	return blend, nil
}

// simulate fetches the prices of 'ticker' over the contribution period and simulates it.
func (co *Comparator) simulate(ctx context.Context, c ContributionSeries, ticker string) (*BenchmarkPortfolio, error) {
	if len(c) < 2 {
		return nil, fmt.Errorf("%d contribution dates: %w", len(c), ErrInsufficientData)
	}
	prices, err := co.Prices.GetPrices(ctx, ticker, c.First(), c.Last())
	if err != nil {
		return nil, fmt.Errorf("cannot get prices for %s: %w", ticker, err)
	}
	return Simulate(c, prices)
}

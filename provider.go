package nestegg

import (
	"context"
	"fmt"
	"log"
	"maps"
	"slices"
	"time"

	"github.com/etnz/nestegg/date"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// TransactionSource loads the plan transactions.
type TransactionSource interface {
	// Load returns all the transactions, deduplicated and sorted by date.
	// It returns ErrSourceUnavailable when there is no data at all.
	Load() ([]Transaction, error)
}

// PriceProvider returns the daily price history of instruments.
type PriceProvider interface {
	// GetPrices returns the prices of 'ticker' in [from, to].
	// An unknown ticker yields an empty series, not an error.
	GetPrices(ctx context.Context, ticker string, from, to date.Date) (*PriceSeries, error)
}

// CurrentValueProvider returns the current value of the actual portfolio.
type CurrentValueProvider interface {
	CurrentValue() (Money, error)
}

// ContributionLimitProvider returns the maximum contribution allowed for a year.
type ContributionLimitProvider interface {
	Limit(year int) (Money, error)
}

// FixedValue is a CurrentValueProvider that returns a constant value.
type FixedValue Money

func (f FixedValue) CurrentValue() (Money, error) { return Money(f), nil }

// StaticPrices is a PriceProvider backed by in-memory series, indexed by ticker.
type StaticPrices map[string]*PriceSeries

func (s StaticPrices) GetPrices(ctx context.Context, ticker string, from, to date.Date) (*PriceSeries, error) {
	p, ok := s[ticker]
	if !ok {
		return NewPriceSeries(ticker, ""), nil
	}
	return p.Between(from, to), nil
}

// memoProvider decorates a PriceProvider with an in-memory cache.
type memoProvider struct {
	base  PriceProvider
	cache *cache.Cache
}

// NewMemoProvider returns a PriceProvider that remembers the series fetched by
// base for 'ttl'.
//
// Blend and Compare often request the same instrument over the same range.
func NewMemoProvider(base PriceProvider, ttl time.Duration) PriceProvider {
	return &memoProvider{base: base, cache: cache.New(ttl, 2*ttl)}
}

func (m *memoProvider) GetPrices(ctx context.Context, ticker string, from, to date.Date) (*PriceSeries, error) {
	key := fmt.Sprintf("%s %s %s", ticker, from, to)
	if cached, found := m.cache.Get(key); found {
		return cached.(*PriceSeries), nil
	}
	p, err := m.base.GetPrices(ctx, ticker, from, to)
	if err != nil {
		return nil, err
	}
	m.cache.Set(key, p, cache.DefaultExpiration)
	return p, nil
}

// yearlyLimitIncrement is the step by which the elective deferral limit is
// indexed for inflation.
const yearlyLimitIncrement = 500

// LimitTable is a ContributionLimitProvider backed by a table of yearly caps.
//
// Years after the last known one are extrapolated by +500 per year.
type LimitTable struct {
	Currency string
	Caps     map[int]decimal.Decimal
}

// DefaultLimits returns the IRS 402(g) elective deferral limits.
func DefaultLimits() *LimitTable {
	caps := map[int]int64{
		2017: 18000,
		2018: 18500,
		2019: 19000,
		2020: 19500,
		2021: 19500,
		2022: 20500,
		2023: 22500,
		2024: 23000,
		2025: 23500,
		2026: 24500,
	}
	t := &LimitTable{Currency: DefaultCurrency, Caps: make(map[int]decimal.Decimal, len(caps))}
	for year, v := range caps {
		t.Caps[year] = decimal.NewFromInt(v)
	}
	return t
}

// Override sets the caps of specific years.
func (t *LimitTable) Override(caps map[int]decimal.Decimal) {
	maps.Copy(t.Caps, caps)
}

// Limit returns the cap for 'year'.
func (t *LimitTable) Limit(year int) (Money, error) {
	// latest known year at or before 'year'.
	years := slices.Sorted(maps.Keys(t.Caps))
	i, found := slices.BinarySearch(years, year)
	if found {
		return M(t.Caps[year], t.Currency), nil
	}
	if i == 0 {
		return Money{}, fmt.Errorf("no contribution limit known for %d", year)
	}
	known := years[i-1]
	if i < len(years) {
		log.Printf("no contribution limit for %d, extrapolated from %d", year, known)
	}
	v := t.Caps[known].Add(decimal.NewFromInt(int64(yearlyLimitIncrement * (year - known))))
	return M(v, t.Currency), nil
}

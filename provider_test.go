package nestegg

import (
	"context"
	"testing"
	"time"

	"github.com/etnz/nestegg/date"
	"github.com/shopspring/decimal"
)

func TestLimitTable(t *testing.T) {
	limits := DefaultLimits()
	limits.Override(map[int]decimal.Decimal{2030: decimal.NewFromInt(30000)})

	testCases := []struct {
		year    int
		want    Money
		wantErr bool
	}{
		{year: 2016, wantErr: true},
		{year: 2017, want: USD(18000)},
		{year: 2021, want: USD(19500)},
		{year: 2024, want: USD(23000)},
		{year: 2026, want: USD(24500)},
		{year: 2027, want: USD(25000)},
		{year: 2029, want: USD(26000)},
		{year: 2030, want: USD(30000)},
		{year: 2032, want: USD(31000)},
	}
	for _, tc := range testCases {
		got, err := limits.Limit(tc.year)
		if (err != nil) != tc.wantErr {
			t.Errorf("Limit(%d) error = %v, wantErr %v", tc.year, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && !got.Equal(tc.want) {
			t.Errorf("Limit(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
}

// countingPrices counts the calls to the underlying provider.
type countingPrices struct {
	StaticPrices
	calls int
}

func (c *countingPrices) GetPrices(ctx context.Context, ticker string, from, to date.Date) (*PriceSeries, error) {
	c.calls++
	return c.StaticPrices.GetPrices(ctx, ticker, from, to)
}

func TestMemoProvider(t *testing.T) {
	base := &countingPrices{StaticPrices: StaticPrices{"SPY": prices("SPY", "2024-01-02", 1.0, "2024-01-03", 2.0)}}
	memo := NewMemoProvider(base, time.Hour)
	ctx := context.Background()

	for range 3 {
		p, err := memo.GetPrices(ctx, "SPY", day("2024-01-01"), day("2024-01-31"))
		if err != nil {
			t.Fatalf("GetPrices() unexpected error: %v", err)
		}
		if p.Len() != 2 {
			t.Errorf("GetPrices() returned %d prices, want 2", p.Len())
		}
	}
	if base.calls != 1 {
		t.Errorf("base provider called %d times, want 1", base.calls)
	}

	// a different range is a different series.
	if _, err := memo.GetPrices(ctx, "SPY", day("2024-01-03"), day("2024-01-31")); err != nil {
		t.Fatal(err)
	}
	if base.calls != 2 {
		t.Errorf("base provider called %d times, want 2", base.calls)
	}
}

func TestStaticPrices(t *testing.T) {
	s := StaticPrices{"SPY": prices("SPY", "2024-01-02", 1.0, "2024-01-03", 2.0, "2024-01-04", 3.0)}
	p, err := s.GetPrices(context.Background(), "SPY", day("2024-01-03"), day("2024-01-10"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 2 || p.Has(day("2024-01-02")) {
		t.Errorf("GetPrices() = %v, want Jan 3 and Jan 4 only", p.Days())
	}
	unknown, err := s.GetPrices(context.Background(), "UNKNOWN", day("2024-01-03"), day("2024-01-10"))
	if err != nil || unknown.Len() != 0 {
		t.Errorf("GetPrices(UNKNOWN) = %v, %v, want an empty series", unknown, err)
	}
}

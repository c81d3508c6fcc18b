package nestegg

import (
	"context"
	"errors"
	"testing"

	"github.com/etnz/nestegg/date"
)

// failingPrices is a PriceProvider that always fails.
type failingPrices struct{}

func (failingPrices) GetPrices(ctx context.Context, ticker string, from, to date.Date) (*PriceSeries, error) {
	return nil, errors.New("network is down")
}

func testComparator(actual float64) *Comparator {
	return &Comparator{
		Actual: USD(actual),
		Prices: StaticPrices{
			"SPY":  prices("SPY", "2024-01-02", 100.0, "2024-01-16", 125.0),
			"BND":  prices("BND", "2024-01-02", 100.0, "2024-01-16", 80.0),
			"QQQ":  prices("QQQ", "2024-01-02", 50.0, "2024-01-16", 62.5), // same growth as SPY
			"NEW":  prices("NEW", "2024-01-16", 10.0),
			"ZERO": prices("ZERO", "2024-01-02", 10.0, "2024-01-16", 0.0),
		},
	}
}

func TestCompareOne(t *testing.T) {
	c := series("2024-01-02", 1000.0, "2024-01-16", 1000.0)
	got, err := testComparator(2100).CompareOne(context.Background(), c, "SPY")
	if err != nil {
		t.Fatalf("CompareOne() unexpected error: %v", err)
	}
	if !got.Rated {
		t.Fatalf("CompareOne() is not rated")
	}
	if !got.TerminalValue.Equal(USD(2250)) {
		t.Errorf("TerminalValue = %v, want %v", got.TerminalValue, USD(2250))
	}
	if !got.ExcessReturn.Equal(USD(150)) {
		t.Errorf("ExcessReturn = %v, want %v", got.ExcessReturn, USD(150))
	}
	if got.TimeInDays != 14 {
		t.Errorf("TimeInDays = %d, want 14", got.TimeInDays)
	}
	if !got.TotReturn.Equal(12.5) {
		t.Errorf("TotReturn = %v, want 12.5%%", got.TotReturn)
	}
	want, _ := AnnualizedReturn(USD(2250), USD(2000), 14)
	if !got.YoYReturn.Equal(want.Round()) {
		t.Errorf("YoYReturn = %v, want %v", got.YoYReturn, want.Round())
	}
}

func TestCompareOneBreakEven(t *testing.T) {
	// the actual portfolio is worth exactly what SPY would have become.
	c := series("2024-01-02", 1000.0, "2024-01-16", 1000.0)
	co := testComparator(2250)
	got, err := co.CompareOne(context.Background(), c, "SPY")
	if err != nil {
		t.Fatalf("CompareOne() unexpected error: %v", err)
	}
	if !got.ExcessReturn.IsZero() {
		t.Errorf("ExcessReturn = %v, want exactly zero", got.ExcessReturn)
	}

	table, err := co.Compare(context.Background(), c, []string{"SPY", "BND"})
	if err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}
	if positive := table.Positive(); len(positive) != 0 {
		t.Errorf("Positive() = %v, want no instrument beating the portfolio", positive)
	}
}

func TestCompareOneErrors(t *testing.T) {
	c := series("2024-01-02", 1000.0, "2024-01-16", 1000.0)
	ctx := context.Background()

	for _, ticker := range []string{"NEW", "UNKNOWN"} {
		got, err := testComparator(2100).CompareOne(ctx, c, ticker)
		if err != nil || got.Rated {
			t.Errorf("CompareOne(%s) = rated %v, %v, want unrated without error", ticker, got.Rated, err)
		}
	}

	if _, err := testComparator(2100).CompareOne(ctx, c, "ZERO"); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("CompareOne(ZERO) error = %v, want %v", err, ErrInvalidPrice)
	}

	failing := &Comparator{Prices: failingPrices{}, Actual: USD(2100)}
	if _, err := failing.CompareOne(ctx, c, "SPY"); err == nil {
		t.Errorf("CompareOne() with failing provider: expected error")
	}
}

func TestCompare(t *testing.T) {
	c := series("2024-01-02", 1000.0, "2024-01-16", 1000.0)
	table, err := testComparator(2100).Compare(context.Background(), c, []string{"BND", "NEW", "SPY", "UNKNOWN", "QQQ"})
	if err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}

	var tickers []string
	for _, row := range table.Rows {
		tickers = append(tickers, row.Ticker)
	}
	if got, want := tickers, []string{"BND", "SPY", "QQQ"}; !equalStrings(got, want) {
		t.Errorf("Rows = %v, want %v", got, want)
	}
	if got, want := table.Excluded, []string{"NEW", "UNKNOWN"}; !equalStrings(got, want) {
		t.Errorf("Excluded = %v, want %v", got, want)
	}

	// every row is consistent with its own simulation.
	for _, row := range table.Rows {
		if want := ExcessReturn(row.Portfolio.Last().Value, table.Actual); !row.ExcessReturn.Equal(want) {
			t.Errorf("%s ExcessReturn = %v, want %v", row.Ticker, row.ExcessReturn, want)
		}
	}

	positive := table.Positive()
	if len(positive) != 2 || positive[0].Ticker != "SPY" || positive[1].Ticker != "QQQ" {
		t.Errorf("Positive() = %v, want SPY and QQQ", positive)
	}
	// SPY and QQQ tie, the first one wins.
	if best, _ := table.Best(); best.Ticker != "SPY" {
		t.Errorf("Best() = %s, want SPY", best.Ticker)
	}
	if worst, _ := table.Worst(); worst.Ticker != "BND" {
		t.Errorf("Worst() = %s, want BND", worst.Ticker)
	}
}

func TestCompareEmpty(t *testing.T) {
	c := series("2024-01-02", 1000.0, "2024-01-16", 1000.0)
	table, err := testComparator(2100).Compare(context.Background(), c, nil)
	if err != nil {
		t.Fatalf("Compare() unexpected error: %v", err)
	}
	if len(table.Rows) != 0 || len(table.Excluded) != 0 {
		t.Errorf("Compare(nil) = %v, want an empty table", table)
	}
	if _, ok := table.Best(); ok {
		t.Errorf("Best() of an empty table should not exist")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

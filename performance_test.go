package nestegg

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPerformance(t *testing.T) {
	p := StaticPrices{
		"A": prices("A", "2023-06-01", 1.0, "2024-01-02", 100.0, "2024-06-03", 90.0, "2024-12-31", 150.0),
		"B": prices("B", "2024-01-02", 50.0, "2024-12-31", 40.0),
		"C": prices("C", "2024-02-01", 10.0, "2024-12-02", 15.0), // same change as A
		"D": prices("D", "2024-12-31", 10.0),
		"E": prices("E", "2024-01-02", 3.0, "2024-12-31", 4.0),
	}
	table, err := Performance(context.Background(), p, []string{"A", "B", "C", "D", "E", "UNKNOWN"}, day("2024-01-01"), day("2024-12-31"))
	if err != nil {
		t.Fatalf("Performance() unexpected error: %v", err)
	}

	testCases := []struct {
		ticker      string
		change      Percent
		first, last string
	}{
		{"B", -20, "2024-01-02", "2024-12-31"},
		{"E", 33.33, "2024-01-02", "2024-12-31"},
		{"A", 50, "2024-01-02", "2024-12-31"},
		{"C", 50, "2024-02-01", "2024-12-02"},
	}
	if len(table.Rows) != len(testCases) {
		t.Fatalf("Performance() rows = %+v, want %d rows", table.Rows, len(testCases))
	}
	for i, tc := range testCases {
		row := table.Rows[i]
		if row.Ticker != tc.ticker {
			t.Errorf("row %d = %s, want %s", i, row.Ticker, tc.ticker)
			continue
		}
		if !row.Change.Equal(tc.change) {
			t.Errorf("%s Change = %v, want %v", tc.ticker, row.Change, tc.change)
		}
		if row.First != day(tc.first) || row.Last != day(tc.last) {
			t.Errorf("%s window = %s..%s, want %s..%s", tc.ticker, row.First, row.Last, tc.first, tc.last)
		}
	}
	if got, want := table.Excluded, []string{"D", "UNKNOWN"}; !equalStrings(got, want) {
		t.Errorf("Excluded = %v, want %v", got, want)
	}
}

func TestPerformanceErrors(t *testing.T) {
	ctx := context.Background()
	from, to := day("2024-01-01"), day("2024-12-31")

	zero := StaticPrices{"ZERO": prices("ZERO", "2024-01-02", 0.0, "2024-12-31", 10.0)}
	if _, err := Performance(ctx, zero, []string{"ZERO"}, from, to); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("Performance(ZERO) error = %v, want %v", err, ErrInvalidPrice)
	}
	if _, err := Performance(ctx, failingPrices{}, []string{"SPY"}, from, to); err == nil {
		t.Errorf("Performance() with failing provider: expected error")
	}
	table, err := Performance(ctx, zero, nil, from, to)
	if err != nil || len(table.Rows) != 0 {
		t.Errorf("Performance(nil) = %+v, %v, want an empty table", table, err)
	}
}

func TestPerformanceRecordedPrices(t *testing.T) {
	table := NewHistoryTable()
	d := decimal.NewFromFloat
	table.Record(day("2024-01-02"), map[string]decimal.Decimal{"VFIAX": d(400), "VBTLX": d(10)})
	table.Record(day("2024-07-01"), map[string]decimal.Decimal{"VFIAX": d(500)})
	table.Record(day("2024-12-31"), map[string]decimal.Decimal{"VFIAX": d(440), "VBTLX": d(10.5)})

	got, err := Performance(context.Background(), RecordedPrices{Table: table, Currency: "USD"}, []string{"VFIAX", "VBTLX"}, day("2024-01-01"), day("2024-12-31"))
	if err != nil {
		t.Fatalf("Performance() unexpected error: %v", err)
	}
	if len(got.Rows) != 2 || got.Rows[0].Ticker != "VBTLX" || got.Rows[1].Ticker != "VFIAX" {
		t.Fatalf("Performance() rows = %+v, want VBTLX then VFIAX", got.Rows)
	}
	if !got.Rows[0].Change.Equal(5) || !got.Rows[1].Change.Equal(10) {
		t.Errorf("Performance() changes = %v %v, want 5%% 10%%", got.Rows[0].Change, got.Rows[1].Change)
	}
	if !got.Rows[1].LastPrice.Equal(USD(440)) {
		t.Errorf("VFIAX LastPrice = %v, want %v", got.Rows[1].LastPrice, USD(440))
	}
}

func TestTrailingWindow(t *testing.T) {
	from, to := TrailingWindow(day("2025-06-30"), PerformanceYears)
	if from != day("2022-07-01") || to != day("2025-06-30") {
		t.Errorf("TrailingWindow() = %s..%s, want 2022-07-01..2025-06-30", from, to)
	}
}

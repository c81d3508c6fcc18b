package nestegg

import (
	"errors"
	"testing"
)

func TestSummarize(t *testing.T) {
	txs := []Transaction{
		contribution("2023-01-01", 1000),
		contribution("2023-12-31", 1000),
		contribution("2024-01-01", 500), // Jan 1st is not year to date.
		dividend("2024-01-10", 20),
		contribution("2024-02-01", 500),
		contribution("2024-03-01", 500),
	}
	c, err := AggregateContributions(txs)
	if err != nil {
		t.Fatal(err)
	}
	d := ExtractDividends(txs, USD(5))

	s, err := Summarize(c, d, txs, USD(4000), USD(23000), day("2024-06-30"))
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}

	testCases := []struct {
		name string
		got  Money
		want Money
	}{
		{"TotalContribution", s.TotalContribution, USD(3500)},
		{"TotalDividends", s.TotalDividends, USD(20)},
		{"YTDContribution", s.YTDContribution, USD(1000)},
		{"AllowedContribution", s.AllowedContribution, USD(22000)},
	}
	for _, tc := range testCases {
		if !tc.got.Equal(tc.want) {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
	if s.Days != 425 {
		t.Errorf("Days = %d, want 425", s.Days)
	}
	if got, want := s.TimeInMarket(), "1 years 60 days"; got != want {
		t.Errorf("TimeInMarket() = %q, want %q", got, want)
	}
	if !s.TotalReturn.Equal(14.29) {
		t.Errorf("TotalReturn = %v, want 14.29%%", s.TotalReturn)
	}
	want, _ := AnnualizedReturn(USD(4000), USD(3500), 425)
	if !s.YoYReturn.Equal(want.Round()) {
		t.Errorf("YoYReturn = %v, want %v", s.YoYReturn, want.Round())
	}
}

func TestSummarizeFigures(t *testing.T) {
	txs := []Transaction{contribution("2024-01-02", 1000), contribution("2024-07-02", 1000)}
	c, _ := AggregateContributions(txs)
	s, err := Summarize(c, nil, txs, USD(2500), USD(23000), day("2024-12-01"))
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	labels := []string{
		"Current portfolio value",
		"Total Contribution",
		"Total Dividends",
		"Total time in the market",
		"Total return",
		"YoY return",
		"YTD Contribution",
		"Max Contribution for this year",
		"Allowed Contribution left",
	}
	figures := s.Figures()
	if len(figures) != len(labels) {
		t.Fatalf("Figures() returned %d figures, want %d", len(figures), len(labels))
	}
	for i, f := range figures {
		if f.Label != labels[i] {
			t.Errorf("Figures()[%d].Label = %q, want %q", i, f.Label, labels[i])
		}
	}
	if got, want := figures[0].Value, "$2,500.00"; got != want {
		t.Errorf("Current portfolio value = %q, want %q", got, want)
	}
	if got, want := figures[2].Value, "$0.00"; got != want {
		t.Errorf("Total Dividends = %q, want %q", got, want)
	}
}

func TestSummarizeErrors(t *testing.T) {
	txs := []Transaction{dividend("2024-01-02", 100), dividend("2024-03-02", 100)}
	c, _ := AggregateContributions(txs)
	if _, err := Summarize(c, nil, txs, USD(2500), USD(23000), day("2024-12-01")); !errors.Is(err, ErrNoContribution) {
		t.Errorf("Summarize() without contribution error = %v, want %v", err, ErrNoContribution)
	}

	// a single day portfolio has no yearly return.
	txs = []Transaction{contribution("2024-01-02", 1000)}
	c, _ = AggregateContributions(txs)
	if _, err := Summarize(c, nil, txs, USD(1100), USD(23000), day("2024-12-01")); !errors.Is(err, ErrInvalidReturn) {
		t.Errorf("Summarize() on a single day error = %v, want %v", err, ErrInvalidReturn)
	}
}

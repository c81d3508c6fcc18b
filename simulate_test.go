package nestegg

import (
	"errors"
	"testing"
)

func TestSimulate(t *testing.T) {
	c := series("2024-01-02", 1000.0, "2024-01-16", 1000.0)
	p := prices("SPY", "2024-01-02", 100.0, "2024-01-10", 110.0, "2024-01-16", 125.0)

	b, err := Simulate(c, p)
	if err != nil {
		t.Fatalf("Simulate() unexpected error: %v", err)
	}
	if len(b.Rows) != 2 {
		t.Fatalf("Simulate() returned %d rows, want 2", len(b.Rows))
	}

	testCases := []struct {
		units, totalUnits float64
		value             Money
		contribution      Money
		ret               Percent
	}{
		{10, 10, USD(1000), USD(1000), 0},
		{8, 18, USD(2250), USD(2000), 12.5},
	}
	for i, tc := range testCases {
		row := b.Rows[i]
		if !row.Units.Equal(Q(tc.units)) {
			t.Errorf("row %d Units = %v, want %v", i, row.Units, tc.units)
		}
		if !row.TotalUnits.Equal(Q(tc.totalUnits)) {
			t.Errorf("row %d TotalUnits = %v, want %v", i, row.TotalUnits, tc.totalUnits)
		}
		if !row.Value.Equal(tc.value) {
			t.Errorf("row %d Value = %v, want %v", i, row.Value, tc.value)
		}
		if !row.TotalContribution.Equal(tc.contribution) {
			t.Errorf("row %d TotalContribution = %v, want %v", i, row.TotalContribution, tc.contribution)
		}
		if !row.Return.Equal(tc.ret) {
			t.Errorf("row %d Return = %v, want %v", i, row.Return, tc.ret)
		}
	}
}

func TestSimulateJoinsOnDates(t *testing.T) {
	// the contribution of Jan 13 (a saturday) has no price and is skipped.
	c := series("2024-01-02", 100.0, "2024-01-13", 100.0, "2024-01-16", 100.0, "2024-01-30", 100.0)
	p := prices("SPY", "2024-01-02", 10.0, "2024-01-16", 20.0, "2024-01-30", 40.0)

	b, err := Simulate(c, p)
	if err != nil {
		t.Fatalf("Simulate() unexpected error: %v", err)
	}
	if len(b.Rows) != 3 {
		t.Fatalf("Simulate() returned %d rows, want 3", len(b.Rows))
	}
	for _, row := range b.Rows {
		if _, ok := p.Get(row.Date); !ok {
			t.Errorf("row on %v has no price", row.Date)
		}
	}
	// units: 10 + 5 + 2.5
	last := b.Last()
	if !last.TotalUnits.Equal(Q(17.5)) || !last.Value.Equal(USD(700)) {
		t.Errorf("Last() = %v units worth %v, want 17.5 units worth $700", last.TotalUnits, last.Value)
	}
	// value never rounded: the return is the only rounded figure.
	if !last.Return.Equal(133.33) {
		t.Errorf("Last().Return = %v, want 133.33%%", last.Return)
	}
}

func TestSimulateErrors(t *testing.T) {
	testCases := []struct {
		name    string
		c       ContributionSeries
		p       *PriceSeries
		wantErr error
	}{
		{
			name:    "no common date",
			c:       series("2024-01-02", 100.0, "2024-01-03", 100.0),
			p:       prices("X", "2024-02-02", 10.0, "2024-02-03", 10.0),
			wantErr: ErrInsufficientData,
		},
		{
			name:    "single common date",
			c:       series("2024-01-02", 100.0, "2024-01-03", 100.0),
			p:       prices("X", "2024-01-02", 10.0),
			wantErr: ErrInsufficientData,
		},
		{
			name:    "empty prices",
			c:       series("2024-01-02", 100.0, "2024-01-03", 100.0),
			p:       NewPriceSeries("X", "USD"),
			wantErr: ErrInsufficientData,
		},
		{
			name:    "zero price",
			c:       series("2024-01-02", 100.0, "2024-01-03", 100.0),
			p:       prices("X", "2024-01-02", 10.0, "2024-01-03", 0.0),
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "negative price",
			c:       series("2024-01-02", 100.0, "2024-01-03", 100.0),
			p:       prices("X", "2024-01-02", -1.0, "2024-01-03", 10.0),
			wantErr: ErrInvalidPrice,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Simulate(tc.c, tc.p); !errors.Is(err, tc.wantErr) {
				t.Errorf("Simulate() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestSimulateZeroRunningContribution(t *testing.T) {
	// a withdrawal cancels the first contribution.
	c := series("2024-01-02", 100.0, "2024-01-03", -100.0, "2024-01-04", 100.0)
	p := prices("X", "2024-01-02", 10.0, "2024-01-03", 10.0, "2024-01-04", 10.0)
	b, err := Simulate(c, p)
	if err != nil {
		t.Fatalf("Simulate() unexpected error: %v", err)
	}
	if b.Rows[1].Return != 0 {
		t.Errorf("Return with zero running contribution = %v, want 0", b.Rows[1].Return)
	}
}

func TestSimulateLinearity(t *testing.T) {
	p := prices("SPY", "2024-01-02", 100.0, "2024-01-16", 125.0, "2024-01-30", 80.0)
	c := series("2024-01-02", 1000.0, "2024-01-16", 1000.0, "2024-01-30", 500.0)
	scaled := series("2024-01-02", 3000.0, "2024-01-16", 3000.0, "2024-01-30", 1500.0)

	b, err := Simulate(c, p)
	if err != nil {
		t.Fatalf("Simulate() unexpected error: %v", err)
	}
	bs, err := Simulate(scaled, p)
	if err != nil {
		t.Fatalf("Simulate() unexpected error: %v", err)
	}
	three := newDecimal(3)
	var previous Quantity
	for i, row := range b.Rows {
		if want := row.Value.Scale(three); !bs.Rows[i].Value.Equal(want) {
			t.Errorf("scaled row %d Value = %v, want %v", i, bs.Rows[i].Value, want)
		}
		if previous.GreaterThan(row.TotalUnits) {
			t.Errorf("row %d TotalUnits = %v decreased from %v", i, row.TotalUnits, previous)
		}
		previous = row.TotalUnits
	}
}

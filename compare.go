package nestegg

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Comparison is the outcome of investing the contributions into a single instrument.
type Comparison struct {
	Ticker string
	// Rated is false when the instrument has not enough price history over the
	// contribution period. Other fields are then meaningless.
	Rated         bool
	Portfolio     *BenchmarkPortfolio
	TerminalValue Money
	ExcessReturn  Money // TerminalValue - actual portfolio value.
	TimeInDays    int
	YoYReturn     Percent
	TotReturn     Percent
}

// ComparisonTable compares several instruments to the actual portfolio.
type ComparisonTable struct {
	Actual   Money
	Rows     []Comparison // rated instruments in request order.
	Excluded []string     // unratable instruments in request order.
}

// Positive returns the instruments that would have beaten the actual portfolio.
func (t *ComparisonTable) Positive() []Comparison {
	var rows []Comparison
	for _, row := range t.Rows {
		if row.ExcessReturn.IsPositive() {
			rows = append(rows, row)
		}
	}
	return rows
}

// Best returns the instrument with the largest excess return. Ties go to the first one.
func (t *ComparisonTable) Best() (Comparison, bool) {
	return t.pick(func(a, b Comparison) bool { return a.ExcessReturn.GreaterThan(b.ExcessReturn) })
}

// Worst returns the instrument with the smallest excess return. Ties go to the first one.
func (t *ComparisonTable) Worst() (Comparison, bool) {
	return t.pick(func(a, b Comparison) bool { return a.ExcessReturn.LessThan(b.ExcessReturn) })
}

func (t *ComparisonTable) pick(better func(a, b Comparison) bool) (Comparison, bool) {
	if len(t.Rows) == 0 {
		return Comparison{}, false
	}
	best := t.Rows[0]
	for _, row := range t.Rows[1:] {
		if better(row, best) {
			best = row
		}
	}
	return best, true
}

// Comparator compares the contribution history to benchmark instruments.
type Comparator struct {
	Prices PriceProvider
	// Actual is the current value of the actual portfolio.
	Actual Money
}

// CompareOne simulates the contributions invested into 'ticker' and compares
// the terminal value to the actual portfolio.
//
// An instrument without enough price history is not an error: the returned
// Comparison is not Rated.
func (co *Comparator) CompareOne(ctx context.Context, c ContributionSeries, ticker string) (Comparison, error) {
	unrated := Comparison{Ticker: ticker}
	b, err := co.simulate(ctx, c, ticker)
	if errors.Is(err, ErrInsufficientData) {
		log.Printf("%s excluded: %v", ticker, err)
		return unrated, nil
	}
	if err != nil {
		return unrated, err
	}

	terminal := b.Last().Value
	days := c.Days()
	total := c.Total()
	tot, err := TotalReturn(terminal, total)
	if err != nil {
		return unrated, fmt.Errorf("%s total return: %w", ticker, err)
	}
	yoy, err := AnnualizedReturn(terminal, total, days)
	if err != nil {
		return unrated, fmt.Errorf("%s annualized return: %w", ticker, err)
	}

	return Comparison{
		Ticker:        ticker,
		Rated:         true,
		Portfolio:     b,
		TerminalValue: terminal,
		ExcessReturn:  ExcessReturn(terminal, co.Actual),
		TimeInDays:    days,
		YoYReturn:     yoy.Round(),
		TotReturn:     tot.Round(),
	}, nil
}

// Compare runs CompareOne for each ticker, in order.
func (co *Comparator) Compare(ctx context.Context, c ContributionSeries, tickers []string) (*ComparisonTable, error) {
	table := &ComparisonTable{Actual: co.Actual}
	for _, ticker := range tickers {
		row, err := co.CompareOne(ctx, c, ticker)
		if err != nil {
			return nil, err
		}
		if !row.Rated {
			table.Excluded = append(table.Excluded, ticker)
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

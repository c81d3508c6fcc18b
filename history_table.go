package nestegg

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/etnz/nestegg/date"
	"github.com/shopspring/decimal"
)

// HistoryHeaderFormat is the date format of the history table columns.
const HistoryHeaderFormat = "02-Jan-2006"

// HistoryTable is a wide table of daily values per ticker: one row per ticker,
// one column per recorded day. A ticker absent on a day has a zero value.
//
// It stores the allocation history (weights) and the fund price history.
type HistoryTable struct {
	days   []date.Date
	values map[string]map[date.Date]decimal.Decimal
}

// NewHistoryTable returns an empty table.
func NewHistoryTable() *HistoryTable {
	return &HistoryTable{values: make(map[string]map[date.Date]decimal.Decimal)}
}

// LoadHistoryTable reads the table at 'path'. A missing file is an empty table.
func LoadHistoryTable(path string) (*HistoryTable, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewHistoryTable(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := DecodeHistoryTable(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return t, nil
}

// DecodeHistoryTable reads a table in CSV format.
func DecodeHistoryTable(r io.Reader) (*HistoryTable, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	t := NewHistoryTable()
	if len(records) == 0 {
		return t, nil
	}
	header := records[0]
	if len(header) == 0 || header[0] != "ticker" {
		return nil, fmt.Errorf("first column must be %q, got %v", "ticker", header)
	}
	for _, h := range header[1:] {
		on, err := time.Parse(HistoryHeaderFormat, h)
		if err != nil {
			return nil, fmt.Errorf("invalid column %q: %w", h, err)
		}
		t.days = append(t.days, date.FromTime(on))
	}
	for _, record := range records[1:] {
		ticker := record[0]
		for i, cell := range record[1:] {
			if i >= len(t.days) {
				break
			}
			v, err := parseDecimal(cell)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s on %s: %w", ticker, t.days[i], err)
			}
			t.set(ticker, t.days[i], v)
		}
	}
	slices.SortFunc(t.days, date.Date.Compare)
	return t, nil
}

func (t *HistoryTable) set(ticker string, day date.Date, v decimal.Decimal) {
	row, ok := t.values[ticker]
	if !ok {
		row = make(map[date.Date]decimal.Decimal)
		t.values[ticker] = row
	}
	row[day] = v
}

// Days returns the recorded days.
func (t *HistoryTable) Days() []date.Date { return slices.Clone(t.days) }

// Tickers returns the tickers of the table, sorted.
func (t *HistoryTable) Tickers() []string { return slices.Sorted(maps.Keys(t.values)) }

// Record adds a column for 'day'.
//
// It returns false and changes nothing if that day is already recorded.
func (t *HistoryTable) Record(day date.Date, values map[string]decimal.Decimal) bool {
	i, found := slices.BinarySearchFunc(t.days, day, date.Date.Compare)
	if found {
		return false
	}
	t.days = slices.Insert(t.days, i, day)
	for ticker, v := range values {
		t.set(ticker, day, v)
	}
	return true
}

// Value returns the value of 'ticker' on 'day', zero if absent.
func (t *HistoryTable) Value(ticker string, day date.Date) decimal.Decimal {
	return t.values[ticker][day]
}

// Prices returns the non zero values of 'ticker' as a price series.
func (t *HistoryTable) Prices(ticker, currency string) *PriceSeries {
	p := NewPriceSeries(ticker, currency)
	for day, v := range t.values[ticker] {
		if !v.IsZero() {
			p.Append(day, v)
		}
	}
	return p
}

// RecordedPrices is a PriceProvider reading a fund price history table.
type RecordedPrices struct {
	Table    *HistoryTable
	Currency string
}

func (r RecordedPrices) GetPrices(ctx context.Context, ticker string, from, to date.Date) (*PriceSeries, error) {
	return r.Table.Prices(ticker, r.Currency).Between(from, to), nil
}

// Encode writes the table in CSV format.
func (t *HistoryTable) Encode(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"ticker"}
	for _, day := range t.days {
		header = append(header, day.Format(HistoryHeaderFormat))
	}
	cw.Write(header)
	for _, ticker := range t.Tickers() {
		record := []string{ticker}
		for _, day := range t.days {
			record = append(record, t.Value(ticker, day).String())
		}
		cw.Write(record)
	}
	cw.Flush()
	return cw.Error()
}

// Save writes the table to 'path'.
func (t *HistoryTable) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return f.Close()
}

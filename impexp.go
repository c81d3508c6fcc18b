package nestegg

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// this file contains the CSV import/export formats of transactions and reports.

// timeFormats are the timestamp formats found in plan exports.
var timeFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07:00",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// CSVSource is a TransactionSource reading the CSV export files matching a glob pattern.
type CSVSource struct {
	Pattern  string
	Currency string
}

// Load reads, merges and deduplicates all the files matching the pattern.
func (s *CSVSource) Load() ([]Transaction, error) {
	files, err := filepath.Glob(s.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", s.Pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no file matches %q: %w", s.Pattern, ErrSourceUnavailable)
	}
	var txs []Transaction
	for _, file := range files {
		log.Printf("reading %s", file)
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		ftxs, err := DecodeTransactionsCSV(f, s.Currency)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", file, err)
		}
		txs = append(txs, ftxs...)
	}
	txs = Dedup(txs)
	SortTransactions(txs)
	return txs, nil
}

// DecodeTransactionsCSV reads transactions from a CSV export.
//
// Columns are identified by the header row: "date", "security", "ticker",
// "name", "category", "memo", "units", "unit_price" and "price". In the plan
// administrator format there is no "category" column: "memo" holds the
// category and "income_type" the memo.
func DecodeTransactionsCSV(r io.Reader, currency string) ([]Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	columns := make(map[string]int)
	for i, h := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := columns["date"]; !ok {
		return nil, fmt.Errorf("missing %q column in header %v", "date", records[0])
	}
	categoryColumn, memoColumn := "category", "memo"
	if _, ok := columns["category"]; !ok {
		categoryColumn, memoColumn = "memo", "income_type"
	}

	txs := make([]Transaction, 0, len(records)-1)
	for i, record := range records[1:] {
		field := func(name string) string {
			if j, ok := columns[name]; ok && j < len(record) {
				return strings.TrimSpace(record[j])
			}
			return ""
		}
		line := i + 2

		on, err := parseTime(field("date"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		units, err := parseDecimal(field("units"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid units: %w", line, err)
		}
		unitPrice, err := parseDecimal(field("unit_price"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid unit price: %w", line, err)
		}
		price, err := parseDecimal(field("price"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid price: %w", line, err)
		}
		if field("unit_price") == "" && !units.IsZero() {
			// only the total amount is known, it stays the reference amount.
			unitPrice = price.Div(units)
		}

		txs = append(txs, Transaction{
			Date:      on,
			Security:  field("security"),
			Ticker:    field("ticker"),
			Name:      field("name"),
			Category:  ParseCategory(field(categoryColumn)),
			Units:     Quantity{value: units},
			UnitPrice: Money{value: unitPrice, cur: currency},
			Price:     Money{value: price, cur: currency},
			Memo:      field(memoColumn),
		})
	}
	return txs, nil
}

// parseDecimal parses a decimal, an empty string is zero.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// EncodeTransactionsCSV writes transactions in the normalized export format.
//
// Dates keep their zone offset, so that the export reads back to the very same
// transactions.
func EncodeTransactionsCSV(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"date", "security", "ticker", "name", "category", "memo", "units", "unit_price", "price"})
	for _, tx := range txs {
		cw.Write([]string{
			tx.Date.Format(time.RFC3339),
			tx.Security,
			tx.Ticker,
			tx.Name,
			string(tx.Category),
			tx.Memo,
			tx.Units.value.String(),
			tx.UnitPrice.value.String(),
			tx.Amount().value.String(),
		})
	}
	cw.Flush()
	return cw.Error()
}

// EncodeComparisonCSV writes the comparison table, one instrument per line.
func EncodeComparisonCSV(w io.Writer, t *ComparisonTable) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"ticker", "excessreturn", "yoyreturn", "totreturn", "terminalvalue", "days"})
	for _, row := range t.Rows {
		cw.Write([]string{
			row.Ticker,
			row.ExcessReturn.StringFixed(),
			fmt.Sprintf("%.2f", float64(row.YoYReturn)),
			fmt.Sprintf("%.2f", float64(row.TotReturn)),
			row.TerminalValue.StringFixed(),
			fmt.Sprint(row.TimeInDays),
		})
	}
	cw.Flush()
	return cw.Error()
}

// EncodeBlendedCSV writes the blended portfolio series, one day per line.
//
// The benchmark cell is empty on days without a benchmark price.
func EncodeBlendedCSV(w io.Writer, b *BlendedPortfolio) error {
	cw := csv.NewWriter(w)
	header := []string{"date"}
	for _, h := range b.Allocation {
		header = append(header, h.Ticker)
	}
	header = append(header, "portfoliovalue_nodiv", "dividend", "sum_div", "portfoliovalue_div")
	if b.Benchmark != "" {
		header = append(header, b.Benchmark+"value")
	}
	cw.Write(header)

	for _, p := range b.Points {
		record := []string{p.Date.String()}
		for _, v := range p.Holdings {
			record = append(record, v.StringFixed())
		}
		record = append(record,
			p.WithoutDividends.StringFixed(),
			p.Dividend.StringFixed(),
			p.CumulativeDividends.StringFixed(),
			p.WithDividends.StringFixed(),
		)
		if b.Benchmark != "" {
			bench := ""
			if p.HasBenchmark {
				bench = p.Benchmark.StringFixed()
			}
			record = append(record, bench)
		}
		cw.Write(record)
	}
	cw.Flush()
	return cw.Error()
}

package nestegg

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/etnz/nestegg/date"
)

// Category classifies a plan transaction, as reported by the plan administrator.
type Category string

const (
	Contribution         Category = "Contribution"
	DividendsAndEarnings Category = "Dividends and Earnings"
	Transfer             Category = "Transfer"
	Fee                  Category = "Fee"
	Withdrawal           Category = "Withdrawal"
	Loan                 Category = "Loan"
)

// ParseCategory maps a raw category label to a Category.
//
// Known categories are matched case insensitively, any other label is kept as is.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range []Category{Contribution, DividendsAndEarnings, Transfer, Fee, Withdrawal, Loan} {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return Category(s)
}

// Transaction is one line of a plan export.
type Transaction struct {
	Date      time.Time
	Security  string // administrator's unique id of the security.
	Ticker    string
	Name      string
	Category  Category
	Units     Quantity
	UnitPrice Money
	Price     Money // total amount as exported, zero when unknown.
	Memo      string
}

// Amount returns the total amount of the transaction: the exported Price, or
// Units × UnitPrice when there is none.
func (t Transaction) Amount() Money {
	if t.Price.IsZero() {
		return t.UnitPrice.Mul(t.Units)
	}
	return t.Price
}

// Day returns the calendar date of the transaction.
func (t Transaction) Day() date.Date { return date.FromTime(t.Date) }

// key returns a string identifying the full content of the transaction.
func (t Transaction) key() string {
	return strings.Join([]string{
		t.Date.UTC().Format(time.RFC3339Nano),
		t.Security, t.Ticker, t.Name,
		string(t.Category),
		t.Units.value.String(),
		t.UnitPrice.value.String(), t.UnitPrice.cur,
		t.Amount().value.String(),
		t.Memo,
	}, "\x00")
}

// Dedup returns txs without the rows that are fully equal to a previous one.
//
// Export files overlap, the same transaction appears in every file covering its date.
func Dedup(txs []Transaction) []Transaction {
	seen := make(map[string]struct{}, len(txs))
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		k := tx.key()
		if _, exists := seen[k]; exists {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, tx)
	}
	return out
}

// SortTransactions sorts txs by date, keeping the relative order of transactions of the same instant.
func SortTransactions(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int { return a.Date.Compare(b.Date) })
}

// Span returns the first and last transaction dates.
func Span(txs []Transaction) (first, last date.Date) {
	if len(txs) == 0 {
		return
	}
	first, last = txs[0].Day(), txs[0].Day()
	for _, tx := range txs[1:] {
		d := tx.Day()
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}
	return
}

// Tickers returns the distinct tickers in txs, sorted.
func Tickers(txs []Transaction) []string {
	var tickers []string
	for _, tx := range txs {
		if tx.Ticker != "" {
			tickers = append(tickers, tx.Ticker)
		}
	}
	slices.SortFunc(tickers, cmp.Compare)
	return slices.Compact(tickers)
}

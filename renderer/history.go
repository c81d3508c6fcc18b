package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/nestegg"
	"github.com/etnz/nestegg/date"
	md "github.com/nao1215/markdown"
)

// BlendedMarkdown renders the blended portfolio curve, one row per day.
func BlendedMarkdown(b *nestegg.BlendedPortfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Blended Portfolio")

	header := []string{"Date"}
	for _, h := range b.Allocation {
		header = append(header, fmt.Sprintf("%s (%s)", h.Ticker, h.Weight))
	}
	header = append(header, "Without Dividends", "Dividend", "Cumulative Dividends", "With Dividends")
	if b.Benchmark != "" {
		header = append(header, b.Benchmark)
	}

	table := md.TableSet{
		Alignment: alignRight(len(header)),
		Header:    header,
	}
	for _, p := range b.Points {
		row := []string{p.Date.String()}
		for _, v := range p.Holdings {
			row = append(row, v.String())
		}
		row = append(row, p.WithoutDividends.String(), p.Dividend.SignedString(), p.CumulativeDividends.String(), p.WithDividends.String())
		if b.Benchmark != "" {
			bench := "-"
			if p.HasBenchmark {
				bench = p.Benchmark.String()
			}
			row = append(row, bench)
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	if len(b.Excluded) > 0 {
		doc.PlainTextf("Excluded for lack of price history: %v", b.Excluded)
	}
	return doc.String()
}

// ValueHistoryMarkdown renders the recorded values of the actual portfolio,
// with the change since the previous record.
func ValueHistoryMarkdown(h *date.History[nestegg.Money]) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Value History")

	table := md.TableSet{
		Alignment: alignRight(3),
		Header:    []string{"Date", "Value", "Change"},
	}
	var previous nestegg.Money
	first := true
	for on, v := range h.Values() {
		change := "-"
		if !first {
			change = v.Sub(previous).SignedString()
		}
		table.Rows = append(table.Rows, []string{on.String(), v.String(), change})
		previous, first = v, false
	}
	doc.Table(table)
	return doc.String()
}

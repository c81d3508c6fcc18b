package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/nestegg"
	"github.com/etnz/nestegg/eodhd"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the headline figures of the actual portfolio.
func SummaryMarkdown(s *nestegg.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("401k Summary from %s to %s", s.First, s.Last))

	table := md.TableSet{
		Alignment: alignRight(2),
		Header:    []string{"Figure", "Value"},
	}
	for _, f := range s.Figures() {
		table.Rows = append(table.Rows, []string{f.Label, f.Value})
	}
	doc.Table(table)
	return doc.String()
}

// AllocationMarkdown renders a target allocation.
func AllocationMarkdown(a nestegg.Allocation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Allocation")
	table := md.TableSet{
		Alignment: alignRight(3),
		Header:    []string{"Ticker", "Name", "Weight"},
	}
	for _, h := range a {
		table.Rows = append(table.Rows, []string{h.Ticker, h.Name, h.Weight.String()})
	}
	table.Rows = append(table.Rows, []string{"**Total**", "", a.Total().String()})
	doc.Table(table)

	if !a.Total().Equal(100) {
		doc.PlainText(fmt.Sprintf("Weights sum to %s, values are scaled accordingly.", a.Total()))
	}
	return doc.String()
}

// SearchMarkdown renders instrument search results.
func SearchMarkdown(term string, results []eodhd.SearchResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Search results for %q", term))
	if len(results) == 0 {
		doc.PlainText("No instrument found.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Ticker", "Name", "Type", "ISIN", "Previous Close"},
	}
	for _, r := range results {
		table.Rows = append(table.Rows, []string{
			r.Ticker(),
			r.Name,
			r.Type,
			r.ISIN,
			fmt.Sprintf("%.2f %s", r.PreviousClose, r.Currency),
		})
	}
	doc.Table(table)
	return doc.String()
}

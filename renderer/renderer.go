// Package renderer formats nestegg reports as markdown.
//
// The markdown is meant to be displayed in a terminal (see the cmd package)
// or pasted in any markdown document.
package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/nestegg"
	md "github.com/nao1215/markdown"
)

// ComparisonMarkdown renders the comparison of the actual portfolio to
// benchmark instruments.
func ComparisonMarkdown(t *nestegg.ComparisonTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Benchmark Comparison")
	doc.PlainTextf("Actual portfolio value: %s", t.Actual)

	if len(t.Rows) > 0 {
		table := md.TableSet{
			Alignment: alignRight(6),
			Header:    []string{"Ticker", "Terminal Value", "Excess Return", "Total Return", "YoY Return", "Days"},
		}
		for _, row := range t.Rows {
			table.Rows = append(table.Rows, []string{
				row.Ticker,
				row.TerminalValue.String(),
				row.ExcessReturn.SignedString(),
				row.TotReturn.String(),
				row.YoYReturn.String(),
				fmt.Sprint(row.TimeInDays),
			})
		}
		doc.Table(table)
	}

	best, hasBest := t.Best()
	worst, _ := t.Worst()
	if hasBest {
		doc.H2("Verdict")
		doc.BulletList(
			fmt.Sprintf("%d of %d instruments would have beaten the actual portfolio", len(t.Positive()), len(t.Rows)),
			fmt.Sprintf("Best: %s (%s)", best.Ticker, best.ExcessReturn.SignedString()),
			fmt.Sprintf("Worst: %s (%s)", worst.Ticker, worst.ExcessReturn.SignedString()),
		)
	}

	var out bytes.Buffer
	out.WriteString(doc.String())
	ConditionalBlock(&out, func(w io.Writer) bool {
		fmt.Fprint(w, "\n\n## Excluded\n\nNot enough price history over the contribution period:\n\n")
		for _, ticker := range t.Excluded {
			fmt.Fprintf(w, "- %s\n", ticker)
		}
		return len(t.Excluded) > 0
	})
	return out.String()
}

package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/nestegg"
	md "github.com/nao1215/markdown"
)

// PerformanceMarkdown renders the funds ranked by price change, worst first.
func PerformanceMarkdown(t *nestegg.PerformanceTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Fund Performance from %s to %s", t.From, t.To))
	if len(t.Rows) == 0 {
		doc.PlainText("No fund has enough prices over the period.")
	} else {
		table := md.TableSet{
			Alignment: alignRight(6),
			Header:    []string{"Ticker", "From", "First Price", "To", "Last Price", "Change"},
		}
		for _, row := range t.Rows {
			table.Rows = append(table.Rows, []string{
				row.Ticker,
				row.First.String(),
				row.FirstPrice.String(),
				row.Last.String(),
				row.LastPrice.String(),
				row.Change.SignedString(),
			})
		}
		doc.Table(table)
	}

	var out bytes.Buffer
	out.WriteString(doc.String())
	ConditionalBlock(&out, func(w io.Writer) bool {
		fmt.Fprint(w, "\n\n## Excluded\n\nLess than two prices over the period:\n\n")
		for _, ticker := range t.Excluded {
			fmt.Fprintf(w, "- %s\n", ticker)
		}
		return len(t.Excluded) > 0
	})
	return out.String()
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/nestegg"
	"github.com/etnz/nestegg/renderer"
	"github.com/google/subcommands"
)

type compareCmd struct {
	csv      string
	value    string
	adjusted bool
}

func (*compareCmd) Name() string { return "compare" }
func (*compareCmd) Synopsis() string {
	return "compare the portfolio to the same contributions invested in benchmarks"
}
func (*compareCmd) Usage() string {
	return `nestegg compare [-csv <file>] [-value <amount>] [<ticker>...]

  Simulates every contribution invested into each benchmark instrument and
  compares the terminal value to the actual portfolio value.

  Without tickers, the benchmarks of the configuration are used.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csv, "csv", "", "Also export the comparison table to this CSV file")
	f.StringVar(&c.value, "value", "", "Actual portfolio value. Defaults to the latest recorded value")
	f.BoolVar(&c.adjusted, "adjusted", true, "Use prices adjusted for dividends and splits")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadAnalysis(c.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	table, err := a.compare(ctx, f.Args(), c.adjusted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error comparing benchmarks: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.csv != "" {
		err := writeCSV(c.csv, func(w io.Writer) error { return nestegg.EncodeComparisonCSV(w, table) })
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting comparison: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.ComparisonMarkdown(table))
	return subcommands.ExitSuccess
}

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

type blendCmd struct {
	with     string
	csv      string
	value    string
	adjusted bool
}

func (*blendCmd) Name() string     { return "blend" }
func (*blendCmd) Synopsis() string { return "simulate the target allocation with and without dividends" }
func (*blendCmd) Usage() string {
	return `nestegg blend [-with <ticker>] [-csv <file>]

  Simulates the allocation of the configuration: every holding receives its
  weight of each contribution. The dividends received are added on top.
`
}

func (c *blendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.with, "with", "", "Benchmark simulated alongside. Defaults to compareWith in the configuration")
	f.StringVar(&c.csv, "csv", "", "Also export the blended series to this CSV file")
	f.StringVar(&c.value, "value", "", "Actual portfolio value. Defaults to the latest recorded value")
	f.BoolVar(&c.adjusted, "adjusted", false, "Use prices adjusted for dividends and splits")
}

func (c *blendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %v\n", f.Args())
		return subcommands.ExitUsageError
	}
	a, err := loadAnalysis(c.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	b, err := a.blend(ctx, c.with, c.adjusted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error blending the allocation: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.csv != "" {
		err := writeCSV(c.csv, func(w io.Writer) error { return nestegg.EncodeBlendedCSV(w, b) })
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting blended series: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.AllocationMarkdown(b.Allocation) + "\n\n" + renderer.BlendedMarkdown(b))
	return subcommands.ExitSuccess
}

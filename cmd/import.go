package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/nestegg"
	"github.com/google/subcommands"
)

type importCmd struct {
	output string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge account export files into a single transactions file" }
func (*importCmd) Usage() string {
	return `nestegg import [-o <file>] [<pattern>]

  Reads every CSV export matching the pattern (the transactions pattern of the
  configuration by default), removes the duplicated transactions of
  overlapping exports and writes them sorted by date.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to "+transactionsFile+" in the data directory")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: import takes at most one pattern")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	src := transactionSource(cfg)
	if f.NArg() == 1 {
		src.Pattern = f.Arg(0)
	}
	output := c.output
	if output == "" {
		output = dataPath(transactionsFile)
	}

	txs, err := src.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading exports: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeCSV(output, func(w io.Writer) error { return nestegg.EncodeTransactionsCSV(w, txs) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	first, last := nestegg.Span(txs)
	fmt.Printf("%d transactions from %s to %s written to %s\n", len(txs), first, last, output)
	return subcommands.ExitSuccess
}

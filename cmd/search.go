package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/nestegg/eodhd"
	"github.com/etnz/nestegg/renderer"
	"github.com/google/subcommands"
)

// searchCmd looks up benchmark tickers on EODHD.
type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search instruments to compare with" }
func (*searchCmd) Usage() string {
	return `nestegg search <name, ticker or ISIN>

  Searches instruments on EOD Historical Data, to find the ticker of a
  benchmark. Requires an EODHD API key.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing search term")
		return subcommands.ExitUsageError
	}
	key := eodhdAPIKey()
	if key == "" {
		fmt.Fprintf(os.Stderr, "Error: search needs an EODHD API key, use -eodhd-api-key or $%s\n", EnvEodhdAPIKey)
		return subcommands.ExitUsageError
	}

	term := strings.Join(f.Args(), " ")
	results, err := eodhd.New(key, false).Search(ctx, term)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching %q: %v\n", term, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SearchMarkdown(term, results))
	return subcommands.ExitSuccess
}

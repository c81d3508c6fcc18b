package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/nestegg/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	value string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the headline figures of the portfolio" }
func (*summaryCmd) Usage() string {
	return `nestegg summary [-value <amount>]

  Displays the current value, contributions, dividends, returns and the
  contribution left for this year.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.value, "value", "", "Actual portfolio value. Defaults to the latest recorded value")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadAnalysis(c.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err := a.summarize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error summarizing: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/nestegg/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// reviewCmd starts a chat with Gemini to review the portfolio.
type reviewCmd struct {
	value string
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "review the portfolio in a chat with Gemini" }
func (*reviewCmd) Usage() string {
	return `nestegg review [<question>]

  Starts an interactive review of the portfolio. The model can read the
  summary, the benchmark comparison and the blended allocation.

  Requires the GEMINI_API_KEY environment variable.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.value, "value", "", "Actual portfolio value. Defaults to the latest recorded value")
}

func (c *reviewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadAnalysis(c.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	r := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(a), agent.NewTrader())
	if err := r.Run(ctx, client, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "Review failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/nestegg"
	"github.com/etnz/nestegg/date"
	"github.com/etnz/nestegg/renderer"
	"github.com/google/subcommands"
)

type recordCmd struct {
	date string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record the portfolio value, once per day" }
func (*recordCmd) Usage() string {
	return `nestegg record [-d <date>] [<value>]

  Records the value of the portfolio. A day keeps its first recorded value.
  Without value, prints the recorded history.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Day of the value, like 2025-01-31 or -1d")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	vl, err := nestegg.OpenValueLog(dataPath(valueLogFile), cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading recorded values: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		printMarkdown(renderer.ValueHistoryMarkdown(vl.History()))
		return subcommands.ExitSuccess
	}

	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	v, err := nestegg.ParseMoney(f.Arg(0), cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing value: %v\n", err)
		return subcommands.ExitUsageError
	}
	recorded, err := vl.Record(on, v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording value: %v\n", err)
		return subcommands.ExitFailure
	}
	if !recorded {
		fmt.Printf("a value is already recorded on %s\n", on)
		return subcommands.ExitSuccess
	}
	fmt.Printf("%s recorded on %s\n", v, on)
	return subcommands.ExitSuccess
}

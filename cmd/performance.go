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

type performanceCmd struct {
	date     string
	years    int
	recorded bool
	adjusted bool
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "rank funds by their price change over the last years" }
func (*performanceCmd) Usage() string {
	return `nestegg performance [-years <n>] [-d <date>] [-recorded] [<ticker>...]

  Ranks funds by their price change over a trailing window, worst first.

  Without tickers, the funds found in the transactions are ranked, or the
  funds of the recorded price history with -recorded.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Last day of the window, like 2025-01-31 or -1m")
	f.IntVar(&c.years, "years", nestegg.PerformanceYears, "Length of the window in years")
	f.BoolVar(&c.recorded, "recorded", false, "Use the fund prices recorded with 'allocation -prices' instead of the price provider")
	f.BoolVar(&c.adjusted, "adjusted", false, "Use prices adjusted for dividends and splits")
}

func (c *performanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	end, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.years <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -years must be positive, got %d\n", c.years)
		return subcommands.ExitUsageError
	}
	a, err := loadAnalysis("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	tickers := f.Args()
	var prices nestegg.PriceProvider
	if c.recorded {
		path := dataPath(fundPricesFile)
		table, err := nestegg.LoadHistoryTable(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading fund prices: %v\n", err)
			return subcommands.ExitFailure
		}
		if len(tickers) == 0 {
			tickers = table.Tickers()
		}
		prices = nestegg.RecordedPrices{Table: table, Currency: a.cfg.Currency}
	} else if prices, err = a.prices(c.adjusted); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating price provider: %v\n", err)
		return subcommands.ExitFailure
	}

	table, err := a.performance(ctx, prices, tickers, end, c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing performance: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PerformanceMarkdown(table))
	return subcommands.ExitSuccess
}

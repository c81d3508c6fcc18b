package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/nestegg"
	"github.com/etnz/nestegg/date"
	"github.com/etnz/nestegg/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type allocationCmd struct {
	prices string
	date   string
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "record the value held in each fund" }
func (*allocationCmd) Usage() string {
	return `nestegg allocation [-prices <ticker>=<price>,...] [<ticker>=<value>...]

  Records the value held in each fund of the account, and optionally the fund
  prices, in tables with one column per day. A day is recorded only once.

  Without arguments, prints the target allocation of the configuration.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.prices, "prices", "", "Comma separated fund prices, like VTI=251.3,BND=72.1")
	f.StringVar(&c.date, "d", "0d", "Day of the values, like 2025-01-31 or -1d")
}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 && c.prices == "" {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.AllocationMarkdown(cfg.Allocation))
		return subcommands.ExitSuccess
	}

	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	values, err := parsePairs(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing values: %v\n", err)
		return subcommands.ExitUsageError
	}
	var prices map[string]decimal.Decimal
	if c.prices != "" {
		if prices, err = parsePairs(strings.Split(c.prices, ",")); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing prices: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	for _, table := range []struct {
		file   string
		values map[string]decimal.Decimal
	}{
		{allocationFile, values},
		{fundPricesFile, prices},
	} {
		if len(table.values) == 0 {
			continue
		}
		path := dataPath(table.file)
		if err := recordHistory(path, on, table.values); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording %s: %v\n", path, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// recordHistory records 'values' on day 'on' in the history table at 'path'.
func recordHistory(path string, on date.Date, values map[string]decimal.Decimal) error {
	t, err := nestegg.LoadHistoryTable(path)
	if err != nil {
		return err
	}
	if !t.Record(on, values) {
		fmt.Printf("%s already has values on %s\n", path, on)
		return nil
	}
	if err := t.Save(path); err != nil {
		return err
	}
	fmt.Printf("%d values recorded on %s in %s\n", len(values), on, path)
	return nil
}

// parsePairs parses "ticker=amount" pairs.
func parsePairs(args []string) (map[string]decimal.Decimal, error) {
	res := make(map[string]decimal.Decimal, len(args))
	for _, arg := range args {
		ticker, amount, ok := strings.Cut(arg, "=")
		ticker = strings.TrimSpace(ticker)
		if !ok || ticker == "" {
			return nil, fmt.Errorf("invalid %q, want <ticker>=<amount>", arg)
		}
		v, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return nil, fmt.Errorf("invalid amount in %q: %w", arg, err)
		}
		res[ticker] = v
	}
	return res, nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/etnz/nestegg"
	"github.com/etnz/nestegg/date"
	"github.com/etnz/nestegg/renderer"
)

// analysis holds everything needed to compute the reports.
type analysis struct {
	cfg           *nestegg.Config
	txs           []nestegg.Transaction
	contributions nestegg.ContributionSeries
	dividends     nestegg.DividendSeries
	current       nestegg.CurrentValueProvider
	// prices returns the price provider for adjusted or plain close prices.
	prices func(adjusted bool) (nestegg.PriceProvider, error)
	today  date.Date
}

// loadAnalysis reads the configuration and transactions.
//
// 'value' overrides the recorded portfolio value when not empty.
func loadAnalysis(value string) (*analysis, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	src := transactionSource(cfg)

	var current nestegg.CurrentValueProvider
	if value != "" {
		v, err := nestegg.ParseMoney(value, cfg.Currency)
		if err != nil {
			return nil, fmt.Errorf("invalid portfolio value: %w", err)
		}
		current = nestegg.FixedValue(v)
	} else {
		vl, err := nestegg.OpenValueLog(dataPath(valueLogFile), cfg.Currency)
		if err != nil {
			return nil, err
		}
		current = vl
	}

	providers := make(map[bool]nestegg.PriceProvider)
	prices := func(adjusted bool) (nestegg.PriceProvider, error) {
		if p, ok := providers[adjusted]; ok {
			return p, nil
		}
		p, err := newPriceProvider(adjusted)
		if err != nil {
			return nil, err
		}
		providers[adjusted] = p
		return p, nil
	}
	return newAnalysis(cfg, src, current, prices, date.Today())
}

// newAnalysis loads the transactions from 'src' and extracts the contributions and dividends.
func newAnalysis(cfg *nestegg.Config, src nestegg.TransactionSource, current nestegg.CurrentValueProvider, prices func(bool) (nestegg.PriceProvider, error), today date.Date) (*analysis, error) {
	txs, err := src.Load()
	if err != nil {
		return nil, err
	}
	contributions, err := nestegg.AggregateContributions(txs)
	if err != nil {
		return nil, err
	}
	return &analysis{
		cfg:           cfg,
		txs:           txs,
		contributions: contributions,
		dividends:     nestegg.ExtractDividends(txs, cfg.Threshold()),
		current:       current,
		prices:        prices,
		today:         today,
	}, nil
}

func (a *analysis) comparator(adjusted bool) (*nestegg.Comparator, error) {
	actual, err := a.current.CurrentValue()
	if err != nil {
		return nil, err
	}
	prices, err := a.prices(adjusted)
	if err != nil {
		return nil, err
	}
	return &nestegg.Comparator{Prices: prices, Actual: actual}, nil
}

// compare compares the portfolio to 'tickers', the configured benchmarks when empty.
func (a *analysis) compare(ctx context.Context, tickers []string, adjusted bool) (*nestegg.ComparisonTable, error) {
	if len(tickers) == 0 {
		tickers = a.cfg.Benchmarks
	}
	co, err := a.comparator(adjusted)
	if err != nil {
		return nil, err
	}
	return co.Compare(ctx, a.contributions, tickers)
}

// blend simulates the configured allocation next to 'benchmark', the configured one when empty.
func (a *analysis) blend(ctx context.Context, benchmark string, adjusted bool) (*nestegg.BlendedPortfolio, error) {
	if len(a.cfg.Allocation) == 0 {
		return nil, fmt.Errorf("no allocation in %s: %w", *configFile, nestegg.ErrInvalidAllocation)
	}
	if benchmark == "" {
		benchmark = a.cfg.CompareWith
	}
	co, err := a.comparator(adjusted)
	if err != nil {
		return nil, err
	}
	return co.Blend(ctx, a.contributions, a.cfg.Allocation, a.dividends, benchmark)
}

// performance ranks 'tickers', the funds of the transactions when empty, over
// the 'years' long window ending on 'end'.
func (a *analysis) performance(ctx context.Context, prices nestegg.PriceProvider, tickers []string, end date.Date, years int) (*nestegg.PerformanceTable, error) {
	if len(tickers) == 0 {
		tickers = nestegg.Tickers(a.txs)
	}
	if len(tickers) == 0 {
		return nil, errors.New("the transactions have no fund ticker, give the tickers as arguments")
	}
	from, to := nestegg.TrailingWindow(end, years)
	return nestegg.Performance(ctx, prices, tickers, from, to)
}

func (a *analysis) summarize() (*nestegg.Summary, error) {
	current, err := a.current.CurrentValue()
	if err != nil {
		return nil, err
	}
	limit, err := a.cfg.Limits().Limit(a.today.Year())
	if err != nil {
		return nil, err
	}
	return nestegg.Summarize(a.contributions, a.dividends, a.txs, current, limit, a.today)
}

// Summary implements agent.Reports.
func (a *analysis) Summary(ctx context.Context) (string, error) {
	s, err := a.summarize()
	if err != nil {
		return "", err
	}
	return renderer.SummaryMarkdown(s), nil
}

// Comparison implements agent.Reports, with adjusted prices.
func (a *analysis) Comparison(ctx context.Context, tickers []string) (string, error) {
	t, err := a.compare(ctx, tickers, true)
	if err != nil {
		return "", err
	}
	return renderer.ComparisonMarkdown(t), nil
}

// Blend implements agent.Reports, with plain close prices.
func (a *analysis) Blend(ctx context.Context, benchmark string) (string, error) {
	b, err := a.blend(ctx, benchmark, false)
	if err != nil {
		return "", err
	}
	return renderer.AllocationMarkdown(b.Allocation) + "\n\n" + renderer.BlendedMarkdown(b), nil
}

// writeCSV creates 'path' and writes it with 'encode'.
func writeCSV(path string, encode func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return f.Close()
}

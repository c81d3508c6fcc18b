package nestegg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
)

// DefaultBenchmarks are the instruments compared to the portfolio when none is configured.
var DefaultBenchmarks = []string{
	"SPY", "QQQ", "IWM", "IBB", "BND", "VGT", "UPRO", "TQQQ", "VNQ", "GLD",
	"AAPL", "MSFT", "AMZN", "GITAX", "VITAX", "HAGAX", "KO", "COST", "BABA", "T", "TMUS",
}

// Config holds the user settings of the analysis.
type Config struct {
	Currency          string          `json:"currency"`
	DividendThreshold decimal.Decimal `json:"dividendThreshold"`
	// AnnualContributionCap overrides the default contribution limit of some years.
	AnnualContributionCap map[int]decimal.Decimal `json:"annualContributionCap,omitempty"`
	Benchmarks            []string                `json:"benchmarks"`
	Allocation            Allocation              `json:"allocation,omitempty"`
	// CompareWith is the benchmark drawn next to the blended allocation.
	CompareWith string `json:"compareWith"`
	// Transactions is a glob of the export files, relative to the data directory.
	// It must not match the files nestegg writes in the data directory.
	Transactions string `json:"transactions"`
}

// DefaultConfig returns the configuration used when there is no config file.
func DefaultConfig() *Config {
	return &Config{
		Currency:          DefaultCurrency,
		DividendThreshold: decimal.NewFromInt(DefaultDividendThreshold),
		Benchmarks:        DefaultBenchmarks,
		CompareWith:       "SPY",
		Transactions:      "exports/*.csv",
	}
}

// LoadConfig reads the config file at 'path'.
//
// A missing file is not an error, missing fields keep their default value.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	if err := json.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	if err := cfg.Allocation.validateIfAny(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Threshold returns the dividend threshold as Money.
func (c *Config) Threshold() Money { return M(c.DividendThreshold, c.Currency) }

// Limits returns the contribution limits, with the configured overrides.
func (c *Config) Limits() *LimitTable {
	t := DefaultLimits()
	t.Currency = c.Currency
	t.Override(c.AnnualContributionCap)
	return t
}

func (a Allocation) validateIfAny() error {
	if len(a) == 0 {
		return nil
	}
	return a.Validate()
}

package nestegg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatalf("LoadConfig() of a missing file unexpected error: %v", err)
	}
	if cfg.Currency != "USD" || len(cfg.Benchmarks) != len(DefaultBenchmarks) || !cfg.Threshold().Equal(USD(5)) {
		t.Errorf("LoadConfig() defaults = %+v", cfg)
	}

	path := filepath.Join(dir, "nestegg.json")
	content := `{
  "dividendThreshold": 10,
  "annualContributionCap": {"2027": 26000},
  "benchmarks": ["SPY", "QQQ"],
  "allocation": [{"ticker": "VFIAX", "weight": 70}, {"ticker": "VBTLX", "weight": 30}]
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if !cfg.Threshold().Equal(USD(10)) {
		t.Errorf("Threshold() = %v, want %v", cfg.Threshold(), USD(10))
	}
	if len(cfg.Benchmarks) != 2 || cfg.CompareWith != "SPY" || len(cfg.Allocation) != 2 {
		t.Errorf("LoadConfig() = %+v", cfg)
	}
	if got, _ := cfg.Limits().Limit(2027); !got.Equal(USD(26000)) {
		t.Errorf("Limits().Limit(2027) = %v, want %v", got, USD(26000))
	}

	if err := os.WriteFile(path, []byte(`{"allocation": [{"ticker": "A", "weight": -5}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidAllocation) {
		t.Errorf("LoadConfig() with a negative weight error = %v, want %v", err, ErrInvalidAllocation)
	}
}

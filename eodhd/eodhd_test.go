package eodhd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/etnz/nestegg/date"
	"github.com/shopspring/decimal"
)

const eodResponse = `[
  {"date":"2024-01-02","open":470.1,"high":472.0,"low":468.3,"close":472.65,"adjusted_close":465.2,"volume":1},
  {"date":"2024-01-03","open":470.4,"high":471.2,"low":466.5,"close":468.79,"adjusted_close":461.4,"volume":1}
]`

// newTestServer returns a server answering the eod endpoint for SPY.US only, and counting the requests.
func newTestServer(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/eod/SPY.US" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("api_token"); got != "test-key" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("from") != "2024-01-01" || r.URL.Query().Get("to") != "2024-01-31" {
			http.Error(w, fmt.Sprintf("unexpected range %v", r.URL.RawQuery), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, eodResponse)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetPrices(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, &calls)
	from, to := date.New(2024, 1, 1), date.New(2024, 1, 31)

	testCases := []struct {
		adjusted bool
		want     string
	}{
		{false, "472.65"},
		{true, "465.2"},
	}
	for _, tc := range testCases {
		p := &Provider{APIKey: "test-key", Adjusted: tc.adjusted, BaseURL: srv.URL, Client: srv.Client()}
		prices, err := p.GetPrices(context.Background(), "SPY", from, to)
		if err != nil {
			t.Fatalf("GetPrices() unexpected error: %v", err)
		}
		if prices.Len() != 2 || prices.Ticker != "SPY" {
			t.Fatalf("GetPrices() returned %d prices for %q, want 2 for SPY", prices.Len(), prices.Ticker)
		}
		got, _ := prices.Get(date.New(2024, 1, 2))
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("GetPrices(adjusted=%v) on Jan 2 = %v, want %v", tc.adjusted, got, tc.want)
		}
	}
}

func TestGetPricesUnknownTicker(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, &calls)
	p := &Provider{APIKey: "test-key", BaseURL: srv.URL, Client: srv.Client()}

	prices, err := p.GetPrices(context.Background(), "NOPE", date.New(2024, 1, 1), date.New(2024, 1, 31))
	if err != nil {
		t.Fatalf("GetPrices() of an unknown ticker unexpected error: %v", err)
	}
	if prices.Len() != 0 {
		t.Errorf("GetPrices() of an unknown ticker returned %d prices", prices.Len())
	}

	p.APIKey = "wrong"
	if _, err := p.GetPrices(context.Background(), "SPY", date.New(2024, 1, 1), date.New(2024, 1, 31)); err == nil {
		t.Errorf("GetPrices() with a wrong key: expected error")
	}
}

func TestDiskCache(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, &calls)
	today := date.New(2024, 2, 1)
	client := &http.Client{Transport: &diskCache{
		base:  srv.Client().Transport,
		dir:   t.TempDir(),
		today: func() date.Date { return today },
	}}
	p := &Provider{APIKey: "test-key", BaseURL: srv.URL, Client: client}
	ctx := context.Background()
	from, to := date.New(2024, 1, 1), date.New(2024, 1, 31)

	for range 2 {
		prices, err := p.GetPrices(ctx, "SPY", from, to)
		if err != nil {
			t.Fatalf("GetPrices() unexpected error: %v", err)
		}
		if prices.Len() != 2 {
			t.Errorf("GetPrices() returned %d prices, want 2", prices.Len())
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server called %d times, want 1", got)
	}

	// errors are not cached.
	p.GetPrices(ctx, "NOPE", from, to)
	p.GetPrices(ctx, "NOPE", from, to)
	if got := calls.Load(); got != 3 {
		t.Errorf("server called %d times, want 3", got)
	}

	// the next day the cache expires.
	today = today.Add(1)
	if _, err := p.GetPrices(ctx, "SPY", from, to); err != nil {
		t.Fatal(err)
	}
	if got := calls.Load(); got != 4 {
		t.Errorf("server called %d times, want 4", got)
	}
}

func TestSymbol(t *testing.T) {
	testCases := []struct{ ticker, want string }{
		{"SPY", "SPY.US"},
		{"VWCE.XETRA", "VWCE.XETRA"},
	}
	for _, tc := range testCases {
		if got := Symbol(tc.ticker); got != tc.want {
			t.Errorf("Symbol(%q) = %q, want %q", tc.ticker, got, tc.want)
		}
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/vanguard 500" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `[{"Code":"VFIAX","Exchange":"US","Name":"Vanguard 500 Index Admiral"},{"Code":"VUSA","Exchange":"LSE","Name":"Vanguard S&P 500"}]`)
	}))
	defer srv.Close()

	p := &Provider{APIKey: "test-key", BaseURL: srv.URL, Client: srv.Client()}
	results, err := p.Search(context.Background(), "vanguard 500")
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if len(results) != 2 || results[0].Ticker() != "VFIAX" || results[1].Ticker() != "VUSA.LSE" {
		t.Errorf("Search() = %+v", results)
	}
}

// Package yahoo provides daily prices from the Yahoo Finance chart API.
//
// It needs no API key, but the service throttles aggressive clients, so
// requests are rate limited.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/nestegg"
	"github.com/etnz/nestegg/date"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the root of the chart API.
	DefaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	userAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
)

// Provider is a nestegg.PriceProvider backed by the Yahoo Finance chart API.
type Provider struct {
	// Adjusted selects the prices adjusted for splits and dividends instead of
	// the raw close.
	Adjusted bool
	BaseURL  string // overridable for tests
	Client   *http.Client
	Limiter  *rate.Limiter
}

// New returns a Provider allowing two requests per second.
func New(adjusted bool) *Provider {
	return &Provider{
		Adjusted: adjusted,
		BaseURL:  DefaultBaseURL,
		Client:   &http.Client{Timeout: 30 * time.Second},
		Limiter:  rate.NewLimiter(rate.Every(500*time.Millisecond), 2),
	}
}

// GetPrices implements nestegg.PriceProvider.
func (p *Provider) GetPrices(ctx context.Context, ticker string, from, to date.Date) (*nestegg.PriceSeries, error) {
	series := nestegg.NewPriceSeries(ticker, nestegg.DefaultCurrency)
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	// period2 is exclusive.
	addr := fmt.Sprintf("%s/%s?period1=%d&period2=%d&interval=1d",
		p.BaseURL, url.PathEscape(ticker), from.Unix(), to.Add(1).Unix())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode == http.StatusNotFound {
		// unknown ticker.
		return series, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}

	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid chart response for %q: %w", ticker, err)
	}
	return series, p.parse(jobj, series)
}

// parse fills 'series' from a chart response.
//
//	{"chart": {"result": [{
//	    "meta": {"currency": "USD", "gmtoffset": -18000, ...},
//	    "timestamp": [1704205800, ...],
//	    "indicators": {
//	        "quote": [{"close": [472.65, ...], ...}],
//	        "adjclose": [{"adjclose": [465.2, ...]}]
//	    }
//	}]}}
func (p *Provider) parse(jobj any, series *nestegg.PriceSeries) error {
	timestamps, err := getList(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		// a ticker without history has no timestamp at all.
		return nil
	}
	pricePath := "$.chart.result[0].indicators.quote[0].close"
	if p.Adjusted {
		pricePath = "$.chart.result[0].indicators.adjclose[0].adjclose"
	}
	closes, err := getList(jobj, pricePath)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", series.Ticker, err)
	}
	if len(closes) != len(timestamps) {
		return fmt.Errorf("error parsing %q: %d prices for %d days", series.Ticker, len(closes), len(timestamps))
	}
	// timestamps are the market open, in UTC: the exchange offset gives the local trading day.
	var offset float64
	if jval, err := jsonpath.Get("$.chart.result[0].meta.gmtoffset", jobj); err == nil {
		offset, _ = jval.(float64)
	}

	for i, jts := range timestamps {
		ts, ok := jts.(float64)
		if !ok {
			return fmt.Errorf("error parsing %q: invalid timestamp %v", series.Ticker, jts)
		}
		price, ok := closes[i].(float64)
		if !ok {
			continue // null on non trading days.
		}
		on := date.FromTime(time.Unix(int64(ts+offset), 0).UTC())
		series.Append(on, decimal.NewFromFloat(price))
	}
	return nil
}

// getList returns the JSON array at 'path'.
func getList(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	list, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q is not a list: %v", path, jval)
	}
	return list, nil
}

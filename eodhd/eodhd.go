// Package eodhd provides end of day prices from the eodhd.com API.
package eodhd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/nestegg"
	"github.com/etnz/nestegg/date"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the root of the eodhd API.
const DefaultBaseURL = "https://eodhd.com/api"

// Provider is a nestegg.PriceProvider backed by the eodhd end of day API.
type Provider struct {
	APIKey string
	// Adjusted selects the prices adjusted for splits and dividends instead of
	// the raw close.
	Adjusted bool
	BaseURL  string
	Client   *http.Client
}

// New returns a Provider with a daily disk cache.
func New(apiKey string, adjusted bool) *Provider {
	return &Provider{
		APIKey:   apiKey,
		Adjusted: adjusted,
		BaseURL:  DefaultBaseURL,
		Client:   newDailyCachingClient(),
	}
}

// Symbol returns the eodhd symbol of a ticker.
//
// Tickers without exchange suffix are US tickers: "SPY" is "SPY.US".
func Symbol(ticker string) string {
	if strings.Contains(ticker, ".") {
		return ticker
	}
	return ticker + ".US"
}

// GetPrices implements nestegg.PriceProvider.
func (p *Provider) GetPrices(ctx context.Context, ticker string, from, to date.Date) (*nestegg.PriceSeries, error) {
	// https://eodhd.com/api/eod/MCD.US?api_token=demo&fmt=json&from=2017-01-05&to=2017-02-10
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	},
	// bounds are included in the response.
	if p.APIKey == "" {
		return nil, errors.New("EODHD API key is not set. Use -eodhd-api-key flag or EODHD_API_KEY environment variable")
	}
	base := p.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	client := p.Client
	if client == nil {
		client = newDailyCachingClient()
	}
	addr := fmt.Sprintf("%s/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		base, url.PathEscape(Symbol(ticker)), url.QueryEscape(p.APIKey), from, to)

	type Info struct {
		Date          date.Date       `json:"date"`
		Close         decimal.Decimal `json:"close"`
		AdjustedClose decimal.Decimal `json:"adjusted_close"`
	}
	content := make([]Info, 0)
	series := nestegg.NewPriceSeries(ticker, nestegg.DefaultCurrency)
	err := jwget(ctx, client, addr, &content)
	if errors.Is(err, errNotFound) {
		// unknown ticker.
		return series, nil
	}
	if err != nil {
		return nil, err
	}

	for _, info := range content {
		price := info.Close
		if p.Adjusted {
			price = info.AdjustedClose
		}
		series.Append(info.Date, price)
	}
	return series, nil
}

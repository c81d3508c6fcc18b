package eodhd

import (
	"context"
	"fmt"
	"net/url"
)

// SearchResult matches the structure of a single item in the EODHD search API response.
type SearchResult struct {
	Code              string  `json:"Code"`
	Exchange          string  `json:"Exchange"`
	Name              string  `json:"Name"`
	Type              string  `json:"Type"`
	Country           string  `json:"Country"`
	Currency          string  `json:"Currency"`
	ISIN              string  `json:"ISIN"`
	PreviousClose     float64 `json:"previousClose"`
	PreviousCloseDate string  `json:"previousCloseDate"`
}

// Ticker returns the ticker to use in the configuration: US tickers have no suffix.
func (r SearchResult) Ticker() string {
	if r.Exchange == "US" {
		return r.Code
	}
	return r.Code + "." + r.Exchange
}

// Search searches for instruments by name, ticker or ISIN.
func (p *Provider) Search(ctx context.Context, searchTerm string) ([]SearchResult, error) {
	base := p.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	client := p.Client
	if client == nil {
		client = newDailyCachingClient()
	}
	apiURL := fmt.Sprintf("%s/search/%s?api_token=%s&fmt=json", base, url.PathEscape(searchTerm), url.QueryEscape(p.APIKey))

	var results []SearchResult
	if err := jwget(ctx, client, apiURL, &results); err != nil {
		return nil, err
	}
	return results, nil
}

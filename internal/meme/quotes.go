// Package meme implements the quote-to-meme pipeline: fetch a quote,
// split it into headings, render a meme image, and write it to disk.
package meme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Quote fetch errors.
var (
	ErrEmptyQuoteResponse = errors.New("quote response contains no quotes")
	ErrMissingQuoteText   = errors.New("quote has no text")
)

// QuoteFetcher retrieves a single quote from an external source.
type QuoteFetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// ZenQuotesFetcher fetches random quotes from the zenquotes.io API.
type ZenQuotesFetcher struct {
	client *http.Client
	apiURL string
}

// NewZenQuotesFetcher creates a fetcher for the given API URL. The HTTP
// client is injected so tests can point it at a local server.
func NewZenQuotesFetcher(client *http.Client, apiURL string) *ZenQuotesFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &ZenQuotesFetcher{
		client: client,
		apiURL: apiURL,
	}
}

// zenQuote mirrors one element of the zenquotes.io response array.
type zenQuote struct {
	Quote  string `json:"q"`
	Author string `json:"a"`
}

// Fetch issues one GET request and returns the text of the first quote in
// the response. Transport failures and malformed responses are returned as
// errors; there are no retries.
func (f *ZenQuotesFetcher) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build quote request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	var quotes []zenQuote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return "", fmt.Errorf("failed to decode quote response: %w", err)
	}

	if len(quotes) == 0 {
		return "", ErrEmptyQuoteResponse
	}
	if quotes[0].Quote == "" {
		return "", ErrMissingQuoteText
	}

	return quotes[0].Quote, nil
}

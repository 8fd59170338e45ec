package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const yahooSearchURL = "https://query2.finance.yahoo.com/v1/finance/search"

type YahooClient struct {
	httpClient *http.Client
}

func NewYahooClient() *YahooClient {
	return &YahooClient{
		httpClient: &http.Client{},
	}
}

func (c *YahooClient) Name() string {
	return "Yahoo"
}

func (c *YahooClient) Fetch(ctx context.Context, ticker string, limit int) ([]RawNewsItem, error) {
	params := url.Values{}
	params.Set("q", ticker)
	params.Set("quotesCount", "0")
	params.Set("newsCount", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, yahooSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("yahoo request: %w", err)
	}
	// Yahoo rejects requests without a browser-like agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; MarketSense/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo fetch: unexpected status %d", resp.StatusCode)
	}

	var raw yahooResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}

	return truncateItems(raw.News, limit), nil
}

type yahooResponse struct {
	News []RawNewsItem `json:"news"`
}

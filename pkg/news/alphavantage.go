package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const alphaVantageTimeLayout = "20060102T150405"

type AlphaVantageClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) Fetch(ctx context.Context, ticker string, limit int) ([]RawNewsItem, error) {
	params := url.Values{}
	params.Set("function", "NEWS_SENTIMENT")
	params.Set("tickers", ticker)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort", "LATEST")
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.alphavantage.co/query?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	// Rate limits and bad tickers come back as 200 with a notice instead of a feed.
	if len(raw.Feed) == 0 {
		if notice := firstNonBlank(raw.Information, raw.Note, raw.ErrorMessage); notice != "" {
			return nil, fmt.Errorf("alphavantage: %s", notice)
		}
	}

	items := make([]RawNewsItem, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		items = append(items, item.toRaw())
	}

	return truncateItems(items, limit), nil
}

func (item avFeedItem) toRaw() RawNewsItem {
	var raw RawNewsItem
	raw.Title = optString(item.Title)
	raw.Summary = optString(item.Summary)
	raw.Link = optString(item.URL)
	raw.Publisher = optString(item.Source)
	raw.Thumbnail = thumbnailOf(item.BannerImage)

	if publishedAt, err := time.Parse(alphaVantageTimeLayout, item.TimePublished); err == nil {
		raw.PubDate = Some(publishedAt.UTC().Format(time.RFC3339))
	}

	return raw
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type avResponse struct {
	Feed         []avFeedItem `json:"feed"`
	Information  string       `json:"Information"`
	Note         string       `json:"Note"`
	ErrorMessage string       `json:"Error Message"`
}

type avFeedItem struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	URL           string `json:"url"`
	Source        string `json:"source"`
	BannerImage   string `json:"banner_image"`
	TimePublished string `json:"time_published"`
}

package news

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

const finnHubLookback = 7 * 24 * time.Hour

type FinnHubClient struct {
	client *finnhub.DefaultApiService
	now    func() time.Time
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return newFinnHubClient(cfg)
}

func newFinnHubClient(cfg *finnhub.Configuration) *FinnHubClient {
	return &FinnHubClient{
		client: finnhub.NewAPIClient(cfg).DefaultApi,
		now:    time.Now,
	}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) Fetch(ctx context.Context, ticker string, limit int) ([]RawNewsItem, error) {
	to := c.now().UTC()
	from := to.Add(-finnHubLookback)

	res, _, err := c.client.CompanyNews(ctx).
		Symbol(ticker).
		From(from.Format(time.DateOnly)).
		To(to.Format(time.DateOnly)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub fetch: %w", err)
	}

	items := make([]RawNewsItem, 0, len(res))
	for _, news := range res {
		var item RawNewsItem

		if news.Headline != nil {
			item.Title = optString(*news.Headline)
		}

		if news.Summary != nil {
			item.Summary = optString(*news.Summary)
		}

		if news.Url != nil {
			item.Link = optString(*news.Url)
		}

		if news.Image != nil {
			item.Thumbnail = thumbnailOf(*news.Image)
		}

		if news.Datetime != nil && *news.Datetime > 0 {
			item.ProviderPublishTime = Some(*news.Datetime)
		}

		if news.Source != nil {
			item.Publisher = optString(*news.Source)
		}

		items = append(items, item)
	}

	return truncateItems(items, limit), nil
}

package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

const yahooRSSURL = "https://feeds.finance.yahoo.com/rss/2.0/headline"

// RSSClient reads the Yahoo Finance per-ticker headline feed.
type RSSClient struct {
	parser *gofeed.Parser
}

func NewRSSClient() *RSSClient {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{}
	return &RSSClient{parser: parser}
}

func (c *RSSClient) Name() string {
	return "YahooRSS"
}

func (c *RSSClient) Fetch(ctx context.Context, ticker string, limit int) ([]RawNewsItem, error) {
	params := url.Values{}
	params.Set("s", ticker)
	params.Set("region", "US")
	params.Set("lang", "en-US")

	feed, err := c.parser.ParseURLWithContext(yahooRSSURL+"?"+params.Encode(), ctx)
	if err != nil {
		return nil, fmt.Errorf("rss fetch: %w", err)
	}

	items := make([]RawNewsItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		items = append(items, feedItemToRaw(entry))
	}

	return truncateItems(items, limit), nil
}

func feedItemToRaw(entry *gofeed.Item) RawNewsItem {
	var item RawNewsItem
	item.Title = optString(entry.Title)
	item.Description = optString(entry.Description)
	item.Body = optString(entry.Content)
	item.Link = optString(entry.Link)

	if entry.PublishedParsed != nil {
		item.PubDate = Some(entry.PublishedParsed.UTC().Format(time.RFC3339))
	}

	if entry.Image != nil {
		item.Thumbnail = thumbnailOf(entry.Image.URL)
	} else {
		for _, enc := range entry.Enclosures {
			if enc != nil && enc.URL != "" {
				item.Thumbnail = thumbnailOf(enc.URL)
				break
			}
		}
	}

	if len(entry.Authors) > 0 && entry.Authors[0] != nil {
		item.Publisher = optString(entry.Authors[0].Name)
	}

	return item
}

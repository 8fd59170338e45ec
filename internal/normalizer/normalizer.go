// Package normalizer turns provider news items into article records.
// Every item yields exactly one record; missing or malformed fields fall
// back to fixed defaults.
package normalizer

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ayushmp10/MarketSense/internal/model"
	"github.com/ayushmp10/MarketSense/pkg/news"
)

type Normalizer struct {
	now func() time.Time
}

func New() *Normalizer {
	return &Normalizer{now: time.Now}
}

// WithClock returns a normalizer that stamps undated items with clock().
func WithClock(clock func() time.Time) *Normalizer {
	return &Normalizer{now: clock}
}

func (n *Normalizer) NormalizeAll(items []news.RawNewsItem) []model.ArticleRecord {
	records := make([]model.ArticleRecord, 0, len(items))
	for _, item := range items {
		records = append(records, n.Normalize(item))
	}
	return records
}

func (n *Normalizer) Normalize(item news.RawNewsItem) model.ArticleRecord {
	c := item.Envelope()

	description := firstNonEmpty(
		plainText(c.Summary.Get()),
		plainText(c.Description.Get()),
	)

	return model.ArticleRecord{
		Title:       firstNonEmpty(c.Title.Get(), model.DefaultTitle),
		Description: firstNonEmpty(description, model.DefaultDescription),
		URL:         articleURL(c),
		ImageURL:    thumbnailURL(c),
		PublishedAt: n.publishedAt(c),
		SourceName:  firstNonEmpty(sourceName(c), model.DefaultSourceName),
		Content:     firstNonEmpty(plainText(c.Body.Get()), description, model.DefaultDescription),
	}
}

func (n *Normalizer) publishedAt(c news.NewsContent) time.Time {
	if raw := strings.TrimSpace(c.PubDate.Get()); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t.UTC()
		}
	}

	if c.ProviderPublishTime.Valid && c.ProviderPublishTime.Value > 0 {
		return time.Unix(c.ProviderPublishTime.Value, 0).UTC()
	}

	return n.now().UTC()
}

// Resolutions are listed smallest first, so the last one is the largest.
func thumbnailURL(c news.NewsContent) string {
	resolutions := c.Thumbnail.Value.Resolutions.Value
	if len(resolutions) == 0 {
		return ""
	}
	return strings.TrimSpace(resolutions[len(resolutions)-1].URL.Get())
}

func articleURL(c news.NewsContent) string {
	return firstNonEmpty(
		c.ClickThroughURL.Value.URL.Get(),
		c.CanonicalURL.Value.URL.Get(),
		c.Link.Get(),
	)
}

func sourceName(c news.NewsContent) string {
	return firstNonEmpty(c.Provider.Value.DisplayName.Get(), c.Publisher.Get())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// plainText strips markup from provider summaries. Input that is not HTML
// comes back unchanged apart from whitespace.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

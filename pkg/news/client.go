package news

import (
	"bytes"
	"context"
	"encoding/json"
)

// Opt is a provider field that may be absent, null or carry an unexpected
// JSON type. Decoding never fails; a bad value leaves Valid false.
type Opt[T any] struct {
	Value T
	Valid bool
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Valid: true}
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	*o = Opt[T]{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}

	o.Value = v
	o.Valid = true
	return nil
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Get returns the value, or the zero value when the field is missing.
func (o Opt[T]) Get() T {
	return o.Value
}

// RawNewsItem is a news item in the shape the Yahoo Finance APIs return.
// Newer payloads nest everything under "content"; older ones are flat.
// Other providers translate into the same shape.
type RawNewsItem struct {
	Content Opt[NewsContent] `json:"content"`
	NewsContent
}

type NewsContent struct {
	Title               Opt[string]    `json:"title"`
	Summary             Opt[string]    `json:"summary"`
	Description         Opt[string]    `json:"description"`
	Body                Opt[string]    `json:"body"`
	PubDate             Opt[string]    `json:"pubDate"`
	ProviderPublishTime Opt[int64]     `json:"providerPublishTime"`
	Thumbnail           Opt[Thumbnail] `json:"thumbnail"`
	ClickThroughURL     Opt[Link]      `json:"clickThroughUrl"`
	CanonicalURL        Opt[Link]      `json:"canonicalUrl"`
	Link                Opt[string]    `json:"link"`
	Provider            Opt[Provider]  `json:"provider"`
	Publisher           Opt[string]    `json:"publisher"`
}

type Thumbnail struct {
	Resolutions Opt[[]Resolution] `json:"resolutions"`
}

type Resolution struct {
	URL    Opt[string] `json:"url"`
	Width  Opt[int]    `json:"width"`
	Height Opt[int]    `json:"height"`
	Tag    Opt[string] `json:"tag"`
}

type Link struct {
	URL Opt[string] `json:"url"`
}

type Provider struct {
	DisplayName Opt[string] `json:"displayName"`
}

// Envelope returns the nested content block when present, otherwise the
// item's own fields.
func (i RawNewsItem) Envelope() NewsContent {
	if i.Content.Valid {
		return i.Content.Value
	}
	return i.NewsContent
}

type NewsClient interface {
	Fetch(ctx context.Context, ticker string, limit int) ([]RawNewsItem, error)
	Name() string
}

func thumbnailOf(url string) Opt[Thumbnail] {
	if url == "" {
		return Opt[Thumbnail]{}
	}
	return Some(Thumbnail{
		Resolutions: Some([]Resolution{{URL: Some(url)}}),
	})
}

func optString(s string) Opt[string] {
	if s == "" {
		return Opt[string]{}
	}
	return Some(s)
}

func truncateItems(items []RawNewsItem, limit int) []RawNewsItem {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

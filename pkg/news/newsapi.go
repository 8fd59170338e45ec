package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type NewsAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) Fetch(ctx context.Context, ticker string, limit int) ([]RawNewsItem, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s AND (stock OR earnings OR financial)", ticker))
	params.Set("sortBy", "publishedAt")
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://newsapi.org/v2/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	if raw.Status != "ok" {
		return nil, fmt.Errorf("newsapi %s: %s", raw.Code, raw.Message)
	}

	items := make([]RawNewsItem, 0, len(raw.Articles))
	for _, article := range raw.Articles {
		var item RawNewsItem
		item.Title = optString(article.Title)
		item.Description = optString(article.Description)
		item.Body = optString(article.Content)
		item.PubDate = optString(article.PublishedAt)
		item.Link = optString(article.URL)
		item.Thumbnail = thumbnailOf(article.URLToImage)
		if article.Source.Name != "" {
			item.Provider = Some(Provider{DisplayName: Some(article.Source.Name)})
		}
		items = append(items, item)
	}

	return truncateItems(items, limit), nil
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

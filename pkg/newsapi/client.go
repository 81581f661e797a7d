// Package newsapi provides a client for the NewsAPI.org /v2/everything endpoint.
package newsapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://newsapi.org"

// Client searches recent news articles via NewsAPI.
type Client interface {
	Everything(ctx context.Context, query string, opts ...SearchOption) (*EverythingResponse, error)
}

// EverythingResponse is the parsed /v2/everything response.
type EverythingResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// Article is a single news article.
type Article struct {
	Source      Source `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// Source identifies the publisher of an article.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchOption configures an article search.
type SearchOption func(*searchOpts)

type searchOpts struct {
	pageSize int
	language string
}

// WithPageSize sets the number of articles to request.
func WithPageSize(n int) SearchOption {
	return func(o *searchOpts) {
		o.pageSize = n
	}
}

// WithLanguage restricts articles to a language code.
func WithLanguage(lang string) SearchOption {
	return func(o *searchOpts) {
		o.language = lang
	}
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a NewsAPI client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Everything(ctx context.Context, query string, opts ...SearchOption) (*EverythingResponse, error) {
	so := &searchOpts{pageSize: 20, language: "en"}
	for _, opt := range opts {
		opt(so)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("pageSize", strconv.Itoa(so.pageSize))
	params.Set("sortBy", "publishedAt")
	if so.language != "" {
		params.Set("language", so.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "newsapi: create request")
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "newsapi: send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "newsapi: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("newsapi: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var result EverythingResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "newsapi: unmarshal response")
	}

	if result.Status != "ok" {
		return nil, eris.Errorf("newsapi: error status %q", result.Status)
	}

	return &result, nil
}

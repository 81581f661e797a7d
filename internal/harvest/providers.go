package harvest

import (
	"context"

	"github.com/sells-group/esg-leads-cli/internal/engine"
	"github.com/sells-group/esg-leads-cli/internal/model"
	"github.com/sells-group/esg-leads-cli/pkg/bing"
	"github.com/sells-group/esg-leads-cli/pkg/newsapi"
	"github.com/sells-group/esg-leads-cli/pkg/serpapi"
)

// SerpAPIProvider adapts the SerpAPI client to the harvest grid.
type SerpAPIProvider struct {
	Client serpapi.Client
	Limit  int
}

func (p *SerpAPIProvider) Name() string { return "serpapi" }

func (p *SerpAPIProvider) Search(ctx context.Context, q Query) ([]model.ProspectRecord, error) {
	resp, err := p.Client.Search(ctx, q.Web, serpapi.WithNum(p.Limit))
	if err != nil {
		return nil, err
	}
	records := make([]model.ProspectRecord, 0, len(resp.OrganicResults))
	for _, r := range resp.OrganicResults {
		records = append(records, model.ProspectRecord{
			Title:    r.Title,
			URL:      r.Link,
			Domain:   engine.ParseDomain(r.Link),
			Snippet:  r.Snippet,
			Market:   q.Market,
			Industry: q.Industry,
			Topic:    q.Topic,
			Source:   p.Name(),
		})
	}
	return records, nil
}

// BingProvider adapts the Bing Web Search client to the harvest grid.
type BingProvider struct {
	Client bing.Client
	Limit  int
}

func (p *BingProvider) Name() string { return "bing" }

func (p *BingProvider) Search(ctx context.Context, q Query) ([]model.ProspectRecord, error) {
	resp, err := p.Client.Search(ctx, q.Web, bing.WithCount(p.Limit))
	if err != nil {
		return nil, err
	}
	records := make([]model.ProspectRecord, 0, len(resp.WebPages.Value))
	for _, r := range resp.WebPages.Value {
		records = append(records, model.ProspectRecord{
			Title:    r.Name,
			URL:      r.URL,
			Domain:   engine.ParseDomain(r.URL),
			Snippet:  r.Snippet,
			Market:   q.Market,
			Industry: q.Industry,
			Topic:    q.Topic,
			Source:   p.Name(),
		})
	}
	return records, nil
}

// NewsAPIProvider adapts the NewsAPI client to the harvest grid. It uses
// the plain query variant and is the only provider with publish dates.
type NewsAPIProvider struct {
	Client newsapi.Client
	Limit  int
}

func (p *NewsAPIProvider) Name() string { return "newsapi" }

func (p *NewsAPIProvider) Search(ctx context.Context, q Query) ([]model.ProspectRecord, error) {
	resp, err := p.Client.Everything(ctx, q.News, newsapi.WithPageSize(p.Limit))
	if err != nil {
		return nil, err
	}
	records := make([]model.ProspectRecord, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		records = append(records, model.ProspectRecord{
			Title:       a.Title,
			URL:         a.URL,
			Domain:      engine.ParseDomain(a.URL),
			Snippet:     a.Description,
			Market:      q.Market,
			Industry:    q.Industry,
			Topic:       q.Topic,
			Source:      p.Name(),
			PublishedAt: a.PublishedAt,
		})
	}
	return records, nil
}

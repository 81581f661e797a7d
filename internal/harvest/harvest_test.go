package harvest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/esg-leads-cli/internal/engine"
	"github.com/sells-group/esg-leads-cli/internal/keyword"
	"github.com/sells-group/esg-leads-cli/internal/model"
	"github.com/sells-group/esg-leads-cli/pkg/bing"
	"github.com/sells-group/esg-leads-cli/pkg/newsapi"
	"github.com/sells-group/esg-leads-cli/pkg/serpapi"
)

func TestBuildQueries(t *testing.T) {
	queries := BuildQueries(
		[]string{"India", "UK"},
		[]string{"textiles"},
		[]string{"CSRD", "BRSR"},
	)

	// 2 markets x 1 industry x 2 topics
	require.Len(t, queries, 4)

	assert.Equal(t, Query{
		Market:   "India",
		Industry: "textiles",
		Topic:    "CSRD",
		Web:      `CSRD "textiles" site:newsroom OR "sustainability report" "India"`,
		News:     "CSRD textiles India",
	}, queries[0])

	// topic varies fastest, then industry, then market
	assert.Equal(t, "BRSR", queries[1].Topic)
	assert.Equal(t, "UK", queries[2].Market)
}

func TestBuildQueries_Empty(t *testing.T) {
	assert.Empty(t, BuildQueries(nil, []string{"steel"}, []string{"ESG"}))
}

// stubProvider returns canned records keyed by topic and records the
// queries it saw.
type stubProvider struct {
	name    string
	byTopic map[string][]model.ProspectRecord
	errFor  string

	mu   sync.Mutex
	seen []string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Search(_ context.Context, q Query) ([]model.ProspectRecord, error) {
	s.mu.Lock()
	s.seen = append(s.seen, q.Web)
	s.mu.Unlock()

	if q.Topic == s.errFor {
		return nil, eris.New("boom")
	}
	return s.byTopic[q.Topic], nil
}

func TestHarvesterRun_OrderedByCellThenProvider(t *testing.T) {
	queries := BuildQueries([]string{"EU"}, []string{"steel"}, []string{"CSRD", "CBAM"})

	web := &stubProvider{name: "serpapi", byTopic: map[string][]model.ProspectRecord{
		"CSRD": {{Title: "csrd-web", Source: "serpapi"}},
		"CBAM": {{Title: "cbam-web", Source: "serpapi"}},
	}}
	news := &stubProvider{name: "newsapi", byTopic: map[string][]model.ProspectRecord{
		"CSRD": {{Title: "csrd-news", Source: "newsapi"}},
		"CBAM": {{Title: "cbam-news", Source: "newsapi"}},
	}}

	h := New([]Provider{web, news}, 4)

	res, err := h.Run(context.Background(), queries)
	require.NoError(t, err)
	assert.NotEmpty(t, res.RunID)

	titles := make([]string, 0, len(res.Records))
	for _, r := range res.Records {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"csrd-web", "csrd-news", "cbam-web", "cbam-news"}, titles)
}

func TestHarvesterRun_ProviderErrorYieldsZeroRecords(t *testing.T) {
	queries := BuildQueries([]string{"EU"}, []string{"steel"}, []string{"CSRD", "CBAM"})

	flaky := &stubProvider{
		name:   "serpapi",
		errFor: "CSRD",
		byTopic: map[string][]model.ProspectRecord{
			"CBAM": {{Title: "cbam-web"}},
		},
	}

	h := New([]Provider{flaky}, 1)

	res, err := h.Run(context.Background(), queries)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "cbam-web", res.Records[0].Title)
	assert.Len(t, flaky.seen, 2)
}

func TestHarvesterRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := New([]Provider{&stubProvider{name: "serpapi"}}, 1)

	_, err := h.Run(ctx, BuildQueries([]string{"EU"}, []string{"steel"}, []string{"CSRD"}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHarvesterRun_DistinctRunIDs(t *testing.T) {
	h := New(nil, 1)

	first, err := h.Run(context.Background(), nil)
	require.NoError(t, err)
	second, err := h.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestSerpAPIProvider_MapsCellFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("q"), "site:newsroom")
		_, _ = w.Write([]byte(`{"organic_results":[{"title":"Acme appoints KPMG","link":"https://acme.com/news","snippet":"assurance"}]}`))
	}))
	defer srv.Close()

	p := &SerpAPIProvider{Client: serpapi.NewClient("k", serpapi.WithBaseURL(srv.URL)), Limit: 10}

	records, err := p.Search(context.Background(), BuildQueries([]string{"EU"}, []string{"steel"}, []string{"CSRD"})[0])
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.ProspectRecord{
		Title:    "Acme appoints KPMG",
		URL:      "https://acme.com/news",
		Domain:   "acme.com",
		Snippet:  "assurance",
		Market:   "EU",
		Industry: "steel",
		Topic:    "CSRD",
		Source:   "serpapi",
	}, records[0])
}

// Identical headlines from different domains are distinct leads, so every
// provider must derive the domain before classification sees the record.
func TestSerpAPIProvider_SameTitleDifferentDomainsSurviveDedup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"organic_results":[
			{"title":"Sustainability report 2026","link":"https://www.acme.com/esg","snippet":"CSRD assurance"},
			{"title":"Sustainability report 2026","link":"https://www.globex.com/esg","snippet":"CSRD assurance"}
		]}`))
	}))
	defer srv.Close()

	p := &SerpAPIProvider{Client: serpapi.NewClient("k", serpapi.WithBaseURL(srv.URL)), Limit: 10}

	records, err := p.Search(context.Background(), BuildQueries([]string{"EU"}, []string{"steel"}, []string{"CSRD"})[0])
	require.NoError(t, err)
	require.Len(t, records, 2)

	eng := engine.New(keyword.Default(), engine.DefaultWeights())
	leads := eng.ClassifyAll(records)
	require.Len(t, leads, 2)
	assert.Equal(t, "acme.com", leads[0].Domain)
	assert.Equal(t, "Acme", leads[0].Company)
	assert.Equal(t, "globex.com", leads[1].Domain)
	assert.Equal(t, "Globex", leads[1].Company)
}

func TestProviders_DeriveDomainFromResultURL(t *testing.T) {
	q := BuildQueries([]string{"EU"}, []string{"steel"}, []string{"CSRD"})[0]

	t.Run("bing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"webPages":{"value":[{"name":"t","url":"https://www.Acme.com/brsr","snippet":"s"}]}}`))
		}))
		defer srv.Close()

		p := &BingProvider{Client: bing.NewClient("k", bing.WithBaseURL(srv.URL)), Limit: 10}
		records, err := p.Search(context.Background(), q)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "acme.com", records[0].Domain)
	})

	t.Run("newsapi", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ok","articles":[{"source":{"name":"x"},"title":"t","url":"https://news.globex.com/a","publishedAt":"2026-01-01T00:00:00Z"}]}`))
		}))
		defer srv.Close()

		p := &NewsAPIProvider{Client: newsapi.NewClient("k", newsapi.WithBaseURL(srv.URL)), Limit: 10}
		records, err := p.Search(context.Background(), q)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "news.globex.com", records[0].Domain)
	})
}

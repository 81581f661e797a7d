// Package harvest builds the market by industry by topic query grid and
// fans it out across the configured search providers.
package harvest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/esg-leads-cli/internal/model"
)

// Query is one cell of the harvest grid. Web carries the quoted
// newsroom-biased query for web search providers; News is the plain
// variant used against news indexes.
type Query struct {
	Market   string `json:"market"`
	Industry string `json:"industry"`
	Topic    string `json:"topic"`
	Web      string `json:"web"`
	News     string `json:"news"`
}

// BuildQueries expands the full grid in market, industry, topic order.
func BuildQueries(markets, industries, topics []string) []Query {
	queries := make([]Query, 0, len(markets)*len(industries)*len(topics))
	for _, m := range markets {
		for _, i := range industries {
			for _, t := range topics {
				queries = append(queries, Query{
					Market:   m,
					Industry: i,
					Topic:    t,
					Web:      fmt.Sprintf("%s %q site:newsroom OR \"sustainability report\" %q", t, i, m),
					News:     fmt.Sprintf("%s %s %s", t, i, m),
				})
			}
		}
	}
	return queries
}

// Provider turns one query cell into raw prospect records.
type Provider interface {
	Name() string
	Search(ctx context.Context, q Query) ([]model.ProspectRecord, error)
}

// Result holds the raw records gathered in one run.
type Result struct {
	RunID   string
	Records []model.ProspectRecord
}

// Harvester fans query cells out across providers.
type Harvester struct {
	providers   []Provider
	concurrency int
}

// New creates a Harvester. Concurrency below 1 is treated as serial.
func New(providers []Provider, concurrency int) *Harvester {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Harvester{providers: providers, concurrency: concurrency}
}

// Run executes every provider against every query cell. Provider errors
// are logged and contribute zero records; the run itself only fails when
// the context is cancelled. Records come back ordered by cell then
// provider regardless of completion order.
func (h *Harvester) Run(ctx context.Context, queries []Query) (*Result, error) {
	runID := uuid.NewString()
	zap.L().Info("harvest: starting run",
		zap.String("run_id", runID),
		zap.Int("queries", len(queries)),
		zap.Int("providers", len(h.providers)))

	perCell := make([][]model.ProspectRecord, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)

	for idx, q := range queries {
		idx, q := idx, q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var records []model.ProspectRecord
			for _, p := range h.providers {
				found, err := p.Search(gctx, q)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					zap.L().Warn("harvest: provider search failed",
						zap.String("run_id", runID),
						zap.String("provider", p.Name()),
						zap.String("market", q.Market),
						zap.String("industry", q.Industry),
						zap.String("topic", q.Topic),
						zap.Error(err))
					continue
				}
				records = append(records, found...)
			}
			perCell[idx] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.ProspectRecord
	for _, records := range perCell {
		all = append(all, records...)
	}

	zap.L().Info("harvest: run complete",
		zap.String("run_id", runID),
		zap.Int("raw_records", len(all)))

	return &Result{RunID: runID, Records: all}, nil
}

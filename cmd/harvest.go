package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/esg-leads-cli/internal/config"
	"github.com/sells-group/esg-leads-cli/internal/contacts"
	"github.com/sells-group/esg-leads-cli/internal/export"
	"github.com/sells-group/esg-leads-cli/internal/harvest"
	"github.com/sells-group/esg-leads-cli/internal/model"
	"github.com/sells-group/esg-leads-cli/pkg/bing"
	"github.com/sells-group/esg-leads-cli/pkg/newsapi"
	"github.com/sells-group/esg-leads-cli/pkg/serpapi"
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Run providers over the query grid and export ranked leads",
	Long: `Fan the market/industry/topic query grid out across the configured
search providers, score and classify every result, deduplicate on
(domain, title), and write the ranked leads.

SerpAPI takes precedence over Bing as the web provider; NewsAPI runs
in addition when its key is set. At least one provider key is required.

Examples:
  # Full harvest to the default output files
  harvest

  # Harvest with contact discovery and signal columns
  harvest --contacts --signals

  # Harvest a narrow grid and push to Notion
  harvest --markets India --topics BRSR --notion`,
	RunE: runHarvest,
}

func init() {
	f := harvestCmd.Flags()
	f.String("markets", "", "comma-separated markets (overrides config)")
	f.String("industries", "", "comma-separated industries (overrides config)")
	f.String("topics", "", "comma-separated topics (overrides config)")
	f.String("output", "gb2b_leads.csv", "leads CSV path (empty to skip)")
	f.String("xlsx", "gb2b_leads.xlsx", "leads workbook path (empty to skip)")
	f.Bool("signals", false, "include classification signal columns in exports")
	f.Bool("contacts", false, "discover public contacts (overrides config)")
	f.Bool("notion", false, "push leads to the configured Notion database")
	f.Int("limit", 0, "results per provider per query (0=use config default)")
	f.Int("concurrency", 0, "concurrent query cells (0=use config default)")
	f.Int("min-score", 0, "drop leads below this score")
	f.String("keywords", "", "keyword library YAML file (overrides config)")

	rootCmd.AddCommand(harvestCmd)
}

func runHarvest(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := config.Validate(cfg); err != nil {
		return err
	}

	log := zap.L().With(zap.String("command", "harvest"))

	if v, _ := cmd.Flags().GetString("keywords"); v != "" {
		cfg.Keywords.File = v
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return eris.Wrap(err, "harvest: load keyword library")
	}

	limit := cfg.Search.ResultLimit
	if v, _ := cmd.Flags().GetInt("limit"); v > 0 {
		limit = v
	}
	concurrency := cfg.Search.Concurrency
	if v, _ := cmd.Flags().GetInt("concurrency"); v > 0 {
		concurrency = v
	}

	providers, err := buildProviders(cfg.Search, limit)
	if err != nil {
		return err
	}

	grid := cfg.Harvest
	if v, _ := cmd.Flags().GetString("markets"); v != "" {
		grid.Markets = splitAndTrim(v)
	}
	if v, _ := cmd.Flags().GetString("industries"); v != "" {
		grid.Industries = splitAndTrim(v)
	}
	if v, _ := cmd.Flags().GetString("topics"); v != "" {
		grid.Topics = splitAndTrim(v)
	}
	queries := harvest.BuildQueries(grid.Markets, grid.Industries, grid.Topics)

	h := harvest.New(providers, concurrency)
	res, err := h.Run(ctx, queries)
	if err != nil {
		return eris.Wrap(err, "harvest: run")
	}

	leads := eng.ClassifyAll(res.Records)
	if minScore, _ := cmd.Flags().GetInt("min-score"); minScore > 0 {
		kept := leads[:0]
		for _, l := range leads {
			if l.Score >= minScore {
				kept = append(kept, l)
			}
		}
		leads = kept
	}

	log.Info("classification complete",
		zap.String("run_id", res.RunID),
		zap.Int("raw_records", len(res.Records)),
		zap.Int("leads", len(leads)))

	var found []model.Contact
	withContacts, _ := cmd.Flags().GetBool("contacts")
	if withContacts || cfg.Contacts.Enabled {
		domains := make([]string, 0, len(leads))
		for _, l := range leads {
			domains = append(domains, l.Domain)
		}
		delay := time.Duration(cfg.Contacts.DelaySecs * float64(time.Second))
		ex := contacts.New(cfg.Contacts.MaxPagesPerDomain, cfg.Contacts.MaxDomains, delay)
		found = ex.ExtractBatch(ctx, domains)
		log.Info("contact discovery complete", zap.Int("contacts", len(found)))
	}

	csvPath, _ := cmd.Flags().GetString("output")
	xlsxPath, _ := cmd.Flags().GetString("xlsx")
	signals, _ := cmd.Flags().GetBool("signals")
	if err := writeLeadOutputs(leads, found, csvPath, xlsxPath, export.Options{IncludeSignals: signals}); err != nil {
		return eris.Wrap(err, "harvest: export")
	}

	if push, _ := cmd.Flags().GetBool("notion"); push {
		if cfg.Notion.Token == "" || cfg.Notion.LeadDB == "" {
			return eris.New("harvest: --notion requires notion.token and notion.lead_db")
		}
		client := export.NewNotionClient(cfg.Notion.Token)
		created, err := export.PushLeads(ctx, client, cfg.Notion.LeadDB, leads)
		if err != nil {
			return eris.Wrap(err, "harvest: notion push")
		}
		log.Info("notion push complete", zap.Int("created", created))
	}

	fmt.Printf("Harvest %s: %d queries, %d raw records, %d leads, %d contacts\n",
		res.RunID, len(queries), len(res.Records), len(leads), len(found))

	return nil
}

// buildProviders assembles the provider list from configured keys.
// SerpAPI wins over Bing; NewsAPI is additive.
func buildProviders(search config.SearchConfig, limit int) ([]harvest.Provider, error) {
	var providers []harvest.Provider

	switch {
	case search.SerpAPIKey != "":
		providers = append(providers, &harvest.SerpAPIProvider{
			Client: serpapi.NewClient(search.SerpAPIKey),
			Limit:  limit,
		})
	case search.BingKey != "":
		var opts []bing.Option
		if search.BingEndpoint != "" {
			opts = append(opts, bing.WithBaseURL(bingBase(search.BingEndpoint)))
		}
		providers = append(providers, &harvest.BingProvider{
			Client: bing.NewClient(search.BingKey, opts...),
			Limit:  limit,
		})
	}

	if search.NewsAPIKey != "" {
		providers = append(providers, &harvest.NewsAPIProvider{
			Client: newsapi.NewClient(search.NewsAPIKey),
			Limit:  limit,
		})
	}

	if len(providers) == 0 {
		return nil, eris.New("harvest: no provider configured (set search.serpapi_key, search.bing_key, or search.newsapi_key)")
	}
	return providers, nil
}

// bingBase strips the legacy full-endpoint form down to the client's base URL.
func bingBase(endpoint string) string {
	const suffix = "/v7.0/search"
	if len(endpoint) > len(suffix) && endpoint[len(endpoint)-len(suffix):] == suffix {
		return endpoint[:len(endpoint)-len(suffix)]
	}
	return endpoint
}

package main

import (
	"encoding/csv"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/esg-leads-cli/internal/harvest"
)

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Print the harvest query grid",
	Long: `Expand the configured markets, industries, and topics into the full
query grid without calling any provider.

Examples:
  # Inspect the grid
  queries

  # Narrow the grid and export it
  queries --markets India,UK --format csv --output queries.csv`,
	RunE: runQueries,
}

func init() {
	f := queriesCmd.Flags()
	f.String("markets", "", "comma-separated markets (overrides config)")
	f.String("industries", "", "comma-separated industries (overrides config)")
	f.String("topics", "", "comma-separated topics (overrides config)")
	f.String("format", "json", "output format: json or csv")
	f.String("output", "", "output file path (default: stdout)")

	rootCmd.AddCommand(queriesCmd)
}

func runQueries(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := validateFormat(format); err != nil {
		return eris.Wrap(err, "queries")
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

	w := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrapf(err, "queries: create output file %s", path)
		}
		defer f.Close() //nolint:errcheck
		w = f
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(queries); err != nil {
			return eris.Wrap(err, "queries: encode JSON")
		}
	case "csv":
		cw := csv.NewWriter(w)
		defer cw.Flush()
		if err := cw.Write([]string{"market", "industry", "topic", "web_query", "news_query"}); err != nil {
			return eris.Wrap(err, "queries: write CSV header")
		}
		for _, q := range queries {
			if err := cw.Write([]string{q.Market, q.Industry, q.Topic, q.Web, q.News}); err != nil {
				return eris.Wrap(err, "queries: write CSV row")
			}
		}
	}

	return nil
}

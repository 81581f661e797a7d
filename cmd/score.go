package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/esg-leads-cli/internal/config"
	"github.com/sells-group/esg-leads-cli/internal/engine"
	"github.com/sells-group/esg-leads-cli/internal/export"
	"github.com/sells-group/esg-leads-cli/internal/ingest"
	"github.com/sells-group/esg-leads-cli/internal/model"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score and classify raw records from a file",
	Long: `Read raw search or news records from a CSV or XLSX file, score and
classify each one offline, deduplicate on (domain, title), and write
the ranked leads. No provider is called.

Expected input columns: ` + fmt.Sprintf("%v", ingest.ExpectedColumns) + `

Examples:
  # Score a raw export
  score --input raw.csv

  # Score with signal columns and a floor
  score --input raw.xlsx --signals --min-score 5 --output leads.csv`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.String("input", "", "raw records file (.csv or .xlsx), required")
	f.String("output", "gb2b_leads.csv", "leads CSV path (empty to skip)")
	f.String("xlsx", "", "leads workbook path (empty to skip)")
	f.Bool("signals", false, "include classification signal columns in exports")
	f.Int("min-score", 0, "drop leads below this score")
	f.String("keywords", "", "keyword library YAML file (overrides config)")
	_ = scoreCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if v, _ := cmd.Flags().GetString("keywords"); v != "" {
		cfg.Keywords.File = v
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return eris.Wrap(err, "score: load keyword library")
	}

	input, _ := cmd.Flags().GetString("input")
	raw, err := ingest.ReadFile(input)
	if err != nil {
		return eris.Wrapf(err, "score: read %s", input)
	}

	records := make([]model.ProspectRecord, 0, len(raw))
	for _, row := range raw {
		records = append(records, engine.Normalize(row))
	}

	leads := eng.ClassifyAll(records)
	if minScore, _ := cmd.Flags().GetInt("min-score"); minScore > 0 {
		kept := leads[:0]
		for _, l := range leads {
			if l.Score >= minScore {
				kept = append(kept, l)
			}
		}
		leads = kept
	}

	zap.L().Info("scoring complete",
		zap.String("input", input),
		zap.Int("raw_records", len(records)),
		zap.Int("leads", len(leads)))

	csvPath, _ := cmd.Flags().GetString("output")
	xlsxPath, _ := cmd.Flags().GetString("xlsx")
	signals, _ := cmd.Flags().GetBool("signals")
	if err := writeLeadOutputs(leads, nil, csvPath, xlsxPath, export.Options{IncludeSignals: signals}); err != nil {
		return eris.Wrap(err, "score: export")
	}

	fmt.Printf("Scored %d records into %d leads\n", len(records), len(leads))

	return nil
}

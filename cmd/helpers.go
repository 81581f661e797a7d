package main

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/esg-leads-cli/internal/config"
	"github.com/sells-group/esg-leads-cli/internal/engine"
	"github.com/sells-group/esg-leads-cli/internal/export"
	"github.com/sells-group/esg-leads-cli/internal/keyword"
	"github.com/sells-group/esg-leads-cli/internal/model"
)

// loadLibrary returns the default keyword library, overlaid with the
// configured keyword file when one is set.
func loadLibrary(cfg *config.Config) (keyword.Library, error) {
	if cfg.Keywords.File == "" {
		return keyword.Default(), nil
	}
	return keyword.LoadFile(cfg.Keywords.File)
}

func newEngine(cfg *config.Config) (*engine.Engine, error) {
	lib, err := loadLibrary(cfg)
	if err != nil {
		return nil, err
	}
	return engine.New(lib, cfg.Weights), nil
}

// writeLeadOutputs writes the CSV file and, when xlsxPath is set, the
// workbook with the optional contacts sheet.
func writeLeadOutputs(leads []model.ClassifiedLead, contacts []model.Contact, csvPath, xlsxPath string, opts export.Options) error {
	if csvPath != "" {
		if err := export.WriteLeadsCSV(leads, csvPath, opts); err != nil {
			return err
		}
		zap.L().Info("wrote leads CSV", zap.String("path", csvPath), zap.Int("leads", len(leads)))
	}
	if xlsxPath != "" {
		if err := export.WriteWorkbook(leads, contacts, xlsxPath, opts); err != nil {
			return err
		}
		zap.L().Info("wrote leads workbook", zap.String("path", xlsxPath), zap.Int("leads", len(leads)))
	}
	return nil
}

func validateFormat(format string) error {
	if format != "csv" && format != "json" {
		return eris.Errorf("unsupported format %q (want csv or json)", format)
	}
	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

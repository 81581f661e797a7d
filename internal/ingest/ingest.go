// Package ingest reads raw search/news result files (CSV or XLSX) into the
// key-value records the engine's normalizer consumes. This is the offline
// path: results exported from an external search tool are uploaded as-is.
package ingest

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// ExpectedColumns are the raw-record fields the engine understands. Files may
// carry them in any order; missing columns default to empty values and extra
// columns are ignored.
var ExpectedColumns = []string{
	"title", "url", "snippet", "source", "published_at",
	"market", "industry", "topic",
}

// ReadFile dispatches on the file extension.
func ReadFile(path string) ([]map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, eris.Errorf("ingest: unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// rowsToRecords zips a header row with data rows into key-value records.
// Header names are lowercased and trimmed; only expected columns are kept.
func rowsToRecords(header []string, rows [][]string) []map[string]string {
	expected := make(map[string]bool, len(ExpectedColumns))
	for _, c := range ExpectedColumns {
		expected[c] = true
	}

	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(h))
	}

	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]string, len(ExpectedColumns))
		for i, col := range cols {
			if !expected[col] || i >= len(row) {
				continue
			}
			rec[col] = strings.TrimSpace(row[i])
		}
		records = append(records, rec)
	}
	return records
}

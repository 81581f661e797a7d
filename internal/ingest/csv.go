package ingest

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"
)

// ReadCSV reads a raw-results CSV file. The first row is the header; rows with
// a variable number of fields are tolerated (short rows leave trailing columns
// empty).
func ReadCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open csv")
	}
	defer f.Close() //nolint:errcheck

	return ParseCSV(f)
}

// ParseCSV reads raw-result records from an open CSV stream.
func ParseCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields
	reader.LazyQuotes = true

	var header []string
	var rows [][]string
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "ingest: read csv row")
		}
		if first {
			header = record
			first = false
			continue
		}
		rows = append(rows, record)
	}

	if header == nil {
		return nil, eris.New("ingest: csv has no header row")
	}
	return rowsToRecords(header, rows), nil
}

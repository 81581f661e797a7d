// Package export writes classified leads to flat files (CSV, XLSX) and
// optionally pushes them to a Notion database. It consumes the engine's
// output unchanged.
package export

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/esg-leads-cli/internal/model"
)

// leadColumns is the ordered lead-table header. The order is load-bearing:
// downstream spreadsheets expect exactly this layout.
var leadColumns = []string{
	"company", "domain", "market", "industry", "title", "snippet", "score",
	"url", "keywords_matched", "published_at", "topic", "source",
}

// signalColumns extend the lead table when intent/segment classification
// output is included.
var signalColumns = []string{
	"advisor_mentioned", "buyer_intent_signals", "segments", "likely_paying_for_esg",
}

// contactColumns is the ordered contacts-table header.
var contactColumns = []string{"domain", "name", "title", "email", "page"}

// Options controls which columns are emitted.
type Options struct {
	// IncludeSignals appends the advisor/intent/segment columns.
	IncludeSignals bool
}

// WriteLeadsCSV writes leads to a CSV file at path.
func WriteLeadsCSV(leads []model.ClassifiedLead, path string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create csv")
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(headerRow(opts)); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, lead := range leads {
		if err := w.Write(leadRow(lead, opts)); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "export: flush csv")
}

func headerRow(opts Options) []string {
	cols := append([]string(nil), leadColumns...)
	if opts.IncludeSignals {
		cols = append(cols, signalColumns...)
	}
	return cols
}

// leadRow maps a ClassifiedLead to a row in leadColumns (+signalColumns) order.
func leadRow(l model.ClassifiedLead, opts Options) []string {
	row := []string{
		l.Company,
		l.Domain,
		l.Market,
		l.Industry,
		l.Title,
		l.Snippet,
		strconv.Itoa(l.Score),
		l.URL,
		l.KeywordsMatched,
		l.PublishedAt,
		l.Topic,
		l.Source,
	}
	if opts.IncludeSignals {
		row = append(row,
			strings.Join(l.AdvisorMentioned, ", "),
			strings.Join(l.BuyerIntentSignal, ", "),
			strings.Join(l.Segments, ", "),
			strconv.FormatBool(l.LikelyPayingESG),
		)
	}
	return row
}

func contactRow(c model.Contact) []string {
	return []string{c.Domain, c.Name, c.Title, c.Email, c.Page}
}

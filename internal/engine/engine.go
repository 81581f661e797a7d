package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/esg-leads-cli/internal/keyword"
	"github.com/sells-group/esg-leads-cli/internal/model"
)

var titleCaser = cases.Title(language.English)

// Engine classifies prospect records into scored leads. It holds no mutable
// state: the library and weights are fixed at construction and every record is
// scored independently, so an Engine is safe for concurrent use.
type Engine struct {
	lib     keyword.Library
	weights Weights
}

// New creates an Engine. Zero-valued weights fall back to the defaults.
func New(lib keyword.Library, w Weights) *Engine {
	if w == (Weights{}) {
		w = DefaultWeights()
	}
	return &Engine{lib: lib, weights: w}
}

// Breakdown runs keyword matching, intent detection, and segment tagging over
// one record and aggregates its score.
func (e *Engine) Breakdown(rec model.ProspectRecord) model.ScoreBreakdown {
	text := rec.SearchableText()

	b := model.ScoreBreakdown{}
	b.Hits = MatchKeywords(e.lib, text)
	b.ComplianceHits = ComplianceSubset(e.lib, b.Hits)

	intent := ClassifyIntent(e.lib, text, e.weights)
	b.Providers = intent.Providers
	b.IntentLabels = intent.Labels

	b.Segments = ClassifySegments(rec.Market, rec.Industry, text)
	b.Score = Score(b, rec, e.weights)
	return b
}

// Classify converts one normalized record into a ClassifiedLead.
func (e *Engine) Classify(rec model.ProspectRecord) model.ClassifiedLead {
	b := e.Breakdown(rec)

	return model.ClassifiedLead{
		Company:           CompanyFromDomain(rec.Domain),
		Domain:            rec.Domain,
		Market:            rec.Market,
		Industry:          rec.Industry,
		Topic:             rec.Topic,
		Title:             rec.Title,
		Snippet:           rec.Snippet,
		URL:               rec.URL,
		Source:            rec.Source,
		PublishedAt:       rec.PublishedAt,
		Score:             b.Score,
		KeywordsMatched:   strings.Join(b.Hits, ", "),
		AdvisorMentioned:  b.Providers,
		BuyerIntentSignal: b.IntentLabels,
		Segments:          b.Segments,
		LikelyPayingESG:   len(b.Providers) > 0 || len(b.IntentLabels) > 0,
	}
}

// ClassifyAll classifies a batch of records, then deduplicates on
// (domain, title) and ranks by descending score. Dedup and ranking are a
// sequential reduction and run only after every record is classified.
func (e *Engine) ClassifyAll(records []model.ProspectRecord) []model.ClassifiedLead {
	leads := make([]model.ClassifiedLead, 0, len(records))
	for _, rec := range records {
		leads = append(leads, e.Classify(rec))
	}
	return Rank(Dedupe(leads))
}

// CompanyFromDomain derives a display company name from the first label of a
// domain: "acme.example.com" -> "Acme". Empty domain yields "".
func CompanyFromDomain(domain string) string {
	if domain == "" {
		return ""
	}
	label := domain
	if idx := strings.IndexByte(domain, '.'); idx > 0 {
		label = domain[:idx]
	}
	return titleCaser.String(label)
}

// Package model defines the core data types shared across the harvester.
package model

// ProspectRecord is one observed mention of an organization in a search or
// news result, after normalization. Every field is present; optional inputs
// default to the empty string.
type ProspectRecord struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Domain      string `json:"domain"` // derived from URL; "" when unparsable
	Snippet     string `json:"snippet"`
	Market      string `json:"market,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Topic       string `json:"topic,omitempty"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at,omitempty"` // ISO-8601 or ""
}

// SearchableText returns the space-joined title + snippet used for all
// keyword, intent, and segment matching.
func (r ProspectRecord) SearchableText() string {
	return r.Title + " " + r.Snippet
}

// ScoreBreakdown holds every classification signal extracted from one record.
type ScoreBreakdown struct {
	Hits           []string `json:"hits"`            // sorted, original-cased matched terms
	ComplianceHits []string `json:"compliance_hits"` // subset of Hits that are compliance terms
	Providers      []string `json:"providers"`       // advisory firms named in the text
	IntentLabels   []string `json:"intent_labels"`   // matched intent rule labels
	Segments       []string `json:"segments"`        // business-segment tags
	Score          int      `json:"score"`
}

// ClassifiedLead is the final output unit: one scored, tagged, deduplicated
// organization mention ready for export. Immutable after creation.
type ClassifiedLead struct {
	Company           string    `json:"company"`
	Domain            string    `json:"domain"`
	Market            string    `json:"market"`
	Industry          string    `json:"industry"`
	Topic             string    `json:"topic"`
	Title             string    `json:"title"`
	Snippet           string    `json:"snippet"`
	URL               string    `json:"url"`
	Source            string    `json:"source"`
	PublishedAt       string    `json:"published_at"`
	Score             int       `json:"score"`
	KeywordsMatched   string    `json:"keywords_matched"` // sorted, comma-joined for display
	AdvisorMentioned  []string  `json:"advisor_mentioned"`
	BuyerIntentSignal []string  `json:"buyer_intent_signals"`
	Segments          []string  `json:"segments"`
	LikelyPayingESG   bool      `json:"likely_paying_for_esg"`
	Contacts          []Contact `json:"contacts,omitempty"`
}

// Contact is a best-effort public contact discovered on a lead's domain.
type Contact struct {
	Domain string `json:"domain"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Email  string `json:"email"`
	Page   string `json:"page"`
}

// HarvestResult is the outcome of one full harvest run.
type HarvestResult struct {
	RunID    string           `json:"run_id"`
	Queries  int              `json:"queries"`
	Raw      int              `json:"raw_records"`
	Leads    []ClassifiedLead `json:"leads"`
	Contacts []Contact        `json:"contacts,omitempty"`
}

package engine

import "github.com/sells-group/esg-leads-cli/internal/model"

// Weights holds the scoring constants. They are empirical tuning values, so
// they live in configuration rather than as literals in the formula.
// All weights must be non-negative: the scoring tests rely on adding a
// compliance hit never decreasing a score.
type Weights struct {
	PerHit           int `yaml:"per_hit" mapstructure:"per_hit"`
	PerComplianceHit int `yaml:"per_compliance_hit" mapstructure:"per_compliance_hit"`
	MarketBonus      int `yaml:"market_bonus" mapstructure:"market_bonus"`
	IndustryBonus    int `yaml:"industry_bonus" mapstructure:"industry_bonus"`
	RecencyBonus     int `yaml:"recency_bonus" mapstructure:"recency_bonus"`
	ProviderBonus    int `yaml:"provider_bonus" mapstructure:"provider_bonus"`
	PerIntentLabel   int `yaml:"per_intent_label" mapstructure:"per_intent_label"`
	SegmentBonus     int `yaml:"segment_bonus" mapstructure:"segment_bonus"`
}

// DefaultWeights returns the standard scoring constants.
func DefaultWeights() Weights {
	return Weights{
		PerHit:           2,
		PerComplianceHit: 3,
		MarketBonus:      2,
		IndustryBonus:    2,
		RecencyBonus:     1,
		ProviderBonus:    6,
		PerIntentLabel:   3,
		SegmentBonus:     4,
	}
}

// Score combines the classification signals into one integer. Deterministic,
// additive, uncapped: compliance terms and named providers carry higher per-hit
// weight than generic topics, while market/industry/date presence are
// completeness bonuses rather than relevance signals.
func Score(b model.ScoreBreakdown, rec model.ProspectRecord, w Weights) int {
	score := w.PerHit * len(b.Hits)
	score += w.PerComplianceHit * len(b.ComplianceHits)
	if rec.Market != "" {
		score += w.MarketBonus
	}
	if rec.Industry != "" {
		score += w.IndustryBonus
	}
	if rec.PublishedAt != "" {
		score += w.RecencyBonus
	}
	if len(b.Providers) > 0 {
		score += w.ProviderBonus
	}
	score += w.PerIntentLabel * len(b.IntentLabels)
	if len(b.Segments) > 0 {
		score += w.SegmentBonus
	}
	return score
}

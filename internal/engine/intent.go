package engine

import (
	"strings"

	"github.com/sells-group/esg-leads-cli/internal/keyword"
)

// IntentResult describes the buyer-intent evidence found in one record's text.
type IntentResult struct {
	Providers    []string // named advisory/assurance firms present in the text
	Labels       []string // labels of intent rules whose pattern matched
	LikelyPaying bool     // true when any provider or intent label was found
	Bump         int      // score contribution, see Weights
}

// ClassifyIntent collects every provider name appearing as a case-insensitive
// substring of text, and every intent rule whose pattern matches the
// lowercased text. Rule order does not affect the result set; results keep
// library order for deterministic output.
func ClassifyIntent(lib keyword.Library, text string, w Weights) IntentResult {
	lower := strings.ToLower(text)

	var res IntentResult
	for _, name := range lib.ProviderNames {
		if name == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(name)) {
			res.Providers = append(res.Providers, name)
		}
	}
	for _, rule := range lib.IntentRules {
		if rule.Pattern.MatchString(lower) {
			res.Labels = append(res.Labels, rule.Label)
		}
	}

	res.LikelyPaying = len(res.Providers) > 0 || len(res.Labels) > 0
	if len(res.Providers) > 0 {
		res.Bump += w.ProviderBonus
	}
	res.Bump += w.PerIntentLabel * len(res.Labels)
	return res
}

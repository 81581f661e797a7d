package engine

import (
	"sort"
	"strings"

	"github.com/sells-group/esg-leads-cli/internal/keyword"
)

// MatchKeywords scans text for every term in the library's topic, compliance,
// and role sets. Matching is case-insensitive substring containment — "ESG"
// matches inside "ESGReport" — which is looser than word-boundary matching
// but is the pinned behavior. Hits keep the library's original casing and are
// returned deduplicated in lexicographic order.
//
// O(terms x len(text)); term lists are tens of entries and batches are bounded
// by provider page limits, so this is not worth optimizing.
func MatchKeywords(lib keyword.Library, text string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]struct{})
	var hits []string
	for _, term := range lib.AllTerms() {
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			seen[term] = struct{}{}
			hits = append(hits, term)
		}
	}

	sort.Strings(hits)
	return hits
}

// ComplianceSubset filters hits down to the terms the library weights as
// compliance/regulatory signals.
func ComplianceSubset(lib keyword.Library, hits []string) []string {
	var out []string
	for _, h := range hits {
		if lib.IsComplianceTerm(h) {
			out = append(out, h)
		}
	}
	return out
}

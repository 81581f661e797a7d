package engine

import (
	"sort"

	"github.com/sells-group/esg-leads-cli/internal/model"
)

// Dedupe removes leads sharing an identical (domain, title) pair, keeping the
// first occurrence. Stable: the original acquisition order is preserved among
// survivors, which fixes tie order after ranking.
func Dedupe(leads []model.ClassifiedLead) []model.ClassifiedLead {
	type key struct{ domain, title string }
	seen := make(map[key]struct{}, len(leads))

	out := leads[:0:0]
	for _, l := range leads {
		k := key{l.Domain, l.Title}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, l)
	}
	return out
}

// Rank sorts leads by descending score. The sort is stable: equal scores keep
// their relative post-dedup order, so callers must not assume ties are ordered
// alphabetically or otherwise.
func Rank(leads []model.ClassifiedLead) []model.ClassifiedLead {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].Score > leads[j].Score
	})
	return leads
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/esg-leads-cli/internal/keyword"
)

func TestMatchKeywords_CaseInsensitive(t *testing.T) {
	lib := keyword.Default()

	hits := MatchKeywords(lib, "Our 2024 ESG report discusses Scope 3 emissions")

	assert.Contains(t, hits, "Scope 3")
	assert.NotContains(t, hits, "ESG strategy")
}

func TestMatchKeywords_KeepsOriginalCasing(t *testing.T) {
	lib := keyword.Library{Topics: []string{"CSRD"}}

	hits := MatchKeywords(lib, "the csrd deadline is approaching")

	assert.Equal(t, []string{"CSRD"}, hits)
}

func TestMatchKeywords_LooseSubstringMatch(t *testing.T) {
	// Substring containment, not word boundaries: "ESG" matches inside
	// "ESGReport". Pinned deliberately; see the library doc comment.
	lib := keyword.Library{Topics: []string{"ESG"}}

	hits := MatchKeywords(lib, "Download our ESGReport2024 today")

	assert.Equal(t, []string{"ESG"}, hits)
}

func TestMatchKeywords_SortedAndDeduplicated(t *testing.T) {
	// "assurance" appears in both Topics and ComplianceTerms in the default
	// library; one hit, sorted order.
	lib := keyword.Library{
		Topics:          []string{"assurance", "BRSR"},
		ComplianceTerms: []string{"assurance"},
	}

	hits := MatchKeywords(lib, "BRSR assurance update")

	assert.Equal(t, []string{"BRSR", "assurance"}, hits)
}

func TestMatchKeywords_NoHits(t *testing.T) {
	lib := keyword.Default()
	assert.Empty(t, MatchKeywords(lib, "quarterly revenue guidance raised"))
}

func TestMatchKeywords_SkipsEmptyTerms(t *testing.T) {
	lib := keyword.Library{Topics: []string{"", "CSRD"}}

	hits := MatchKeywords(lib, "anything at all")

	assert.NotContains(t, hits, "")
}

func TestComplianceSubset(t *testing.T) {
	lib := keyword.Default()

	hits := []string{"CSRD", "ESG strategy", "Scope 3"}
	comp := ComplianceSubset(lib, hits)

	assert.Equal(t, []string{"CSRD", "Scope 3"}, comp)
}

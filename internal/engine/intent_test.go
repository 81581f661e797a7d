package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/esg-leads-cli/internal/keyword"
)

func TestClassifyIntent_AssuranceScenario(t *testing.T) {
	lib := keyword.Default()
	text := "KPMG provided independent limited assurance over our Scope 1 and Scope 2 data"

	res := ClassifyIntent(lib, text, DefaultWeights())

	assert.Equal(t, []string{"KPMG"}, res.Providers)
	assert.Contains(t, res.Labels, "independent assurance")
	assert.True(t, res.LikelyPaying)
	// 6 for a named provider + 3 per matched label.
	assert.Equal(t, 6+3*len(res.Labels), res.Bump)
	assert.Equal(t, 9, res.Bump)
}

func TestClassifyIntent_ProviderCaseInsensitive(t *testing.T) {
	lib := keyword.Default()

	res := ClassifyIntent(lib, "audited by deloitte and pwc", DefaultWeights())

	assert.ElementsMatch(t, []string{"Deloitte", "PwC"}, res.Providers)
	assert.True(t, res.LikelyPaying)
	assert.Equal(t, 6, res.Bump) // provider bonus granted once, not per firm
}

func TestClassifyIntent_ProviderSubstringLooseness(t *testing.T) {
	// "TUV" matches inside unrelated words; pinned loose behavior.
	lib := keyword.Default()

	res := ClassifyIntent(lib, "an untuvian deadline", DefaultWeights())

	assert.Equal(t, []string{"TUV"}, res.Providers)
}

func TestClassifyIntent_LabelsWithoutProvider(t *testing.T) {
	lib := keyword.Default()

	res := ClassifyIntent(lib, "the report was assured by an accredited third party", DefaultWeights())

	assert.Empty(t, res.Providers)
	assert.Contains(t, res.Labels, "third-party verification")
	assert.True(t, res.LikelyPaying)
	assert.Equal(t, 3*len(res.Labels), res.Bump)
}

func TestClassifyIntent_IFRSRule(t *testing.T) {
	lib := keyword.Default()

	res := ClassifyIntent(lib, "adopting IFRS S2 climate disclosures next year", DefaultWeights())

	assert.Contains(t, res.Labels, "ifrs adoption")
}

func TestClassifyIntent_AppointmentAndEngagement(t *testing.T) {
	lib := keyword.Default()

	res := ClassifyIntent(lib, "the board appointed an external assurance provider and retained a climate advisor", DefaultWeights())

	assert.Contains(t, res.Labels, "provider appointment")
	assert.Contains(t, res.Labels, "advisor engagement")
}

func TestClassifyIntent_NoSignals(t *testing.T) {
	lib := keyword.Default()

	res := ClassifyIntent(lib, "company opens new office in toronto", DefaultWeights())

	assert.Empty(t, res.Providers)
	assert.Empty(t, res.Labels)
	assert.False(t, res.LikelyPaying)
	assert.Zero(t, res.Bump)
}

package keyword

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasAllSections(t *testing.T) {
	lib := Default()

	assert.NotEmpty(t, lib.Topics)
	assert.NotEmpty(t, lib.ComplianceTerms)
	assert.NotEmpty(t, lib.RoleTerms)
	assert.NotEmpty(t, lib.ProviderNames)
	assert.NotEmpty(t, lib.IntentRules)
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()

	a.Topics[0] = "mutated"

	assert.NotEqual(t, "mutated", b.Topics[0])
}

func TestAllTerms_OrderAndLength(t *testing.T) {
	lib := Library{
		Topics:          []string{"t1"},
		ComplianceTerms: []string{"c1", "c2"},
		RoleTerms:       []string{"r1"},
	}

	assert.Equal(t, []string{"t1", "c1", "c2", "r1"}, lib.AllTerms())
}

func TestIsComplianceTerm(t *testing.T) {
	lib := Default()

	assert.True(t, lib.IsComplianceTerm("CSRD"))
	assert.False(t, lib.IsComplianceTerm("csrd")) // exact, original casing
	assert.False(t, lib.IsComplianceTerm("ESG strategy"))
}

func TestLoadFile_OverridesProvidedSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.yaml")
	content := `
topics:
  - "net zero"
provider_names:
  - "Carbon Trust"
intent_rules:
  - label: "verification"
    pattern: 'verified\s+by'
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lib, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"net zero"}, lib.Topics)
	assert.Equal(t, []string{"Carbon Trust"}, lib.ProviderNames)
	require.Len(t, lib.IntentRules, 1)
	assert.Equal(t, "verification", lib.IntentRules[0].Label)
	assert.True(t, lib.IntentRules[0].Pattern.MatchString("verified by dnv"))

	// Omitted sections keep the defaults.
	assert.Equal(t, Default().ComplianceTerms, lib.ComplianceTerms)
	assert.Equal(t, Default().RoleTerms, lib.RoleTerms)
}

func TestLoadFile_BadPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.yaml")
	content := `
intent_rules:
  - label: "broken"
    pattern: '(['
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

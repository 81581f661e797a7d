// Package keyword holds the weighted keyword sets and intent rules that drive
// lead scoring. A Library is an immutable value constructed once per run.
package keyword

import (
	"os"
	"regexp"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// IntentRule pairs a display label with a compiled pattern tested against the
// lowercased searchable text of a record.
type IntentRule struct {
	Label   string
	Pattern *regexp.Regexp
}

// Library is the full keyword configuration consumed by the scoring engine.
// Term comparisons are case-insensitive substring containment, not word-boundary
// matching ("ESG" matches inside "ESGReport"). That looseness is intentional and
// pinned by the engine tests.
type Library struct {
	Topics          []string
	ComplianceTerms []string
	RoleTerms       []string
	ProviderNames   []string
	IntentRules     []IntentRule
}

// AllTerms returns topics, compliance terms, and role terms in match order.
func (l Library) AllTerms() []string {
	terms := make([]string, 0, len(l.Topics)+len(l.ComplianceTerms)+len(l.RoleTerms))
	terms = append(terms, l.Topics...)
	terms = append(terms, l.ComplianceTerms...)
	terms = append(terms, l.RoleTerms...)
	return terms
}

// IsComplianceTerm reports whether term is one of the compliance terms.
// Comparison is exact: hits keep their original casing, so membership here
// is checked against the configured spelling.
func (l Library) IsComplianceTerm(term string) bool {
	for _, c := range l.ComplianceTerms {
		if c == term {
			return true
		}
	}
	return false
}

var defaultTopics = []string{
	"BRSR", "CSRD", "Scope 3", "carbon credits", "sustainability report",
	"ESG strategy", "assurance",
}

var defaultComplianceTerms = []string{
	"BRSR", "SEBI", "CSRD", "SEC climate", "IFRS S1", "IFRS S2",
	"Scope 1", "Scope 2", "Scope 3", "TCFD", "CDP", "ESG rating",
	"assurance", "materiality", "double materiality", "carbon credits",
	"offsets", "RECs", "renewable energy certificate", "energy attribute certificates",
}

var defaultRoleTerms = []string{
	"Head of Sustainability", "Chief Sustainability Officer", "CSO",
	"ESG Lead", "ESG Manager", "Sustainability Manager", "ESG Director",
}

var defaultProviderNames = []string{
	"KPMG", "Deloitte", "PwC", "EY", "ERM", "DNV", "SGS", "Bureau Veritas",
	"TUV", "Intertek", "LRQA", "Sustainalytics", "MSCI", "ISS ESG",
	"South Pole", "Anthesis",
}

// defaultIntentRules are the hand-authored buyer-intent patterns. Patterns are
// matched against already-lowercased text, so they are written in lowercase.
var defaultIntentRules = []struct {
	label   string
	pattern string
}{
	{"independent assurance", `independent\s+(limited\s+|reasonable\s+)?assurance`},
	{"assurance report", `assurance\s+(statement|report)`},
	{"third-party verification", `(verified|assured)\s+by`},
	{"provider appointment", `appointed\s+.{0,60}?(provider|advisor|adviser)`},
	{"advisor engagement", `(retained|engaged)\s+.{0,60}?(advisor|adviser|consultant)`},
	{"ifrs adoption", `ifrs\s+s[12]`},
}

// Default returns the built-in library preset.
func Default() Library {
	rules := make([]IntentRule, 0, len(defaultIntentRules))
	for _, r := range defaultIntentRules {
		rules = append(rules, IntentRule{Label: r.label, Pattern: regexp.MustCompile(r.pattern)})
	}
	return Library{
		Topics:          append([]string(nil), defaultTopics...),
		ComplianceTerms: append([]string(nil), defaultComplianceTerms...),
		RoleTerms:       append([]string(nil), defaultRoleTerms...),
		ProviderNames:   append([]string(nil), defaultProviderNames...),
		IntentRules:     rules,
	}
}

// libraryFile is the YAML override shape. Omitted sections fall back to the
// built-in defaults.
type libraryFile struct {
	Topics          []string `yaml:"topics"`
	ComplianceTerms []string `yaml:"compliance_terms"`
	RoleTerms       []string `yaml:"role_terms"`
	ProviderNames   []string `yaml:"provider_names"`
	IntentRules     []struct {
		Label   string `yaml:"label"`
		Pattern string `yaml:"pattern"`
	} `yaml:"intent_rules"`
}

// LoadFile reads a YAML keyword library, overlaying it on the defaults.
func LoadFile(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Library{}, eris.Wrap(err, "keyword: read library file")
	}

	var f libraryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Library{}, eris.Wrap(err, "keyword: parse library file")
	}

	lib := Default()
	if len(f.Topics) > 0 {
		lib.Topics = f.Topics
	}
	if len(f.ComplianceTerms) > 0 {
		lib.ComplianceTerms = f.ComplianceTerms
	}
	if len(f.RoleTerms) > 0 {
		lib.RoleTerms = f.RoleTerms
	}
	if len(f.ProviderNames) > 0 {
		lib.ProviderNames = f.ProviderNames
	}
	if len(f.IntentRules) > 0 {
		rules := make([]IntentRule, 0, len(f.IntentRules))
		for _, r := range f.IntentRules {
			re, compileErr := regexp.Compile(r.Pattern)
			if compileErr != nil {
				return Library{}, eris.Wrapf(compileErr, "keyword: compile intent rule %q", r.Label)
			}
			rules = append(rules, IntentRule{Label: r.Label, Pattern: re})
		}
		lib.IntentRules = rules
	}

	return lib, nil
}

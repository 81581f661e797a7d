package engine

import "strings"

// Segment tag names. Tags are emitted in checklist order; checks are
// independent and non-exclusive, so one record can carry several.
const (
	SegmentListedRegulated  = "listed_regulated"
	SegmentHighEmitters     = "high_emitters"
	SegmentFinancial        = "financial_institutions"
	SegmentREIT             = "reit_infrastructure"
	SegmentExporterCBAM     = "exporter_cbam"
	SegmentPEPortco         = "pe_portco"
	SegmentSupplyChain      = "supply_chain"
)

// regulatedJurisdictions are market keywords indicating a listed/regulated
// disclosure regime. Checked case-sensitively against the market label as
// provided (labels are already canonicalized upstream).
var regulatedJurisdictions = []string{
	"EU", "European Union", "UK", "India", "Singapore", "UAE", "Japan",
	"Switzerland", "Australia",
}

// highEmitterSectors are emissions-intensive industries.
var highEmitterSectors = []string{
	"steel", "cement", "energy", "oil", "gas", "chemicals", "mining",
	"aviation", "shipping", "power", "aluminium", "aluminum", "manufacturing",
}

// financialSectors tag banks, insurers, and asset managers.
var financialSectors = []string{
	"bank", "banking", "insurance", "asset management", "financial services",
	"fintech", "NBFC",
}

// reitSectors tag real-estate and infrastructure operators.
var reitSectors = []string{
	"real estate", "REIT", "infrastructure", "construction",
}

// cbamSectors is the fixed carbon-border-adjustment-exposed sector list.
// Membership is exact, unlike the substring checks above.
var cbamSectors = []string{
	"cement", "iron", "steel", "aluminium", "aluminum", "fertilisers",
	"fertilizers", "electricity", "hydrogen",
}

// supplyChainTerms indicate procurement-driven ESG pressure in free text.
var supplyChainTerms = []string{"supplier", "oem", "tender", "rfp", "procurement"}

// ClassifySegments maps market, industry, and free text to zero or more
// segment tags. Market and industry checks are case-sensitive on the labels
// as provided; free-text checks are case-insensitive.
func ClassifySegments(market, industry, text string) []string {
	lower := strings.ToLower(text)

	var segments []string
	if containsAny(market, regulatedJurisdictions) {
		segments = append(segments, SegmentListedRegulated)
	}
	if containsAny(industry, highEmitterSectors) {
		segments = append(segments, SegmentHighEmitters)
	}
	if containsAny(industry, financialSectors) {
		segments = append(segments, SegmentFinancial)
	}
	if containsAny(industry, reitSectors) {
		segments = append(segments, SegmentREIT)
	}
	if inList(industry, cbamSectors) {
		segments = append(segments, SegmentExporterCBAM)
	}
	if strings.Contains(lower, "portfolio company") || strings.Contains(lower, "private equity") {
		segments = append(segments, SegmentPEPortco)
	}
	if containsAny(lower, supplyChainTerms) {
		segments = append(segments, SegmentSupplyChain)
	}
	return segments
}

func containsAny(s string, terms []string) bool {
	if s == "" {
		return false
	}
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func inList(s string, list []string) bool {
	for _, item := range list {
		if s == item {
			return true
		}
	}
	return false
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDomain_StripsWWWAndLowercases(t *testing.T) {
	assert.Equal(t, "example.com", ParseDomain("https://www.Example.com/path"))
}

func TestParseDomain_NoWWW(t *testing.T) {
	assert.Equal(t, "acme.co.uk", ParseDomain("https://acme.co.uk/esg/report"))
}

func TestParseDomain_NotAURL(t *testing.T) {
	assert.Equal(t, "", ParseDomain("not a url"))
}

func TestParseDomain_Empty(t *testing.T) {
	assert.Equal(t, "", ParseDomain(""))
}

func TestParseDomain_SchemeOnly(t *testing.T) {
	assert.Equal(t, "", ParseDomain("https://"))
}

func TestNormalize_AllFieldsPresent(t *testing.T) {
	rec := Normalize(map[string]string{
		"title":        "Acme publishes CSRD report",
		"url":          "https://www.acme.com/news",
		"snippet":      "Acme announced its first CSRD-aligned disclosure.",
		"source":       "newsapi",
		"published_at": "2025-11-03T08:00:00Z",
		"market":       "EU",
		"industry":     "manufacturing",
		"topic":        "CSRD",
	})

	assert.Equal(t, "Acme publishes CSRD report", rec.Title)
	assert.Equal(t, "acme.com", rec.Domain)
	assert.Equal(t, "newsapi", rec.Source)
	assert.Equal(t, "2025-11-03T08:00:00Z", rec.PublishedAt)
	assert.Equal(t, "EU", rec.Market)
}

func TestNormalize_MissingKeysDefaultEmpty(t *testing.T) {
	rec := Normalize(map[string]string{"title": "headline only"})

	assert.Equal(t, "headline only", rec.Title)
	assert.Equal(t, "", rec.URL)
	assert.Equal(t, "", rec.Domain)
	assert.Equal(t, "", rec.Snippet)
	assert.Equal(t, "", rec.Market)
	assert.Equal(t, "", rec.PublishedAt)
}

func TestNormalize_NilMap(t *testing.T) {
	rec := Normalize(nil)
	assert.Equal(t, "", rec.Title)
	assert.Equal(t, "", rec.Domain)
}

func TestNormalize_UnparsableURLYieldsEmptyDomain(t *testing.T) {
	rec := Normalize(map[string]string{"url": "::::not-a-url"})
	assert.Equal(t, "", rec.Domain)
}

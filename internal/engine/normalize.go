// Package engine implements the lead scoring and classification core: record
// normalization, keyword matching, buyer-intent and segment classification,
// score aggregation, and deduplication/ranking. The engine performs no I/O;
// it is a pure batch transform over already-fetched records.
package engine

import (
	"net/url"
	"strings"

	"github.com/sells-group/esg-leads-cli/internal/model"
)

// Normalize converts an arbitrary key-value record into a canonical
// ProspectRecord. It is the single point of field defaulting: absent keys
// become empty strings, and an unparsable URL yields Domain == "".
// Normalize never fails.
func Normalize(raw map[string]string) model.ProspectRecord {
	get := func(key string) string { return raw[key] }

	rec := model.ProspectRecord{
		Title:       get("title"),
		URL:         get("url"),
		Snippet:     get("snippet"),
		Source:      get("source"),
		PublishedAt: get("published_at"),
		Market:      get("market"),
		Industry:    get("industry"),
		Topic:       get("topic"),
	}
	rec.Domain = ParseDomain(rec.URL)
	return rec
}

// ParseDomain extracts the host from a URL, lowercased, with any leading
// "www." stripped. Returns "" for empty or unparsable input.
func ParseDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

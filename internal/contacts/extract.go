// Package contacts discovers best-effort public contacts by scanning a
// lead domain's homepage for sustainability and governance pages.
package contacts

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/esg-leads-cli/internal/model"
)

// Path segments that mark a homepage link as worth crawling.
var relevantSegments = []string{
	"sustainability", "esg", "about", "leadership", "team",
	"contact", "governance", "board", "investor",
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	// Capitalized name followed within 60 chars by a sustainability role.
	nameTitleRe = regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+){0,3}).{0,60}(Sustainability|ESG|CSR|Environment|Climate)\s?(Head|Lead|Manager|Director|Officer)?`)
)

// Extractor crawls candidate pages per domain with a fixed delay
// between page fetches.
type Extractor struct {
	http       *http.Client
	limiter    *rate.Limiter
	scheme     string
	maxPages   int
	maxDomains int
}

// Option configures the Extractor.
type Option func(*Extractor)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(e *Extractor) {
		e.http = hc
	}
}

// WithScheme overrides the https scheme used to reach domains (for testing).
func WithScheme(scheme string) Option {
	return func(e *Extractor) {
		e.scheme = scheme
	}
}

// New creates an Extractor. delay is the pause between page fetches
// within a domain; maxPages caps pages per domain and maxDomains caps
// domains per batch.
func New(maxPages, maxDomains int, delay time.Duration, opts ...Option) *Extractor {
	if maxPages < 1 {
		maxPages = 1
	}
	if maxDomains < 1 {
		maxDomains = 1
	}
	e := &Extractor{
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
		limiter:    rate.NewLimiter(rate.Every(delay), 1),
		scheme:     "https",
		maxPages:   maxPages,
		maxDomains: maxDomains,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// ExtractBatch walks the first maxDomains unique domains in order. Per-domain
// failures are logged and skipped.
func (e *Extractor) ExtractBatch(ctx context.Context, domains []string) []model.Contact {
	var contacts []model.Contact
	seen := make(map[string]bool)
	visited := 0
	for _, d := range domains {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		if visited >= e.maxDomains {
			break
		}
		visited++

		found, err := e.ExtractDomain(ctx, d)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			zap.L().Warn("contacts: domain extraction failed",
				zap.String("domain", d), zap.Error(err))
			continue
		}
		contacts = append(contacts, found...)
	}
	return contacts
}

// ExtractDomain fetches the domain homepage, selects up to maxPages
// relevant pages, and scrapes emails and named sustainability roles.
func (e *Extractor) ExtractDomain(ctx context.Context, domain string) ([]model.Contact, error) {
	homepage := e.scheme + "://" + domain

	body, err := e.get(ctx, homepage)
	if err != nil {
		return nil, eris.Wrapf(err, "contacts: fetch homepage %s", domain)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "contacts: parse homepage")
	}

	pages := e.candidatePages(doc, domain, homepage)

	var contacts []model.Contact
	dedup := make(map[model.Contact]bool)
	for _, page := range pages {
		if err := e.limiter.Wait(ctx); err != nil {
			return contacts, err
		}
		content, err := e.get(ctx, page)
		if err != nil {
			if ctx.Err() != nil {
				return contacts, ctx.Err()
			}
			zap.L().Warn("contacts: fetch page failed",
				zap.String("page", page), zap.Error(err))
			continue
		}
		for _, c := range scrapePage(domain, page, content) {
			if !dedup[c] {
				dedup[c] = true
				contacts = append(contacts, c)
			}
		}
	}
	return contacts, nil
}

// candidatePages collects homepage links pointing back into the domain
// whose path mentions a relevant segment, first come first kept.
func (e *Extractor) candidatePages(doc *goquery.Document, domain, homepage string) []string {
	var pages []string
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if len(pages) >= e.maxPages {
			return
		}
		href, _ := sel.Attr("href")
		if strings.HasPrefix(href, "/") {
			href = homepage + href
		}
		if !strings.Contains(href, domain) || seen[href] {
			return
		}
		lower := strings.ToLower(href)
		for _, seg := range relevantSegments {
			if strings.Contains(lower, seg) {
				seen[href] = true
				pages = append(pages, href)
				return
			}
		}
	})
	return pages
}

// scrapePage pulls every email plus every capitalized-name-near-role match
// out of the raw page content.
func scrapePage(domain, page, content string) []model.Contact {
	var contacts []model.Contact

	emailSeen := make(map[string]bool)
	for _, email := range emailRe.FindAllString(content, -1) {
		if emailSeen[email] {
			continue
		}
		emailSeen[email] = true
		contacts = append(contacts, model.Contact{Domain: domain, Email: email, Page: page})
	}

	for _, m := range nameTitleRe.FindAllStringSubmatch(content, -1) {
		title := m[2]
		if m[3] != "" {
			title += " " + m[3]
		}
		contacts = append(contacts, model.Contact{
			Domain: domain,
			Name:   strings.TrimSpace(m[1]),
			Title:  title,
			Page:   page,
		})
	}
	return contacts
}

func (e *Extractor) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", eris.Wrap(err, "contacts: create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; esg-leads-cli)")

	resp, err := e.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", eris.Errorf("contacts: status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", eris.Wrap(err, "contacts: read body")
	}
	return string(body), nil
}

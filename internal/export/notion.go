package export

import (
	"context"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/esg-leads-cli/internal/model"
)

// NotionClient is the slice of the Notion API used for lead pushes.
type NotionClient interface {
	CreatePage(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error)
}

// notionClient wraps a *notionapi.Client with Notion's 3 req/s rate limit.
type notionClient struct {
	inner   *notionapi.Client
	limiter *rate.Limiter
}

// NewNotionClient creates a rate-limited Notion client from an integration token.
func NewNotionClient(token string) NotionClient {
	return &notionClient{
		inner:   notionapi.NewClient(notionapi.Token(token)),
		limiter: rate.NewLimiter(3, 1),
	}
}

func (c *notionClient) CreatePage(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "notion: rate limit")
	}
	page, err := c.inner.Page.Create(ctx, req)
	if err != nil {
		return nil, eris.Wrap(err, "notion: create page")
	}
	return page, nil
}

// PushLeads creates one page per lead in the given Notion database.
// Individual page failures are logged and skipped; the push continues.
// Returns the number of pages created.
func PushLeads(ctx context.Context, c NotionClient, dbID string, leads []model.ClassifiedLead) (int, error) {
	if dbID == "" {
		return 0, eris.New("notion: lead database id is required")
	}

	created := 0
	for _, lead := range leads {
		if ctx.Err() != nil {
			return created, eris.Wrap(ctx.Err(), "notion: push cancelled")
		}

		req := leadPageRequest(dbID, lead)
		if _, err := c.CreatePage(ctx, req); err != nil {
			zap.L().Warn("notion: skipping lead",
				zap.String("domain", lead.Domain),
				zap.Error(err),
			)
			continue
		}
		created++
	}

	zap.L().Info("notion: push complete",
		zap.Int("created", created),
		zap.Int("total", len(leads)),
	)
	return created, nil
}

// leadPageRequest maps a ClassifiedLead onto Notion database properties.
func leadPageRequest(dbID string, lead model.ClassifiedLead) *notionapi.PageCreateRequest {
	name := lead.Company
	if name == "" {
		name = lead.Title
	}

	props := notionapi.Properties{
		"Name": notionapi.TitleProperty{
			Type:  notionapi.PropertyTypeTitle,
			Title: []notionapi.RichText{richText(name)},
		},
		"Domain":   richTextProp(lead.Domain),
		"Market":   richTextProp(lead.Market),
		"Keywords": richTextProp(lead.KeywordsMatched),
		"Segments": richTextProp(strings.Join(lead.Segments, ", ")),
		"Score": notionapi.NumberProperty{
			Type:   notionapi.PropertyTypeNumber,
			Number: float64(lead.Score),
		},
		"URL": notionapi.URLProperty{
			Type: notionapi.PropertyTypeURL,
			URL:  lead.URL,
		},
		"Likely Paying": notionapi.CheckboxProperty{
			Type:     notionapi.PropertyTypeCheckbox,
			Checkbox: lead.LikelyPayingESG,
		},
	}

	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(dbID),
		},
		Properties: props,
	}
}

func richText(s string) notionapi.RichText {
	return notionapi.RichText{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: s},
	}
}

func richTextProp(s string) notionapi.RichTextProperty {
	return notionapi.RichTextProperty{
		Type:     notionapi.PropertyTypeRichText,
		RichText: []notionapi.RichText{richText(s)},
	}
}

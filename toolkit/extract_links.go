package toolkit

import (
	"context"
	"fmt"
	"strings"
	"time"

	thordatamcp "github.com/thordata/thordata-mcp"
	"github.com/thordata/thordata-mcp/extract"
	"github.com/thordata/thordata-mcp/schema"
	"github.com/thordata/thordata-mcp/slogger"
	"github.com/thordata/thordata-mcp/web"
)

var _ thordatamcp.TypedTool[*ExtractLinksInput] = &ExtractLinksTool{}

// ExtractLinksToolOptions configures the behavior of [ExtractLinksTool].
type ExtractLinksToolOptions struct {
	// Scraper is the underlying page retrieval implementation. Required.
	Scraper web.Scraper

	// Logger receives request and outcome logs. Defaults to a no-op.
	Logger slogger.Logger

	// Timeout bounds calls whose context has no deadline.
	// Defaults to DefaultToolTimeout.
	Timeout time.Duration

	// DefaultMaxLinks is used when a call omits max_links. The zero
	// value applies DefaultExtractMaxLinks.
	DefaultMaxLinks int
}

// ExtractLinksInput represents the input parameters for the
// extract_links tool. Pointer fields distinguish "absent" from an
// explicit zero value.
type ExtractLinksInput struct {
	// URL of the page to extract links from. Required.
	URL string `json:"url"`

	// JSRender controls JavaScript rendering. Defaults to false.
	JSRender *bool `json:"js_render,omitempty"`

	// Country optionally selects the proxy exit country.
	Country string `json:"country,omitempty"`

	// MaxLinks caps the number of returned links. Defaults to 200;
	// zero or negative returns all links.
	MaxLinks *int `json:"max_links,omitempty"`

	// Unique deduplicates links by resolved URL. Defaults to true.
	Unique *bool `json:"unique,omitempty"`
}

// ExtractLinksTool scrapes a web page and returns its hyperlinks as
// structured JSON. Every href is resolved against the page URL, so
// relative links come back absolute and ready to follow.
type ExtractLinksTool struct {
	scraper         web.Scraper
	logger          slogger.Logger
	timeout         time.Duration
	defaultMaxLinks int
}

// NewExtractLinksTool creates a new ExtractLinksTool with the given options.
func NewExtractLinksTool(options ExtractLinksToolOptions) *thordatamcp.TypedToolAdapter[*ExtractLinksInput] {
	return thordatamcp.ToolAdapter(newExtractLinksTool(options))
}

func newExtractLinksTool(options ExtractLinksToolOptions) *ExtractLinksTool {
	if options.Logger == nil {
		options.Logger = slogger.DefaultLogger
	}
	if options.Timeout <= 0 {
		options.Timeout = DefaultToolTimeout
	}
	if options.DefaultMaxLinks <= 0 {
		options.DefaultMaxLinks = DefaultExtractMaxLinks
	}
	return &ExtractLinksTool{
		scraper:         options.Scraper,
		logger:          options.Logger,
		timeout:         options.Timeout,
		defaultMaxLinks: options.DefaultMaxLinks,
	}
}

// Name returns "extract_links" as the tool identifier.
func (t *ExtractLinksTool) Name() string {
	return "extract_links"
}

// Description returns usage instructions for the caller.
func (t *ExtractLinksTool) Description() string {
	return "Use this tool to extract the hyperlinks from a web page. Returns structured JSON with the text and absolute URL of each link."
}

// Schema returns the JSON schema describing the tool's input parameters.
func (t *ExtractLinksTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"url"},
		Properties: map[string]*schema.Property{
			"url": {
				Type:        "string",
				Description: "The URL of the page to extract links from, e.g. 'https://www.example.com'",
			},
			"js_render": {
				Type:        "boolean",
				Description: "Whether to render JavaScript before extracting links",
				Default:     false,
			},
			"country": {
				Type:        "string",
				Description: "Optional proxy exit country (e.g. 'us', 'gb')",
			},
			"max_links": {
				Type:        "number",
				Description: "Maximum number of links to return; 0 returns all",
				Default:     DefaultExtractMaxLinks,
			},
			"unique": {
				Type:        "boolean",
				Description: "Deduplicate links by resolved URL",
				Default:     true,
			},
		},
	}
}

// linksFailurePayload reports a classified scrape failure.
type linksFailurePayload struct {
	Source    string `json:"source"`
	ErrorType string `json:"error_type"`
	Error     string `json:"error"`
}

// linksEmptyPayload reports a page too small to carry usable links.
type linksEmptyPayload struct {
	Source  string         `json:"source"`
	Count   int            `json:"count"`
	Links   []extract.Link `json:"links"`
	Message string         `json:"message"`
}

type linksSuccessPayload struct {
	Source string         `json:"source"`
	Count  int            `json:"count"`
	Links  []extract.Link `json:"links"`
}

// Call scrapes the page and returns its links as JSON.
func (t *ExtractLinksTool) Call(ctx context.Context, input *ExtractLinksInput) (*thordatamcp.ToolResult, error) {
	pageURL := strings.TrimSpace(input.URL)
	if pageURL == "" {
		return NewToolResultError("Error: URL must not be empty."), nil
	}
	jsRender := false
	if input.JSRender != nil {
		jsRender = *input.JSRender
	}
	maxLinks := t.defaultMaxLinks
	if input.MaxLinks != nil {
		maxLinks = *input.MaxLinks
	}
	unique := true
	if input.Unique != nil {
		unique = *input.Unique
	}

	ctx, cancel := ensureDeadline(ctx, t.timeout)
	defer cancel()

	t.logger.Info("extract_links request",
		"url", pageURL,
		"js_render", jsRender,
		"country", input.Country,
		"max_links", maxLinks,
		"unique", unique,
	)

	markup, err := t.scraper.Scrape(ctx, &web.ScrapeInput{
		URL:      pageURL,
		JSRender: jsRender,
		Country:  input.Country,
		Format:   web.DefaultScrapeFormat,
	})
	if err != nil {
		t.logger.Warn("extract_links failed",
			"url", pageURL,
			"error_type", string(web.Classify(err)),
			"error", err.Error(),
		)
		payload, merr := marshalPayload(linksFailurePayload{
			Source:    pageURL,
			ErrorType: string(web.Classify(err)),
			Error:     err.Error(),
		})
		if merr != nil {
			return nil, merr
		}
		return NewToolResultError(payload), nil
	}

	if contentTooShort(markup) {
		payload, merr := marshalPayload(linksEmptyPayload{
			Source:  pageURL,
			Count:   0,
			Links:   []extract.Link{},
			Message: "Failed to retrieve content or content is empty.",
		})
		if merr != nil {
			return nil, merr
		}
		return NewToolResultText(payload), nil
	}

	links := extract.Links(markup, pageURL, maxLinks, unique)
	payload, merr := marshalPayload(linksSuccessPayload{
		Source: pageURL,
		Count:  len(links),
		Links:  links,
	})
	if merr != nil {
		return nil, merr
	}
	display := fmt.Sprintf("Extracted %d links from %s", len(links), pageURL)
	return NewToolResultText(payload).WithDisplay(display), nil
}

// Annotations returns metadata hints about the tool's behavior.
func (t *ExtractLinksTool) Annotations() *thordatamcp.ToolAnnotations {
	return &thordatamcp.ToolAnnotations{
		Title:           "Extract Links",
		ReadOnlyHint:    true,
		DestructiveHint: false,
		IdempotentHint:  true,
		OpenWorldHint:   true,
	}
}

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

var _ thordatamcp.TypedTool[*ReadPageInput] = &ReadPageTool{}

// ReadPageToolOptions configures the behavior of [ReadPageTool].
type ReadPageToolOptions struct {
	// Scraper is the underlying page retrieval implementation. Required.
	Scraper web.Scraper

	// Logger receives request and outcome logs. Defaults to a no-op.
	Logger slogger.Logger

	// Timeout bounds calls whose context has no deadline.
	// Defaults to DefaultToolTimeout.
	Timeout time.Duration

	// DefaultMaxChars is used when a call omits max_chars. The zero
	// value applies DefaultReadPageMaxChars.
	DefaultMaxChars int
}

// ReadPageInput represents the input parameters for the read_page tool.
// Pointer fields distinguish "absent" from an explicit zero value.
type ReadPageInput struct {
	// URL of the page to read. Required.
	URL string `json:"url"`

	// JSRender controls JavaScript rendering. Defaults to true.
	JSRender *bool `json:"js_render,omitempty"`

	// Country optionally selects the proxy exit country.
	Country string `json:"country,omitempty"`

	// MaxChars caps the returned text in characters. Defaults to
	// 15000; zero or negative disables truncation.
	MaxChars *int `json:"max_chars,omitempty"`
}

// ReadPageTool scrapes a web page and distills it to readable plain
// text. Scripts, styles, and page chrome are removed, whitespace is
// normalized, and the result is truncated to a character budget so the
// payload stays bounded no matter how large the page is.
type ReadPageTool struct {
	scraper         web.Scraper
	logger          slogger.Logger
	timeout         time.Duration
	defaultMaxChars int
}

// NewReadPageTool creates a new ReadPageTool with the given options.
func NewReadPageTool(options ReadPageToolOptions) *thordatamcp.TypedToolAdapter[*ReadPageInput] {
	return thordatamcp.ToolAdapter(newReadPageTool(options))
}

func newReadPageTool(options ReadPageToolOptions) *ReadPageTool {
	if options.Logger == nil {
		options.Logger = slogger.DefaultLogger
	}
	if options.Timeout <= 0 {
		options.Timeout = DefaultToolTimeout
	}
	if options.DefaultMaxChars <= 0 {
		options.DefaultMaxChars = DefaultReadPageMaxChars
	}
	return &ReadPageTool{
		scraper:         options.Scraper,
		logger:          options.Logger,
		timeout:         options.Timeout,
		defaultMaxChars: options.DefaultMaxChars,
	}
}

// Name returns "read_page" as the tool identifier.
func (t *ReadPageTool) Name() string {
	return "read_page"
}

// Description returns usage instructions for the caller.
func (t *ReadPageTool) Description() string {
	return "Use this tool to read the main content of a web page. The page is scraped, cleaned of scripts and boilerplate, and returned as plain text."
}

// Schema returns the JSON schema describing the tool's input parameters.
func (t *ReadPageTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"url"},
		Properties: map[string]*schema.Property{
			"url": {
				Type:        "string",
				Description: "The URL of the page to read, e.g. 'https://www.example.com'",
			},
			"js_render": {
				Type:        "boolean",
				Description: "Whether to render JavaScript before reading the page",
				Default:     true,
			},
			"country": {
				Type:        "string",
				Description: "Optional proxy exit country (e.g. 'us', 'gb')",
			},
			"max_chars": {
				Type:        "number",
				Description: "Maximum number of characters to return; 0 disables truncation",
				Default:     DefaultReadPageMaxChars,
			},
		},
	}
}

// Call scrapes the page and returns its distilled text.
func (t *ReadPageTool) Call(ctx context.Context, input *ReadPageInput) (*thordatamcp.ToolResult, error) {
	pageURL := strings.TrimSpace(input.URL)
	if pageURL == "" {
		return NewToolResultError("Error: URL must not be empty."), nil
	}
	jsRender := true
	if input.JSRender != nil {
		jsRender = *input.JSRender
	}
	maxChars := t.defaultMaxChars
	if input.MaxChars != nil {
		maxChars = *input.MaxChars
	}

	ctx, cancel := ensureDeadline(ctx, t.timeout)
	defer cancel()

	t.logger.Info("read_page request",
		"url", pageURL,
		"js_render", jsRender,
		"country", input.Country,
		"max_chars", maxChars,
	)

	markup, err := t.scraper.Scrape(ctx, &web.ScrapeInput{
		URL:      pageURL,
		JSRender: jsRender,
		Country:  input.Country,
		Format:   web.DefaultScrapeFormat,
	})
	if err != nil {
		t.logger.Warn("read_page failed",
			"url", pageURL,
			"error_type", string(web.Classify(err)),
			"error", err.Error(),
		)
		return NewToolResultError(scrapeFailureMessage(err)), nil
	}

	if contentTooShort(markup) {
		return NewToolResultText(fmt.Sprintf(
			"Error: Failed to retrieve content or content is empty. URL: %s", pageURL)), nil
	}

	text := extract.Text(markup)
	if maxChars > 0 {
		runes := []rune(text)
		if len(runes) > maxChars {
			text = string(runes[:maxChars])
		}
	}
	display := fmt.Sprintf("Read %d characters from %s", len([]rune(text)), pageURL)
	return NewToolResultText(fmt.Sprintf("Source: %s\n\n%s", pageURL, text)).WithDisplay(display), nil
}

// scrapeFailureMessage renders a scrape error with the prefix matching
// its classification.
func scrapeFailureMessage(err error) string {
	switch web.Classify(err) {
	case web.KindRateLimit:
		return fmt.Sprintf("Thordata Universal API rate/quota issue: %s", err)
	case web.KindAuth:
		return fmt.Sprintf("Thordata Universal API authentication error: %s", err)
	case web.KindAPI:
		return fmt.Sprintf("Thordata Universal API returned an error: %s", err)
	case web.KindConfig:
		return fmt.Sprintf("Thordata configuration error: %s", err)
	default:
		return fmt.Sprintf("Scrape Error: %s", err)
	}
}

// Annotations returns metadata hints about the tool's behavior.
func (t *ReadPageTool) Annotations() *thordatamcp.ToolAnnotations {
	return &thordatamcp.ToolAnnotations{
		Title:           "Read Web Page",
		ReadOnlyHint:    true,
		DestructiveHint: false,
		IdempotentHint:  true,
		OpenWorldHint:   true,
	}
}

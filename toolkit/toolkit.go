// Package toolkit provides the Thordata tool surface: web search and
// page-content tools that validate inputs, call the Thordata APIs, and
// return bounded payloads suitable for an MCP host.
//
// # Tools
//
//   - [SearchTool]: real-time web search via the SERP API
//   - [SearchNewsTool]: news search, delegating to the same backend
//   - [ReadPageTool]: scrape a page and distill it to plain text
//   - [ExtractLinksTool]: scrape a page and list its hyperlinks
//
// # Creating Tools
//
// Each tool has a constructor function (e.g., [NewSearchTool]) that
// accepts an options struct holding its collaborator and returns a
// [thordatamcp.TypedToolAdapter] ready to register with a server:
//
//	client, _ := thordata.New()
//	searchTool := toolkit.NewSearchTool(toolkit.SearchToolOptions{
//	    Searcher: client,
//	})
//
// Collaborators are interfaces ([web.Searcher], [web.Scraper]), so the
// tools can be tested without network access.
package toolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	thordatamcp "github.com/thordata/thordata-mcp"
)

var (
	// NewToolResultError creates a tool result indicating an error occurred.
	// The message is returned to the caller for context about what went wrong.
	NewToolResultError = thordatamcp.NewToolResultError

	// NewToolResultText creates a successful tool result with text content.
	NewToolResultText = thordatamcp.NewToolResultText
)

const (
	// DefaultToolTimeout bounds a tool call when the inbound context
	// carries no deadline of its own.
	DefaultToolTimeout = 30 * time.Second

	// DefaultSearchResults is the number of search results requested
	// when the caller does not specify one.
	DefaultSearchResults = 5

	// DefaultReadPageMaxChars caps the text returned by the read_page
	// tool unless the caller overrides it.
	DefaultReadPageMaxChars = 15000

	// DefaultExtractMaxLinks caps the links returned by the
	// extract_links tool unless the caller overrides it.
	DefaultExtractMaxLinks = 200

	// minContentLength is the shortest markup, in runes, treated as a
	// real page rather than an empty or failed retrieval.
	minContentLength = 100
)

// ensureDeadline applies the fallback timeout when the caller did not
// set a deadline.
func ensureDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok && timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}

// marshalPayload serializes a tool payload with two-space indentation
// and HTML escaping off, so URLs round-trip verbatim.
func marshalPayload(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// contentTooShort reports whether scraped markup is too small to be a
// usable page.
func contentTooShort(markup string) bool {
	return len([]rune(markup)) < minContentLength
}

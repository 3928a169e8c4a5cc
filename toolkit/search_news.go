package toolkit

import (
	"context"

	thordatamcp "github.com/thordata/thordata-mcp"
	"github.com/thordata/thordata-mcp/schema"
)

// newsSearchType is the SERP search type used for news queries.
const newsSearchType = "news"

var _ thordatamcp.TypedTool[*SearchInput] = &SearchNewsTool{}

// SearchNewsToolOptions configures the behavior of [SearchNewsTool].
type SearchNewsToolOptions struct {
	SearchToolOptions
}

// SearchNewsTool searches for recent news articles. It is a pure
// delegation to [SearchTool] with the search type pinned to news; the
// input and output contracts are identical.
type SearchNewsTool struct {
	inner *SearchTool
}

// NewSearchNewsTool creates a new SearchNewsTool with the given options.
func NewSearchNewsTool(options SearchNewsToolOptions) *thordatamcp.TypedToolAdapter[*SearchInput] {
	return thordatamcp.ToolAdapter(&SearchNewsTool{
		inner: newSearchTool(options.SearchToolOptions),
	})
}

// Name returns "search_news" as the tool identifier.
func (t *SearchNewsTool) Name() string {
	return "search_news"
}

// Description returns usage instructions for the caller.
func (t *SearchNewsTool) Description() string {
	return "Use this tool to search for recent news articles on a topic. Returns structured JSON with the rank, title, link, and snippet of each article."
}

// Schema returns the JSON schema describing the tool's input parameters.
func (t *SearchNewsTool) Schema() *schema.Schema {
	return searchInputSchema()
}

// Call performs the news search and returns results as JSON.
func (t *SearchNewsTool) Call(ctx context.Context, input *SearchInput) (*thordatamcp.ToolResult, error) {
	return t.inner.call(ctx, input, newsSearchType)
}

// Annotations returns metadata hints about the tool's behavior.
func (t *SearchNewsTool) Annotations() *thordatamcp.ToolAnnotations {
	return &thordatamcp.ToolAnnotations{
		Title:           "News Search",
		ReadOnlyHint:    true,
		DestructiveHint: false,
		IdempotentHint:  true,
		OpenWorldHint:   true,
	}
}

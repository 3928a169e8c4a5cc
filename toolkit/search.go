package toolkit

import (
	"context"
	"fmt"
	"strings"
	"time"

	thordatamcp "github.com/thordata/thordata-mcp"
	"github.com/thordata/thordata-mcp/schema"
	"github.com/thordata/thordata-mcp/slogger"
	"github.com/thordata/thordata-mcp/web"
)

var _ thordatamcp.TypedTool[*SearchInput] = &SearchTool{}

// SearchToolOptions configures the behavior of [SearchTool].
type SearchToolOptions struct {
	// Searcher is the underlying SERP implementation. Required.
	Searcher web.Searcher

	// Logger receives request and outcome logs. Defaults to a no-op.
	Logger slogger.Logger

	// Timeout bounds calls whose context has no deadline.
	// Defaults to DefaultToolTimeout.
	Timeout time.Duration

	// DefaultEngine is used when a call omits the engine.
	// Defaults to web.DefaultEngine.
	DefaultEngine web.Engine

	// DefaultNum is used when a call omits the result count.
	// Defaults to DefaultSearchResults.
	DefaultNum int
}

// SearchInput represents the input parameters for the search tools.
type SearchInput struct {
	// Query is the search keywords. Required.
	Query string `json:"query"`

	// Engine selects the search backend. Unrecognized names fall back
	// to Google.
	Engine string `json:"engine,omitempty"`

	// Num is the number of results to retrieve. Defaults to 5.
	Num int `json:"num,omitempty"`

	// Location optionally localizes the results (e.g. "London").
	Location string `json:"location,omitempty"`
}

// SearchTool searches the web through the Thordata SERP API.
//
// Results are returned as structured JSON with the rank, title, link,
// and snippet of each organic result. Failures are classified and
// returned as JSON error payloads rather than crashing the surface, so
// a host can show the caller exactly what went wrong.
type SearchTool struct {
	searcher      web.Searcher
	logger        slogger.Logger
	timeout       time.Duration
	defaultEngine web.Engine
	defaultNum    int
}

// NewSearchTool creates a new SearchTool with the given options.
func NewSearchTool(options SearchToolOptions) *thordatamcp.TypedToolAdapter[*SearchInput] {
	return thordatamcp.ToolAdapter(newSearchTool(options))
}

func newSearchTool(options SearchToolOptions) *SearchTool {
	if options.Logger == nil {
		options.Logger = slogger.DefaultLogger
	}
	if options.Timeout <= 0 {
		options.Timeout = DefaultToolTimeout
	}
	if options.DefaultEngine == "" {
		options.DefaultEngine = web.DefaultEngine
	}
	if options.DefaultNum <= 0 {
		options.DefaultNum = DefaultSearchResults
	}
	return &SearchTool{
		searcher:      options.Searcher,
		logger:        options.Logger,
		timeout:       options.Timeout,
		defaultEngine: options.DefaultEngine,
		defaultNum:    options.DefaultNum,
	}
}

// Name returns "search" as the tool identifier.
func (t *SearchTool) Name() string {
	return "search"
}

// Description returns usage instructions for the caller.
func (t *SearchTool) Description() string {
	return "Use this tool to search the web for real-time information, news, or facts. Returns structured JSON with the rank, title, link, and snippet of each result."
}

// Schema returns the JSON schema describing the tool's input parameters.
func (t *SearchTool) Schema() *schema.Schema {
	return searchInputSchema()
}

func searchInputSchema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"query"},
		Properties: map[string]*schema.Property{
			"query": {
				Type:        "string",
				Description: "The search keywords, e.g. 'cloud security companies'",
			},
			"engine": {
				Type:        "string",
				Description: "Search engine to use",
				Enum:        web.EngineNames(),
				Default:     web.DefaultEngine.String(),
			},
			"num": {
				Type:        "number",
				Description: "Number of results to retrieve",
				Default:     DefaultSearchResults,
			},
			"location": {
				Type:        "string",
				Description: "Optional location to localize results (e.g. 'United States', 'London')",
			},
		},
	}
}

// Call performs the web search and returns results as JSON.
func (t *SearchTool) Call(ctx context.Context, input *SearchInput) (*thordatamcp.ToolResult, error) {
	return t.call(ctx, input, "")
}

// searchFailurePayload reports a classified search failure.
type searchFailurePayload struct {
	Engine    string `json:"engine"`
	Query     string `json:"query"`
	ErrorType string `json:"error_type"`
	Error     string `json:"error"`
}

// searchEmptyPayload reports a search that completed with no organic
// results.
type searchEmptyPayload struct {
	Message string `json:"message"`
	Engine  string `json:"engine"`
	Query   string `json:"query"`
}

type searchResultEntry struct {
	Rank    int    `json:"rank"`
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type searchSuccessPayload struct {
	Engine  string              `json:"engine"`
	Query   string              `json:"query"`
	Results []searchResultEntry `json:"results"`
}

// call runs one search with the given search type and serializes the
// outcome. search_news shares this path with the type pinned to news.
func (t *SearchTool) call(ctx context.Context, input *SearchInput, searchType string) (*thordatamcp.ToolResult, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return NewToolResultError("Search query must not be empty."), nil
	}
	engine := t.defaultEngine
	if strings.TrimSpace(input.Engine) != "" {
		engine = web.ParseEngine(input.Engine)
	}
	num := input.Num
	if num <= 0 {
		num = t.defaultNum
	}

	ctx, cancel := ensureDeadline(ctx, t.timeout)
	defer cancel()

	t.logger.Info("search request",
		"query", query,
		"engine", engine.String(),
		"num", num,
		"location", input.Location,
		"search_type", searchType,
	)

	output, err := t.searcher.Search(ctx, &web.SearchInput{
		Query:      query,
		Engine:     engine,
		Limit:      num,
		Location:   input.Location,
		SearchType: searchType,
	})
	if err != nil {
		t.logger.Warn("search failed",
			"query", query,
			"engine", engine.String(),
			"error_type", string(web.Classify(err)),
			"error", err.Error(),
		)
		payload, merr := marshalPayload(searchFailurePayload{
			Engine:    engine.String(),
			Query:     query,
			ErrorType: string(web.Classify(err)),
			Error:     err.Error(),
		})
		if merr != nil {
			return nil, merr
		}
		return NewToolResultError(payload), nil
	}

	if len(output.Items) == 0 {
		payload, merr := marshalPayload(searchEmptyPayload{
			Message: "No organic results found.",
			Engine:  engine.String(),
			Query:   query,
		})
		if merr != nil {
			return nil, merr
		}
		return NewToolResultText(payload), nil
	}

	results := make([]searchResultEntry, 0, len(output.Items))
	for i, item := range output.Items {
		results = append(results, searchResultEntry{
			Rank:    i + 1,
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}
	payload, merr := marshalPayload(searchSuccessPayload{
		Engine:  engine.String(),
		Query:   query,
		Results: results,
	})
	if merr != nil {
		return nil, merr
	}
	display := fmt.Sprintf("Found %d results for %q", len(results), query)
	return NewToolResultText(payload).WithDisplay(display), nil
}

// Annotations returns metadata hints about the tool's behavior.
// Search is read-only, idempotent, and open-world (talks to an
// external API).
func (t *SearchTool) Annotations() *thordatamcp.ToolAnnotations {
	return &thordatamcp.ToolAnnotations{
		Title:           "Web Search",
		ReadOnlyHint:    true,
		DestructiveHint: false,
		IdempotentHint:  true,
		OpenWorldHint:   true,
	}
}

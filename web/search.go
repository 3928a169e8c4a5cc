package web

import "context"

// SearchInput carries one SERP query.
type SearchInput struct {
	Query      string `json:"query"`
	Engine     Engine `json:"engine,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Location   string `json:"location,omitempty"`
	SearchType string `json:"search_type,omitempty"`
}

// SearchOutput holds the organic results of a search, in the order the
// backend returned them.
type SearchOutput struct {
	Items []*SearchItem `json:"items"`
}

// SearchItem is one organic search result.
type SearchItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet,omitempty"`
}

// Searcher runs web searches against a SERP backend.
type Searcher interface {
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)
}

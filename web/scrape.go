package web

import "context"

// DefaultScrapeFormat is the representation requested from a Scraper
// when none is specified.
const DefaultScrapeFormat = "html"

// ScrapeInput carries one page-scrape request.
type ScrapeInput struct {
	URL      string `json:"url"`
	JSRender bool   `json:"js_render,omitempty"`
	Country  string `json:"country,omitempty"`
	Format   string `json:"format,omitempty"`
}

// Scraper fetches the raw or rendered markup of a page.
type Scraper interface {
	Scrape(ctx context.Context, input *ScrapeInput) (string, error)
}

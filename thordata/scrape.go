package thordata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/thordata/thordata-mcp/retry"
	"github.com/thordata/thordata-mcp/web"
)

type universalRequest struct {
	URL      string `json:"url"`
	JSRender bool   `json:"js_render"`
	Country  string `json:"country,omitempty"`
	Format   string `json:"format,omitempty"`
}

// universalResponse is the enveloped form of a Universal Scraping API
// response. The API may also return the page markup as a naked body.
type universalResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		HTML string `json:"html"`
	} `json:"data"`
}

// Scrape fetches the markup of one page through the Universal Scraping
// API, optionally with JavaScript rendering.
func (c *Client) Scrape(ctx context.Context, input *web.ScrapeInput) (string, error) {
	if c.scraperToken == "" {
		return "", &web.ConfigError{
			Message: "missing thordata credentials: THORDATA_SCRAPER_TOKEN is not set",
		}
	}

	format := input.Format
	if format == "" {
		format = web.DefaultScrapeFormat
	}
	payload, err := json.Marshal(universalRequest{
		URL:      input.URL,
		JSRender: input.JSRender,
		Country:  input.Country,
		Format:   format,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	c.logger.Debug("thordata universal request",
		"url", input.URL,
		"js_render", input.JSRender,
		"country", input.Country,
	)

	var markup string
	err = c.withRetries(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.universalBaseURL, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.scraperToken)

		body, err := c.do(req)
		if err != nil {
			return err
		}
		markup, err = decodeUniversalBody(body)
		return err
	})
	if err != nil {
		return "", err
	}
	return markup, nil
}

// decodeUniversalBody accepts both response shapes: a JSON envelope
// carrying the markup under data.html, or the markup itself.
func decodeUniversalBody(body []byte) (string, error) {
	var envelope universalResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Code == 0 {
		return string(body), nil
	}
	if envelope.Code != 200 {
		err := statusError(envelope.Code, envelope.Msg)
		if retry.ShouldRetry(envelope.Code) {
			return "", retry.NewRecoverableError(err)
		}
		return "", err
	}
	return envelope.Data.HTML, nil
}

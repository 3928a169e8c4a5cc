package thordata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/thordata/thordata-mcp/retry"
	"github.com/thordata/thordata-mcp/web"
)

// serpResponse is the SERP API envelope. Code mirrors HTTP status
// semantics; 200 is success even when the organic list is empty.
type serpResponse struct {
	Code int      `json:"code"`
	Msg  string   `json:"msg"`
	Data serpData `json:"data"`
}

type serpData struct {
	Organic []serpOrganicItem `json:"organic"`
}

type serpOrganicItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Search runs one SERP query. Results come back in backend order with
// no local re-ranking or capping.
func (c *Client) Search(ctx context.Context, input *web.SearchInput) (*web.SearchOutput, error) {
	token, key, err := c.serpCredentials()
	if err != nil {
		return nil, err
	}

	engine := input.Engine
	if engine == "" {
		engine = web.DefaultEngine
	}

	form := url.Values{}
	form.Set("engine", engine.String())
	form.Set("q", input.Query)
	if input.Limit > 0 {
		form.Set("num", strconv.Itoa(input.Limit))
	}
	if input.SearchType != "" {
		form.Set("search_type", input.SearchType)
	}
	if input.Location != "" {
		form.Set("location", input.Location)
	}

	c.logger.Debug("thordata serp request",
		"engine", engine.String(),
		"query", input.Query,
		"num", input.Limit,
		"search_type", input.SearchType,
	)

	var envelope serpResponse
	err = c.withRetries(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.serpBaseURL, strings.NewReader(form.Encode()))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		setSERPAuth(req, token, key)

		body, err := c.do(req)
		if err != nil {
			return err
		}
		envelope = serpResponse{}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return fmt.Errorf("failed to parse search response: %w", err)
		}
		return envelopeError(&envelope)
	})
	if err != nil {
		return nil, err
	}

	items := make([]*web.SearchItem, 0, len(envelope.Data.Organic))
	for _, item := range envelope.Data.Organic {
		items = append(items, &web.SearchItem{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}
	return &web.SearchOutput{Items: items}, nil
}

// setSERPAuth applies the SERP credential scheme: basic auth when a
// token/key pair is configured, bearer otherwise.
func setSERPAuth(req *http.Request, token, key string) {
	if key != "" {
		req.SetBasicAuth(token, key)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

// envelopeError maps a non-200 envelope code onto the error taxonomy.
func envelopeError(envelope *serpResponse) error {
	if envelope.Code == 0 || envelope.Code == 200 {
		return nil
	}
	err := statusError(envelope.Code, envelope.Msg)
	if retry.ShouldRetry(envelope.Code) {
		return retry.NewRecoverableError(err)
	}
	return err
}

// Package thordata provides a client for Thordata's SERP and Universal
// Scraping APIs.
package thordata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/thordata/thordata-mcp/retry"
	"github.com/thordata/thordata-mcp/slogger"
	"github.com/thordata/thordata-mcp/web"
)

var (
	_ web.Searcher = &Client{}
	_ web.Scraper  = &Client{}
)

const (
	DefaultSERPBaseURL      = "https://scraperapi.thordata.com/request"
	DefaultUniversalBaseURL = "https://universalapi.thordata.com/request"
)

// ClientOption is a function that modifies the client configuration.
type ClientOption func(*Client)

// WithScraperToken sets the Universal Scraping API token.
func WithScraperToken(token string) ClientOption {
	return func(c *Client) {
		c.scraperToken = token
	}
}

// WithPublicToken sets the SERP API token.
func WithPublicToken(token string) ClientOption {
	return func(c *Client) {
		c.publicToken = token
	}
}

// WithPublicKey sets the SERP API key.
func WithPublicKey(key string) ClientOption {
	return func(c *Client) {
		c.publicKey = key
	}
}

// WithSERPBaseURL sets the SERP API endpoint.
func WithSERPBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.serpBaseURL = baseURL
	}
}

// WithUniversalBaseURL sets the Universal Scraping API endpoint.
func WithUniversalBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.universalBaseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout for the default HTTP client.
// This option is ignored if a custom HTTP client is provided.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if c.httpClient == http.DefaultClient {
			c.httpClient = &http.Client{
				Timeout: timeout,
			}
		}
	}
}

// WithMaxRetries sets the number of attempts made for transient failures.
func WithMaxRetries(maxRetries int) ClientOption {
	return func(c *Client) {
		c.maxRetries = maxRetries
	}
}

// WithLogger sets the logger used by the client.
func WithLogger(logger slogger.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client calls Thordata's SERP and Universal Scraping APIs.
type Client struct {
	scraperToken     string
	publicToken      string
	publicKey        string
	serpBaseURL      string
	universalBaseURL string
	httpClient       *http.Client
	maxRetries       int
	baseWait         time.Duration
	logger           slogger.Logger
}

// New creates a new Thordata client with the provided options. Tokens
// default from the THORDATA_SCRAPER_TOKEN, THORDATA_PUBLIC_TOKEN, and
// THORDATA_PUBLIC_KEY environment variables. Credentials are not
// verified here; a missing credential surfaces as a web.ConfigError
// from the call that needs it.
func New(opts ...ClientOption) (*Client, error) {
	c := &Client{
		scraperToken:     os.Getenv("THORDATA_SCRAPER_TOKEN"),
		publicToken:      os.Getenv("THORDATA_PUBLIC_TOKEN"),
		publicKey:        os.Getenv("THORDATA_PUBLIC_KEY"),
		serpBaseURL:      DefaultSERPBaseURL,
		universalBaseURL: DefaultUniversalBaseURL,
		maxRetries:       3,
		baseWait:         time.Second,
		logger:           slogger.DefaultLogger,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slogger.NewDevNullLogger()
	}
	return c, nil
}

// serpCredentials returns the token/key pair used for SERP requests.
// The scraper token doubles as the SERP token when no dedicated pair
// is configured.
func (c *Client) serpCredentials() (token, key string, err error) {
	if c.publicToken != "" {
		return c.publicToken, c.publicKey, nil
	}
	if c.scraperToken != "" {
		return c.scraperToken, c.publicKey, nil
	}
	return "", "", &web.ConfigError{
		Message: "missing thordata credentials: set THORDATA_PUBLIC_TOKEN or THORDATA_SCRAPER_TOKEN",
	}
}

// do issues one HTTP request and maps non-2xx statuses onto the error
// taxonomy. Transient failures come back wrapped as recoverable so the
// retry loop knows to try again.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, retry.NewRecoverableError(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retry.NewRecoverableError(fmt.Errorf("failed to read response body: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := statusError(resp.StatusCode, string(body))
		if retry.ShouldRetry(resp.StatusCode) {
			return nil, retry.NewRecoverableError(err)
		}
		return nil, err
	}
	return body, nil
}

// statusError converts an HTTP status into the matching taxonomy error.
func statusError(statusCode int, body string) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &web.AuthError{
			Message: fmt.Sprintf("authentication failed (status %d): check your Thordata tokens", statusCode),
		}
	case http.StatusTooManyRequests:
		return &web.RateLimitError{
			Message: "rate limit exceeded, please wait and try again later",
		}
	default:
		return &web.APIError{
			StatusCode: statusCode,
			Message:    fmt.Sprintf("unexpected status %d: %s", statusCode, truncateBody(body)),
		}
	}
}

// truncateBody keeps error messages readable when an API returns a
// large HTML error page.
func truncateBody(body string) string {
	const maxLen = 200
	runes := []rune(body)
	if len(runes) <= maxLen {
		return body
	}
	return string(runes[:maxLen]) + "..."
}

// withRetries runs fn through the retry loop with the client's settings.
func (c *Client) withRetries(ctx context.Context, fn func() error) error {
	return retry.Do(ctx, fn,
		retry.WithMaxRetries(c.maxRetries),
		retry.WithBaseWait(c.baseWait),
	)
}

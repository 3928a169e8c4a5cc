package toolkit

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thordata/thordata-mcp/web"
)

// mockScraper implements web.Scraper for testing
type mockScraper struct {
	markup    string
	err       error
	lastInput *web.ScrapeInput
	calls     int
}

func (m *mockScraper) Scrape(ctx context.Context, input *web.ScrapeInput) (string, error) {
	m.calls++
	m.lastInput = input
	if m.err != nil {
		return "", m.err
	}
	return m.markup, nil
}

// pagePadding pushes small test pages past the empty-content threshold
// without affecting the extracted text.
const pagePadding = "<!-- padding padding padding padding padding padding padding padding padding padding padding -->"

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestReadPageToolSuccess(t *testing.T) {
	scraper := &mockScraper{
		markup: "<html><head><script>var x = 1;</script></head>" +
			"<body><h1>Title</h1><p>Hello world paragraph.</p></body></html>" + pagePadding,
	}
	tool := newReadPageTool(ReadPageToolOptions{Scraper: scraper})

	result, err := tool.Call(context.Background(), &ReadPageInput{URL: "https://example.com"})
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, "Source: https://example.com\n\nTitle\nHello world paragraph.", result.Text())
}

func TestReadPageToolForwardsScrapeOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		scraper := &mockScraper{markup: "<p>" + strings.Repeat("content here ", 20) + "</p>"}
		tool := newReadPageTool(ReadPageToolOptions{Scraper: scraper})

		_, err := tool.Call(context.Background(), &ReadPageInput{URL: "https://example.com"})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", scraper.lastInput.URL)
		assert.True(t, scraper.lastInput.JSRender, "js rendering defaults on")
		assert.Equal(t, "html", scraper.lastInput.Format)
		assert.Empty(t, scraper.lastInput.Country)
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		scraper := &mockScraper{markup: "<p>" + strings.Repeat("content here ", 20) + "</p>"}
		tool := newReadPageTool(ReadPageToolOptions{Scraper: scraper})

		_, err := tool.Call(context.Background(), &ReadPageInput{
			URL:      "https://example.com",
			JSRender: boolPtr(false),
			Country:  "gb",
		})
		require.NoError(t, err)
		assert.False(t, scraper.lastInput.JSRender)
		assert.Equal(t, "gb", scraper.lastInput.Country)
	})
}

func TestReadPageToolTruncation(t *testing.T) {
	longParagraph := "<p>" + strings.Repeat("abcdefghij", 30) + "</p>"

	t.Run("TruncatesToMaxChars", func(t *testing.T) {
		scraper := &mockScraper{markup: longParagraph}
		tool := newReadPageTool(ReadPageToolOptions{Scraper: scraper})

		result, err := tool.Call(context.Background(), &ReadPageInput{
			URL:      "https://example.com",
			MaxChars: intPtr(10),
		})
		require.NoError(t, err)
		assert.Equal(t, "Source: https://example.com\n\nabcdefghij", result.Text())
	})

	t.Run("ZeroDisablesTruncation", func(t *testing.T) {
		scraper := &mockScraper{markup: longParagraph}
		tool := newReadPageTool(ReadPageToolOptions{Scraper: scraper})

		result, err := tool.Call(context.Background(), &ReadPageInput{
			URL:      "https://example.com",
			MaxChars: intPtr(0),
		})
		require.NoError(t, err)
		assert.Equal(t, "Source: https://example.com\n\n"+strings.Repeat("abcdefghij", 30), result.Text())
	})

	t.Run("ConfiguredDefaultMaxChars", func(t *testing.T) {
		scraper := &mockScraper{markup: longParagraph}
		tool := newReadPageTool(ReadPageToolOptions{Scraper: scraper, DefaultMaxChars: 15})

		result, err := tool.Call(context.Background(), &ReadPageInput{URL: "https://example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Source: https://example.com\n\nabcdefghijabcde", result.Text())
	})

	t.Run("CountsRunesNotBytes", func(t *testing.T) {
		scraper := &mockScraper{markup: "<p>" + strings.Repeat("é", 150) + "</p>"}
		tool := newReadPageTool(ReadPageToolOptions{Scraper: scraper})

		result, err := tool.Call(context.Background(), &ReadPageInput{
			URL:      "https://example.com",
			MaxChars: intPtr(5),
		})
		require.NoError(t, err)
		assert.Equal(t, "Source: https://example.com\n\n"+strings.Repeat("é", 5), result.Text())
	})
}

func TestReadPageToolShortContent(t *testing.T) {
	scraper := &mockScraper{markup: "<html></html>"}
	tool := newReadPageTool(ReadPageToolOptions{Scraper: scraper})

	result, err := tool.Call(context.Background(), &ReadPageInput{URL: "https://example.com"})
	require.NoError(t, err)

	// Reported in-band, not as an error result
	assert.False(t, result.IsError)
	assert.Equal(t, "Error: Failed to retrieve content or content is empty. URL: https://example.com", result.Text())
}

func TestReadPageToolFailureMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "RateLimit",
			err:      &web.RateLimitError{Message: "quota exhausted"},
			expected: "Thordata Universal API rate/quota issue: quota exhausted",
		},
		{
			name:     "Auth",
			err:      &web.AuthError{Message: "invalid token"},
			expected: "Thordata Universal API authentication error: invalid token",
		},
		{
			name:     "API",
			err:      &web.APIError{StatusCode: 500, Message: "upstream broke"},
			expected: "Thordata Universal API returned an error: upstream broke",
		},
		{
			name:     "Config",
			err:      &web.ConfigError{Message: "token missing"},
			expected: "Thordata configuration error: token missing",
		},
		{
			name:     "Unknown",
			err:      errors.New("connection reset"),
			expected: "Scrape Error: connection reset",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scraper := &mockScraper{err: tt.err}
			tool := newReadPageTool(ReadPageToolOptions{Scraper: scraper})

			result, err := tool.Call(context.Background(), &ReadPageInput{URL: "https://example.com"})
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Equal(t, tt.expected, result.Text())
		})
	}
}

func TestReadPageToolBlankURL(t *testing.T) {
	scraper := &mockScraper{}
	tool := newReadPageTool(ReadPageToolOptions{Scraper: scraper})

	result, err := tool.Call(context.Background(), &ReadPageInput{URL: "  "})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, 0, scraper.calls)
}

func TestReadPageToolMetadata(t *testing.T) {
	tool := newReadPageTool(ReadPageToolOptions{Scraper: &mockScraper{}})
	assert.Equal(t, "read_page", tool.Name())
	assert.NotEmpty(t, tool.Description())

	s := tool.Schema()
	require.NotNil(t, s)
	assert.Equal(t, []string{"url"}, s.Required)
	require.Contains(t, s.Properties, "max_chars")
	assert.Equal(t, DefaultReadPageMaxChars, s.Properties["max_chars"].Default)
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinksDeduplicatesByResolvedURL(t *testing.T) {
	markup := `<a href="/a">X</a><a href="/a">Y</a>`
	links := Links(markup, "https://e.com", 0, true)
	require.Equal(t, []Link{{Text: "X", Href: "https://e.com/a"}}, links)
}

func TestLinksWithoutDeduplication(t *testing.T) {
	markup := `<a href="/a">X</a><a href="/a">Y</a>`
	links := Links(markup, "https://e.com", 0, false)
	require.Len(t, links, 2)
	require.Equal(t, "X", links[0].Text)
	require.Equal(t, "Y", links[1].Text)
	require.Equal(t, links[0].Href, links[1].Href)
}

func TestLinksResolution(t *testing.T) {
	base := "https://e.com/dir/page.html"
	tests := []struct {
		name     string
		href     string
		expected string
	}{
		{"relative path", "sub/x", "https://e.com/dir/sub/x"},
		{"rooted path", "/root", "https://e.com/root"},
		{"protocol relative", "//cdn.example.com/lib.js", "https://cdn.example.com/lib.js"},
		{"fragment only", "#frag", "https://e.com/dir/page.html#frag"},
		{"already absolute", "http://other.org/p", "http://other.org/p"},
		{"opaque scheme", "mailto:team@e.com", "mailto:team@e.com"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			links := Links(`<a href="`+tc.href+`">link text</a>`, base, 0, true)
			require.Len(t, links, 1)
			require.Equal(t, tc.expected, links[0].Href)
		})
	}
}

func TestLinksSkipsEmptyAndBrokenHrefs(t *testing.T) {
	markup := `
		<a href="">Empty</a>
		<a href="   ">Whitespace</a>
		<a href="://broken">Bad</a>
		<a href="/ok">Good</a>`
	links := Links(markup, "https://e.com", 0, true)
	require.Equal(t, []Link{{Text: "Good", Href: "https://e.com/ok"}}, links)
}

func TestLinksTextFallsBackToRawHref(t *testing.T) {
	links := Links(`<a href="/bare"></a>`, "https://e.com", 0, true)
	require.Equal(t, []Link{{Text: "/bare", Href: "https://e.com/bare"}}, links)
}

func TestLinksNormalizesNestedText(t *testing.T) {
	links := Links(`<a href="/x"><b>Bold</b>  link</a>`, "https://e.com", 0, true)
	require.Equal(t, "Bold link", links[0].Text)
}

func TestLinksMaxLinksCountsPostDedup(t *testing.T) {
	markup := `<a href="/a">1</a><a href="/a">2</a><a href="/b">3</a><a href="/c">4</a>`
	links := Links(markup, "https://e.com", 2, true)
	require.Equal(t, []Link{
		{Text: "1", Href: "https://e.com/a"},
		{Text: "3", Href: "https://e.com/b"},
	}, links)
}

func TestLinksUnboundedWhenMaxIsZero(t *testing.T) {
	markup := `<a href="/a">1</a><a href="/b">2</a><a href="/c">3</a>`
	require.Len(t, Links(markup, "https://e.com", 0, true), 3)
	require.Len(t, Links(markup, "https://e.com", -1, true), 3)
}

func TestLinksUnusableBaseKeepsAbsoluteOnly(t *testing.T) {
	markup := `<a href="https://abs.example/x">A</a><a href="/rel">R</a>`
	links := Links(markup, "://nope", 0, true)
	require.Equal(t, []Link{{Text: "A", Href: "https://abs.example/x"}}, links)
}

func TestLinksEmptyDocument(t *testing.T) {
	links := Links("", "https://e.com", 0, true)
	require.NotNil(t, links)
	require.Empty(t, links)
}

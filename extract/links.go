package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Link is one hyperlink: its visible text and resolved absolute URL.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Links collects the hyperlinks of a document in document order. Each
// href is resolved against base; hrefs that cannot be resolved are
// skipped individually. Empty anchor text falls back to the raw href.
// With unique set, later links to an already seen URL are suppressed
// (first occurrence wins). The scan stops once maxLinks links have
// accumulated; maxLinks <= 0 means unbounded.
func Links(markup, base string, maxLinks int, unique bool) []Link {
	links := make([]Link, 0)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return links
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		baseURL = nil
	}

	seen := make(map[string]struct{})
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return true
		}
		resolved := resolveRef(baseURL, href)
		if resolved == "" {
			return true
		}
		if unique {
			if _, ok := seen[resolved]; ok {
				return true
			}
			seen[resolved] = struct{}{}
		}
		text := normalizeSpace(s.Text())
		if text == "" {
			text = href
		}
		links = append(links, Link{Text: text, Href: resolved})
		return maxLinks <= 0 || len(links) < maxLinks
	})
	return links
}

// resolveRef resolves href against base. An unparseable href resolves
// to nothing; with no usable base, only absolute hrefs survive.
func resolveRef(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		if ref.IsAbs() {
			return ref.String()
		}
		return ""
	}
	return base.ResolveReference(ref).String()
}

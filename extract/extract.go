// Package extract distills raw HTML into shapes suited for language
// models: a markdown-like digest, flat plain text, or the page's
// hyperlinks. All operations degrade gracefully on malformed markup
// and never perform I/O.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Elements that never carry readable content.
const strippedTags = "script, style, nav, footer, iframe, noscript"

// Plain text extraction additionally drops inline graphics.
const strippedTagsText = strippedTags + ", svg"

// Paragraphs at or below this many runes are treated as boilerplate.
const minParagraphRunes = 20

// Markdown converts markup into a markdown-like digest: h1-h3 headings
// become prefixed heading lines and paragraphs longer than twenty
// runes are kept as-is, in a single document-order pass. Units are
// separated by blank lines.
func Markdown(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	doc.Find(strippedTags).Remove()

	var units []string
	doc.Find("h1, h2, h3, p").Each(func(_ int, s *goquery.Selection) {
		text := normalizeSpace(s.Text())
		name := goquery.NodeName(s)
		if name == "p" {
			if len([]rune(text)) > minParagraphRunes {
				units = append(units, text)
			}
			return
		}
		level := int(name[1] - '0')
		units = append(units, strings.Repeat("#", level)+" "+text)
	})
	return strings.TrimSpace(strings.Join(units, "\n\n"))
}

// Text converts markup into plain text: every text node that survives
// tag stripping, trimmed, with empty lines dropped and the remainder
// joined by single newlines.
func Text(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	doc.Find(strippedTagsText).Remove()

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}

	var lines []string
	for _, line := range strings.Split(strings.Join(parts, "\n"), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}

// normalizeSpace trims s and collapses internal whitespace runs to
// single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package arxiv

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Footnote markers and affiliation links inside a person name.
var skippedNameClasses = []string{"ltx_sup", "ltx_note"}

// fullTextAuthors returns the comma-joined author names of a rendered paper.
func fullTextAuthors(doc *goquery.Document) string {
	var names []string
	doc.Find("div.ltx_authors span.ltx_personname").Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			names = append(names, cleanNames(nameSegments(n))...)
		}
	})
	return strings.Join(names, ", ")
}

// nameSegments returns the trimmed text nodes below n, leaving out links
// and footnote markers.
func nameSegments(n *html.Node) []string {
	var segments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				segments = append(segments, s)
			}
			return
		case html.ElementNode:
			if n.DataAtom == atom.A || hasAnyClass(n, skippedNameClasses) {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return segments
}

// cleanNames drops numeric and "&" words from each segment and collapses
// whitespace. Segments left empty are dropped.
func cleanNames(segments []string) []string {
	var names []string
	for _, s := range segments {
		var words []string
		for _, w := range strings.Fields(s) {
			if w == "&" || isDigits(w) {
				continue
			}
			words = append(words, w)
		}
		if len(words) > 0 {
			names = append(names, strings.Join(words, " "))
		}
	}
	return names
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func hasAnyClass(n *html.Node, classes []string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			for _, want := range classes {
				if c == want {
					return true
				}
			}
		}
	}
	return false
}

// abstractAuthors returns the author line of an /abs/ page. The visible
// author block wins; citation_author metadata ("Last, First") is used when
// the block is missing.
func abstractAuthors(doc *goquery.Document) string {
	if block := doc.Find("div.authors").First(); block.Length() > 0 {
		text := strings.TrimSpace(block.Text())
		text = strings.TrimPrefix(text, "Authors:")
		if text = strings.Join(strings.Fields(text), " "); text != "" {
			return text
		}
	}

	var names []string
	doc.Find(`meta[name="citation_author"]`).Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.AttrOr("content", ""))
		if last, first, ok := strings.Cut(name, ","); ok {
			name = strings.TrimSpace(first) + " " + strings.TrimSpace(last)
		}
		if name = strings.Join(strings.Fields(name), " "); name != "" {
			names = append(names, name)
		}
	})
	return strings.Join(names, ", ")
}

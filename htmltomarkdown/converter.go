package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scrape"
	"golang.org/x/net/html"
)

// Ensure Converter implements scrape.Converter at compile time.
var _ scrape.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown. MathML formulas that
// carry a TeX alttext, as rendered papers do, become inline $...$ math.
func (c *Converter) Convert(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", scrape.Errorf(scrape.EINVALID, "empty HTML input")
	}

	if strings.Contains(fragment, "<math") {
		rewritten, err := inlineMath(fragment)
		if err != nil {
			return "", err
		}
		fragment = rewritten
	}

	result, err := c.conv.ConvertString(fragment)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// inlineMath replaces <math alttext="..."> elements with $alttext$ text.
func inlineMath(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", scrape.Errorf(scrape.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("math").Each(func(_ int, sel *goquery.Selection) {
		tex := strings.TrimSpace(sel.AttrOr("alttext", ""))
		if tex == "" {
			tex = strings.TrimSpace(sel.Text())
		}
		if tex == "" {
			sel.Remove()
			return
		}
		sel.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: "$" + tex + "$"})
	})

	return doc.Find("body").Html()
}

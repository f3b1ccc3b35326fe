package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/scrape"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements scrape.ContentExtractor at compile time.
var _ scrape.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content and metadata
// of pages without a site module.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor with fallback extractors enabled.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*scrape.Content, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, scrape.Errorf(scrape.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	content := &scrape.Content{
		Title:       strings.TrimSpace(result.Metadata.Title),
		Author:      strings.TrimSpace(result.Metadata.Author),
		ContentHTML: contentHTML,
	}
	if !result.Metadata.Date.IsZero() {
		content.Date = result.Metadata.Date.Format("2006-01-02")
	}
	return content, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

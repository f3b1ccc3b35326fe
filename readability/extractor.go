package readability

import (
	"strings"

	"github.com/fwojciec/scrape"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements scrape.ContentExtractor at compile time.
var _ scrape.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The byline, when
// present, is reported as the author.
func (e *Extractor) Extract(rawHTML string) (*scrape.Content, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, scrape.Errorf(scrape.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &scrape.Content{
		Title:       strings.TrimSpace(article.Title),
		Author:      strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(article.Byline), "By ")),
		ContentHTML: article.Content,
	}, nil
}

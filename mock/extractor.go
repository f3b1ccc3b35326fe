package mock

import "github.com/fwojciec/scrape"

var _ scrape.SiteExtractor = (*SiteExtractor)(nil)

// SiteExtractor is a mock implementation of scrape.SiteExtractor.
type SiteExtractor struct {
	ExtractFn func(html, url string) scrape.Result
}

func (e *SiteExtractor) Extract(html, url string) scrape.Result {
	return e.ExtractFn(html, url)
}

var _ scrape.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of scrape.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*scrape.Content, error)
}

func (e *ContentExtractor) Extract(html string) (*scrape.Content, error) {
	return e.ExtractFn(html)
}

var _ scrape.DateNormalizer = (*DateNormalizer)(nil)

// DateNormalizer is a mock implementation of scrape.DateNormalizer.
type DateNormalizer struct {
	NormalizeFn func(s string) (string, bool)
}

func (n *DateNormalizer) Normalize(s string) (string, bool) {
	return n.NormalizeFn(s)
}

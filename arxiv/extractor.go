package arxiv

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scrape"
)

// Domain is the host the Extractor is registered for.
const Domain = "arxiv.org"

var _ scrape.SiteExtractor = (*Extractor)(nil)

// pageFunc extracts one page type from a parsed page.
type pageFunc func(doc *goquery.Document, pageURL string) (scrape.Result, error)

// Extractor classifies arXiv URLs and runs the matching page extractor.
// It is safe for concurrent use.
type Extractor struct {
	cfg    Config
	conv   scrape.Converter
	dates  scrape.DateNormalizer
	logger *slog.Logger
}

// NewExtractor creates an Extractor. conv renders full-text sections and
// dates normalizes citation dates. A nil logger discards output.
func NewExtractor(cfg Config, conv scrape.Converter, dates scrape.DateNormalizer, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{
		cfg:    cfg,
		conv:   conv,
		dates:  dates,
		logger: logger,
	}
}

// Extract returns the result for an arXiv page. Unknown page types and
// extraction errors are reported through the outcome and never escape.
func (e *Extractor) Extract(html string, rawURL string) scrape.Result {
	pageURL := SecureURL(strings.TrimSpace(rawURL))

	pageType := Classify(pageURL)
	if pageType == PageUnrecognized {
		e.logger.Warn("not an arXiv page URL", "url", pageURL)
		return scrape.Unsupported()
	}

	extract := e.pageExtractor(pageType)
	if extract == nil {
		e.logger.Warn("page type not supported", "url", pageURL, "type", pageType)
		return scrape.Unsupported()
	}

	result, err := run(extract, html, pageURL)
	if err != nil {
		e.logger.Warn("extraction failed", "url", pageURL, "type", pageType, "err", err)
		return scrape.Failed()
	}
	if result.Empty() {
		e.logger.Warn("nothing extracted", "url", pageURL, "type", pageType)
	}
	return result
}

func (e *Extractor) pageExtractor(t PageType) pageFunc {
	switch t {
	case PageAbstract:
		return e.extractAbstract
	case PageHTML:
		return e.extractFullText
	case PageNew, PageRecent:
		return e.extractListing
	case PageSearch:
		return e.extractSearch
	case PagePDF, PageUnrecognized:
		return nil
	}
	return nil
}

// run parses html and calls extract, turning panics into errors.
func run(extract pageFunc, html, pageURL string) (result scrape.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = scrape.Result{}, fmt.Errorf("panic: %v", r)
		}
	}()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return scrape.Result{}, scrape.Errorf(scrape.EINVALID, "failed to parse HTML: %v", err)
	}
	return extract(doc, pageURL)
}

// metaContent returns the trimmed content of the first <meta name=...>.
func metaContent(doc *goquery.Document, name string) string {
	sel := doc.Find(fmt.Sprintf("meta[name=%q]", name)).First()
	return strings.TrimSpace(sel.AttrOr("content", ""))
}

package goquery

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scrape"
)

// Ensure GenericExtractor implements scrape.SiteExtractor at compile time.
var _ scrape.SiteExtractor = (*GenericExtractor)(nil)

// DefaultMinContentLength is the shortest Markdown body treated as an article.
const DefaultMinContentLength = 200

// GenericExtractor handles pages of sites without a dedicated module. Pages
// with a substantial main content become articles; all other pages yield
// their same-host links.
type GenericExtractor struct {
	content   scrape.ContentExtractor
	conv      scrape.Converter
	dates     scrape.DateNormalizer
	logger    *slog.Logger
	minLength int
}

// Option configures a GenericExtractor.
type Option func(*GenericExtractor)

// WithMinContentLength sets the shortest Markdown body treated as an article.
func WithMinContentLength(n int) Option {
	return func(e *GenericExtractor) {
		e.minLength = n
	}
}

// WithLogger sets the logger for skipped content. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(e *GenericExtractor) {
		e.logger = logger
	}
}

// NewGenericExtractor creates a GenericExtractor.
func NewGenericExtractor(content scrape.ContentExtractor, conv scrape.Converter, dates scrape.DateNormalizer, opts ...Option) *GenericExtractor {
	e := &GenericExtractor{
		content:   content,
		conv:      conv,
		dates:     dates,
		logger:    slog.New(slog.DiscardHandler),
		minLength: DefaultMinContentLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns an article for content pages and links for all others.
func (e *GenericExtractor) Extract(html string, pageURL string) (result scrape.Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("extraction failed", "url", pageURL, "err", fmt.Errorf("panic: %v", r))
			result = scrape.Failed()
		}
	}()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		e.logger.Warn("extraction failed", "url", pageURL, "err", err)
		return scrape.Failed()
	}

	article, err := e.article(doc, html)
	if err != nil {
		e.logger.Warn("extraction failed", "url", pageURL, "err", err)
		return scrape.Failed()
	}
	if article != nil {
		return scrape.ArticleResult(article)
	}

	links, err := documentLinks(doc, pageURL)
	if err != nil {
		e.logger.Warn("extraction failed", "url", pageURL, "err", err)
		return scrape.Failed()
	}
	return scrape.LinksResult(links...)
}

// article returns nil when the page has no substantial main content.
func (e *GenericExtractor) article(doc *goquery.Document, html string) (*scrape.Article, error) {
	content, err := e.content.Extract(html)
	if err != nil {
		e.logger.Debug("no main content", "err", err)
		return nil, nil
	}
	if strings.TrimSpace(content.ContentHTML) == "" {
		return nil, nil
	}

	md, err := e.conv.Convert(content.ContentHTML)
	if err != nil {
		return nil, fmt.Errorf("convert content: %w", err)
	}
	md = strings.TrimSpace(md)
	if len(md) < e.minLength {
		return nil, nil
	}

	article := &scrape.Article{
		Title:   content.Title,
		Author:  firstText(doc, "div.author", "div.source"),
		Content: md,
	}
	if article.Title == "" {
		article.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if article.Author == "" {
		article.Author = content.Author
	}
	if date, ok := e.dates.Normalize(firstText(doc, "div.date")); ok {
		article.PublishDate = date
	} else if date, ok := e.dates.Normalize(content.Date); ok {
		article.PublishDate = date
	}
	return article, nil
}

// firstText returns the collapsed text of the first selector that matches
// a non-empty element.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, s := range selectors {
		text := strings.Join(strings.Fields(doc.Find(s).First().Text()), " ")
		if text != "" {
			return text
		}
	}
	return ""
}

package arxiv

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scrape"
)

// extractAbstract handles /abs/ pages. In ModeHTML the page is deferred to
// its rendered variant when the page links one.
func (e *Extractor) extractAbstract(doc *goquery.Document, pageURL string) (scrape.Result, error) {
	if e.cfg.Mode == ModeHTML {
		href := strings.TrimSpace(doc.Find("a#latexml-download-link").First().AttrOr("href", ""))
		if href != "" {
			link, err := NormalizeURL(href, e.cfg.BaseURL)
			if err == nil {
				return scrape.LinksResult(link), nil
			}
			e.logger.Debug("skipping rendered page link", "url", pageURL, "href", href, "err", err)
		}
	}

	article := &scrape.Article{
		Title:   metaContent(doc, "citation_title"),
		Author:  abstractAuthors(doc),
		Content: metaContent(doc, "citation_abstract"),
	}
	article.PublishDate = e.citationDate(doc)

	if *article == (scrape.Article{}) {
		return scrape.NewResult(), nil
	}
	return scrape.ArticleResult(article), nil
}

func (e *Extractor) citationDate(doc *goquery.Document) string {
	for _, name := range []string{"citation_date", "citation_online_date"} {
		raw := metaContent(doc, name)
		if raw == "" {
			continue
		}
		if date, ok := e.dates.Normalize(raw); ok {
			return date
		}
	}
	return ""
}

package arxiv

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scrape"
)

// extractFullText handles rendered /html/ papers.
func (e *Extractor) extractFullText(doc *goquery.Document, pageURL string) (scrape.Result, error) {
	var blocks []string
	var convErr error
	doc.Find(".ltx_abstract, .ltx_section").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		fragment, err := goquery.OuterHtml(sel)
		if err != nil {
			convErr = fmt.Errorf("render block %d: %w", i, err)
			return false
		}
		md, err := e.conv.Convert(fragment)
		if err != nil {
			convErr = fmt.Errorf("convert block %d: %w", i, err)
			return false
		}
		if md = strings.TrimSpace(md); md != "" {
			blocks = append(blocks, md)
		}
		return true
	})
	if convErr != nil {
		return scrape.Result{}, convErr
	}

	article := &scrape.Article{
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Author:  fullTextAuthors(doc),
		Content: strings.Join(blocks, "\n\n"),
	}
	if date, ok := DateFromURL(pageURL, e.cfg.YearPrefix); ok {
		article.PublishDate = date
	}

	if article.Title == "" && article.Author == "" && article.Content == "" {
		return scrape.NewResult(), nil
	}
	return scrape.ArticleResult(article), nil
}

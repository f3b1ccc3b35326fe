package arxiv

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scrape"
)

// extractListing handles /list/<category>/new and /recent pages. Each entry
// yields the link of the configured mode, or its /abs/ link when the paper
// has no such variant.
func (e *Extractor) extractListing(doc *goquery.Document, pageURL string) (scrape.Result, error) {
	preferred := "/" + string(e.cfg.Mode) + "/"

	var links []string
	doc.Find("dt").Each(func(i int, dt *goquery.Selection) {
		href := hrefContaining(dt, preferred)
		if href == "" {
			href = hrefContaining(dt, "/abs/")
		}
		if href == "" {
			e.logger.Debug("listing entry without paper link", "url", pageURL, "entry", i)
			return
		}
		link, err := NormalizeURL(href, e.cfg.BaseURL)
		if err != nil {
			e.logger.Debug("skipping listing link", "url", pageURL, "href", href, "err", err)
			return
		}
		links = append(links, link)
	})
	return scrape.LinksResult(links...), nil
}

// extractSearch handles /search/ result pages. Results only link /abs/
// pages; those defer to /html/ themselves in ModeHTML.
func (e *Extractor) extractSearch(doc *goquery.Document, pageURL string) (scrape.Result, error) {
	var links []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if !strings.Contains(href, "/abs/") {
			return
		}
		link, err := NormalizeURL(href, e.cfg.BaseURL)
		if err != nil {
			e.logger.Debug("skipping search link", "url", pageURL, "href", href, "err", err)
			return
		}
		links = append(links, link)
	})
	return scrape.LinksResult(links...), nil
}

// hrefContaining returns the first href below sel containing segment.
func hrefContaining(sel *goquery.Selection, segment string) string {
	var found string
	sel.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if href := a.AttrOr("href", ""); strings.Contains(href, segment) {
			found = href
			return false
		}
		return true
	})
	return found
}

package main

import (
	"fmt"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if deps.Crawler == nil {
		return scrape.Errorf(scrape.EINTERNAL, "no crawler configured")
	}

	seeds := c.URLs
	if len(seeds) == 0 {
		active := true
		sites, err := deps.Sites.FindSites(deps.Ctx, scrape.SiteFilter{Activated: &active})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
			return err
		}
		for _, s := range sites {
			seeds = append(seeds, s.URL)
		}
	}
	if len(seeds) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no seed URLs. Pass URLs or register sites with 'scrape site add <url>'.")
		return scrape.Errorf(scrape.EINVALID, "no seed URLs")
	}

	if c.Concurrency > 0 {
		deps.Crawler.Concurrency = c.Concurrency
	}
	if c.MaxPages > 0 {
		deps.Crawler.MaxPages = c.MaxPages
	}
	deps.Crawler.MaxDepth = c.MaxDepth

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Crawling %d seed URLs\n", event.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d] %s\n", event.Completed, crawl.TruncateURL(event.URL, 80))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, scrape.ErrorMessage(event.Error))
		case crawl.ProgressFinished:
			// Summary printed after crawl completes
		}
	}

	stats, err := deps.Crawler.Crawl(deps.Ctx, seeds, progress)
	if stats != nil {
		fmt.Fprintf(deps.Stdout, "Done: %s\n", crawl.FormatStats(stats))
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/crawl"
	"github.com/fwojciec/scrape/goquery"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var html string
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		html = string(data)
	} else {
		if deps.Fetcher == nil {
			return scrape.Errorf(scrape.EINTERNAL, "no fetcher configured")
		}
		var err error
		html, err = crawl.FetchWithRetry(deps.Ctx, c.URL, deps.Fetcher.Fetch, deps.Logger)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
			return err
		}
	}

	if c.Links {
		links, err := goquery.ExtractLinks(html, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scrape.ErrorMessage(err))
			return err
		}
		for _, link := range links {
			fmt.Fprintln(deps.Stdout, link)
		}
		return nil
	}

	result := deps.Extractor.Extract(html, c.URL)

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}

	switch result.Outcome {
	case scrape.OutcomeUnsupported:
		fmt.Fprintf(deps.Stderr, "no extraction routine handles %s\n", c.URL)
	case scrape.OutcomeFailed:
		fmt.Fprintf(deps.Stderr, "extraction failed for %s\n", c.URL)
		return scrape.Errorf(scrape.EINTERNAL, "extraction failed for %s", c.URL)
	}
	return nil
}

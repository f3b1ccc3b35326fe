package main_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/scrape"
	main "github.com/fwojciec/scrape/cmd/scrape"
	"github.com/fwojciec/scrape/crawl"
	"github.com/fwojciec/scrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawlCmd_Run(t *testing.T) {
	t.Parallel()

	newCrawler := func(saved *[]*scrape.Document) *crawl.Crawler {
		var mu sync.Mutex
		return &crawl.Crawler{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return url, nil
				},
			},
			Extractor: &mock.SiteExtractor{
				ExtractFn: func(html, _ string) scrape.Result {
					return scrape.ArticleResult(&scrape.Article{Title: "Story", Content: "Body of " + html})
				},
			},
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(_ context.Context, _ scrape.DocumentFilter) ([]*scrape.Document, error) {
					return nil, nil
				},
				CreateDocumentFn: func(_ context.Context, doc *scrape.Document) error {
					mu.Lock()
					defer mu.Unlock()
					*saved = append(*saved, doc)
					return nil
				},
			},
			RetryDelays: []time.Duration{0},
		}
	}

	t.Run("crawls URLs given on the command line", func(t *testing.T) {
		t.Parallel()

		var saved []*scrape.Document
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Crawler: newCrawler(&saved),
		}

		cmd := &main.CrawlCmd{
			URLs:        []string{"https://example.com/a", "https://example.com/b"},
			Concurrency: 2,
			MaxPages:    10,
			MaxDepth:    1,
		}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Len(t, saved, 2)
		assert.Equal(t, 2, deps.Crawler.Concurrency)
		assert.Equal(t, 10, deps.Crawler.MaxPages)
		assert.Equal(t, 1, deps.Crawler.MaxDepth)
		assert.Contains(t, stdout.String(), "Crawling 2 seed URLs")
		assert.Contains(t, stdout.String(), "Done: 2 fetched, 2 saved")
	})

	t.Run("uses activated sites when no URLs are given", func(t *testing.T) {
		t.Parallel()

		var filter scrape.SiteFilter
		sites := &mock.SiteService{
			FindSitesFn: func(_ context.Context, f scrape.SiteFilter) ([]*scrape.Site, error) {
				filter = f
				return []*scrape.Site{{URL: "https://example.com/news", Activated: true}}, nil
			},
		}

		var saved []*scrape.Document
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Sites:   sites,
			Crawler: newCrawler(&saved),
		}

		err := (&main.CrawlCmd{}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, filter.Activated)
		assert.True(t, *filter.Activated)
		require.Len(t, saved, 1)
		assert.Equal(t, "https://example.com/news", saved[0].URL)
	})

	t.Run("fails without seeds", func(t *testing.T) {
		t.Parallel()

		sites := &mock.SiteService{
			FindSitesFn: func(_ context.Context, _ scrape.SiteFilter) ([]*scrape.Site, error) {
				return nil, nil
			},
		}

		var saved []*scrape.Document
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Sites:   sites,
			Crawler: newCrawler(&saved),
		}

		err := (&main.CrawlCmd{}).Run(deps)

		assert.Equal(t, scrape.EINVALID, scrape.ErrorCode(err))
		assert.Contains(t, stderr.String(), "scrape site add")
	})

	t.Run("reports failed pages on stderr", func(t *testing.T) {
		t.Parallel()

		var saved []*scrape.Document
		crawler := newCrawler(&saved)
		crawler.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", scrape.Errorf(scrape.ENOTFOUND, "page not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Crawler: crawler,
		}

		err := (&main.CrawlCmd{URLs: []string{"https://example.com/gone"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "skip https://example.com/gone")
		assert.Contains(t, stdout.String(), "1 failed")
	})
}

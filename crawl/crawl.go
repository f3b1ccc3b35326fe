// Package crawl drives the fetch, extract and store loop over a frontier of
// links discovered from seed URLs.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/scrape"
	"golang.org/x/sync/errgroup"
)

const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01

	// DefaultConcurrency is the number of workers used when Concurrency is unset.
	DefaultConcurrency = 10
	// DefaultMaxPages limits the number of URLs processed to prevent runaway crawls.
	DefaultMaxPages = 1000
)

// Cache record kinds.
const (
	CacheDocuments = "documents"
	CacheInfos     = "infos"
)

// Crawler fetches pages breadth-first from a set of seeds, routes them
// through a SiteExtractor, stores articles and queues discovered links.
//
// Fetcher, Extractor and Documents are required. Infos and InfoExtractor
// together enable info extraction. Cache, RateLimiter and Logger are optional.
type Crawler struct {
	Fetcher       scrape.Fetcher
	Extractor     scrape.SiteExtractor
	Documents     scrape.DocumentService
	Infos         scrape.InfoService
	InfoExtractor scrape.InfoExtractor
	Cache         scrape.Cache
	RateLimiter   scrape.DomainLimiter
	Logger        *slog.Logger

	Concurrency int
	MaxPages    int
	// MaxDepth bounds how many hops from a seed are followed. Zero means no limit.
	MaxDepth    int
	RetryDelays []time.Duration
}

// Stats holds the outcome of a crawl.
type Stats struct {
	Fetched     int // pages fetched successfully
	Saved       int // documents stored
	Links       int // new links queued
	Duplicates  int // discovered links already queued or visited
	Failed      int // fetch errors and failed extractions
	Unsupported int // pages no extraction routine handles
	Skipped     int // pages already stored
	Cached      int // records written to the cache after a save failure
	Infos       int // infos stored
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	link    scrape.Link
	skipped bool
	err     error
	outcome scrape.Outcome
	links   []string
	saved   bool
	cached  int
	infos   int
}

// Crawl processes seeds and every link reachable from them until the
// frontier is empty, MaxPages URLs have been dispatched or ctx is canceled.
// Stats are returned even when the crawl is interrupted.
func (c *Crawler) Crawl(ctx context.Context, seeds []string, progress ProgressFunc) (*Stats, error) {
	if c.Fetcher == nil || c.Extractor == nil || c.Documents == nil {
		return nil, scrape.Errorf(scrape.EINVALID, "crawler requires a fetcher, an extractor and a document service")
	}
	if len(seeds) == 0 {
		return nil, scrape.Errorf(scrape.EINVALID, "at least one seed URL required")
	}

	emit := func(ev ProgressEvent) {
		if progress != nil {
			progress(ev)
		}
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	for _, seed := range seeds {
		frontier.Push(scrape.Link{URL: seed})
	}

	var stats Stats
	completed := 0
	emit(ProgressEvent{Type: ProgressStarted, Total: frontier.Len()})

	handle := func(res pageResult) {
		completed++
		c.record(&stats, frontier, res)

		ev := ProgressEvent{Type: ProgressCompleted, Completed: completed, URL: res.link.URL}
		switch {
		case res.err != nil:
			ev.Type = ProgressFailed
			ev.Error = res.err
		case !res.skipped && res.outcome == scrape.OutcomeFailed:
			ev.Type = ProgressFailed
			ev.Error = scrape.Errorf(scrape.EINTERNAL, "extraction failed")
		}
		emit(ev)
	}

	err := c.walk(ctx, frontier, handle)
	emit(ProgressEvent{Type: ProgressFinished, Completed: completed})
	return &stats, err
}

// record folds a page result into stats and queues its links.
func (c *Crawler) record(stats *Stats, frontier scrape.URLFrontier, res pageResult) {
	if res.skipped {
		stats.Skipped++
		return
	}
	if res.err != nil {
		stats.Failed++
		return
	}

	stats.Fetched++
	switch res.outcome {
	case scrape.OutcomeUnsupported:
		stats.Unsupported++
	case scrape.OutcomeFailed:
		stats.Failed++
	}

	depth := res.link.Depth + 1
	if c.MaxDepth <= 0 || depth <= c.MaxDepth {
		for _, l := range res.links {
			if frontier.Seen(l) {
				stats.Duplicates++
				continue
			}
			if frontier.Push(scrape.Link{URL: l, Depth: depth}) {
				stats.Links++
			}
		}
	}

	if res.saved {
		stats.Saved++
	}
	stats.Cached += res.cached
	stats.Infos += res.infos
}

// walk dispatches frontier links to a pool of workers and hands every
// result to handle from a single goroutine, so handle needs no locking.
func (c *Crawler) walk(ctx context.Context, frontier *Frontier, handle func(pageResult)) error {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	workCh := make(chan scrape.Link, concurrency)
	resultCh := make(chan pageResult)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			for link := range workCh {
				res := c.process(gctx, link)
				select {
				case resultCh <- res:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	waitCh := make(chan error, 1)
	go func() {
		waitCh <- g.Wait()
		close(resultCh)
	}()

	dispatched := 0
	pending := 0
	var next *scrape.Link
	if link, ok := frontier.Pop(); ok {
		next = &link
	}

coordinatorLoop:
	for {
		if next == nil && pending == 0 {
			break coordinatorLoop
		}
		if ctx.Err() != nil {
			break coordinatorLoop
		}

		if next != nil {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case workCh <- *next:
				dispatched++
				pending++
				next = nil
			case res := <-resultCh:
				pending--
				handle(res)
			}
		} else {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case res, ok := <-resultCh:
				if !ok {
					break coordinatorLoop
				}
				pending--
				handle(res)
			}
		}

		if next == nil && dispatched < maxPages {
			if link, ok := frontier.Pop(); ok {
				next = &link
			}
		}
	}

	close(workCh)
	for res := range resultCh {
		handle(res)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return <-waitCh
}

// process fetches, extracts and stores a single URL.
func (c *Crawler) process(ctx context.Context, link scrape.Link) pageResult {
	res := pageResult{link: link}
	logger := c.logger()

	u, err := url.Parse(link.URL)
	if err != nil || u.Host == "" {
		res.err = scrape.Errorf(scrape.EINVALID, "invalid URL %q", link.URL)
		return res
	}

	existing, err := c.Documents.FindDocuments(ctx, scrape.DocumentFilter{URL: &link.URL, Limit: 1})
	if err != nil {
		res.err = err
		return res
	}
	if len(existing) > 0 {
		logger.Debug("already stored", "url", link.URL)
		res.skipped = true
		return res
	}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			res.err = err
			return res
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, link.URL, c.Fetcher.Fetch, logger, delays)
	if err != nil {
		res.err = err
		return res
	}

	result := c.Extractor.Extract(html, link.URL)
	res.outcome = result.Outcome
	res.links = result.Links
	if result.Article != nil {
		c.store(ctx, &res, result.Article)
	}
	return res
}

// store persists an article and its infos. Records that cannot be saved
// are handed to the cache.
func (c *Crawler) store(ctx context.Context, res *pageResult, a *scrape.Article) {
	logger := c.logger()

	doc := scrape.NewDocument(res.link.URL, a)
	doc.ContentHash = ComputeHash(doc.Content)
	doc.FetchedAt = time.Now().UTC()
	if err := doc.Validate(); err != nil {
		logger.Debug("empty article not stored", "url", doc.URL)
		return
	}

	if err := c.Documents.CreateDocument(ctx, doc); err != nil {
		if scrape.ErrorCode(err) == scrape.ECONFLICT {
			res.skipped = true
			return
		}
		logger.Warn("save document failed", "url", doc.URL, "error", err)
		if c.cache(CacheDocuments, doc) {
			res.cached++
		}
		return
	}
	res.saved = true

	if c.Infos == nil || c.InfoExtractor == nil {
		return
	}

	infos, err := c.InfoExtractor.ExtractInfos(ctx, doc)
	if err != nil {
		logger.Warn("extract infos failed", "url", doc.URL, "error", err)
		return
	}

	var unsaved []*scrape.Info
	for _, info := range infos {
		info.DocumentID = doc.ID
		if info.URL == "" {
			info.URL = doc.URL
		}
		if err := c.Infos.CreateInfo(ctx, info); err != nil {
			logger.Warn("save info failed", "url", doc.URL, "error", err)
			unsaved = append(unsaved, info)
			continue
		}
		res.infos++
	}
	if len(unsaved) > 0 && c.cache(CacheInfos, unsaved) {
		res.cached++
	}
}

func (c *Crawler) cache(kind string, v any) bool {
	if c.Cache == nil {
		return false
	}
	path, err := c.Cache.Save(kind, v)
	if err != nil {
		c.logger().Error("cache write failed", "kind", kind, "error", err)
		return false
	}
	c.logger().Info("cached unsaved records", "kind", kind, "path", path)
	return true
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

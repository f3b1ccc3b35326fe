package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/scrape"
)

// Ensure LoggingExtractor implements scrape.SiteExtractor.
var _ scrape.SiteExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a SiteExtractor and logs each page's outcome.
type LoggingExtractor struct {
	next   scrape.SiteExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next scrape.SiteExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor. Extracted pages are logged at
// info level, unsupported and failed pages at warn level.
func (e *LoggingExtractor) Extract(html string, url string) scrape.Result {
	begin := time.Now()
	result := e.next.Extract(html, url)

	level := slog.LevelInfo
	if result.Outcome != scrape.OutcomeExtracted {
		level = slog.LevelWarn
	}
	e.logger.Log(context.Background(), level, "extract",
		"url", url,
		"outcome", result.Outcome,
		"article", result.Article != nil,
		"links", len(result.Links),
		"duration", time.Since(begin),
	)
	return result
}

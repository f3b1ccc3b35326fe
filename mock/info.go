package mock

import (
	"context"

	"github.com/fwojciec/scrape"
)

var _ scrape.InfoService = (*InfoService)(nil)

// InfoService is a mock implementation of scrape.InfoService.
type InfoService struct {
	CreateInfoFn func(ctx context.Context, info *scrape.Info) error
	FindInfosFn  func(ctx context.Context, filter scrape.InfoFilter) ([]*scrape.Info, error)
}

func (s *InfoService) CreateInfo(ctx context.Context, info *scrape.Info) error {
	return s.CreateInfoFn(ctx, info)
}

func (s *InfoService) FindInfos(ctx context.Context, filter scrape.InfoFilter) ([]*scrape.Info, error) {
	return s.FindInfosFn(ctx, filter)
}

var _ scrape.InfoExtractor = (*InfoExtractor)(nil)

// InfoExtractor is a mock implementation of scrape.InfoExtractor.
type InfoExtractor struct {
	ExtractInfosFn func(ctx context.Context, doc *scrape.Document) ([]*scrape.Info, error)
}

func (e *InfoExtractor) ExtractInfos(ctx context.Context, doc *scrape.Document) ([]*scrape.Info, error) {
	return e.ExtractInfosFn(ctx, doc)
}

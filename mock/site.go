package mock

import (
	"context"

	"github.com/fwojciec/scrape"
)

var _ scrape.SiteService = (*SiteService)(nil)

// SiteService is a mock implementation of scrape.SiteService.
type SiteService struct {
	CreateSiteFn func(ctx context.Context, site *scrape.Site) error
	FindSitesFn  func(ctx context.Context, filter scrape.SiteFilter) ([]*scrape.Site, error)
	UpdateSiteFn func(ctx context.Context, id string, upd scrape.SiteUpdate) (*scrape.Site, error)
	DeleteSiteFn func(ctx context.Context, id string) error
}

func (s *SiteService) CreateSite(ctx context.Context, site *scrape.Site) error {
	return s.CreateSiteFn(ctx, site)
}

func (s *SiteService) FindSites(ctx context.Context, filter scrape.SiteFilter) ([]*scrape.Site, error) {
	return s.FindSitesFn(ctx, filter)
}

func (s *SiteService) UpdateSite(ctx context.Context, id string, upd scrape.SiteUpdate) (*scrape.Site, error) {
	return s.UpdateSiteFn(ctx, id, upd)
}

func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	return s.DeleteSiteFn(ctx, id)
}

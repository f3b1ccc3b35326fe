package scrape

import (
	"context"
	"net/url"
	"time"
)

// Site is a crawl seed. Activated sites are crawled by default.
type Site struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Activated bool      `json:"activated"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "site URL required")
	}
	u, err := url.Parse(s.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Errorf(EINVALID, "site URL must be an absolute http(s) URL: %q", s.URL)
	}
	return nil
}

// SiteService represents a service for managing crawl seeds.
type SiteService interface {
	// CreateSite creates a new site.
	// Returns ECONFLICT if the URL is already registered.
	CreateSite(ctx context.Context, site *Site) error

	// FindSites retrieves sites matching the filter.
	FindSites(ctx context.Context, filter SiteFilter) ([]*Site, error)

	// UpdateSite updates an existing site.
	// Returns ENOTFOUND if site does not exist.
	UpdateSite(ctx context.Context, id string, upd SiteUpdate) (*Site, error)

	// DeleteSite permanently removes a site.
	// Returns ENOTFOUND if site does not exist.
	DeleteSite(ctx context.Context, id string) error
}

// SiteFilter represents a filter for FindSites.
type SiteFilter struct {
	URL       *string `json:"url"`
	Activated *bool   `json:"activated"`
}

// SiteUpdate represents fields that can be updated on a site.
type SiteUpdate struct {
	Activated *bool `json:"activated"`
}

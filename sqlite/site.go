package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/scrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ scrape.SiteService = (*SiteService)(nil)

// SiteService implements scrape.SiteService using SQLite.
type SiteService struct {
	db *DB
}

// NewSiteService creates a new SiteService.
func NewSiteService(db *DB) *SiteService {
	return &SiteService{db: db}
}

// CreateSite creates a new site.
func (s *SiteService) CreateSite(ctx context.Context, site *scrape.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}

	site.ID = uuid.New().String()
	site.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sites (id, url, activated, created_at)
		VALUES (?, ?, ?, ?)
	`, site.ID, site.URL, site.Activated, site.CreatedAt.Format(time.RFC3339))
	if isUniqueViolation(err) {
		return scrape.Errorf(scrape.ECONFLICT, "site already exists: %s", site.URL)
	}
	return err
}

// FindSites retrieves sites matching the filter, oldest first.
func (s *SiteService) FindSites(ctx context.Context, filter scrape.SiteFilter) ([]*scrape.Site, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, activated, created_at FROM sites WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Activated != nil {
		query.WriteString(" AND activated = ?")
		args = append(args, *filter.Activated)
	}

	query.WriteString(" ORDER BY created_at ASC, rowid ASC")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*scrape.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}

	return sites, rows.Err()
}

// UpdateSite updates an existing site.
func (s *SiteService) UpdateSite(ctx context.Context, id string, upd scrape.SiteUpdate) (*scrape.Site, error) {
	site, err := s.findSiteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Activated != nil {
		site.Activated = *upd.Activated
	}

	if _, err := s.db.ExecContext(ctx, "UPDATE sites SET activated = ? WHERE id = ?", site.Activated, id); err != nil {
		return nil, err
	}

	return site, nil
}

// DeleteSite permanently removes a site.
func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sites WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return scrape.Errorf(scrape.ENOTFOUND, "site not found")
	}

	return nil
}

func (s *SiteService) findSiteByID(ctx context.Context, id string) (*scrape.Site, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, url, activated, created_at FROM sites WHERE id = ?", id)
	site, err := scanSite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, scrape.Errorf(scrape.ENOTFOUND, "site not found")
	}
	return site, err
}

func scanSite(row scanner) (*scrape.Site, error) {
	var site scrape.Site
	var createdAt string

	if err := row.Scan(&site.ID, &site.URL, &site.Activated, &createdAt); err != nil {
		return nil, err
	}

	var err error
	site.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &site, nil
}

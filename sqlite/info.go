package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/scrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ scrape.InfoService = (*InfoService)(nil)

// InfoService implements scrape.InfoService using SQLite.
type InfoService struct {
	db *DB
}

// NewInfoService creates a new InfoService.
func NewInfoService(db *DB) *InfoService {
	return &InfoService{db: db}
}

// CreateInfo creates a new info. Returns ENOTFOUND if the document does not exist.
func (s *InfoService) CreateInfo(ctx context.Context, info *scrape.Info) error {
	if err := info.Validate(); err != nil {
		return err
	}

	info.ID = uuid.New().String()
	info.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO infos (id, document_id, url, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, info.ID, info.DocumentID, info.URL, info.Content, info.CreatedAt.Format(time.RFC3339))
	if err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return scrape.Errorf(scrape.ENOTFOUND, "document not found: %s", info.DocumentID)
	}
	return err
}

// FindInfos retrieves infos matching the filter in insertion order.
func (s *InfoService) FindInfos(ctx context.Context, filter scrape.InfoFilter) ([]*scrape.Info, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, document_id, url, content, created_at FROM infos WHERE 1=1")

	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}

	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, 0)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []*scrape.Info
	for rows.Next() {
		var info scrape.Info
		var createdAt string

		if err := rows.Scan(&info.ID, &info.DocumentID, &info.URL, &info.Content, &createdAt); err != nil {
			return nil, err
		}

		info.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}
		infos = append(infos, &info)
	}

	return infos, rows.Err()
}

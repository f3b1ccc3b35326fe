package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/scrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ scrape.DocumentService = (*DocumentService)(nil)

const documentColumns = "id, url, title, author, publish_date, content, content_hash, fetched_at"

// DocumentService implements scrape.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// CreateDocument creates a new document. ID is always generated; FetchedAt
// and ContentHash are filled in when the caller left them empty.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *scrape.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now()
	}
	doc.FetchedAt = doc.FetchedAt.UTC().Truncate(time.Second)
	if doc.ContentHash == "" {
		doc.ContentHash = hashContent(doc.Content)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.URL, doc.Title, doc.Author, doc.PublishDate, doc.Content, doc.ContentHash,
		doc.FetchedAt.Format(time.RFC3339))
	if isUniqueViolation(err) {
		return scrape.Errorf(scrape.ECONFLICT, "document already exists: %s", doc.URL)
	}
	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*scrape.Document, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE id = ?", id)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, scrape.Errorf(scrape.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter scrape.DocumentFilter) ([]*scrape.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*scrape.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document. Its infos go with it.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return scrape.Errorf(scrape.ENOTFOUND, "document not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*scrape.Document, error) {
	var doc scrape.Document
	var fetchedAt string

	if err := row.Scan(&doc.ID, &doc.URL, &doc.Title, &doc.Author, &doc.PublishDate,
		&doc.Content, &doc.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	var err error
	doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

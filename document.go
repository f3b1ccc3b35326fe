package scrape

import (
	"context"
	"time"
)

// Document is an extracted article persisted together with its source URL.
type Document struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	PublishDate string    `json:"publishDate,omitempty"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// NewDocument builds a document from an article extracted at url.
func NewDocument(url string, a *Article) *Document {
	return &Document{
		URL:         url,
		Title:       a.Title,
		Author:      a.Author,
		PublishDate: a.PublishDate,
		Content:     a.Content,
	}
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if d.Title == "" && d.Content == "" {
		return Errorf(EINVALID, "document needs a title or content")
	}
	return nil
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	// Returns ECONFLICT if a document with the same URL exists.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, newest first.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document and its infos.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Cache keeps records whose persistence failed so they can be replayed later.
type Cache interface {
	// Save writes v under the given record kind and returns where it went.
	Save(kind string, v any) (path string, err error)
}

package scrape

import (
	"context"
	"time"
)

// Info is a single fact pulled out of a document's content.
type Info struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"documentId"`
	URL        string    `json:"url"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the info contains invalid fields.
func (i *Info) Validate() error {
	if i.DocumentID == "" {
		return Errorf(EINVALID, "info document ID required")
	}
	if i.Content == "" {
		return Errorf(EINVALID, "info content required")
	}
	return nil
}

// InfoExtractor pulls facts out of a stored document.
type InfoExtractor interface {
	ExtractInfos(ctx context.Context, doc *Document) ([]*Info, error)
}

// InfoService represents a service for managing infos.
type InfoService interface {
	CreateInfo(ctx context.Context, info *Info) error
	FindInfos(ctx context.Context, filter InfoFilter) ([]*Info, error)
}

// InfoFilter represents a filter for FindInfos.
type InfoFilter struct {
	DocumentID *string `json:"documentId"`

	Limit int `json:"limit"`
}

package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDocument(t *testing.T, svc *sqlite.DocumentService, url string) *scrape.Document {
	t.Helper()
	doc := &scrape.Document{
		URL:     url,
		Title:   "Attention Is All You Need",
		Content: "We propose a new simple network architecture, the Transformer.",
	}
	require.NoError(t, svc.CreateDocument(context.Background(), doc))
	return doc
}

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates document with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		doc := &scrape.Document{
			URL:         "https://arxiv.org/abs/1706.03762",
			Title:       "Attention Is All You Need",
			Author:      "Ashish Vaswani, Noam Shazeer",
			PublishDate: "2017-06-12",
			Content:     "The dominant sequence transduction models are based on complex recurrent networks.",
		}

		err := svc.CreateDocument(context.Background(), doc)
		require.NoError(t, err)

		assert.NotEmpty(t, doc.ID, "ID should be generated")
		assert.NotEmpty(t, doc.ContentHash, "ContentHash should be generated")
		assert.False(t, doc.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("keeps caller supplied hash and fetch time", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		fetchedAt := time.Date(2024, 12, 1, 8, 30, 0, 0, time.UTC)

		doc := &scrape.Document{
			URL:         "https://example.com/post",
			Title:       "Post",
			ContentHash: "abc123",
			FetchedAt:   fetchedAt,
		}
		require.NoError(t, svc.CreateDocument(context.Background(), doc))

		found, err := svc.FindDocumentByID(context.Background(), doc.ID)
		require.NoError(t, err)
		assert.Equal(t, "abc123", found.ContentHash)
		assert.True(t, fetchedAt.Equal(found.FetchedAt))
	})

	t.Run("returns EINVALID for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		err := svc.CreateDocument(context.Background(), &scrape.Document{URL: "https://example.com/empty"})

		require.Error(t, err)
		assert.Equal(t, scrape.EINVALID, scrape.ErrorCode(err))
	})

	t.Run("returns ECONFLICT for duplicate URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		createTestDocument(t, svc, "https://example.com/post")

		err := svc.CreateDocument(context.Background(), &scrape.Document{
			URL:   "https://example.com/post",
			Title: "Again",
		})

		require.Error(t, err)
		assert.Equal(t, scrape.ECONFLICT, scrape.ErrorCode(err))
	})
}

func TestDocumentService_FindDocumentByID(t *testing.T) {
	t.Parallel()

	t.Run("returns stored document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		doc := &scrape.Document{
			URL:         "https://arxiv.org/abs/2412.00001",
			Title:       "A Paper",
			Author:      "Jane Doe",
			PublishDate: "2024-12-01",
			Content:     "## Abstract\n\nText.",
		}
		require.NoError(t, svc.CreateDocument(context.Background(), doc))

		found, err := svc.FindDocumentByID(context.Background(), doc.ID)

		require.NoError(t, err)
		assert.Equal(t, doc.URL, found.URL)
		assert.Equal(t, "A Paper", found.Title)
		assert.Equal(t, "Jane Doe", found.Author)
		assert.Equal(t, "2024-12-01", found.PublishDate)
		assert.Equal(t, "## Abstract\n\nText.", found.Content)
		assert.Equal(t, doc.ContentHash, found.ContentHash)
	})

	t.Run("returns ENOTFOUND for missing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		_, err := svc.FindDocumentByID(context.Background(), "nonexistent")

		require.Error(t, err)
		assert.Equal(t, scrape.ENOTFOUND, scrape.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		createTestDocument(t, svc, "https://example.com/a")
		createTestDocument(t, svc, "https://example.com/b")

		url := "https://example.com/b"
		docs, err := svc.FindDocuments(context.Background(), scrape.DocumentFilter{URL: &url})

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, url, docs[0].URL)
	})

	t.Run("returns no documents for unknown URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		createTestDocument(t, svc, "https://example.com/a")

		url := "https://example.com/missing"
		docs, err := svc.FindDocuments(context.Background(), scrape.DocumentFilter{URL: &url})

		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("orders newest first and paginates", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		base := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			require.NoError(t, svc.CreateDocument(context.Background(), &scrape.Document{
				URL:       fmt.Sprintf("https://example.com/%d", i),
				Title:     fmt.Sprintf("Post %d", i),
				FetchedAt: base.Add(time.Duration(i) * time.Hour),
			}))
		}

		docs, err := svc.FindDocuments(context.Background(), scrape.DocumentFilter{Limit: 2, Offset: 1})

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "https://example.com/3", docs[0].URL)
		assert.Equal(t, "https://example.com/2", docs[1].URL)
	})

	t.Run("supports offset without limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		for i := 0; i < 3; i++ {
			createTestDocument(t, svc, fmt.Sprintf("https://example.com/%d", i))
		}

		docs, err := svc.FindDocuments(context.Background(), scrape.DocumentFilter{Offset: 1})

		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("removes document and its infos", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		docs := sqlite.NewDocumentService(db)
		infos := sqlite.NewInfoService(db)
		doc := createTestDocument(t, docs, "https://example.com/post")
		require.NoError(t, infos.CreateInfo(context.Background(), &scrape.Info{DocumentID: doc.ID, Content: "fact"}))

		err := docs.DeleteDocument(context.Background(), doc.ID)
		require.NoError(t, err)

		_, err = docs.FindDocumentByID(context.Background(), doc.ID)
		assert.Equal(t, scrape.ENOTFOUND, scrape.ErrorCode(err))

		remaining, err := infos.FindInfos(context.Background(), scrape.InfoFilter{DocumentID: &doc.ID})
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("returns ENOTFOUND for missing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)

		err := svc.DeleteDocument(context.Background(), "nonexistent")

		require.Error(t, err)
		assert.Equal(t, scrape.ENOTFOUND, scrape.ErrorCode(err))
	})
}

package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkWALMode compares write performance between WAL and rollback journal modes.
// This simulates a crawl workload: inserting many documents.
func BenchmarkWALMode(b *testing.B) {
	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkDocumentInserts(b, false)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkDocumentInserts(b, true)
	})
}

func benchmarkDocumentInserts(b *testing.B, useWAL bool) {
	b.Helper()

	// Create a temporary file for the database
	tmpDir := b.TempDir()
	dbPath := filepath.Join(tmpDir, "bench.db")

	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())

	setJournalMode(b, db, useWAL)

	defer func() {
		db.Close()
		// Clean up WAL files if they exist
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	ctx := context.Background()
	docSvc := sqlite.NewDocumentService(db)

	// Reset timer to exclude setup time
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		doc := &scrape.Document{
			URL:     fmt.Sprintf("https://example.com/news/%d", i),
			Title:   fmt.Sprintf("Page %d", i),
			Content: fmt.Sprintf("# Page %d\n\nThis is the content of page %d with some additional text to make it more realistic. Lorem ipsum dolor sit amet, consectetur adipiscing elit.", i, i),
		}
		if err := docSvc.CreateDocument(ctx, doc); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBulkInserts tests inserting a batch of documents (simulating a full crawl).
func BenchmarkBulkInserts(b *testing.B) {
	const docsPerCrawl = 100

	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkBulkInserts(b, false, docsPerCrawl)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkBulkInserts(b, true, docsPerCrawl)
	})
}

func benchmarkBulkInserts(b *testing.B, useWAL bool, docsPerCrawl int) {
	b.Helper()

	for i := 0; i < b.N; i++ {
		b.StopTimer()

		tmpDir := b.TempDir()
		dbPath := filepath.Join(tmpDir, fmt.Sprintf("bench%d.db", i))

		db := sqlite.NewDB(dbPath)
		require.NoError(b, db.Open())

		setJournalMode(b, db, useWAL)

		ctx := context.Background()
		docSvc := sqlite.NewDocumentService(db)

		b.StartTimer()

		// Insert batch of documents
		for j := 0; j < docsPerCrawl; j++ {
			doc := &scrape.Document{
				URL:     fmt.Sprintf("https://example.com/news/%d", j),
				Title:   fmt.Sprintf("Page %d", j),
				Content: fmt.Sprintf("# Page %d\n\nContent for page %d. Lorem ipsum dolor sit amet.", j, j),
			}
			if err := docSvc.CreateDocument(ctx, doc); err != nil {
				b.Fatal(err)
			}
		}

		b.StopTimer()
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}
}

// setJournalMode switches between WAL, which Open enables for files, and the
// rollback journal.
func setJournalMode(b *testing.B, db *sqlite.DB, useWAL bool) {
	b.Helper()
	mode := "DELETE"
	if useWAL {
		mode = "WAL"
	}
	_, err := db.ExecContext(context.Background(), "PRAGMA journal_mode = "+mode)
	require.NoError(b, err)
}

package fs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2024, 12, 1, 9, 5, 30, 0, time.UTC) }
}

func TestCacheWriter_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes indented JSON named by time and kind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		c := fs.NewCacheWriter(dir)
		c.Now = fixedClock()

		doc := &scrape.Document{URL: "https://example.com/post", Title: "Post", Content: "Body"}
		path, err := c.Save("documents", doc)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "20241201090530_cache_documents.json"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  \"url\": \"https://example.com/post\"")

		var got scrape.Document
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "Post", got.Title)
	})

	t.Run("does not overwrite an existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		c := fs.NewCacheWriter(dir)
		c.Now = fixedClock()

		first, err := c.Save("infos", []string{"a"})
		require.NoError(t, err)
		second, err := c.Save("infos", []string{"b"})
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.Equal(t, filepath.Join(dir, "20241201090530_cache_infos_1.json"), second)
	})

	t.Run("creates the directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "project")
		c := fs.NewCacheWriter(dir)

		path, err := c.Save("documents", map[string]string{"url": "https://example.com"})

		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("requires a kind", func(t *testing.T) {
		t.Parallel()

		c := fs.NewCacheWriter(t.TempDir())

		_, err := c.Save("", nil)

		assert.Equal(t, scrape.EINVALID, scrape.ErrorCode(err))
	})

	t.Run("returns error for unencodable value", func(t *testing.T) {
		t.Parallel()

		c := fs.NewCacheWriter(t.TempDir())

		_, err := c.Save("documents", make(chan int))

		require.Error(t, err)
	})
}

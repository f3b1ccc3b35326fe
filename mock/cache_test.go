package mock_test

import (
	"testing"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Save(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveFn", func(t *testing.T) {
		t.Parallel()

		var gotKind string
		var gotValue any
		c := &mock.Cache{
			SaveFn: func(kind string, v any) (string, error) {
				gotKind = kind
				gotValue = v
				return "/tmp/20240101000000_cache_documents.json", nil
			},
		}

		doc := &scrape.Document{URL: "https://example.com/a", Title: "A"}

		path, err := c.Save("documents", doc)

		require.NoError(t, err)
		assert.Equal(t, "/tmp/20240101000000_cache_documents.json", path)
		assert.Equal(t, "documents", gotKind)
		assert.Equal(t, doc, gotValue)
	})
}

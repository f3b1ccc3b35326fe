package arxiv_test

import (
	"testing"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/arxiv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	t.Run("prefixes root-relative path", func(t *testing.T) {
		t.Parallel()

		got, err := arxiv.NormalizeURL("/abs/2412.19784", arxiv.BaseURL)

		require.NoError(t, err)
		assert.Equal(t, "https://arxiv.org/abs/2412.19784", got)
	})

	t.Run("passes absolute URL under base", func(t *testing.T) {
		t.Parallel()

		got, err := arxiv.NormalizeURL("https://arxiv.org/html/2412.19784v1", arxiv.BaseURL)

		require.NoError(t, err)
		assert.Equal(t, "https://arxiv.org/html/2412.19784v1", got)
	})

	t.Run("folds www host onto base", func(t *testing.T) {
		t.Parallel()

		got, err := arxiv.NormalizeURL("https://www.arxiv.org/abs/2412.00001", arxiv.BaseURL)

		require.NoError(t, err)
		assert.Equal(t, "https://arxiv.org/abs/2412.00001", got)

		again, err := arxiv.NormalizeURL(got, arxiv.BaseURL)
		require.NoError(t, err)
		assert.Equal(t, got, again)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		t.Parallel()

		got, err := arxiv.NormalizeURL("  /abs/2501.00364\n", arxiv.BaseURL)

		require.NoError(t, err)
		assert.Equal(t, "https://arxiv.org/abs/2501.00364", got)
	})

	t.Run("rejects off-site and relative links", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"https://example.com/abs/1",
			"abs/2412.19784",
			"http://arxiv.org/abs/1",
			"https://www.example.com/abs/1",
			"javascript:void(0)",
			"",
		} {
			_, err := arxiv.NormalizeURL(raw, arxiv.BaseURL)

			require.Error(t, err, raw)
			assert.ErrorIs(t, err, arxiv.ErrInvalidURL, raw)
			assert.Equal(t, scrape.EINVALID, scrape.ErrorCode(err), raw)
		}
	})

	t.Run("is idempotent for root-relative paths", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"/abs/2412.19784", "/html/2501.00364v2", "/", "/list/cs.AI/new?skip=0"} {
			once, err := arxiv.NormalizeURL(path, arxiv.BaseURL)
			require.NoError(t, err)

			twice, err := arxiv.NormalizeURL(once, arxiv.BaseURL)
			require.NoError(t, err)

			assert.Equal(t, once, twice, path)
		}
	})
}

func TestSecureURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://arxiv.org/abs/1", arxiv.SecureURL("http://arxiv.org/abs/1"))
	assert.Equal(t, "https://arxiv.org/abs/1", arxiv.SecureURL("https://arxiv.org/abs/1"))
	assert.Equal(t, "https://arxiv.org/abs/1?u=http://x", arxiv.SecureURL("http://arxiv.org/abs/1?u=http://x"))
	assert.Equal(t, "https://arxiv.org/abs/1?next=http://x", arxiv.SecureURL("https://arxiv.org/abs/1?next=http://x"))
	assert.Equal(t, "https://ARXIV.ORG/abs/1", arxiv.SecureURL("HTTP://ARXIV.ORG/abs/1"))
	assert.Equal(t, "ftp://arxiv.org/http://x", arxiv.SecureURL("ftp://arxiv.org/http://x"))
}

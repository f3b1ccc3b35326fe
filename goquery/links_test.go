package goquery_test

import (
	"testing"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative links against the page", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/news/1">One</a>
<a href="2">Two</a>
<a href="https://example.com/news/3">Three</a>
</body></html>`

		links, err := goquery.ExtractLinks(html, "https://example.com/news/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/news/1",
			"https://example.com/news/2",
			"https://example.com/news/3",
		}, links)
	})

	t.Run("filters external hosts and subdomains", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://other.com/x">x</a><a href="https://blog.example.com/y">y</a><a href="/z">z</a>`

		links, err := goquery.ExtractLinks(html, "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/z"}, links)
	})

	t.Run("skips non-HTTP, fragment and self links", func(t *testing.T) {
		t.Parallel()

		html := `
<a href="javascript:void(0)">js</a>
<a href="mailto:team@example.com">mail</a>
<a href="tel:+123">tel</a>
<a href="data:text/plain,hi">data</a>
<a href="#comments">comments</a>
<a href="/post">self</a>
<a href="/post#top">self with fragment</a>
<a href="ftp://example.com/file">ftp</a>
<a href="/other#part">other</a>`

		links, err := goquery.ExtractLinks(html, "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/other"}, links)
	})

	t.Run("deduplicates keeping first occurrence", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/b">b</a><a href="/a">a</a><a href="/b#x">b again</a>`

		links, err := goquery.ExtractLinks(html, "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/b", "https://example.com/a"}, links)
	})

	t.Run("rejects page URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ExtractLinks(`<a href="/a">a</a>`, "/relative")

		require.Error(t, err)
		assert.Equal(t, scrape.EINVALID, scrape.ErrorCode(err))
	})
}

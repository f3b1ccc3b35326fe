package arxiv_test

import (
	"testing"

	"github.com/fwojciec/scrape/arxiv"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want arxiv.PageType
	}{
		{"https://arxiv.org/abs/2412.19784", arxiv.PageAbstract},
		{"http://arxiv.org/abs/2412.19784v2", arxiv.PageAbstract},
		{"https://arxiv.org/pdf/2412.19784", arxiv.PagePDF},
		{"https://arxiv.org/html/2412.19784v1", arxiv.PageHTML},
		{"https://arxiv.org/list/cs.AI/new", arxiv.PageNew},
		{"https://arxiv.org/list/cs.CL/new?skip=0&show=2000", arxiv.PageNew},
		{"https://arxiv.org/list/cs.AI/recent", arxiv.PageRecent},
		{"https://arxiv.org/list/math/recent?skip=25&show=25", arxiv.PageRecent},
		{"https://arxiv.org/search/?query=llm&searchtype=all", arxiv.PageSearch},
		{"https://www.arxiv.org/abs/2501.00364", arxiv.PageAbstract},
		{"HTTPS://ARXIV.ORG/abs/2501.00364", arxiv.PageAbstract},
		{"Http://WWW.arXiv.org/list/cs.AI/new", arxiv.PageNew},
		{"  https://arxiv.org/pdf/2501.00364\n", arxiv.PagePDF},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, arxiv.Classify(tt.url))
		})
	}
}

func TestClassify_ListingPagesAreNeverArticles(t *testing.T) {
	t.Parallel()

	listings := []string{
		"https://arxiv.org/list/cs.AI/new",
		"https://arxiv.org/list/cs.AI/new?show=50",
		"https://arxiv.org/list/hep-th/recent",
		"https://arxiv.org/list/abs/new",
		"https://arxiv.org/list/html/recent?skip=0",
	}

	for _, u := range listings {
		got := arxiv.Classify(u)
		assert.Contains(t, []arxiv.PageType{arxiv.PageNew, arxiv.PageRecent}, got, u)
		assert.NotEqual(t, arxiv.PageAbstract, got, u)
		assert.NotEqual(t, arxiv.PageHTML, got, u)
	}
}

func TestClassify_Unrecognized(t *testing.T) {
	t.Parallel()

	urls := []string{
		"",
		"not a url",
		"https://example.com/abs/2412.19784",
		"https://arxiv.org/",
		"https://arxiv.org/list/cs.AI/pastweek",
		"https://arxiv.org/list/cs.AI/new/extra",
		"ftp://arxiv.org/abs/2412.19784",
		"https://export.arxiv.org/abs/2412.19784",
	}

	for _, u := range urls {
		assert.Equal(t, arxiv.PageUnrecognized, arxiv.Classify(u), u)
	}
}

func TestPageType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abs", arxiv.PageAbstract.String())
	assert.Equal(t, "pdf", arxiv.PagePDF.String())
	assert.Equal(t, "html", arxiv.PageHTML.String())
	assert.Equal(t, "new", arxiv.PageNew.String())
	assert.Equal(t, "recent", arxiv.PageRecent.String())
	assert.Equal(t, "search", arxiv.PageSearch.String())
	assert.Equal(t, "other", arxiv.PageUnrecognized.String())
}

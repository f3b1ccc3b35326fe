package arxiv

import (
	"fmt"
	"regexp"
	"strings"
)

// PageType identifies how an arXiv URL should be interpreted.
type PageType int

const (
	PageUnrecognized PageType = iota
	PageAbstract
	PagePDF
	PageHTML
	PageNew
	PageRecent
	PageSearch
)

// String returns the path-segment name of the page type.
func (t PageType) String() string {
	switch t {
	case PageUnrecognized:
		return "other"
	case PageAbstract:
		return "abs"
	case PagePDF:
		return "pdf"
	case PageHTML:
		return "html"
	case PageNew:
		return "new"
	case PageRecent:
		return "recent"
	case PageSearch:
		return "search"
	}
	return fmt.Sprintf("PageType(%d)", int(t))
}

// Each pattern targets a distinct path segment, so at most one matches.
var pageTypePatterns = []struct {
	pageType PageType
	pattern  *regexp.Regexp
}{
	{PageAbstract, regexp.MustCompile(`^(?i:https?://(?:www\.)?arxiv\.org)/abs/`)},
	{PagePDF, regexp.MustCompile(`^(?i:https?://(?:www\.)?arxiv\.org)/pdf/`)},
	{PageHTML, regexp.MustCompile(`^(?i:https?://(?:www\.)?arxiv\.org)/html/`)},
	{PageNew, regexp.MustCompile(`^(?i:https?://(?:www\.)?arxiv\.org)/list/.*/new(?:\?.*)?$`)},
	{PageRecent, regexp.MustCompile(`^(?i:https?://(?:www\.)?arxiv\.org)/list/.*/recent(?:\?.*)?$`)},
	{PageSearch, regexp.MustCompile(`^(?i:https?://(?:www\.)?arxiv\.org)/search/`)},
}

// Classify returns the page type of rawURL, or PageUnrecognized when no
// rule matches. Scheme and host are matched case-insensitively and
// surrounding whitespace is ignored.
func Classify(rawURL string) PageType {
	rawURL = strings.TrimSpace(rawURL)
	for _, p := range pageTypePatterns {
		if p.pattern.MatchString(rawURL) {
			return p.pageType
		}
	}
	return PageUnrecognized
}

package scrape

import "fmt"

// Article is one piece of content extracted from a page.
type Article struct {
	Title  string `json:"title"`
	Author string `json:"author"` // comma-joined when there are several

	// PublishDate is a YYYY-MM-DD date. Empty means the date is unknown,
	// which is distinct from a zero date and is omitted when encoded.
	PublishDate string `json:"publish_date,omitempty"`

	Content string `json:"content"`
}

// Outcome tags how an extraction call ended.
type Outcome int

const (
	// OutcomeExtracted means a site module ran for the page. The result may
	// still be empty when nothing could be parsed.
	OutcomeExtracted Outcome = iota

	// OutcomeUnsupported means no extraction routine exists for the URL.
	OutcomeUnsupported

	// OutcomeFailed means the extraction routine returned an error or panicked.
	OutcomeFailed
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeExtracted:
		return "extracted"
	case OutcomeUnsupported:
		return "unsupported"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name.
func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "extracted":
		*o = OutcomeExtracted
	case "unsupported":
		*o = OutcomeUnsupported
	case "failed":
		*o = OutcomeFailed
	default:
		return Errorf(EINVALID, "unknown outcome %q", text)
	}
	return nil
}

// Result is the uniform output of every site module.
//
// At most one of Article and Links is the productive branch: article pages
// populate Article, listing pages populate Links. A page that defers to a
// richer variant of itself returns that single URL in Links. Both may be
// empty when nothing could be parsed.
type Result struct {
	Outcome Outcome  `json:"outcome"`
	Article *Article `json:"article,omitempty"`

	// Links holds absolute same-site URLs to queue for fetching, in the
	// order they were first seen, without duplicates.
	Links []string `json:"discovered_links"`

	// Items is reserved for outputs beyond a single article. Always empty.
	Items []Article `json:"extra_items"`
}

// NewResult returns an empty, extracted result.
func NewResult() Result {
	return Result{
		Outcome: OutcomeExtracted,
		Links:   []string{},
		Items:   []Article{},
	}
}

// ArticleResult returns an extracted result carrying a single article.
func ArticleResult(a *Article) Result {
	r := NewResult()
	r.Article = a
	return r
}

// LinksResult returns an extracted result carrying links. Duplicates are
// dropped and first-seen order is kept.
func LinksResult(links ...string) Result {
	r := NewResult()
	seen := make(map[string]struct{}, len(links))
	for _, l := range links {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		r.Links = append(r.Links, l)
	}
	return r
}

// Unsupported returns the empty result for pages no routine can handle.
func Unsupported() Result {
	r := NewResult()
	r.Outcome = OutcomeUnsupported
	return r
}

// Failed returns the empty result for pages whose extraction failed.
func Failed() Result {
	r := NewResult()
	r.Outcome = OutcomeFailed
	return r
}

// Empty reports whether the result carries neither an article nor links.
func (r Result) Empty() bool {
	return r.Article == nil && len(r.Links) == 0 && len(r.Items) == 0
}

package scrape

// SiteExtractor turns an already-fetched page into a Result.
//
// Implementations never fail: unsupported pages and extraction errors are
// reported through Result.Outcome and the returned result is empty.
// Implementations must be safe for concurrent use.
type SiteExtractor interface {
	Extract(html string, url string) Result
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	Convert(html string) (string, error)
}

// DateNormalizer turns free-form date strings into YYYY-MM-DD.
type DateNormalizer interface {
	// Normalize returns the date and true, or false when s holds no
	// recognizable date.
	Normalize(s string) (string, bool)
}

// Content holds the main content found by a ContentExtractor.
type Content struct {
	// Title is the page title extracted from metadata.
	Title string

	// Author and Date come from page metadata when available.
	// Date is YYYY-MM-DD or empty.
	Author string
	Date   string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentExtractor extracts main content from pages that have no
// site-specific module, removing boilerplate.
type ContentExtractor interface {
	Extract(html string) (*Content, error)
}

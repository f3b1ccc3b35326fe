// Package fs provides file-based output: Markdown exports of stored
// documents and the JSON cache for records that could not be saved.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/scrape"
)

// URLToPath converts a document URL to a relative file path under its host.
// Example: https://arxiv.org/abs/2412.00001 → arxiv.org/abs/2412.00001.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", scrape.Errorf(scrape.EINVALID, "URL has no host: %q", rawURL)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return host + "/index.md", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return host + "/" + path + "index.md", nil
	}

	return host + "/" + path + ".md", nil
}

// FormatDocument formats a document with YAML frontmatter. Author and
// published lines are only written when known.
func FormatDocument(doc *scrape.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	if doc.Author != "" {
		b.WriteString("\nauthor: ")
		b.WriteString(doc.Author)
	}
	if doc.PublishDate != "" {
		b.WriteString("\npublished: ")
		b.WriteString(doc.PublishDate)
	}
	b.WriteString("\ncrawled: ")
	b.WriteString(doc.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// Writer exports documents as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes a document to disk as a markdown file and returns its path.
func (w *Writer) WriteDocument(ctx context.Context, doc *scrape.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := doc.Validate(); err != nil {
		return "", err
	}

	relPath, err := URLToPath(doc.URL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}

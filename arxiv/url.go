package arxiv

import (
	"fmt"
	"strings"

	"github.com/fwojciec/scrape"
)

// ErrInvalidURL is returned when a link cannot be resolved to an absolute
// URL under the expected base.
var ErrInvalidURL = &scrape.Error{Code: scrape.EINVALID, Message: "invalid URL"}

// NormalizeURL resolves raw against base. Root-relative paths are prefixed
// with base, absolute URLs that already start with base are returned as is,
// the "www." spelling of base is folded onto base, and anything else fails
// with ErrInvalidURL.
func NormalizeURL(raw, base string) (string, error) {
	u := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(u, "/"):
		return strings.TrimSuffix(base, "/") + u, nil
	case base == "":
	case strings.HasPrefix(u, base):
		return u, nil
	case strings.HasPrefix(u, wwwBase(base)):
		return base + strings.TrimPrefix(u, wwwBase(base)), nil
	}
	return "", fmt.Errorf("%w: %q is neither a root-relative path nor under %s", ErrInvalidURL, raw, base)
}

// wwwBase returns base with "www." inserted before its host.
func wwwBase(base string) string {
	scheme, host, ok := strings.Cut(base, "://")
	if !ok || strings.HasPrefix(host, "www.") {
		return base
	}
	return scheme + "://www." + host
}

// SecureURL upgrades an http:// scheme to https://. The rest of the URL,
// including any URLs embedded in its query, is left alone.
func SecureURL(rawURL string) string {
	const plain = "http://"
	if len(rawURL) >= len(plain) && strings.EqualFold(rawURL[:len(plain)], plain) {
		return "https://" + rawURL[len(plain):]
	}
	return rawURL
}

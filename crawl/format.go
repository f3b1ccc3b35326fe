package crawl

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatStats renders a one-line crawl summary. Zero counters other than
// saved and fetched are left out.
func FormatStats(s *Stats) string {
	parts := []string{
		fmt.Sprintf("%d fetched", s.Fetched),
		fmt.Sprintf("%d saved", s.Saved),
	}
	optional := []struct {
		n     int
		label string
	}{
		{s.Links, "links queued"},
		{s.Duplicates, "duplicate links"},
		{s.Infos, "infos"},
		{s.Skipped, "skipped"},
		{s.Unsupported, "unsupported"},
		{s.Failed, "failed"},
		{s.Cached, "cached"},
	}
	for _, o := range optional {
		if o.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", o.n, o.label))
		}
	}
	return strings.Join(parts, ", ")
}

// Package dateparse normalizes free-form date strings found in page
// metadata into YYYY-MM-DD.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fwojciec/scrape"
)

// Ensure Normalizer implements scrape.DateNormalizer at compile time.
var _ scrape.DateNormalizer = (*Normalizer)(nil)

// Layout is the normalized date layout.
const Layout = "2006-01-02"

// Patterns for dates embedded in longer text, tried in order when the whole
// string does not parse. A missing day defaults to the first of the month.
var (
	ymdPattern       = regexp.MustCompile(`(\d{4})\s*[-/.年]\s*(\d{1,2})\s*[-/.月]\s*(\d{1,2})`)
	compactPattern   = regexp.MustCompile(`\b(\d{4})(\d{2})(\d{2})\b`)
	yearMonthPattern = regexp.MustCompile(`(\d{4})\s*[-/.年]\s*(\d{1,2})\b`)
)

// Normalizer converts date strings to YYYY-MM-DD.
type Normalizer struct {
	loc *time.Location
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLocation sets the location used for strings without a zone.
func WithLocation(loc *time.Location) Option {
	return func(n *Normalizer) {
		n.loc = loc
	}
}

// NewNormalizer creates a Normalizer. Strings without a zone are read as UTC.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{loc: time.UTC}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize returns s as YYYY-MM-DD, or false when s holds no recognizable
// date.
func (n *Normalizer) Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if t, err := dateparse.ParseIn(s, n.loc); err == nil {
		return t.Format(Layout), true
	}

	if m := ymdPattern.FindStringSubmatch(s); m != nil {
		return format(m[1], m[2], m[3])
	}
	if m := compactPattern.FindStringSubmatch(s); m != nil {
		return format(m[1], m[2], m[3])
	}
	if m := yearMonthPattern.FindStringSubmatch(s); m != nil {
		return format(m[1], m[2], "1")
	}
	return "", false
}

// format validates the parts and renders them with zero padding.
func format(year, month, day string) (string, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return "", false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 {
		return "", false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d {
		return "", false
	}
	return t.Format(Layout), true
}

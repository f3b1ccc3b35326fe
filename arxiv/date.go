package arxiv

import (
	"regexp"
	"strconv"
)

// Identifiers since 2007 start with a YYMM token followed by a dot.
var yearMonthPattern = regexp.MustCompile(`(\d{2})(\d{2})\.`)

// DateFromURL returns the publish date encoded in an arXiv identifier in
// rawURL, e.g. /abs/2412.19784 gives <prefix>24-12-01. Tokens whose month
// is outside 01-12 are skipped.
func DateFromURL(rawURL, yearPrefix string) (string, bool) {
	for _, m := range yearMonthPattern.FindAllStringSubmatch(rawURL, -1) {
		month, err := strconv.Atoi(m[2])
		if err != nil || month < 1 || month > 12 {
			continue
		}
		return yearPrefix + m[1] + "-" + m[2] + "-01", true
	}
	return "", false
}

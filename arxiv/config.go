package arxiv

import (
	"strconv"
	"time"

	"github.com/fwojciec/scrape"
)

// BaseURL is the site root every discovered link is scoped to.
const BaseURL = "https://arxiv.org"

// Environment variables read by ConfigFromEnv.
const (
	// EnvMode holds the abstract-page mode.
	EnvMode = "ARXIV_SCRAPER_MODE"
	// EnvYearPrefix overrides the century prefix of URL dates, e.g. "20".
	EnvYearPrefix = "ARXIV_YEAR_PREFIX"
)

// Mode selects what the abstract-page extractor returns.
type Mode string

const (
	// ModeAbstract returns the citation metadata of /abs/ pages as the article.
	ModeAbstract Mode = "abs"

	// ModeHTML defers /abs/ pages to their rendered /html/ variant and
	// prefers /html/ links on listing pages.
	ModeHTML Mode = "html"
)

// ParseMode returns the mode named by s. The empty string means ModeAbstract.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAbstract:
		return ModeAbstract, nil
	case ModeHTML:
		return ModeHTML, nil
	}
	return "", scrape.Errorf(scrape.EINVALID, "unknown arxiv mode %q (want abs or html)", s)
}

// Config is the immutable configuration of an Extractor.
type Config struct {
	Mode Mode

	// YearPrefix expands two-digit years found in URLs, e.g. "20".
	YearPrefix string

	// BaseURL prefixes root-relative links.
	BaseURL string
}

// DefaultConfig returns a metadata-only configuration with the century
// prefix of the current year.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeAbstract,
		YearPrefix: CenturyPrefix(time.Now()),
		BaseURL:    BaseURL,
	}
}

// ConfigFromEnv builds a Config from environment variables read through
// getenv, typically os.Getenv.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	mode, err := ParseMode(getenv(EnvMode))
	if err != nil {
		return Config{}, err
	}
	cfg.Mode = mode
	if prefix := getenv(EnvYearPrefix); prefix != "" {
		cfg.YearPrefix = prefix
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if len(c.YearPrefix) != 2 {
		return scrape.Errorf(scrape.EINVALID, "year prefix must be two digits, got %q", c.YearPrefix)
	}
	if _, err := strconv.Atoi(c.YearPrefix); err != nil {
		return scrape.Errorf(scrape.EINVALID, "year prefix must be two digits, got %q", c.YearPrefix)
	}
	if c.BaseURL == "" {
		return scrape.Errorf(scrape.EINVALID, "base URL required")
	}
	return nil
}

// CenturyPrefix returns the first two digits of t's four-digit year.
func CenturyPrefix(t time.Time) string {
	return strconv.Itoa(t.Year() / 100)
}

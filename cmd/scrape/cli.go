package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   scrape.Fetcher
	Extractor scrape.SiteExtractor
	Sites     scrape.SiteService
	Documents scrape.DocumentService
	Infos     scrape.InfoService
	Crawler   *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	ProjectDir string        `name:"project-dir" env:"PROJECT_DIR" default:"." type:"path" help:"Directory for the log file, database and save-failure cache"`
	DB         string        `name:"db" env:"SCRAPE_DB" type:"path" help:"SQLite database path (default: <project-dir>/scrape.db)"`
	ArxivMode  string        `name:"arxiv-mode" help:"arXiv abstract page handling: abs or html (default: $ARXIV_SCRAPER_MODE, else abs)"`
	Content    string        `enum:"trafilatura,readability" default:"trafilatura" help:"Main content extractor for sites without a dedicated module"`
	Timeout    time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	Verbose    bool          `short:"v" help:"Log debug messages"`

	Extract ExtractCmd `cmd:"" help:"Extract one page and print the result as JSON"`
	Crawl   CrawlCmd   `cmd:"" help:"Crawl from seed URLs or activated sites and store articles"`
	Site    SiteCmd    `cmd:"" help:"Manage crawl seed sites"`
	Docs    DocsCmd    `cmd:"" help:"Inspect stored documents"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL    string `arg:"" help:"Page URL, used for routing even when reading from a file"`
	File   string `short:"f" type:"existingfile" help:"Read HTML from a file instead of fetching"`
	Render bool   `short:"r" help:"Fetch with a headless browser"`
	Links  bool   `help:"Print every same-host link on the page instead of running the site module"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" help:"Seed URLs (default: activated sites)"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent fetch limit"`
	MaxPages    int      `name:"max-pages" default:"1000" help:"Maximum pages to fetch"`
	MaxDepth    int      `name:"max-depth" help:"Maximum link hops from a seed (0 = unlimited)"`
	RPS         float64  `name:"rps" default:"1" help:"Requests per second per domain"`
	Render      bool     `short:"r" help:"Fetch with a headless browser"`
	Infos       bool     `help:"Extract infos from saved documents with Gemini (needs GEMINI_API_KEY)"`
	Focus       string   `help:"Topic to focus info extraction on"`
}

// SiteCmd groups the site subcommands.
type SiteCmd struct {
	Add     SiteAddCmd     `cmd:"" help:"Register a seed site"`
	List    SiteListCmd    `cmd:"" help:"List seed sites"`
	Delete  SiteDeleteCmd  `cmd:"" help:"Remove a seed site"`
	Disable SiteDisableCmd `cmd:"" help:"Stop crawling a site by default"`
	Enable  SiteEnableCmd  `cmd:"" help:"Crawl a site by default"`
}

// SiteAddCmd is the "site add" subcommand.
type SiteAddCmd struct {
	URL      string `arg:"" help:"Seed URL"`
	Disabled bool   `help:"Register without activating"`
}

// SiteListCmd is the "site list" subcommand.
type SiteListCmd struct {
	Active bool `help:"Only list activated sites"`
}

// SiteDeleteCmd is the "site delete" subcommand.
type SiteDeleteCmd struct {
	URL string `arg:"" help:"Seed URL"`
}

// SiteDisableCmd is the "site disable" subcommand.
type SiteDisableCmd struct {
	URL string `arg:"" help:"Seed URL"`
}

// SiteEnableCmd is the "site enable" subcommand.
type SiteEnableCmd struct {
	URL string `arg:"" help:"Seed URL"`
}

// DocsCmd groups the docs subcommands. Listing is the default.
type DocsCmd struct {
	List   DocsListCmd   `cmd:"" default:"withargs" help:"List stored documents, newest first"`
	Delete DocsDeleteCmd `cmd:"" help:"Delete a stored document and its infos"`
	Export DocsExportCmd `cmd:"" help:"Write stored documents as Markdown files"`
}

// DocsListCmd is the "docs list" subcommand.
type DocsListCmd struct {
	Limit  int    `short:"n" default:"20" help:"Maximum documents to show"`
	Offset int    `help:"Documents to skip"`
	URL    string `help:"Only show the document stored for this URL"`
	Full   bool   `help:"Show full document content"`
	Infos  bool   `help:"Show extracted infos"`
}

// DocsDeleteCmd is the "docs delete" subcommand.
type DocsDeleteCmd struct {
	URL string `arg:"" help:"Document URL"`
}

// DocsExportCmd is the "docs export" subcommand.
type DocsExportCmd struct {
	Dir   string `arg:"" type:"path" help:"Output directory"`
	Limit int    `short:"n" help:"Maximum documents to export (0 = all)"`
	List  bool   `short:"l" help:"Print each written file path"`
}

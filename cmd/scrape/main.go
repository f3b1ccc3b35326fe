package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/arxiv"
	"github.com/fwojciec/scrape/crawl"
	"github.com/fwojciec/scrape/dateparse"
	"github.com/fwojciec/scrape/fs"
	"github.com/fwojciec/scrape/gemini"
	"github.com/fwojciec/scrape/goquery"
	"github.com/fwojciec/scrape/htmltomarkdown"
	scrapehttp "github.com/fwojciec/scrape/http"
	"github.com/fwojciec/scrape/readability"
	"github.com/fwojciec/scrape/rod"
	scrapeslog "github.com/fwojciec/scrape/slog"
	"github.com/fwojciec/scrape/sqlite"
	"github.com/fwojciec/scrape/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv reads the environment. Defaults to os.Getenv.
	Getenv func(string) string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scrape"),
		kong.Description("Extract articles and follow-up links from news and paper sites"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scrape --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := strings.Fields(kongCtx.Command())[0]

	if err := os.MkdirAll(cli.ProjectDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory %q: %w", cli.ProjectDir, err)
	}

	logger, closeLog, err := newLogger(stderr, filepath.Join(cli.ProjectDir, "scrape.log"), cli.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := m.arxivConfig(cli.ArxivMode)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", scrape.ErrorMessage(err))
		return err
	}

	registry := newRegistry(cfg, cli.Content, logger)
	logger.Debug("site modules registered", "domains", registry.Domains(), "fallback", cli.Content, "arxiv_mode", cfg.Mode)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Extractor: scrapeslog.NewLoggingExtractor(registry, logger),
	}

	if command != "extract" {
		dbPath := cli.DB
		if dbPath == "" {
			dbPath = filepath.Join(cli.ProjectDir, "scrape.db")
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SCRAPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()

		deps.Sites = sqlite.NewSiteService(m.DB)
		deps.Documents = sqlite.NewDocumentService(m.DB)
		deps.Infos = sqlite.NewInfoService(m.DB)
	}

	switch command {
	case "extract":
		if cli.Extract.File == "" {
			fetcher, err := newFetcher(cli.Extract.Render, cli.Timeout, logger)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
				return err
			}
			defer fetcher.Close()
			deps.Fetcher = fetcher
		}

	case "crawl":
		fetcher, err := newFetcher(cli.Crawl.Render, cli.Timeout, logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return err
		}
		defer fetcher.Close()
		deps.Fetcher = fetcher

		deps.Crawler = &crawl.Crawler{
			Fetcher:     fetcher,
			Extractor:   deps.Extractor,
			Documents:   deps.Documents,
			Cache:       fs.NewCacheWriter(cli.ProjectDir),
			RateLimiter: crawl.NewDomainLimiter(cli.Crawl.RPS),
			Logger:      logger,
		}

		if cli.Crawl.Infos {
			apiKey := m.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return scrape.Errorf(scrape.EINVALID, "GEMINI_API_KEY not set")
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}

			deps.Crawler.Infos = deps.Infos
			deps.Crawler.InfoExtractor = gemini.NewInfoExtractor(client.Models, gemini.WithFocus(cli.Crawl.Focus))
		}
	}

	return kongCtx.Run(deps)
}

// arxivConfig reads the arXiv settings from the environment. A non-empty
// mode flag replaces ARXIV_SCRAPER_MODE.
func (m *Main) arxivConfig(modeFlag string) (arxiv.Config, error) {
	getenv := m.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	return arxiv.ConfigFromEnv(func(key string) string {
		if key == arxiv.EnvMode && modeFlag != "" {
			return modeFlag
		}
		return getenv(key)
	})
}

// newRegistry routes arxiv.org to its dedicated module and every other
// host to the generic extractor.
func newRegistry(cfg arxiv.Config, contentKind string, logger *slog.Logger) *scrape.Registry {
	conv := htmltomarkdown.NewConverter()
	dates := dateparse.NewNormalizer()

	var content scrape.ContentExtractor = trafilatura.NewExtractor()
	if contentKind == "readability" {
		content = readability.NewExtractor()
	}

	registry := scrape.NewRegistry(goquery.NewGenericExtractor(content, conv, dates, goquery.WithLogger(logger)))
	registry.Register(arxiv.Domain, arxiv.NewExtractor(cfg, conv, dates, logger))
	return registry
}

// newFetcher returns a logging static fetcher, or a browser fetcher when
// render is set.
func newFetcher(render bool, timeout time.Duration, logger *slog.Logger) (scrape.Fetcher, error) {
	if !render {
		return scrapeslog.NewLoggingFetcher(scrapehttp.NewFetcher(scrapehttp.WithTimeout(timeout)), logger), nil
	}
	f, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return scrapeslog.NewLoggingFetcher(f, logger), nil
}

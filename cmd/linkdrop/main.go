package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkdrop"
	"github.com/fwojciec/linkdrop/enhance"
	"github.com/fwojciec/linkdrop/gemini"
	"github.com/fwojciec/linkdrop/goquery"
	"github.com/fwojciec/linkdrop/htmltomarkdown"
	linkhttp "github.com/fwojciec/linkdrop/http"
	"github.com/fwojciec/linkdrop/pipeline"
	"github.com/fwojciec/linkdrop/readability"
	"github.com/fwojciec/linkdrop/rod"
	linkslog "github.com/fwojciec/linkdrop/slog"
	"github.com/fwojciec/linkdrop/sqlite"
	"github.com/fwojciec/linkdrop/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the quota store and analysis cache.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Analyzer linkdrop.Analyzer
	Gate     linkdrop.QuotaGate
	Cache    linkdrop.AnalysisCache
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkdrop"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'linkdrop --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LINKDROP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	store := sqlite.NewQuotaStore(m.DB)
	m.Gate = linkslog.NewLoggingQuotaGate(
		pipeline.NewGate(store,
			pipeline.WithDefaultQuota(linkhttp.XQuotaResource, linkhttp.XDefaultQuota),
			pipeline.WithGateLogger(logger),
		),
		logger,
	)
	m.Cache = sqlite.NewAnalysisCache(m.DB)
	deps.DB = m.DB
	deps.Gate = m.Gate
	deps.Cache = m.Cache

	// Wire command-specific dependencies based on command
	if cmd == "analyze" {
		var fetcher linkdrop.Fetcher
		if cli.Analyze.Browser {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			fetcher = linkhttp.NewFetcher()
		}
		fetcher = linkslog.NewLoggingFetcher(fetcher, logger)
		defer fetcher.Close()

		var extractor linkdrop.ContentExtractor = trafilatura.NewExtractor()
		if cli.Analyze.Readability {
			extractor = readability.NewExtractor()
		}

		client := linkhttp.NewClient()
		m.Analyzer = &pipeline.Analyzer{
			Generic: linkslog.NewLoggingSourceAdapter(
				linkhttp.NewGenericAdapter(fetcher, goquery.NewMetaParser()), logger),
			Reader: linkslog.NewLoggingSourceAdapter(
				linkhttp.NewReaderAdapter(fetcher, extractor, htmltomarkdown.NewConverter()), logger),
			Platforms: map[linkdrop.ContentType]linkdrop.SourceAdapter{
				linkdrop.TypeYouTube: linkslog.NewLoggingSourceAdapter(
					linkhttp.NewYouTubeAdapter(client), logger),
				linkdrop.TypeX: linkslog.NewLoggingSourceAdapter(
					linkhttp.NewXAdapter(client, os.Getenv("X_BEARER_TOKEN"), m.Gate), logger),
				linkdrop.TypeGitHub: linkslog.NewLoggingSourceAdapter(
					linkhttp.NewGitHubAdapter(client, linkhttp.WithGitHubToken(os.Getenv("GITHUB_TOKEN"))), logger),
			},
			Gate: m.Gate,
			GateKeys: map[linkdrop.ContentType]string{
				linkdrop.TypeX: linkhttp.XQuotaResource,
			},
			Enhancers: enhance.NewRegistry(),
			Logger:    logger,
		}
		deps.Analyzer = m.Analyzer

		if cli.Analyze.Summarize {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}

			genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}

			deps.Summarizer = gemini.NewSummarizer(genaiClient)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("LINKDROP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "linkdrop.db"
	}
	dir := filepath.Join(home, ".linkdrop")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "linkdrop.db")
}

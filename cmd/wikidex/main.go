package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/wikidex/wikidex"
	"github.com/wikidex/wikidex/gemini"
	"github.com/wikidex/wikidex/goquery"
	"github.com/wikidex/wikidex/htmltomarkdown"
	"github.com/wikidex/wikidex/mediawiki"
	"github.com/wikidex/wikidex/readability"
	"github.com/wikidex/wikidex/scrape"
	wslog "github.com/wikidex/wikidex/slog"
	"github.com/wikidex/wikidex/sqlite"
	"github.com/wikidex/wikidex/trafilatura"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Record service for end-to-end testing.
	RecordService wikidex.RecordService
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikidex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikidex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WIKIDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{Level: stdslog.LevelWarn}))
	m.RecordService = wslog.NewRecordService(sqlite.NewRecordService(m.DB), logger)
	deps.DB = m.DB
	deps.Records = m.RecordService

	if cmd == "scrape" {
		client := mediawiki.NewClient(cli.Scrape.URL)

		var extractor wikidex.Extractor
		switch cli.Scrape.Extractor {
		case "readability":
			extractor = readability.NewExtractor()
		case "trafilatura":
			extractor = trafilatura.NewExtractor()
		default:
			extractor = goquery.NewExtractor()
		}

		var converter wikidex.Converter
		if cli.Scrape.Markdown {
			converter = htmltomarkdown.NewConverter()
		}

		deps.Scraper = &scrape.Scraper{
			Pages:       client,
			Fetcher:     client,
			Extractor:   extractor,
			Converter:   converter,
			Records:     m.RecordService,
			RateLimiter: scrape.NewDomainLimiter(cli.Scrape.RPS),
			BaseURL:     cli.Scrape.URL,
			Concurrency: cli.Scrape.Concurrency,
		}
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = gemini.NewAsker(client, m.RecordService)
	}

	if cmd == "parse" || cmd == "import" {
		// Token counting is informational; skip it if the tokenizer
		// cannot be initialized.
		if tc, err := gemini.NewTokenCounter(tokenizerModel); err == nil {
			deps.TokenCounter = tc
		}
	}

	return kongCtx.Run(deps)
}

const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("WIKIDEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wikidex.db"
	}
	dir := filepath.Join(home, ".wikidex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "wikidex.db")
}

// Command wikibot runs the Discord question answering bot. It answers
// questions from the stored wiki records and optionally re-scrapes the
// wiki once a day.
package main

import (
	"context"
	"fmt"
	stdslog "log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/wikidex/wikidex/discord"
	"github.com/wikidex/wikidex/gemini"
	"github.com/wikidex/wikidex/goquery"
	"github.com/wikidex/wikidex/mediawiki"
	"github.com/wikidex/wikidex/scrape"
	wslog "github.com/wikidex/wikidex/slog"
	"github.com/wikidex/wikidex/sqlite"
	"google.golang.org/genai"
)

// CLI defines the command-line flags for Kong.
type CLI struct {
	Wiki        string  `help:"Wiki base URL for the daily refresh" env:"WIKI_URL"`
	RefreshAt   string  `name:"refresh-at" default:"02:00" help:"Daily refresh time (HH:MM, local)"`
	NoRefresh   bool    `name:"no-refresh" help:"Disable the daily refresh"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent fetch limit during refresh"`
	RPS         float64 `default:"1" help:"Max requests per second per host during refresh"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cli := &CLI{}
	kong.Parse(cli, kong.Name("wikibot"))

	ctx := context.Background()
	logger := stdslog.New(stdslog.NewTextHandler(os.Stderr, nil))

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return fmt.Errorf("DISCORD_TOKEN not set")
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	db := sqlite.NewDB(defaultDBPath())
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	records := wslog.NewRecordService(sqlite.NewRecordService(db), logger)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	bot, err := discord.New(token, gemini.NewAsker(client, records), logger)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}
	if err := bot.Open(); err != nil {
		return fmt.Errorf("failed to connect to Discord: %w", err)
	}
	defer bot.Close()

	logger.Info("bot connected")

	if cli.Wiki != "" && !cli.NoRefresh {
		hour, minute, err := ParseClock(cli.RefreshAt)
		if err != nil {
			return err
		}

		wiki := mediawiki.NewClient(cli.Wiki)
		scraper := &scrape.Scraper{
			Pages:       wiki,
			Fetcher:     wiki,
			Extractor:   goquery.NewExtractor(),
			Records:     records,
			RateLimiter: scrape.NewDomainLimiter(cli.RPS),
			BaseURL:     cli.Wiki,
			Concurrency: cli.Concurrency,
		}
		go refreshLoop(ctx, scraper, hour, minute, logger)
	}

	// Block until interrupted.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("shutting down")
	return nil
}

// refreshLoop re-scrapes the wiki at the given wall clock time every day.
func refreshLoop(ctx context.Context, scraper *scrape.Scraper, hour, minute int, logger *stdslog.Logger) {
	for {
		next := scrape.NextRefresh(time.Now(), hour, minute)
		logger.Info("next refresh scheduled", "at", next)

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
		}

		result, err := scraper.ScrapeAll(ctx, wslog.ScrapeProgress(logger))
		if err != nil {
			logger.Error("refresh failed", "error", err)
			continue
		}
		logger.Info("refresh complete",
			"saved", result.Saved,
			"skipped", result.Skipped,
			"failed", result.Failed,
			"bytes", result.Bytes,
		)
	}
}

// ParseClock parses an HH:MM wall clock string.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}

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

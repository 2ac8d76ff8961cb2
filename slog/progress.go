package slog

import (
	"log/slog"

	"github.com/wikidex/wikidex/scrape"
)

// ScrapeProgress returns a progress callback that logs scrape events.
// Per-page completions are logged at debug level to keep daemon logs
// quiet; skips, failures, and phase boundaries are logged at info.
func ScrapeProgress(logger *slog.Logger) scrape.ProgressFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			logger.Info("scrape started", "pages", event.Total)
		case scrape.ProgressCompleted:
			logger.Debug("page scraped",
				"title", event.Title,
				"completed", event.Completed,
				"total", event.Total,
			)
		case scrape.ProgressSkipped:
			logger.Info("page skipped", "title", event.Title)
		case scrape.ProgressFailed:
			logger.Info("page failed", "title", event.Title, "error", event.Error)
		case scrape.ProgressFinished:
			logger.Info("scrape finished", "pages", event.Total)
		}
	}
}

package slog_test

import (
	"bytes"
	"errors"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wikidex/wikidex/scrape"
	wslog "github.com/wikidex/wikidex/slog"
)

func TestScrapeProgress(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))
	progress := wslog.ScrapeProgress(logger)

	progress(scrape.ProgressEvent{Type: scrape.ProgressStarted, Total: 3})
	progress(scrape.ProgressEvent{Type: scrape.ProgressCompleted, Title: "FAQ", Completed: 1, Total: 3})
	progress(scrape.ProgressEvent{Type: scrape.ProgressFailed, Title: "Broken", Error: errors.New("boom")})
	progress(scrape.ProgressEvent{Type: scrape.ProgressFinished, Total: 3})

	out := buf.String()
	assert.Contains(t, out, "scrape started")
	assert.Contains(t, out, "pages=3")
	assert.Contains(t, out, "page failed")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "scrape finished")
	assert.NotContains(t, out, "page scraped", "completions log at debug level")
}

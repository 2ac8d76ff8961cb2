package scrape_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wikidex/wikidex/scrape"
)

func TestNextRefresh(t *testing.T) {
	t.Parallel()

	t.Run("later today when the time has not passed", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC)
		next := scrape.NextRefresh(now, 2, 0)

		assert.Equal(t, time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC), next)
	})

	t.Run("tomorrow when the time has passed", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
		next := scrape.NextRefresh(now, 2, 0)

		assert.Equal(t, time.Date(2024, 3, 11, 2, 0, 0, 0, time.UTC), next)
	})

	t.Run("tomorrow when now is exactly the refresh time", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)
		next := scrape.NextRefresh(now, 2, 0)

		assert.Equal(t, time.Date(2024, 3, 11, 2, 0, 0, 0, time.UTC), next)
	})
}

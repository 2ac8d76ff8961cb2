package wikidex_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/wikidex/wikidex"
)

func rec(title, content string) *wikidex.Record {
	return &wikidex.Record{Title: title, Content: content}
}

func TestScoreRecord(t *testing.T) {
	t.Parallel()

	t.Run("counts keywords in title and content", func(t *testing.T) {
		t.Parallel()

		r := rec("Combat Training", "Train your combat skills at the dummy.")
		score := wikidex.ScoreRecord(r, []string{"combat", "skills", "dragons"})
		assert.Equal(t, 2, score)
	})

	t.Run("matching is case-insensitive against the record", func(t *testing.T) {
		t.Parallel()

		r := rec("MONEY Making", "The BEST methods.")
		score := wikidex.ScoreRecord(r, []string{"money", "best"})
		assert.Equal(t, 2, score)
	})
}

func TestRelevantRecords(t *testing.T) {
	t.Parallel()

	recs := []*wikidex.Record{
		rec("Fishing", "Catch fish at the docks."),
		rec("Combat Training", "Train combat skills here."),
		rec("Combat Gear", "Best combat gear and combat stats."),
	}

	t.Run("orders by descending overlap", func(t *testing.T) {
		t.Parallel()

		got := wikidex.RelevantRecords(recs, "combat gear stats", 0)
		assert.Len(t, got, 2)
		assert.Equal(t, "Combat Gear", got[0].Title)
		assert.Equal(t, "Combat Training", got[1].Title)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		got := wikidex.RelevantRecords(recs, "combat", 1)
		assert.Len(t, got, 1)
	})

	t.Run("excludes records with no overlap", func(t *testing.T) {
		t.Parallel()

		got := wikidex.RelevantRecords(recs, "zamorak", 0)
		assert.Empty(t, got)
	})

	t.Run("empty query yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wikidex.RelevantRecords(recs, "   ", 0))
	})
}

func TestBuildContext(t *testing.T) {
	t.Parallel()

	t.Run("joins relevant records with blank lines", func(t *testing.T) {
		t.Parallel()

		recs := []*wikidex.Record{
			rec("Mining", "Mine ores in the quarry."),
			rec("Smithing", "Smith bars from mined ores."),
		}

		got := wikidex.BuildContext(recs, "ores")
		assert.Contains(t, got, "Mine ores in the quarry.")
		assert.Contains(t, got, "Smith bars from mined ores.")
		assert.Contains(t, got, "\n\n")
	})

	t.Run("truncates oversized records", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("combat ", 1000)
		recs := []*wikidex.Record{rec("Combat", long)}

		got := wikidex.BuildContext(recs, "combat")
		assert.LessOrEqual(t, len(got), 3003)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("truncation never splits a multibyte rune", func(t *testing.T) {
		t.Parallel()

		long := "combat " + strings.Repeat("Ⱥ", 2000)
		recs := []*wikidex.Record{rec("Combat", long)}

		got := wikidex.BuildContext(recs, "combat")
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("returns empty string with no matches", func(t *testing.T) {
		t.Parallel()

		recs := []*wikidex.Record{rec("Fishing", "Catch fish.")}
		assert.Empty(t, wikidex.BuildContext(recs, "dragons"))
	})
}

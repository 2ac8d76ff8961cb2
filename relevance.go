package wikidex

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Context sizing limits. The per-record and total caps keep the prompt
// within the model's usable window even for long wiki pages.
const (
	DefaultContextRecords = 2
	maxRecordChars        = 2000
	maxContextChars       = 3000
)

// ScoreRecord returns the number of keywords that appear in the record's
// title or content. Matching is case-insensitive substring matching;
// keywords must already be lowercased.
func ScoreRecord(rec *Record, keywords []string) int {
	title := strings.ToLower(rec.Title)
	content := strings.ToLower(rec.Content)

	score := 0
	for _, kw := range keywords {
		if strings.Contains(title, kw) || strings.Contains(content, kw) {
			score++
		}
	}
	return score
}

// RelevantRecords returns up to limit records ordered by descending
// keyword overlap with the query. Records with no overlap are excluded.
// Ties preserve the input order.
func RelevantRecords(recs []*Record, query string, limit int) []*Record {
	keywords := strings.Fields(strings.ToLower(query))
	if len(keywords) == 0 {
		return nil
	}

	type scored struct {
		rec   *Record
		score int
	}

	var matches []scored
	for _, rec := range recs {
		if score := ScoreRecord(rec, keywords); score > 0 {
			matches = append(matches, scored{rec: rec, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	result := make([]*Record, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.rec)
	}
	return result
}

// BuildContext selects the most relevant records for the query and
// concatenates their content into a single context string, truncating
// individual records and the combined result to the sizing limits.
// Returns an empty string when nothing matches.
func BuildContext(recs []*Record, query string) string {
	relevant := RelevantRecords(recs, query, DefaultContextRecords)
	if len(relevant) == 0 {
		return ""
	}

	parts := make([]string, 0, len(relevant))
	for _, rec := range relevant {
		content := rec.Content
		if len(content) > maxRecordChars {
			content = truncate(content, maxRecordChars) + "..."
		}
		parts = append(parts, content)
	}

	combined := strings.Join(parts, "\n\n")
	if len(combined) > maxContextChars {
		combined = truncate(combined, maxContextChars) + "..."
	}
	return combined
}

// truncate cuts s to at most n bytes, backing up so a multibyte rune is
// never split.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

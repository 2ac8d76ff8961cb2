package scrape

import "time"

// NextRefresh returns the next occurrence of the given wall clock time
// after now, in now's location. Used to schedule the daily re-scrape.
func NextRefresh(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

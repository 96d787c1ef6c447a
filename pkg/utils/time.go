package utils

import "time"

// NowRFC3339 returns the current time in RFC3339 format
func NowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

// TodayUTC returns today's calendar date in UTC as YYYY-MM-DD.
// Storage keys are timezone-naive on purpose: one photo per UTC day.
func TodayUTC() string {
	return time.Now().UTC().Format("2006-01-02")
}

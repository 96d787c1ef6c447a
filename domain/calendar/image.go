package calendar

import (
	"fmt"
	"sort"
	"strings"
)

// KeyPrefix is the object-store prefix all daily images live under.
const KeyPrefix = "daily-images"

// SharedIdentity is the bucket namespace used for unauthenticated uploads.
const SharedIdentity = "shared"

// DailyImage is one calendar day's photo. It is derived from object-store
// keys on every list call, never stored as a record. URL is a time-limited
// presigned locator.
type DailyImage struct {
	Date string `json:"date"`
	URL  string `json:"url"`
}

// ObjectKey builds the storage key for an identity's photo on the given date.
// One photo per identity per day holds by construction of this key.
func ObjectKey(identity, date string) string {
	return fmt.Sprintf("%s/%s/%s.jpg", KeyPrefix, identity, date)
}

// IdentityPrefix builds the listing prefix for an identity's photos.
func IdentityPrefix(identity string) string {
	return fmt.Sprintf("%s/%s/", KeyPrefix, identity)
}

// DateFromKey extracts the calendar date from a storage key. Returns false
// for the bare prefix marker or keys outside the identity's prefix.
func DateFromKey(key, identity string) (string, bool) {
	prefix := IdentityPrefix(identity)
	if key == prefix || !strings.HasPrefix(key, prefix) {
		return "", false
	}
	date := strings.TrimSuffix(strings.TrimPrefix(key, prefix), ".jpg")
	if date == "" {
		return "", false
	}
	return date, true
}

// SortNewestFirst orders images descending by date, newest first.
func SortNewestFirst(images []DailyImage) {
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].Date > images[j].Date
	})
}

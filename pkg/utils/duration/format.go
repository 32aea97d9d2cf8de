// ABOUTME: Reading-time estimates and human-readable duration strings
// ABOUTME: Used for article metadata in the book view

package duration

import (
	"fmt"
	"strings"
	"time"
)

// WordsPerMinute is the reading speed assumed by ReadingTime.
const WordsPerMinute = 230

// ReadingTime estimates how long it takes to read words words, rounded up
// to the next whole minute. Zero words take zero time.
func ReadingTime(words int) time.Duration {
	if words <= 0 {
		return 0
	}
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	return time.Duration(minutes) * time.Minute
}

// HumanReadable formats d as "N seconds", "N minutes" or "N hours M minutes".
func HumanReadable(d time.Duration) string {
	seconds := int(d / time.Second)
	if seconds < 60 {
		return plural(seconds, "second")
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	var parts []string
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	return strings.Join(parts, " ")
}

// ReadingLabel is the short byline form, e.g. "4 min read".
func ReadingLabel(words int) string {
	minutes := int(ReadingTime(words) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

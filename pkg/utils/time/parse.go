// ABOUTME: Lenient timestamp parsing for imported article metadata
// ABOUTME: Tries the layouts publishers put in article:published_time and similar tags

package time

import (
	"strings"
	"time"
)

var layouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseFlexibleTime parses value with the first matching layout. It returns
// the zero time when nothing matches.
func ParseFlexibleTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseWithDefault is ParseFlexibleTime with a fallback for unparseable input.
func ParseWithDefault(value string, fallback time.Time) time.Time {
	if parsed := ParseFlexibleTime(value); !parsed.IsZero() {
		return parsed
	}
	return fallback
}

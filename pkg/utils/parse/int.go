// ABOUTME: Helpers for reading numbers out of environment strings
// ABOUTME: Fall back to a default instead of failing on bad input

package parse

import (
	"strconv"
	"strings"
	"time"
)

// IntOr parses s as an integer, returning fallback when s is empty or invalid.
func IntOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

// SecondsOr parses s as a number of seconds.
func SecondsOr(s string, fallback time.Duration) time.Duration {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return time.Duration(v) * time.Second
}

// BoolOr parses s with strconv.ParseBool.
func BoolOr(s string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

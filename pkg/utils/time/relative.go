// ABOUTME: Relative time formatting for article bylines
// ABOUTME: Coarse "Nx ago" strings using a plain integer-division cascade

package time

import (
	"fmt"
	"time"
)

// Relative returns how long before now t happened as a short string such
// as "45s ago", "3d ago" or "2y ago". Months are 30 days and years 365
// days. Times in the future read as "0s ago".
func Relative(t, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds ago", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}

	weeks := days / 7
	if weeks < 4 {
		return fmt.Sprintf("%dw ago", weeks)
	}

	months := days / 30
	if months < 12 {
		return fmt.Sprintf("%dmo ago", months)
	}

	return fmt.Sprintf("%dy ago", days/365)
}

// Since is Relative measured against the current time.
func Since(t time.Time) string {
	return Relative(t, time.Now())
}

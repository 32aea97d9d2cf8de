// ABOUTME: Cleanup of converted markdown before it is split into blocks
// ABOUTME: Normalizes line endings, blank-line runs and spacing around headings

package importer

import (
	"regexp"
	"strings"
)

var (
	blankRunPattern = regexp.MustCompile(`\n{3,}`)
	trailingSpace   = regexp.MustCompile(`[ \t]+\n`)
	headingBefore   = regexp.MustCompile(`([^\n])\n(#{1,6} )`)
	headingAfter    = regexp.MustCompile(`(?m)^(#{1,6} [^\n]+)\n([^\n])`)
)

// cleanMarkdown tidies converter output. Leading indentation is kept so
// nested lists survive.
func cleanMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")

	markdown = trailingSpace.ReplaceAllString(markdown, "\n")
	markdown = headingBefore.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = headingAfter.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = blankRunPattern.ReplaceAllString(markdown, "\n\n")

	return strings.TrimSpace(markdown)
}

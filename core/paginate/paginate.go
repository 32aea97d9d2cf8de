// ABOUTME: Book pagination splitting long text into bounded pages
// ABOUTME: Packs whole blocks greedily and splits oversize blocks at sentences or spaces

package paginate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"pamphlets-api/core/blocks"
)

// DefaultMaxChars is the page size used when none is given.
const DefaultMaxChars = 1200

// Paginate splits sourceText into pages of at most maxChars characters.
//
// Blocks are packed greedily, joined by a blank line. A block that does not
// fit starts a new page; a block longer than a page is split with
// SplitLongBlock and its last fragment opens the next page. The result is
// never empty: blank input yields a single empty page.
func Paginate(sourceText string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	var pages []string
	current := ""

	start := func(block string) {
		if length(block) <= maxChars {
			current = block
			return
		}
		fragments := SplitLongBlock(block, maxChars)
		pages = append(pages, fragments[:len(fragments)-1]...)
		current = fragments[len(fragments)-1]
	}

	for _, block := range blocks.Split(sourceText) {
		if current == "" {
			start(block)
			continue
		}
		if length(current)+len(blocks.Separator)+length(block) <= maxChars {
			current += blocks.Separator + block
			continue
		}
		pages = append(pages, current)
		current = ""
		start(block)
	}

	if current != "" {
		pages = append(pages, current)
	}
	if len(pages) == 0 {
		return []string{""}
	}
	return pages
}

// SplitLongBlock cuts text into fragments of at most maxChars characters.
//
// Each cut prefers the last sentence end (., ! or ? followed by whitespace
// and an uppercase letter) inside the window, provided it lies past half
// the window. Otherwise it cuts at the last whitespace, and as a last
// resort exactly at maxChars. Fragments are trimmed and never empty; the
// result always has at least one element.
func SplitLongBlock(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	var fragments []string
	rest := []rune(strings.TrimSpace(text))

	for len(rest) > maxChars {
		cut := sentenceCut(rest, maxChars)
		if cut == 0 {
			cut = whitespaceCut(rest, maxChars)
		}
		if cut == 0 {
			cut = maxChars
		}
		if fragment := strings.TrimSpace(string(rest[:cut])); fragment != "" {
			fragments = append(fragments, fragment)
		}
		rest = []rune(strings.TrimLeftFunc(string(rest[cut:]), unicode.IsSpace))
	}

	if tail := strings.TrimSpace(string(rest)); tail != "" || len(fragments) == 0 {
		fragments = append(fragments, tail)
	}
	return fragments
}

// sentenceCut returns the length of the longest prefix ending in a
// sentence boundary within the window, or 0 if there is none past half of
// maxChars.
func sentenceCut(text []rune, maxChars int) int {
	for i := maxChars - 1; i >= 0; i-- {
		if i+1 < maxChars/2 {
			return 0
		}
		switch text[i] {
		case '.', '!', '?':
		default:
			continue
		}
		if i+2 < len(text) && unicode.IsSpace(text[i+1]) && unicode.IsUpper(text[i+2]) {
			return i + 1
		}
	}
	return 0
}

// whitespaceCut returns the index of the last whitespace at or before
// maxChars, or 0 if there is none.
func whitespaceCut(text []rune, maxChars int) int {
	for i := maxChars; i > 0; i-- {
		if unicode.IsSpace(text[i]) {
			return i
		}
	}
	return 0
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}

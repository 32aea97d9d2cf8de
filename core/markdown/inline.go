// ABOUTME: Inline markdown renderer turning block text into typed runs
// ABOUTME: Single left-to-right pass; consumed regions are never revisited

package markdown

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// inlineMatcher tries to match one syntax at position i and returns the
// run plus the index just past the match.
type inlineMatcher func(sc *inlineScanner, i int) (Run, int, bool)

// inlineMatchers are tried at every position in priority order.
var inlineMatchers = []inlineMatcher{
	delimited("~~", RunStrikethrough),
	(*inlineScanner).matchCode,
	delimited("**", RunBold),
	delimited("__", RunBold),
	(*inlineScanner).matchUnderscoreItalic,
	delimited("*", RunItalic),
	(*inlineScanner).matchLink,
	(*inlineScanner).matchImage,
}

// RenderInline converts the text of a single block into inline runs.
//
// Markup characters consumed by a match do not appear in the output;
// unmatched markers are kept as literal text. Adjacent plain text is
// merged into one run. Emphasis nested inside an already matched span is
// not parsed again, so "**a _b_**" yields one bold run with literal
// underscores.
func RenderInline(text string) []Run {
	sc := newInlineScanner(text)

	var runs []Run
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			runs = append(runs, Run{Kind: RunPlain, Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		if run, end, ok := sc.match(i); ok {
			if run.Kind == RunPlain {
				plain.WriteString(run.Text)
			} else {
				flush()
				runs = append(runs, run)
			}
			i = end
			continue
		}
		plain.WriteByte(text[i])
		i++
	}
	flush()

	return runs
}

// searchResult remembers the first hit at or after from; at is -1 when
// there is none.
type searchResult struct {
	from, at int
}

// inlineScanner holds the text being rendered and the last forward search
// per target. Every search asks for the first position at or after some
// offset, so a cached answer stays valid for any offset between its from
// and its hit. This keeps runs of unclosed openers linear.
type inlineScanner struct {
	s     string
	cache map[string]searchResult
}

func newInlineScanner(s string) *inlineScanner {
	return &inlineScanner{s: s, cache: make(map[string]searchResult)}
}

// next returns the first absolute index at or after from found by find,
// or -1. find receives s[from:] and returns a relative index or -1.
func (sc *inlineScanner) next(key string, from int, find func(rest string) int) int {
	if r, ok := sc.cache[key]; ok && from >= r.from && (r.at < 0 || from <= r.at) {
		return r.at
	}
	at := -1
	if from <= len(sc.s) {
		if rel := find(sc.s[from:]); rel >= 0 {
			at = from + rel
		}
	}
	sc.cache[key] = searchResult{from: from, at: at}
	return at
}

func (sc *inlineScanner) nextByte(b byte, from int) int {
	return sc.next(string(b), from, func(rest string) int { return strings.IndexByte(rest, b) })
}

// lineEnd is the index of the newline ending the line that holds from, or
// len(s) on the last line.
func (sc *inlineScanner) lineEnd(from int) int {
	if nl := sc.nextByte('\n', from); nl >= 0 {
		return nl
	}
	return len(sc.s)
}

func (sc *inlineScanner) match(i int) (Run, int, bool) {
	switch sc.s[i] {
	case '~', '`', '*', '_', '[', '!':
	default:
		return Run{}, 0, false
	}
	for _, m := range inlineMatchers {
		if run, end, ok := m(sc, i); ok {
			return run, end, true
		}
	}
	return Run{}, 0, false
}

// delimited matches marker, at least one character, marker, on one line.
// The closing marker is the first one after the opening (non-greedy), and
// the content may not start with the marker character.
func delimited(marker string, kind RunKind) inlineMatcher {
	return func(sc *inlineScanner, i int) (Run, int, bool) {
		s := sc.s
		if !strings.HasPrefix(s[i:], marker) {
			return Run{}, 0, false
		}
		start := i + len(marker)
		if start >= len(s) || s[start] == marker[0] {
			return Run{}, 0, false
		}
		end := sc.next(marker, start+1, func(rest string) int { return strings.Index(rest, marker) })
		if end < 0 || end > sc.lineEnd(start) {
			return Run{}, 0, false
		}
		return Run{Kind: kind, Text: s[start:end]}, end + len(marker), true
	}
}

func (sc *inlineScanner) matchCode(i int) (Run, int, bool) {
	if sc.s[i] != '`' {
		return Run{}, 0, false
	}
	end := sc.nextByte('`', i+1)
	if end <= i+1 {
		return Run{}, 0, false
	}
	return Run{Kind: RunCode, Text: sc.s[i+1 : end]}, end + 1, true
}

// matchUnderscoreItalic matches _x_ only when neither underscore touches a
// word character from the outside, so snake_case identifiers stay intact.
func (sc *inlineScanner) matchUnderscoreItalic(i int) (Run, int, bool) {
	s := sc.s
	if s[i] != '_' || i+1 >= len(s) || s[i+1] == '_' {
		return Run{}, 0, false
	}
	if prev, _ := utf8.DecodeLastRuneInString(s[:i]); i > 0 && isWordRune(prev) {
		return Run{}, 0, false
	}
	end := sc.next("_closer", i+2, underscoreCloser)
	if end < 0 || end > sc.lineEnd(i) {
		return Run{}, 0, false
	}
	return Run{Kind: RunItalic, Text: s[i+1 : end]}, end + 1, true
}

// underscoreCloser finds the first underscore not followed by a word
// character.
func underscoreCloser(rest string) int {
	for j := 0; j < len(rest); {
		rel := strings.IndexByte(rest[j:], '_')
		if rel < 0 {
			return -1
		}
		j += rel
		if next, _ := utf8.DecodeRuneInString(rest[j+1:]); j+1 >= len(rest) || !isWordRune(next) {
			return j
		}
		j++
	}
	return -1
}

// linkParts splits "[label](target)" starting at the '[' at open. The label
// may not contain ']' and the target may not contain ')'.
func (sc *inlineScanner) linkParts(open int) (label, target string, end int, ok bool) {
	s := sc.s
	closeBracket := sc.nextByte(']', open+1)
	if closeBracket < 0 || closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
		return "", "", 0, false
	}
	closeParen := sc.nextByte(')', closeBracket+2)
	if closeParen <= closeBracket+2 {
		return "", "", 0, false
	}
	return s[open+1 : closeBracket], s[closeBracket+2 : closeParen], closeParen + 1, true
}

func (sc *inlineScanner) matchLink(i int) (Run, int, bool) {
	if sc.s[i] != '[' {
		return Run{}, 0, false
	}
	label, target, end, ok := sc.linkParts(i)
	if !ok || label == "" {
		return Run{}, 0, false
	}
	dest, ok := destination(target)
	if !ok {
		return Run{Kind: RunPlain, Text: label}, end, true
	}
	return Run{Kind: RunLink, Text: label, URL: dest}, end, true
}

func (sc *inlineScanner) matchImage(i int) (Run, int, bool) {
	if sc.s[i] != '!' || i+1 >= len(sc.s) || sc.s[i+1] != '[' {
		return Run{}, 0, false
	}
	alt, target, end, ok := sc.linkParts(i + 1)
	if !ok {
		return Run{}, 0, false
	}
	dest, ok := destination(target)
	if !ok {
		return Run{Kind: RunPlain, Text: alt}, end, true
	}
	return Run{Kind: RunImage, Text: alt, URL: dest}, end, true
}

// destination extracts the URL from a link target, dropping an optional
// quoted title. Targets that do not parse, or use a script scheme, are
// rejected.
func destination(target string) (string, bool) {
	fields := strings.Fields(target)
	if len(fields) == 0 {
		return "", false
	}
	raw := fields[0]
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	switch strings.ToLower(u.Scheme) {
	case "javascript", "vbscript":
		return "", false
	}
	return raw, true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ABOUTME: Block splitting shared by the markdown renderer and the paginator
// ABOUTME: Splits text on blank-line runs while keeping fenced code blocks whole

package blocks

import "strings"

// Separator joins blocks back together.
const Separator = "\n\n"

const fence = "```"

// Normalize converts Windows and old Mac line endings to "\n".
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// Split breaks text into top-level blocks.
//
// Blocks are separated by one or more blank lines. A blank line inside a
// closed ``` fence does not end the block, so a code sample with empty
// lines stays in one piece. An unclosed fence is not protected.
// Leading and trailing blank lines are trimmed from every block and empty
// blocks are dropped; the result is nil for blank input.
func Split(text string) []string {
	lines := strings.Split(Normalize(text), "\n")
	protected := fencedLines(lines)

	var result []string
	var current []string

	flush := func() {
		if block := trimBlankLines(current); block != "" {
			result = append(result, block)
		}
		current = current[:0]
	}

	for i, line := range lines {
		if isBlank(line) && !protected[i] {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return result
}

// fencedLines marks the lines strictly inside a closed fence pair.
func fencedLines(lines []string) []bool {
	protected := make([]bool, len(lines))
	open := -1
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), fence) {
			continue
		}
		if open < 0 {
			open = i
			continue
		}
		for j := open + 1; j < i; j++ {
			protected[j] = true
		}
		open = -1
	}
	return protected
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func trimBlankLines(lines []string) string {
	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	if start == end {
		return ""
	}
	return strings.TrimRight(strings.Join(lines[start:end], "\n"), " \t")
}

// ABOUTME: Pipe table detection and parsing
// ABOUTME: Accepts GFM tables with a separator row and bare |...| tables without one

package markdown

import (
	"regexp"
	"strings"
)

var (
	separatorCellPattern = regexp.MustCompile(`^:?-+:?$`)
	pipeRowPattern       = regexp.MustCompile(`^\|.*\|$`)
)

// parseTable recognizes a table block.
//
// Two shapes are accepted. A GFM table has a header and a second line
// containing "|", the second made only of separator cells. A bare pipe table has
// at least two lines that each start and end with "|"; its first line is
// the header and every column is left aligned.
func parseTable(block string) (*Table, bool) {
	lines := nonBlankLines(block)
	if len(lines) < 2 {
		return nil, false
	}

	if isGFMTable(lines) {
		sep := splitRow(lines[1])
		table := &Table{
			Header:     cells(splitRow(lines[0])),
			Alignments: make([]Alignment, len(sep)),
		}
		for i, c := range sep {
			table.Alignments[i] = alignmentOf(c)
		}
		for _, line := range lines[2:] {
			table.Rows = append(table.Rows, cells(splitRow(line)))
		}
		return table, true
	}

	for _, line := range lines {
		if !pipeRowPattern.MatchString(line) {
			return nil, false
		}
	}
	header := splitRow(lines[0])
	table := &Table{
		Header:     cells(header),
		Alignments: make([]Alignment, len(header)),
	}
	for i := range table.Alignments {
		table.Alignments[i] = AlignLeft
	}
	for _, line := range lines[1:] {
		table.Rows = append(table.Rows, cells(splitRow(line)))
	}
	return table, true
}

func isGFMTable(lines []string) bool {
	if !strings.Contains(lines[0], "|") || !strings.Contains(lines[1], "|") {
		return false
	}
	sep := splitRow(lines[1])
	if len(sep) == 0 {
		return false
	}
	for _, c := range sep {
		if !separatorCellPattern.MatchString(c) {
			return false
		}
	}
	return true
}

// splitRow strips the outer pipes of a row and splits it into trimmed cells.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func cells(texts []string) []Cell {
	out := make([]Cell, len(texts))
	for i, t := range texts {
		out[i] = Cell{Text: t, Runs: RenderInline(t)}
	}
	return out
}

func alignmentOf(sep string) Alignment {
	left := strings.HasPrefix(sep, ":")
	right := strings.HasSuffix(sep, ":")
	switch {
	case left && right:
		return AlignCenter
	case right:
		return AlignRight
	default:
		return AlignLeft
	}
}

func nonBlankLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

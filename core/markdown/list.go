// ABOUTME: Nested list parsing for ordered, unordered and mixed lists
// ABOUTME: Recursion keys off indentation; the parser returns its cursor explicitly

package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	orderedItemPattern   = regexp.MustCompile(`^(\s*)(\d+)\.\s+(.*)$`)
	unorderedItemPattern = regexp.MustCompile(`^(\s*)[-*]\s+(.*)$`)
	taskItemPattern      = regexp.MustCompile(`^\s*[-*]\s+\[([ xX])\]\s+(.*)$`)
)

// listLine is one pre-parsed list item line.
type listLine struct {
	indent  int
	ordered bool
	number  int
	text    string
}

// parseListLine recognizes an ordered or unordered item line.
func parseListLine(line string) (listLine, bool) {
	if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			n = 1
		}
		return listLine{indent: indentWidth(m[1]), ordered: true, number: n, text: m[3]}, true
	}
	if m := unorderedItemPattern.FindStringSubmatch(line); m != nil {
		return listLine{indent: indentWidth(m[1]), text: m[2]}, true
	}
	return listLine{}, false
}

// IsListItemLine reports whether line is an ordered or unordered list item.
func IsListItemLine(line string) bool {
	_, ok := parseListLine(line)
	return ok
}

// isListBlock reports whether every non-blank line of block is a list item.
func isListBlock(block string) bool {
	seen := false
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !IsListItemLine(line) {
			return false
		}
		seen = true
	}
	return seen
}

// indentWidth counts leading whitespace columns; a tab counts as four.
func indentWidth(ws string) int {
	w := 0
	for _, r := range ws {
		if r == '\t' {
			w += 4
		} else {
			w++
		}
	}
	return w
}

// buildList parses list lines into a tree. Callers must have checked that
// every non-blank line is a list item.
func buildList(block string) *List {
	var lines []listLine
	for _, raw := range strings.Split(block, "\n") {
		if l, ok := parseListLine(raw); ok {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return &List{}
	}
	base := lines[0].indent
	for _, l := range lines {
		if l.indent < base {
			base = l.indent
		}
	}
	list, _ := parseListLevel(lines, 0, base)
	return list
}

// parseListLevel parses one nesting level starting at pos, whose items sit
// at column base. A deeper line opens a child list on the preceding item;
// a shallower line ends the level. It returns the list and the index of
// the first line it did not consume.
func parseListLevel(lines []listLine, pos, base int) (*List, int) {
	list := &List{Ordered: lines[pos].ordered}
	if list.Ordered {
		list.Start = lines[pos].number
	}

	for pos < len(lines) {
		l := lines[pos]
		switch {
		case l.indent < base:
			return list, pos
		case l.indent > base && len(list.Items) > 0:
			child, next := parseListLevel(lines, pos, l.indent)
			last := &list.Items[len(list.Items)-1]
			if last.Children == nil {
				last.Children = child
			} else {
				last.Children.Items = append(last.Children.Items, child.Items...)
			}
			pos = next
		default:
			list.Items = append(list.Items, ListItem{Runs: RenderInline(l.text)})
			pos++
		}
	}
	return list, pos
}

// parseTaskItems returns the task items of block, or false if any
// non-blank line is not a checkbox item.
func parseTaskItems(block string) ([]TaskItem, bool) {
	var items []TaskItem
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := taskItemPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, false
		}
		items = append(items, TaskItem{
			Checked: m[1] != " ",
			Runs:    RenderInline(m[2]),
		})
	}
	return items, len(items) > 0
}

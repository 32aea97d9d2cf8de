// ABOUTME: Block markdown renderer producing one display node per block
// ABOUTME: Blocks are classified by an ordered rule table; paragraph is the fallback

package markdown

import (
	"regexp"
	"strings"

	"pamphlets-api/core/blocks"
)

var (
	horizontalRulePattern = regexp.MustCompile(`^(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)
	blockImagePattern     = regexp.MustCompile(`^!\[([^\]]*)\]\((\S+?)(?:\s+"([^"]*)")?\)$`)
	captionPattern        = regexp.MustCompile(`^(?:\*\*.+\*\*|\*[^*].*\*|_.+_)$`)
	headingPattern        = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	closingHashesPattern  = regexp.MustCompile(`\s+#+\s*$`)
	youTubeEmbedPattern   = regexp.MustCompile(`^@\[youtube\]\(([^)\s]+)\)$`)
	youTubeURLPattern     = regexp.MustCompile(`^(?:https?://)?(?:www\.|m\.)?(?:youtube\.com|youtu\.be)/\S+$`)
)

// blockRule is one entry of the classification table. render reports
// false when the block does not have the rule's shape.
type blockRule struct {
	name   string
	render func(block string) ([]Node, bool)
}

// blockRules are evaluated in order; the first match wins.
var blockRules []blockRule

func init() {
	blockRules = []blockRule{
		{"code-block", renderCodeBlock},
		{"blockquote", renderBlockquote},
		{"horizontal-rule", renderHorizontalRule},
		{"table", renderTable},
		{"task-list", renderTaskList},
		{"nested-list", renderNestedList},
		{"unordered-list", renderUnorderedList},
		{"captioned-image", renderCaptionedImage},
		{"image", renderImage},
		{"heading", renderHeading},
		{"youtube-embed", renderYouTube},
		{"paragraph", renderParagraph},
	}
}

// RenderBlocks converts one page of markdown-flavored text into display
// nodes in source order. It never fails: blocks that match no rule become
// paragraphs.
func RenderBlocks(pageText string) []Node {
	var nodes []Node
	for _, block := range MergeListBlocks(blocks.Split(pageText)) {
		nodes = append(nodes, renderBlock(block)...)
	}
	return nodes
}

// MergeListBlocks joins consecutive blocks that consist only of list item
// lines, so items separated by blank lines render as one list. A list block
// is never merged with a neighbouring non-list block.
func MergeListBlocks(in []string) []string {
	var out []string
	for _, block := range in {
		if n := len(out); n > 0 && isListBlock(block) && isListBlock(out[n-1]) {
			out[n-1] += "\n" + block
			continue
		}
		out = append(out, block)
	}
	return out
}

func renderBlock(block string) []Node {
	for _, rule := range blockRules {
		if nodes, ok := rule.render(block); ok {
			return nodes
		}
	}
	return nil
}

// classify returns the name of the rule that claims block.
func classify(block string) string {
	for _, rule := range blockRules {
		if _, ok := rule.render(block); ok {
			return rule.name
		}
	}
	return ""
}

func renderCodeBlock(block string) ([]Node, bool) {
	lines := strings.Split(block, "\n")
	if len(lines) < 2 || !strings.HasPrefix(strings.TrimSpace(lines[0]), "```") {
		return nil, false
	}
	if strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return nil, false
	}
	var lang string
	if fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(lines[0]), "```")); len(fields) > 0 {
		lang = fields[0]
	}
	return []Node{{
		Kind: KindCodeBlock,
		Code: &CodeBlock{
			Language: lang,
			Code:     strings.Join(lines[1:len(lines)-1], "\n"),
		},
	}}, true
}

func renderBlockquote(block string) ([]Node, bool) {
	first := strings.TrimLeft(block, " \t")
	if !strings.HasPrefix(first, "> ") && first != ">" && !strings.HasPrefix(first, ">\n") {
		return nil, false
	}
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		line = strings.TrimLeft(line, " \t")
		if strings.HasPrefix(line, ">") {
			line = strings.TrimPrefix(line[1:], " ")
		}
		lines[i] = line
	}
	text := strings.TrimSpace(strings.Join(lines, "\n"))
	return []Node{{Kind: KindBlockquote, Runs: RenderInline(text)}}, true
}

func renderHorizontalRule(block string) ([]Node, bool) {
	if !horizontalRulePattern.MatchString(strings.TrimSpace(block)) {
		return nil, false
	}
	return []Node{{Kind: KindHorizontalRule}}, true
}

func renderTable(block string) ([]Node, bool) {
	table, ok := parseTable(block)
	if !ok {
		return nil, false
	}
	return []Node{{Kind: KindTable, Table: table}}, true
}

func renderTaskList(block string) ([]Node, bool) {
	items, ok := parseTaskItems(block)
	if !ok {
		return nil, false
	}
	return []Node{{Kind: KindTaskList, Tasks: items}}, true
}

// renderNestedList claims list blocks with at least one numbered item;
// nesting may mix ordered and unordered levels.
func renderNestedList(block string) ([]Node, bool) {
	if !isListBlock(block) || !hasOrderedItem(block) {
		return nil, false
	}
	return []Node{{Kind: KindList, List: buildList(block)}}, true
}

// renderUnorderedList claims bullet-only list blocks without checkboxes.
func renderUnorderedList(block string) ([]Node, bool) {
	if !isListBlock(block) || hasOrderedItem(block) || hasTaskItem(block) {
		return nil, false
	}
	return []Node{{Kind: KindList, List: buildList(block)}}, true
}

func hasOrderedItem(block string) bool {
	for _, line := range strings.Split(block, "\n") {
		if orderedItemPattern.MatchString(line) {
			return true
		}
	}
	return false
}

func hasTaskItem(block string) bool {
	for _, line := range strings.Split(block, "\n") {
		if taskItemPattern.MatchString(line) {
			return true
		}
	}
	return false
}

func renderCaptionedImage(block string) ([]Node, bool) {
	lines := nonBlankLines(block)
	if len(lines) != 2 {
		return nil, false
	}
	img, ok := parseBlockImage(lines[0])
	if !ok {
		return nil, false
	}
	caption := strings.TrimSpace(lines[1])
	if !captionPattern.MatchString(caption) {
		return nil, false
	}
	img.Caption = RenderInline(caption)
	return []Node{{Kind: KindImage, Image: img}}, true
}

func renderImage(block string) ([]Node, bool) {
	lines := nonBlankLines(block)
	if len(lines) != 1 {
		return nil, false
	}
	img, ok := parseBlockImage(lines[0])
	if !ok {
		return nil, false
	}
	return []Node{{Kind: KindImage, Image: img}}, true
}

func parseBlockImage(line string) (*Image, bool) {
	m := blockImagePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, false
	}
	dest, ok := destination(m[2])
	if !ok {
		return nil, false
	}
	return &Image{URL: dest, Alt: m[1], Title: m[3]}, true
}

// renderHeading uses the first line as the heading; any further lines of
// the block are classified again on their own.
func renderHeading(block string) ([]Node, bool) {
	first, rest := splitFirstLine(block)
	m := headingPattern.FindStringSubmatch(strings.TrimSpace(first))
	if m == nil {
		return nil, false
	}
	text := strings.TrimSpace(closingHashesPattern.ReplaceAllString(m[2], ""))
	nodes := []Node{{Kind: KindHeading, Level: len(m[1]), Runs: RenderInline(text)}}
	return append(nodes, renderRest(rest)...), true
}

// renderYouTube embeds a video when the first line is a bare YouTube URL or
// @[youtube](url). Lines after it are classified again on their own.
func renderYouTube(block string) ([]Node, bool) {
	first, rest := splitFirstLine(block)
	first = strings.TrimSpace(first)

	candidate := ""
	if m := youTubeEmbedPattern.FindStringSubmatch(first); m != nil {
		candidate = m[1]
	} else if youTubeURLPattern.MatchString(first) {
		candidate = first
	}
	if candidate == "" {
		return nil, false
	}
	id, ok := YouTubeVideoID(candidate)
	if !ok {
		return nil, false
	}
	nodes := []Node{{Kind: KindYouTube, Video: &Video{ID: id, URL: candidate}}}
	return append(nodes, renderRest(rest)...), true
}

func renderParagraph(block string) ([]Node, bool) {
	return []Node{{Kind: KindParagraph, Runs: RenderInline(strings.TrimSpace(block))}}, true
}

func splitFirstLine(block string) (string, string) {
	first, rest, _ := strings.Cut(block, "\n")
	return first, rest
}

func renderRest(rest string) []Node {
	if strings.TrimSpace(rest) == "" {
		return nil
	}
	return renderBlock(strings.Trim(rest, "\n"))
}

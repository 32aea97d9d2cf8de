// ABOUTME: Display node model produced by the markdown renderer
// ABOUTME: Nodes are a tagged union: a Kind plus the payload that kind carries

package markdown

// NodeKind identifies the type of a display node.
type NodeKind string

const (
	KindParagraph      NodeKind = "paragraph"
	KindHeading        NodeKind = "heading"
	KindList           NodeKind = "list"
	KindTable          NodeKind = "table"
	KindBlockquote     NodeKind = "blockquote"
	KindCodeBlock      NodeKind = "code-block"
	KindImage          NodeKind = "image"
	KindYouTube        NodeKind = "youtube-embed"
	KindTaskList       NodeKind = "task-list"
	KindHorizontalRule NodeKind = "horizontal-rule"
)

// RunKind identifies the type of an inline run.
type RunKind string

const (
	RunPlain         RunKind = "plain"
	RunBold          RunKind = "bold"
	RunItalic        RunKind = "italic"
	RunStrikethrough RunKind = "strikethrough"
	RunCode          RunKind = "code"
	RunLink          RunKind = "link"
	RunImage         RunKind = "image"
)

// Run is a typed span of inline text. For links Text is the link label,
// for images it is the alt text.
type Run struct {
	Kind RunKind `json:"kind"`
	Text string  `json:"text"`
	URL  string  `json:"url,omitempty"`
}

// Node is one rendered block.
//
// Only the fields belonging to Kind are set:
//
//	paragraph, blockquote  Runs
//	heading                Level, Runs
//	list                   List
//	table                  Table
//	code-block             Code
//	image                  Image
//	youtube-embed          Video
//	task-list              Tasks
type Node struct {
	Kind  NodeKind   `json:"kind"`
	Level int        `json:"level,omitempty"`
	Runs  []Run      `json:"runs,omitempty"`
	List  *List      `json:"list,omitempty"`
	Table *Table     `json:"table,omitempty"`
	Code  *CodeBlock `json:"code,omitempty"`
	Image *Image     `json:"image,omitempty"`
	Video *Video     `json:"video,omitempty"`
	Tasks []TaskItem `json:"tasks,omitempty"`
}

// List is an ordered or unordered list. Nesting hangs off items.
type List struct {
	Ordered bool       `json:"ordered"`
	Start   int        `json:"start,omitempty"`
	Items   []ListItem `json:"items"`
}

// ListItem is one entry of a List.
type ListItem struct {
	Runs     []Run `json:"runs"`
	Children *List `json:"children,omitempty"`
}

// Alignment of a table column.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Table is a pipe table. Rows may have more or fewer cells than the header.
type Table struct {
	Header     []Cell      `json:"header"`
	Alignments []Alignment `json:"alignments"`
	Rows       [][]Cell    `json:"rows"`
}

// Cell is a table cell.
type Cell struct {
	Text string `json:"text"`
	Runs []Run  `json:"runs"`
}

// AlignmentAt returns the alignment of column i, defaulting to left for
// columns the separator row did not describe.
func (t *Table) AlignmentAt(i int) Alignment {
	if i < 0 || i >= len(t.Alignments) {
		return AlignLeft
	}
	return t.Alignments[i]
}

// CodeBlock is a fenced code sample.
type CodeBlock struct {
	Language string `json:"language,omitempty"`
	Code     string `json:"code"`
}

// Image is a block-level image, optionally captioned.
type Image struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Title   string `json:"title,omitempty"`
	Caption []Run  `json:"caption,omitempty"`
}

// Video is an embedded YouTube video.
type Video struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// TaskItem is one checkbox line of a task list.
type TaskItem struct {
	Checked bool  `json:"checked"`
	Runs    []Run `json:"runs"`
}

// PlainText concatenates the text of runs.
func PlainText(runs []Run) string {
	n := 0
	for _, r := range runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

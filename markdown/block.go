package markdown

import "strings"

// Block is a node in the structural document tree. Blocks own their children
// exclusively; the tree has no sharing and no cycles.
type Block interface{ block() }

// Paragraph is a run of text lines rendered as one paragraph. Text holds the
// raw source; Spans is filled by the span conversion pass.
type Paragraph struct {
	Text  string
	Spans []Span
}

// Heading is an ATX or Setext heading. Both forms normalize to the same
// node: Level 1-6 and the marker-stripped text.
type Heading struct {
	Level int
	Text  string
	Spans []Span
}

// Blockquote holds the blocks assembled from the quote's re-parsed interior.
type Blockquote struct {
	Children []Block
}

// CodeBlock is an indented code block with one level of indent stripped.
// Its text is never scanned for spans.
type CodeBlock struct {
	Text string
}

// HorizontalRule is a thematic break.
type HorizontalRule struct{}

// ListItem is one item of a bullet or numbered list. Adjacent ListItem
// siblings sharing the Ordered flag form a list; there is no wrapper node.
// Line is the 1-based source line of the item's lead, kept for diagnostics.
type ListItem struct {
	Ordered  bool
	Children []Block
	Line     int
}

func (*Paragraph) block()      {}
func (*Heading) block()        {}
func (*Blockquote) block()     {}
func (*CodeBlock) block()      {}
func (*HorizontalRule) block() {}
func (*ListItem) block()       {}

// listIndent is the indentation consumed per list nesting level. Trailing
// item content indented at least this deep is parsed as child blocks.
const listIndent = 4

// assemble folds a chunk sequence into blocks. Blank chunks separate runs
// and are dropped; link definitions contribute no visible block.
func assemble(chunks []chunk) []Block {
	var blocks []Block
	for _, c := range chunks {
		switch c.kind {
		case chunkBlank, chunkLinkDef:
		case chunkHeader:
			blocks = append(blocks, &Heading{Level: c.level, Text: c.text})
		case chunkRule:
			blocks = append(blocks, &HorizontalRule{})
		case chunkIndented:
			blocks = append(blocks, &CodeBlock{Text: stripCodeIndent(c.content)})
		case chunkBlockquote:
			inner := stripQuoteMarkers(c.content)
			blocks = append(blocks, &Blockquote{Children: assemble(chunkLines(inner))})
		case chunkBullet, chunkNumbered:
			blocks = append(blocks, assembleListItem(c))
		default:
			blocks = append(blocks, &Paragraph{Text: strings.TrimSuffix(c.content, "\n")})
		}
	}
	return blocks
}

// assembleListItem builds one list item. Trailing lines indented by a full
// level are re-chunked and re-assembled into child blocks (sub-lists, code,
// quotes); shallower trailing lines flatten into the item's own paragraph.
func assembleListItem(c chunk) *ListItem {
	lines := splitLines(c.content)
	lead := lineText(lines[0])[c.marker:]
	trailing := lines[1:]
	item := &ListItem{Ordered: c.kind == chunkNumbered, Line: c.line}

	if len(trailing) > 0 && minIndentWidth(trailing) >= listIndent {
		item.Children = append(item.Children, &Paragraph{Text: lead})
		var sub strings.Builder
		for _, l := range trailing {
			sub.WriteString(stripOneIndent(l))
		}
		item.Children = append(item.Children, assemble(chunkLines(sub.String()))...)
		return item
	}

	var text strings.Builder
	text.WriteString(lead)
	for _, l := range trailing {
		text.WriteString("\n")
		text.WriteString(strings.TrimLeft(lineText(l), " \t"))
	}
	item.Children = []Block{&Paragraph{Text: text.String()}}
	return item
}

// applySpans converts each block's raw text into its span tree. The link
// table must be complete before the first call and is never mutated here.
func applySpans(blocks []Block, links LinkTable) {
	for _, b := range blocks {
		switch t := b.(type) {
		case *Paragraph:
			t.Spans = convertSpans(t.Text, links)
		case *Heading:
			t.Spans = convertSpans(t.Text, links)
		case *Blockquote:
			applySpans(t.Children, links)
		case *ListItem:
			applySpans(t.Children, links)
		}
	}
}

// minIndentWidth returns the smallest indent across the lines, counting a
// tab as one full level.
func minIndentWidth(lines []string) int {
	min := -1
	for _, l := range lines {
		w := 0
		for i := 0; i < len(l); i++ {
			if l[i] == ' ' {
				w++
			} else if l[i] == '\t' {
				w += listIndent
			} else {
				break
			}
		}
		if min < 0 || w < min {
			min = w
		}
	}
	if min < 0 {
		return 0
	}
	return min
}

// stripOneIndent removes one tab or up to four leading spaces.
func stripOneIndent(line string) string {
	if strings.HasPrefix(line, "\t") {
		return line[1:]
	}
	i := 0
	for i < len(line) && i < listIndent && line[i] == ' ' {
		i++
	}
	return line[i:]
}

// stripCodeIndent removes one indent level per line; blank lines inside the
// run become empty lines rather than splitting the block.
func stripCodeIndent(content string) string {
	var b strings.Builder
	for _, l := range splitLines(content) {
		if isBlankLine(l) {
			if strings.HasSuffix(l, "\n") {
				b.WriteString("\n")
			}
			continue
		}
		b.WriteString(stripOneIndent(l))
	}
	return b.String()
}

// stripQuoteMarkers removes the > prefix (and one following space) from each
// prefixed line; lazy continuation lines pass through unchanged.
func stripQuoteMarkers(content string) string {
	var b strings.Builder
	for _, l := range splitLines(content) {
		if m := blockquoteLeadRe.FindString(l); m != "" {
			b.WriteString(l[len(m):])
		} else {
			b.WriteString(l)
		}
	}
	return b.String()
}

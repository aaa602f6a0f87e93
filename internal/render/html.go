// Package render walks a parsed markdown document tree and emits HTML.
// It is a consumer of the markdown package's public tree; the parser never
// depends on it.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2html/markdown"
)

// Renderer writes a document tree as an HTML fragment.
type Renderer struct {
	theme string
}

// New creates a Renderer. theme names a chroma style used to highlight code
// blocks; an empty theme disables highlighting and emits plain pre/code.
// Unknown theme names fall back to chroma's default style.
func New(theme string) *Renderer {
	return &Renderer{theme: theme}
}

// Render returns the HTML fragment for the document body.
func (r *Renderer) Render(doc *markdown.Document) string {
	var b strings.Builder
	r.renderBlocks(&b, doc.Blocks)
	return b.String()
}

// renderBlocks emits a block sequence, grouping adjacent list items that
// share an ordered flag into a single ul or ol element.
func (r *Renderer) renderBlocks(b *strings.Builder, blocks []markdown.Block) {
	for i := 0; i < len(blocks); i++ {
		first, ok := blocks[i].(*markdown.ListItem)
		if !ok {
			r.renderBlock(b, blocks[i])
			continue
		}
		j := i
		for j < len(blocks) {
			item, ok := blocks[j].(*markdown.ListItem)
			if !ok || item.Ordered != first.Ordered {
				break
			}
			j++
		}
		r.renderList(b, blocks[i:j], first.Ordered)
		i = j - 1
	}
}

func (r *Renderer) renderBlock(b *strings.Builder, block markdown.Block) {
	switch t := block.(type) {
	case *markdown.Paragraph:
		b.WriteString("<p>")
		r.renderSpans(b, t.Spans)
		b.WriteString("</p>\n")
	case *markdown.Heading:
		fmt.Fprintf(b, "<h%d>", t.Level)
		r.renderSpans(b, t.Spans)
		fmt.Fprintf(b, "</h%d>\n", t.Level)
	case *markdown.Blockquote:
		b.WriteString("<blockquote>\n")
		r.renderBlocks(b, t.Children)
		b.WriteString("</blockquote>\n")
	case *markdown.CodeBlock:
		b.WriteString(r.highlight(t.Text))
	case *markdown.HorizontalRule:
		b.WriteString("<hr />\n")
	case *markdown.ListItem:
		// Reached only for an item outside a grouped run; render it as a
		// one-item list to keep the output well-formed.
		r.renderList(b, []markdown.Block{t}, t.Ordered)
	}
}

func (r *Renderer) renderList(b *strings.Builder, items []markdown.Block, ordered bool) {
	tag := "ul"
	if ordered {
		tag = "ol"
	}
	fmt.Fprintf(b, "<%s>\n", tag)
	for _, it := range items {
		item := it.(*markdown.ListItem)
		b.WriteString("<li>")
		if p, ok := soleParagraph(item.Children); ok {
			r.renderSpans(b, p.Spans)
		} else {
			b.WriteString("\n")
			r.renderBlocks(b, item.Children)
		}
		b.WriteString("</li>\n")
	}
	fmt.Fprintf(b, "</%s>\n", tag)
}

// soleParagraph reports whether the item holds exactly one paragraph, which
// renders tight (no p wrapper) inside its li.
func soleParagraph(blocks []markdown.Block) (*markdown.Paragraph, bool) {
	if len(blocks) != 1 {
		return nil, false
	}
	p, ok := blocks[0].(*markdown.Paragraph)
	return p, ok
}

func (r *Renderer) renderSpans(b *strings.Builder, spans []markdown.Span) {
	for _, s := range spans {
		switch t := s.(type) {
		case *markdown.Text:
			b.WriteString(html.EscapeString(t.Text))
		case *markdown.Emphasis:
			b.WriteString("<em>")
			r.renderSpans(b, t.Children)
			b.WriteString("</em>")
		case *markdown.Strong:
			b.WriteString("<strong>")
			r.renderSpans(b, t.Children)
			b.WriteString("</strong>")
		case *markdown.Code:
			b.WriteString("<code>")
			b.WriteString(html.EscapeString(t.Text))
			b.WriteString("</code>")
		case *markdown.Link:
			fmt.Fprintf(b, "<a href=%q", t.URL)
			if t.Title != "" {
				fmt.Fprintf(b, " title=%q", t.Title)
			}
			b.WriteString(">")
			r.renderSpans(b, t.Children)
			b.WriteString("</a>")
		case *markdown.LineBreak:
			b.WriteString("<br />\n")
		}
	}
}

// highlight renders a code block, syntax-highlighted when a lexer can be
// guessed from the content. Any highlighting failure falls back to plain
// escaped output rather than dropping the block.
func (r *Renderer) highlight(code string) string {
	if r.theme == "" {
		return plainCodeBlock(code)
	}
	lexer := lexers.Analyse(code)
	if lexer == nil {
		return plainCodeBlock(code)
	}
	lexer = chroma.Coalesce(lexer)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainCodeBlock(code)
	}
	var buf strings.Builder
	if err := chromahtml.New().Format(&buf, styles.Get(r.theme), iterator); err != nil {
		return plainCodeBlock(code)
	}
	buf.WriteString("\n")
	return buf.String()
}

func plainCodeBlock(code string) string {
	return "<pre><code>" + html.EscapeString(code) + "</code></pre>\n"
}

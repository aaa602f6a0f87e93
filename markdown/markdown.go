// Package markdown parses classic markdown text into a structured document
// tree suitable for rendering.
//
// Parsing runs in two passes. A line-oriented grammar first segments the
// input into typed chunks (paragraphs, list items, headers, blockquotes,
// indented code, horizontal rules, link definitions, blank runs); the chunk
// rules are tried in a fixed priority order with a text-block fallback, so
// every line of well-formed UTF-8 input lands in exactly one chunk. The
// second pass folds chunks into a block tree, re-parsing blockquote and
// nested-list interiors, and converts block text into inline span trees,
// resolving reference links against the document's link-definition table.
//
// Parsing is total: malformed markers degrade to literal text and an
// unresolved link reference keeps its bracketed source text, so no input
// ever yields an error. The dialect is classic line-based markdown, not
// CommonMark.
package markdown

// Document is the root of a parsed markdown tree, exposing the finished
// block sequence and the collected link-definition table to renderers.
type Document struct {
	Blocks []Block
	Links  LinkTable
}

// Parse converts raw markdown text into a Document. It is total: any input,
// including the empty string, yields a document rather than an error.
// Independent parses share no state, so concurrent calls are safe.
func Parse(text string) *Document {
	chunks := chunkLines(text)
	links := buildLinkTable(chunks)
	blocks := assemble(chunks)
	applySpans(blocks, links)
	return &Document{Blocks: blocks, Links: links}
}

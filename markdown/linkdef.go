package markdown

import "strings"

// LinkDef is the target of a reference-style link definition.
type LinkDef struct {
	URL   string
	Title string
}

// LinkTable maps case-folded reference ids to their definitions. It is built
// once per document and read-only afterwards.
type LinkTable map[string]LinkDef

// buildLinkTable collects link definitions from the chunk sequence. When the
// same id is defined twice the later definition wins. Quote interiors are
// re-parsed during assembly, so definitions inside blockquotes are collected
// here as well.
func buildLinkTable(chunks []chunk) LinkTable {
	table := make(LinkTable)
	collectLinkDefs(chunks, table)
	return table
}

func collectLinkDefs(chunks []chunk, table LinkTable) {
	for _, c := range chunks {
		switch c.kind {
		case chunkLinkDef:
			table[strings.ToLower(c.id)] = LinkDef{URL: c.url, Title: c.title}
		case chunkBlockquote:
			collectLinkDefs(chunkLines(stripQuoteMarkers(c.content)), table)
		}
	}
}

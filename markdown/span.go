package markdown

import "strings"

// Span is an inline node inside a block's content. Span trees never
// reference blocks.
type Span interface{ span() }

// Text is a literal text run.
type Text struct {
	Text string
}

// Emphasis wraps spans emphasized with single * or _ markers.
type Emphasis struct {
	Children []Span
}

// Strong wraps spans marked with ** or __.
type Strong struct {
	Children []Span
}

// Code is a backtick code span; its text is never scanned further.
type Code struct {
	Text string
}

// Link is a resolved hyperlink. URL is always concrete (possibly empty);
// consumers never see unresolved reference syntax.
type Link struct {
	Children []Span
	URL      string
	Title    string
}

// LineBreak is an explicit hard line break (two trailing spaces).
type LineBreak struct{}

func (*Text) span()      {}
func (*Emphasis) span()  {}
func (*Strong) span()    {}
func (*Code) span()      {}
func (*Link) span()      {}
func (*LineBreak) span() {}

// convertSpans scans a block's raw text into a span tree. Code spans take
// priority over every other marker, then strong, emphasis, links, and hard
// line breaks; plain text fills the gaps. Malformed or unterminated markers
// degrade to literal text for the offending marker only.
func convertSpans(text string, links LinkTable) []Span {
	p := &spanParser{src: text, links: links}
	p.parse()
	return p.out
}

type spanParser struct {
	src   string
	links LinkTable
	pos   int
	start int // start of the pending literal text run
	out   []Span
}

func (p *spanParser) parse() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '`':
			p.scanCode()
		case '*', '_':
			p.scanEmphasis()
		case '[':
			p.scanLink()
		case '\n':
			p.scanLineBreak()
		default:
			p.pos++
		}
	}
	p.flushText(p.pos)
}

// flushText emits the pending literal run up to end, if any.
func (p *spanParser) flushText(end int) {
	if p.start < end {
		p.out = append(p.out, &Text{Text: p.src[p.start:end]})
	}
}

// emit appends a span and restarts literal accumulation at next.
func (p *spanParser) emit(s Span, next int) {
	p.out = append(p.out, s)
	p.pos = next
	p.start = next
}

func (p *spanParser) scanCode() {
	n := 0
	for p.pos+n < len(p.src) && p.src[p.pos+n] == '`' {
		n++
	}
	open := p.pos + n
	end := closingBacktickRun(p.src, open, n)
	if end < 0 {
		p.pos += n // unterminated backtick run stays literal
		return
	}
	p.flushText(p.pos)
	p.emit(&Code{Text: strings.TrimSpace(p.src[open:end])}, end+n)
}

// closingBacktickRun returns the start of the next run of exactly n
// backticks at or after from, or -1.
func closingBacktickRun(s string, from, n int) int {
	count := 0
	for i := from; i < len(s); i++ {
		if s[i] == '`' {
			count++
			continue
		}
		if count == n {
			return i - n
		}
		count = 0
	}
	if count == n {
		return len(s) - n
	}
	return -1
}

func (p *spanParser) scanEmphasis() {
	c := p.src[p.pos]
	double := p.pos+1 < len(p.src) && p.src[p.pos+1] == c
	width := 1
	if double {
		width = 2
	}
	open := p.pos + width

	var k int
	if double {
		k = strings.Index(p.src[open:], string([]byte{c, c}))
	} else {
		k = singleMarkerIndex(p.src[open:], c)
	}
	if k <= 0 {
		// No closer, or empty content: the marker stays literal.
		p.pos += width
		return
	}

	p.flushText(p.pos)
	children := convertSpans(p.src[open:open+k], p.links)
	if double {
		p.emit(&Strong{Children: children}, open+k+2)
	} else {
		p.emit(&Emphasis{Children: children}, open+k+1)
	}
}

// singleMarkerIndex finds the next lone occurrence of c, skipping doubled
// runs so an inner strong marker does not close an outer emphasis.
func singleMarkerIndex(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			continue
		}
		run := 1
		for i+run < len(s) && s[i+run] == c {
			run++
		}
		if run == 1 {
			return i
		}
		i += run - 1
	}
	return -1
}

func (p *spanParser) scanLink() {
	label, labelEnd, ok := bracketedAt(p.src, p.pos)
	if !ok {
		p.pos++ // unclosed bracket stays literal
		return
	}

	if labelEnd < len(p.src) && p.src[labelEnd] == '(' {
		if url, title, end, ok := parseLinkTarget(p.src, labelEnd); ok {
			p.flushText(p.pos)
			p.emit(&Link{Children: convertSpans(label, p.links), URL: url, Title: title}, end)
			return
		}
		p.pos++ // malformed target, bracket stays literal
		return
	}

	// Reference form: [text][id], or [id] with an implicit id.
	id := label
	end := labelEnd
	if ref, refEnd, ok := bracketedAt(p.src, labelEnd); ok {
		if ref != "" {
			id = ref
		}
		end = refEnd
	}
	if def, ok := p.links[strings.ToLower(id)]; ok {
		p.flushText(p.pos)
		p.emit(&Link{Children: convertSpans(label, p.links), URL: def.URL, Title: def.Title}, end)
		return
	}

	// Unresolved reference: keep the bracketed source as literal text.
	p.flushText(p.pos)
	p.emit(&Text{Text: p.src[p.pos:end]}, end)
}

func (p *spanParser) scanLineBreak() {
	nl := p.pos
	if nl >= 2 && p.src[nl-1] == ' ' && p.src[nl-2] == ' ' {
		end := nl
		for end > p.start && p.src[end-1] == ' ' {
			end--
		}
		p.flushText(end)
		p.emit(&LineBreak{}, nl+1)
		return
	}
	p.pos++ // single newline is a soft break, kept in the text run
}

// bracketedAt returns the text inside a balanced bracket pair opening at i
// and the index just past the closing bracket.
func bracketedAt(s string, i int) (string, int, bool) {
	if i >= len(s) || s[i] != '[' {
		return "", 0, false
	}
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[i+1 : j], j + 1, true
			}
		}
	}
	return "", 0, false
}

// parseLinkTarget parses the (url "title") tail of an inline link opening at
// i. The closing paren may not sit inside a quoted title or on another line.
func parseLinkTarget(s string, i int) (url, title string, end int, ok bool) {
	var quote byte
	for j := i + 1; j < len(s); j++ {
		c := s[j]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ')':
			url, title = splitLinkTarget(s[i+1 : j])
			return url, title, j + 1, true
		case c == '\n':
			return "", "", 0, false
		}
	}
	return "", "", 0, false
}

// splitLinkTarget separates "url" from an optional quoted title.
func splitLinkTarget(target string) (string, string) {
	target = strings.TrimSpace(target)
	k := strings.IndexAny(target, " \t")
	if k < 0 {
		return strings.Trim(target, "<>"), ""
	}
	url := strings.Trim(target[:k], "<>")
	title := strings.TrimSpace(target[k+1:])
	if len(title) >= 2 && (title[0] == '"' || title[0] == '\'') && title[len(title)-1] == title[0] {
		title = title[1 : len(title)-1]
	}
	return url, title
}

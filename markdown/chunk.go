package markdown

import (
	"regexp"
	"strings"
)

// chunkKind identifies the grammar rule that produced a chunk.
type chunkKind int

const (
	chunkText chunkKind = iota
	chunkBullet
	chunkNumbered
	chunkHeader
	chunkRule
	chunkIndented
	chunkBlockquote
	chunkLinkDef
	chunkBlank
)

// Precompiled lead-line patterns.
var (
	// List markers: up to 3 spaces of indent, then the marker and a tab or
	// 1-4 spaces. A marker with no following whitespace is not a list lead.
	bulletLeadRe   = regexp.MustCompile(`^ {0,3}[*+-](\t| {1,4})`)
	numberedLeadRe = regexp.MustCompile(`^ {0,3}\d+\.(\t| {1,4})`)

	// ATX header: 1-6 leading #, trailing # run trimmed.
	atxHeaderRe = regexp.MustCompile(`^(#{1,6})[ \t]*(.*?)[ \t#]*$`)

	// Setext underline: all = (level 1) or all - (level 2).
	setextUnderlineRe = regexp.MustCompile(`^(=+|-+)[ \t]*$`)

	// Blockquote marker with one optional following space.
	blockquoteLeadRe = regexp.MustCompile(`^ {0,3}> ?`)

	// Link definition: [id]: <url>, title possibly trailing on the same line.
	linkDefRe   = regexp.MustCompile(`^ {0,3}\[([^\]]+)\]:[ \t]*<?([^ \t<>]+)>?[ \t]*(.*)$`)
	linkTitleRe = regexp.MustCompile(`^[ \t]*(?:"([^"]*)"|\(([^)]*)\))[ \t]*$`)
)

// chunk is a maximal run of raw input lines matched by one grammar rule.
// content always holds the source bytes verbatim, so concatenating every
// chunk's content in order reproduces the input exactly.
type chunk struct {
	kind    chunkKind
	content string
	line    int // 1-based source line of the lead line

	level int    // chunkHeader: 1-6
	text  string // chunkHeader: heading text with markers stripped

	id    string // chunkLinkDef: reference id as written (not case-folded)
	url   string
	title string

	marker int // chunkBullet/chunkNumbered: byte width of the lead marker
}

// chunkLines segments raw text into an ordered chunk sequence. Every input
// line lands in exactly one chunk; no line is ever skipped.
func chunkLines(text string) []chunk {
	lines := splitLines(text)
	var chunks []chunk
	for i := 0; i < len(lines); {
		c, n := nextChunk(lines, i)
		c.line = i + 1
		chunks = append(chunks, c)
		i += n
	}
	return chunks
}

// nextChunk matches the chunk opening at line i. Rules are tried in a fixed
// priority order and the first match wins; the text-block fallback makes the
// grammar total for non-blank lines, and blank lines fold into one chunk.
func nextChunk(lines []string, i int) (chunk, int) {
	if isBlankLine(lines[i]) {
		return matchEmptyLines(lines, i)
	}
	if isHorizontalRule(lineText(lines[i])) {
		return chunk{kind: chunkRule, content: lines[i]}, 1
	}
	if c, n, ok := matchLeadingStrongText(lines, i); ok {
		return c, n
	}
	if c, n, ok := matchLeadingEmText(lines, i); ok {
		return c, n
	}
	if c, n, ok := matchListItem(lines, i); ok {
		return c, n
	}
	if c, n, ok := matchIndented(lines, i); ok {
		return c, n
	}
	if c, n, ok := matchHeader(lines, i); ok {
		return c, n
	}
	if c, n, ok := matchBlockquote(lines, i); ok {
		return c, n
	}
	if c, n, ok := matchLinkDef(lines, i); ok {
		return c, n
	}
	return matchTextBlock(lines, i)
}

// splitLines splits text into lines, each keeping its trailing newline.
// A final line without a newline is kept as-is.
func splitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}
	return lines
}

// lineText returns the line without its trailing newline.
func lineText(line string) string {
	return strings.TrimSuffix(line, "\n")
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isIndentedLine reports whether the line carries a code-block indent.
func isIndentedLine(line string) bool {
	return strings.HasPrefix(line, "\t") || strings.HasPrefix(line, "    ")
}

// isHorizontalRule reports whether the line consists of three or more
// uniform *, - or _ characters, optionally separated by spaces or tabs.
func isHorizontalRule(text string) bool {
	var marker byte
	count := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case ' ', '\t':
		case '*', '-', '_':
			if marker == 0 {
				marker = c
			} else if c != marker {
				return false
			}
			count++
		default:
			return false
		}
	}
	return count >= 3
}

// startsNewChunk reports whether line j opens a chunk under one of the
// specialized rules. Text-block absorption stops at such a line (or at a
// blank line) so that the higher-priority rule gets its turn.
func startsNewChunk(lines []string, j int) bool {
	if isBlankLine(lines[j]) {
		return true
	}
	text := lineText(lines[j])
	if isHorizontalRule(text) {
		return true
	}
	if strings.HasPrefix(text, "**") && strings.Count(text, "*")%2 == 0 {
		return true
	}
	if strings.HasPrefix(text, "*") && oddStarCount(text) {
		return true
	}
	if bulletLeadRe.MatchString(text) || numberedLeadRe.MatchString(text) {
		return true
	}
	if isIndentedLine(lines[j]) {
		return true
	}
	if atxHeaderRe.MatchString(text) {
		return true
	}
	if j+1 < len(lines) && setextUnderlineRe.MatchString(lineText(lines[j+1])) {
		return true
	}
	if blockquoteLeadRe.MatchString(text) {
		return true
	}
	return linkDefRe.MatchString(text)
}

func matchEmptyLines(lines []string, i int) (chunk, int) {
	j := i
	for j < len(lines) && isBlankLine(lines[j]) {
		j++
	}
	return chunk{kind: chunkBlank, content: joinLines(lines[i:j])}, j - i
}

// matchLeadingStrongText classifies a line opening with a balanced strong
// marker as plain text, so "** bold **" is not mistaken for a bullet.
func matchLeadingStrongText(lines []string, i int) (chunk, int, bool) {
	text := lineText(lines[i])
	if !strings.HasPrefix(text, "**") || strings.Count(text, "*")%2 != 0 {
		return chunk{}, 0, false
	}
	n := absorbText(lines, i)
	return chunk{kind: chunkText, content: joinLines(lines[i : i+n])}, n, true
}

// matchLeadingEmText classifies a line led by a single * as plain text when
// the line's total * count is odd: the leading * then pairs with a later one
// as emphasis rather than acting as a bullet marker. An even count falls
// through to the bullet rule, and a lone * on the line can only be a bullet
// marker, so it falls through as well.
func matchLeadingEmText(lines []string, i int) (chunk, int, bool) {
	text := lineText(lines[i])
	if !strings.HasPrefix(text, "*") || !oddStarCount(text) {
		return chunk{}, 0, false
	}
	n := absorbText(lines, i)
	return chunk{kind: chunkText, content: joinLines(lines[i : i+n])}, n, true
}

// oddStarCount reports whether the line holds an odd number of asterisks
// beyond the leading one, meaning the lead pairs with a later * as emphasis.
func oddStarCount(text string) bool {
	n := strings.Count(text, "*")
	return n > 1 && n%2 == 1
}

// matchListItem matches a bullet or numbered item lead plus its trailing
// lines: non-blank lines that do not themselves open a list item or quote.
func matchListItem(lines []string, i int) (chunk, int, bool) {
	kind := chunkBullet
	lead := bulletLeadRe.FindString(lines[i])
	if lead == "" {
		lead = numberedLeadRe.FindString(lines[i])
		if lead == "" {
			return chunk{}, 0, false
		}
		kind = chunkNumbered
	}
	j := i + 1
	for j < len(lines) && !isBlankLine(lines[j]) && !startsItemOrQuote(lineText(lines[j])) {
		j++
	}
	return chunk{kind: kind, content: joinLines(lines[i:j]), marker: len(lead)}, j - i, true
}

func startsItemOrQuote(text string) bool {
	return bulletLeadRe.MatchString(text) ||
		numberedLeadRe.MatchString(text) ||
		blockquoteLeadRe.MatchString(text)
}

// matchIndented matches a run of tab- or 4-space-indented lines. Blank lines
// inside the run are absorbed so a code block with internal blank lines
// stays one chunk; trailing blanks are left for the emptyLines rule.
func matchIndented(lines []string, i int) (chunk, int, bool) {
	if !isIndentedLine(lines[i]) {
		return chunk{}, 0, false
	}
	j := i + 1
	for j < len(lines) {
		if isBlankLine(lines[j]) {
			k := j
			for k < len(lines) && isBlankLine(lines[k]) {
				k++
			}
			if k < len(lines) && isIndentedLine(lines[k]) && !isBlankLine(lines[k]) {
				j = k + 1
				continue
			}
			break
		}
		if !isIndentedLine(lines[j]) {
			break
		}
		j++
	}
	return chunk{kind: chunkIndented, content: joinLines(lines[i:j])}, j - i, true
}

// matchHeader matches an ATX header line, or a Setext header formed by the
// current line and an underline of = or - on the next.
func matchHeader(lines []string, i int) (chunk, int, bool) {
	text := lineText(lines[i])
	if m := atxHeaderRe.FindStringSubmatch(text); m != nil {
		return chunk{kind: chunkHeader, content: lines[i], level: len(m[1]), text: m[2]}, 1, true
	}
	if i+1 < len(lines) {
		if m := setextUnderlineRe.FindStringSubmatch(lineText(lines[i+1])); m != nil {
			level := 1
			if m[1][0] == '-' {
				level = 2
			}
			c := chunk{
				kind:    chunkHeader,
				content: joinLines(lines[i : i+2]),
				level:   level,
				text:    strings.TrimSpace(text),
			}
			return c, 2, true
		}
	}
	return chunk{}, 0, false
}

// matchBlockquote matches a > led line and every following non-blank line,
// prefixed or not. Unprefixed lines are lazy continuations of the quote.
func matchBlockquote(lines []string, i int) (chunk, int, bool) {
	if !blockquoteLeadRe.MatchString(lineText(lines[i])) {
		return chunk{}, 0, false
	}
	j := i + 1
	for j < len(lines) && !isBlankLine(lines[j]) {
		j++
	}
	return chunk{kind: chunkBlockquote, content: joinLines(lines[i:j])}, j - i, true
}

// matchLinkDef matches a [id]: url definition. The title may trail on the
// same line or stand alone on the next; a malformed title is treated as no
// title rather than rejecting the definition.
func matchLinkDef(lines []string, i int) (chunk, int, bool) {
	m := linkDefRe.FindStringSubmatch(lineText(lines[i]))
	if m == nil {
		return chunk{}, 0, false
	}
	c := chunk{kind: chunkLinkDef, id: m[1], url: m[2]}
	n := 1
	if m[3] == "" {
		if i+1 < len(lines) {
			if t := linkTitleRe.FindStringSubmatch(lineText(lines[i+1])); t != nil {
				c.title = titleFrom(t)
				n = 2
			}
		}
	} else if t := linkTitleRe.FindStringSubmatch(m[3]); t != nil {
		c.title = titleFrom(t)
	}
	c.content = joinLines(lines[i : i+n])
	return c, n, true
}

func titleFrom(m []string) string {
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}

// matchTextBlock is the total fallback: one or more non-blank lines with no
// special lead, absorbed until a blank line or a higher-priority match.
func matchTextBlock(lines []string, i int) (chunk, int) {
	n := absorbText(lines, i)
	return chunk{kind: chunkText, content: joinLines(lines[i : i+n])}, n
}

// absorbText counts the lead line plus trailing lines that do not open a
// chunk of their own.
func absorbText(lines []string, i int) int {
	j := i + 1
	for j < len(lines) && !startsNewChunk(lines, j) {
		j++
	}
	return j - i
}

func joinLines(lines []string) string {
	return strings.Join(lines, "")
}

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/parchlabs/mdast/pkg/mdast"
)

// Parser builds an mdast tree from one immutable source string. A parser
// is single-use and not safe for concurrent use; parse each document with
// its own Parser.
//
// Reference binding is deferred: definitions collected anywhere in the
// document resolve references that precede them, so a post-pass over the
// finished tree demotes the shortcut references that never found a
// definition.
type Parser struct {
	lx  *Lexer
	src string

	defs      map[string]struct{}
	footnotes map[string]struct{}
}

// New creates a parser over source.
func New(source string) *Parser {
	return &Parser{
		lx:        NewLexer(source),
		src:       source,
		defs:      make(map[string]struct{}),
		footnotes: make(map[string]struct{}),
	}
}

// Parse converts source into a complete mdast document. Malformed input
// never fails: every grammar ambiguity degrades to literal text. A non-nil
// error means the parser violated the tree's content model, which is a bug
// in the grammar logic, not a property of the input.
func Parse(source string) (*mdast.Document, error) {
	return New(source).Parse()
}

// Parse runs the full pipeline: block and inline parsing, then the
// deferred reference-binding pass.
func (p *Parser) Parse() (*mdast.Document, error) {
	doc, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	if err := p.resolve(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (p *Parser) parseDocument() (*mdast.Document, error) {
	doc := mdast.NewDocument()
	for {
		p.skipBlankLines()
		if p.lx.Peek().Kind == mdast.TokEOF {
			return doc, nil
		}
		node, err := p.parseFlowContent()
		if err != nil {
			return nil, err
		}
		if err := doc.AppendChild(node); err != nil {
			return nil, fmt.Errorf("append %s to document: %w", node.Kind(), err)
		}
	}
}

// sub parses an extracted source region with a child parser that shares
// this parser's definition tables, so definitions inside containers are
// visible document-wide. Only the root parser runs the resolve pass.
func (p *Parser) sub(region string) (*mdast.Document, error) {
	child := &Parser{
		lx:        NewLexer(region),
		src:       region,
		defs:      p.defs,
		footnotes: p.footnotes,
	}
	return child.parseDocument()
}

// skipBlankLines consumes line breaks and whitespace-only lines, leaving
// the lexer at the first token of real content.
func (p *Parser) skipBlankLines() {
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case mdast.TokLineBreak:
			p.lx.Next()
		case mdast.TokWhitespace:
			p.lx.Next()
			next := p.lx.Peek()
			if next.Kind == mdast.TokLineBreak || next.Kind == mdast.TokEOF {
				continue
			}
			p.lx.Rollback(tok)
			return
		default:
			return
		}
	}
}

// parseFlowContent dispatches on the first token of a block. Every
// candidate that fails to commit falls through, with the paragraph as the
// universal fallback.
func (p *Parser) parseFlowContent() (mdast.FlowContent, error) {
	if p.lx.Peek().Kind == mdast.TokWhitespace {
		p.lx.Next()
	}

	tok := p.lx.Peek()
	switch tok.Kind {
	case mdast.TokGreaterThans:
		return p.parseBlockquote()
	case mdast.TokBackticks, mdast.TokTildes:
		if tok.Len() >= 3 {
			return p.parseFencedCode()
		}
	case mdast.TokPounds:
		if h, ok, err := p.tryHeading(); ok || err != nil {
			return h, err
		}
	case mdast.TokDashes, mdast.TokAsterisks, mdast.TokUnderscores:
		if tok.Len() >= 3 && p.tryThematicBreak() {
			return mdast.NewThematicBreak(), nil
		}
	case mdast.TokKeyChar:
		if p.lx.Text(tok) == "[" {
			if def, ok, err := p.tryDefinition(); ok || err != nil {
				return def, err
			}
		}
	}

	if m, ok := p.peekListMarker(); ok {
		return p.parseList(m)
	}
	if tbl, ok, err := p.tryTable(); ok || err != nil {
		return tbl, err
	}
	return p.parseParagraph()
}

// tryHeading commits when a pound run of length 1 to 6 is followed by
// whitespace or the end of the line.
func (p *Parser) tryHeading() (mdast.FlowContent, bool, error) {
	pounds := p.lx.Peek()
	if pounds.Len() > 6 {
		return nil, false, nil
	}
	p.lx.Next()
	switch p.lx.Peek().Kind {
	case mdast.TokWhitespace:
		p.lx.Next()
	case mdast.TokLineBreak, mdast.TokEOF:
	default:
		p.lx.Rollback(pounds)
		return nil, false, nil
	}

	children, err := p.inlineSequence(-1)
	if err != nil {
		return nil, false, err
	}
	children = trimTrailingSpace(children)

	heading := mdast.NewHeading(pounds.Len())
	if err := appendAll(heading, children); err != nil {
		return nil, false, err
	}
	return heading, true, nil
}

// tryThematicBreak commits when the marker run has nothing but whitespace
// before the line ends. The line break itself is left for the caller.
func (p *Parser) tryThematicBreak() bool {
	mark := p.lx.Peek()
	if p.lineBlankAfterRun() {
		return true
	}
	p.lx.Rollback(mark)
	return false
}

// lineBlankAfterRun consumes the run at the cursor and reports whether
// only whitespace remains before the line ends.
func (p *Parser) lineBlankAfterRun() bool {
	p.lx.Next()
	for {
		switch p.lx.Peek().Kind {
		case mdast.TokWhitespace:
			p.lx.Next()
		case mdast.TokLineBreak, mdast.TokEOF:
			return true
		default:
			return false
		}
	}
}

// parseParagraph accumulates inline content line by line until a blank
// line, the end of input, or a line that opens a higher-priority block.
// Trailing "  " or "\" on a continued line becomes a hard Break; otherwise
// the line boundary softens to a single space.
func (p *Parser) parseParagraph() (mdast.FlowContent, error) {
	var children []mdast.PhrasingContent
	for {
		seq, err := p.inlineSequence(-1)
		if err != nil {
			return nil, err
		}
		children = appendPhrasing(children, seq)

		tok := p.lx.Peek()
		if tok.Kind != mdast.TokLineBreak {
			break
		}
		if newlineCount(p.lx.Text(tok)) > 1 {
			p.lx.Next()
			break
		}
		p.lx.Next()
		if p.lx.Peek().Kind == mdast.TokEOF || p.startsBlock() {
			break
		}

		hard := false
		if last := lastText(children); last != nil {
			switch {
			case strings.HasSuffix(last.Value, `\`):
				last.Value = strings.TrimSuffix(last.Value, `\`)
				hard = true
			case strings.HasSuffix(last.Value, "  "):
				last.Value = strings.TrimRight(last.Value, " ")
				hard = true
			}
			if last.Value == "" {
				children = children[:len(children)-1]
			}
		}
		if hard {
			children = append(children, mdast.NewBreak())
		} else {
			children = appendText(children, " ", mdast.Range{})
		}
		if p.lx.Peek().Kind == mdast.TokWhitespace {
			p.lx.Next()
		}
	}

	children = trimTrailingSpace(children)
	para := mdast.NewParagraph()
	if err := appendAll(para, children); err != nil {
		return nil, err
	}
	return para, nil
}

// startsBlock reports whether the upcoming line opens a construct that
// interrupts a paragraph. The lexer position is left unchanged.
func (p *Parser) startsBlock() bool {
	mark := p.lx.Peek()
	defer p.lx.Rollback(mark)

	tok := mark
	if tok.Kind == mdast.TokWhitespace {
		p.lx.Next()
		tok = p.lx.Peek()
	}
	switch tok.Kind {
	case mdast.TokGreaterThans:
		return true
	case mdast.TokBackticks, mdast.TokTildes:
		return tok.Len() >= 3
	case mdast.TokPounds:
		if tok.Len() > 6 {
			return false
		}
		p.lx.Next()
		switch p.lx.Peek().Kind {
		case mdast.TokWhitespace, mdast.TokLineBreak, mdast.TokEOF:
			return true
		}
		return false
	case mdast.TokDashes, mdast.TokAsterisks, mdast.TokUnderscores:
		if tok.Len() >= 3 && p.lineBlankAfterRun() {
			return true
		}
		p.lx.Rollback(tok)
	}
	_, ok := p.peekListMarker()
	return ok
}

// listMarker describes a committed list item marker.
type listMarker struct {
	ordered bool
	style   byte // bullet character, or ordered delimiter '.' / ')'
	start   int
	width   int // marker width in bytes, excluding the following space
}

// peekListMarker reports whether the upcoming tokens form a list item
// marker followed by whitespace. The lexer position is left unchanged.
func (p *Parser) peekListMarker() (listMarker, bool) {
	mark := p.lx.Peek()
	defer p.lx.Rollback(mark)

	tok := p.lx.Next()
	var m listMarker
	switch {
	case tok.Kind == mdast.TokText && p.lx.Text(tok) == "-":
		m = listMarker{style: '-', width: 1}
	case tok.Kind == mdast.TokAsterisks && tok.Len() == 1:
		m = listMarker{style: '*', width: 1}
	case tok.Kind == mdast.TokPluses && tok.Len() == 1:
		m = listMarker{style: '+', width: 1}
	case tok.Kind == mdast.TokText && isDigits(p.lx.Text(tok)):
		delim := p.lx.Next()
		if delim.Kind != mdast.TokKeyChar {
			return listMarker{}, false
		}
		d := p.lx.Text(delim)
		if d != "." && d != ")" {
			return listMarker{}, false
		}
		n, err := strconv.Atoi(p.lx.Text(tok))
		if err != nil {
			return listMarker{}, false
		}
		m = listMarker{ordered: true, style: d[0], start: n, width: tok.Len() + 1}
	default:
		return listMarker{}, false
	}

	if p.lx.Peek().Kind != mdast.TokWhitespace {
		return listMarker{}, false
	}
	return m, true
}

// lineEnd returns the offset of the line break at or after offset, or the
// end of the source.
func (p *Parser) lineEnd(offset int) int {
	if i := strings.IndexAny(p.src[offset:], "\r\n"); i >= 0 {
		return offset + i
	}
	return len(p.src)
}

// nextLineStart returns the offset just past the line break that follows
// offset.
func (p *Parser) nextLineStart(offset int) int {
	end := p.lineEnd(offset)
	if end >= len(p.src) {
		return end
	}
	if p.src[end] == '\r' && end+1 < len(p.src) && p.src[end+1] == '\n' {
		return end + 2
	}
	return end + 1
}

// appendAll appends phrasing children to parent, wrapping any content
// model violation with the parent's kind.
func appendAll(parent mdast.Parent, children []mdast.PhrasingContent) error {
	for _, c := range children {
		if err := parent.AppendChild(c); err != nil {
			return fmt.Errorf("append %s to %s: %w", c.Kind(), parent.Kind(), err)
		}
	}
	return nil
}

// appendText appends literal text, coalescing with a trailing Text sibling
// so no two consecutive Text nodes ever exist.
func appendText(children []mdast.PhrasingContent, value string, span mdast.Range) []mdast.PhrasingContent {
	if value == "" {
		return children
	}
	if last := lastText(children); last != nil {
		last.Value += value
		if span.End > last.Span.End {
			last.Span.End = span.End
		}
		return children
	}
	t := mdast.NewText(value)
	t.Span = span
	return append(children, t)
}

// appendPhrasing appends parsed nodes, routing Text through appendText so
// coalescing holds across sequence boundaries.
func appendPhrasing(children []mdast.PhrasingContent, nodes []mdast.PhrasingContent) []mdast.PhrasingContent {
	for _, n := range nodes {
		if t, ok := n.(*mdast.Text); ok {
			children = appendText(children, t.Value, t.Span)
			continue
		}
		children = append(children, n)
	}
	return children
}

func lastText(children []mdast.PhrasingContent) *mdast.Text {
	if len(children) == 0 {
		return nil
	}
	t, _ := children[len(children)-1].(*mdast.Text)
	return t
}

// trimTrailingSpace strips trailing spaces and tabs from the final text
// node, dropping it entirely when nothing remains.
func trimTrailingSpace(children []mdast.PhrasingContent) []mdast.PhrasingContent {
	if last := lastText(children); last != nil {
		last.Value = strings.TrimRight(last.Value, " \t")
		if last.Value == "" {
			return children[:len(children)-1]
		}
	}
	return children
}

// newlineCount counts line endings in a line-break run, treating \r\n as
// one.
func newlineCount(s string) int {
	n := strings.Count(s, "\n")
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' && (i+1 >= len(s) || s[i+1] != '\n') {
			n++
		}
	}
	return n
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// normalizeIdentifier case-folds a label and collapses internal whitespace
// so references and definitions written differently still match.
func normalizeIdentifier(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}

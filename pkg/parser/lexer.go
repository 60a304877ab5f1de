// Package parser converts Markdown text into an mdast tree.
//
// The package is split along a strict boundary: the Lexer classifies bytes
// into a flat token stream and knows nothing about block or inline grammar,
// while the Parser is the stream's sole consumer and holds all structural
// knowledge. The parser explores ambiguous constructs speculatively and
// rolls the lexer back when a candidate fails, so malformed input never
// produces an error, only literal text.
package parser

import (
	"strings"

	"github.com/parchlabs/mdast/pkg/mdast"
)

// Lexer scans one immutable source string into tokens. It exposes one
// token of lookahead via Peek and supports rollback to any previously
// observed token; the cursor is a plain byte offset, so rollback is O(1)
// and unlimited.
type Lexer struct {
	source string
	pos    int
	peeked *mdast.Token
}

// NewLexer creates a lexer over source. The source is never mutated.
func NewLexer(source string) *Lexer {
	return &Lexer{source: source}
}

// Source returns the full source text the lexer scans.
func (l *Lexer) Source() string {
	return l.source
}

// Next returns the next token and advances past it. Scanning never fails:
// every byte is classified, and the end of input yields a stable EOF
// token on every subsequent call.
func (l *Lexer) Next() mdast.Token {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok
	}
	return l.scan()
}

// Peek returns the next token without advancing past it.
func (l *Lexer) Peek() mdast.Token {
	if l.peeked == nil {
		tok := l.scan()
		l.peeked = &tok
	}
	return *l.peeked
}

// Rollback repositions the lexer so the next scan starts at tok. Any token
// previously returned by Next or Peek is a valid target.
func (l *Lexer) Rollback(tok mdast.Token) {
	l.pos = tok.Start
	l.peeked = nil
}

// Text returns tok's source text.
func (l *Lexer) Text(tok mdast.Token) string {
	return tok.Text(l.source)
}

// seek repositions the cursor to an absolute byte offset. The parser uses
// it to skip regions it has consumed through the raw source rather than
// through the token stream.
func (l *Lexer) seek(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(l.source) {
		offset = len(l.source)
	}
	l.pos = offset
	l.peeked = nil
}

func (l *Lexer) scan() mdast.Token {
	if l.pos >= len(l.source) {
		return mdast.Token{
			Kind:  mdast.TokEOF,
			Range: mdast.Range{Start: len(l.source), End: len(l.source)},
		}
	}

	start := l.pos
	switch c := l.source[l.pos]; c {
	case '#':
		return l.scanRun(c, mdast.TokPounds)
	case '*':
		return l.scanRun(c, mdast.TokAsterisks)
	case '_':
		return l.scanRun(c, mdast.TokUnderscores)
	case '+':
		return l.scanRun(c, mdast.TokPluses)
	case '`':
		return l.scanRun(c, mdast.TokBackticks)
	case '~':
		return l.scanRun(c, mdast.TokTildes)
	case '>':
		return l.scanRun(c, mdast.TokGreaterThans)
	case ' ', '\t':
		for l.pos < len(l.source) && (l.source[l.pos] == ' ' || l.source[l.pos] == '\t') {
			l.pos++
		}
		return l.emit(mdast.TokWhitespace, start)
	case '\n', '\r':
		for l.pos < len(l.source) && (l.source[l.pos] == '\n' || l.source[l.pos] == '\r') {
			l.pos++
		}
		return l.emit(mdast.TokLineBreak, start)
	case '-', ':':
		return l.scanDashOrAlign()
	default:
		if isReserved(c) {
			l.pos++
			return l.emit(mdast.TokKeyChar, start)
		}
		return l.scanText()
	}
}

func (l *Lexer) scanRun(c byte, kind mdast.TokenKind) mdast.Token {
	start := l.pos
	for l.pos < len(l.source) && l.source[l.pos] == c {
		l.pos++
	}
	return l.emit(kind, start)
}

// scanDashOrAlign disambiguates runs built from '-' and ':'. The shape
// decides the kind: colons on both ends of a dash run make a center
// alignment cell, a single colon with at least one more character makes a
// left or right cell, a bare run of two or more dashes is a Dashes token,
// a single dash is one-byte text, and a colon with no dashes is ordinary
// text that merges with whatever plain text follows it.
func (l *Lexer) scanDashOrAlign() mdast.Token {
	start := l.pos

	lead := l.source[l.pos] == ':'
	if lead {
		l.pos++
	}
	dashes := 0
	for l.pos < len(l.source) && l.source[l.pos] == '-' {
		l.pos++
		dashes++
	}
	trail := false
	if dashes > 0 && l.pos < len(l.source) && l.source[l.pos] == ':' {
		trail = true
		l.pos++
	}

	length := l.pos - start
	switch {
	case dashes == 0:
		l.pos = start
		return l.scanText()
	case lead && trail:
		return l.emitAlign(mdast.AlignCenter, start)
	case lead:
		return l.emitAlign(mdast.AlignLeft, start)
	case trail:
		return l.emitAlign(mdast.AlignRight, start)
	case length > 1:
		return l.emit(mdast.TokDashes, start)
	default:
		return l.emit(mdast.TokText, start)
	}
}

// scanText consumes a greedy plain-text run. A backslash followed by a
// reserved character is absorbed into the run as a literal escape; a
// backslash with no reserved follower is ordinary text.
func (l *Lexer) scanText() mdast.Token {
	start := l.pos
	for l.pos < len(l.source) {
		c := l.source[l.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			break
		}
		if c == '\\' {
			if l.pos+1 < len(l.source) && isReserved(l.source[l.pos+1]) {
				l.pos += 2
				continue
			}
			l.pos++
			continue
		}
		if isReserved(c) {
			break
		}
		l.pos++
	}
	return l.emit(mdast.TokText, start)
}

func (l *Lexer) emit(kind mdast.TokenKind, start int) mdast.Token {
	return mdast.Token{Kind: kind, Range: mdast.Range{Start: start, End: l.pos}}
}

func (l *Lexer) emitAlign(align mdast.AlignType, start int) mdast.Token {
	return mdast.Token{
		Kind:  mdast.TokAlign,
		Range: mdast.Range{Start: start, End: l.pos},
		Align: align,
	}
}

// isReserved reports whether c terminates plain-text runs and scans as a
// structural run or KeyChar token.
func isReserved(c byte) bool {
	switch c {
	case '\\', '`', '*', '_', '{', '}', '[', ']', '(', ')',
		'#', '+', '-', '.', '!', '|', '>', '<', '~':
		return true
	default:
		return false
	}
}

// decodeEscapes removes the backslash from every escaped reserved
// character, leaving other backslashes untouched.
func decodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isReserved(s[i+1]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

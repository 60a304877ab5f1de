package parser

import (
	"strings"

	"github.com/parchlabs/mdast/pkg/mdast"
)

// inlineSequence parses phrasing content until the line ends, the stream
// ends, or the next token starts at or past limit (limit < 0 means no
// bound). The terminating token is left unconsumed. Adjacent literal text
// always coalesces: no two consecutive Text siblings are produced.
func (p *Parser) inlineSequence(limit int) ([]mdast.PhrasingContent, error) {
	var children []mdast.PhrasingContent
	for {
		tok := p.lx.Peek()
		if tok.Kind == mdast.TokEOF || tok.Kind == mdast.TokLineBreak {
			return children, nil
		}
		if limit >= 0 && tok.Start >= limit {
			return children, nil
		}

		var err error
		switch tok.Kind {
		case mdast.TokBackticks:
			children = p.inlineCode(children, limit)
		case mdast.TokAsterisks, mdast.TokUnderscores:
			children, err = p.emphasis(children, limit)
		case mdast.TokTildes:
			children, err = p.strikethrough(children, limit)
		case mdast.TokKeyChar:
			switch p.lx.Text(tok) {
			case "[":
				children, err = p.linkOrReference(children, limit, false)
			case "!":
				children, err = p.imageOrText(children, limit)
			default:
				p.lx.Next()
				children = appendText(children, p.lx.Text(tok), tok.Range)
			}
		case mdast.TokText:
			p.lx.Next()
			children = appendText(children, decodeEscapes(p.lx.Text(tok)), tok.Range)
		default:
			// Whitespace and structural runs with no inline meaning here
			// are literal text.
			p.lx.Next()
			children = appendText(children, p.lx.Text(tok), tok.Range)
		}
		if err != nil {
			return nil, err
		}
	}
}

// inlineCode matches a closing backtick run of exactly the opener's
// length; everything between is verbatim. An unmatched opener degrades to
// literal text.
func (p *Parser) inlineCode(children []mdast.PhrasingContent, limit int) []mdast.PhrasingContent {
	open := p.lx.Next()
	closer, ok := p.findToken(limit, func(t mdast.Token) bool {
		return t.Kind == mdast.TokBackticks && t.Len() == open.Len()
	})
	if !ok || closer.Start == open.End {
		return appendText(children, p.lx.Text(open), open.Range)
	}

	code := mdast.NewInlineCode(p.src[open.End:closer.Start])
	code.Span = mdast.Range{Start: open.End, End: closer.Start}
	p.lx.seek(closer.End)
	return append(children, code)
}

// emphasis handles '*' and '_' delimiter runs: length one opens Emphasis,
// length two or more opens Strong. An unmatched or empty pair degrades to
// literal text.
func (p *Parser) emphasis(children []mdast.PhrasingContent, limit int) ([]mdast.PhrasingContent, error) {
	open := p.lx.Next()
	strong := open.Len() >= 2
	closer, ok := p.findToken(limit, func(t mdast.Token) bool {
		if t.Kind != open.Kind {
			return false
		}
		if strong {
			return t.Len() >= 2
		}
		return t.Len() == 1
	})
	if !ok || closer.Start == open.End {
		return appendText(children, p.lx.Text(open), open.Range), nil
	}

	inner, err := p.inlineSequence(closer.Start)
	if err != nil {
		return nil, err
	}

	var span mdast.Parent
	if strong {
		span = mdast.NewStrong()
	} else {
		span = mdast.NewEmphasis()
	}
	if err := appendAll(span, inner); err != nil {
		return nil, err
	}
	p.lx.seek(closer.End)
	return append(children, span.(mdast.PhrasingContent)), nil
}

// strikethrough handles '~~' delimiter runs. A single tilde has no inline
// meaning and stays literal.
func (p *Parser) strikethrough(children []mdast.PhrasingContent, limit int) ([]mdast.PhrasingContent, error) {
	open := p.lx.Next()
	if open.Len() < 2 {
		return appendText(children, p.lx.Text(open), open.Range), nil
	}
	closer, ok := p.findToken(limit, func(t mdast.Token) bool {
		return t.Kind == mdast.TokTildes && t.Len() >= 2
	})
	if !ok || closer.Start == open.End {
		return appendText(children, p.lx.Text(open), open.Range), nil
	}

	inner, err := p.inlineSequence(closer.Start)
	if err != nil {
		return nil, err
	}
	del := mdast.NewDelete()
	if err := appendAll(del, inner); err != nil {
		return nil, err
	}
	p.lx.seek(closer.End)
	return append(children, del), nil
}

// imageOrText turns "![" into an image construct; a bare '!' stays
// literal.
func (p *Parser) imageOrText(children []mdast.PhrasingContent, limit int) ([]mdast.PhrasingContent, error) {
	bang := p.lx.Next()
	if tok := p.lx.Peek(); tok.Kind == mdast.TokKeyChar && p.lx.Text(tok) == "[" {
		p.lx.Next()
		return p.bracketed(children, limit, true)
	}
	return appendText(children, "!", bang.Range), nil
}

// linkOrReference parses the '[' construct at the cursor.
func (p *Parser) linkOrReference(children []mdast.PhrasingContent, limit int, isImage bool) ([]mdast.PhrasingContent, error) {
	p.lx.Next()
	return p.bracketed(children, limit, isImage)
}

// bracketed dispatches on what follows the matching ']': an inline target
// makes a Link or Image, a second bracket pair makes a full or collapsed
// reference, and a bare label makes a shortcut reference candidate for
// the resolve pass. The cursor sits just past the opening bracket, whose
// token ended at the current peek position.
func (p *Parser) bracketed(children []mdast.PhrasingContent, limit int, isImage bool) ([]mdast.PhrasingContent, error) {
	labelStart := p.lx.Peek().Start
	openRange := mdast.Range{Start: labelStart - 1, End: labelStart}

	if !isImage {
		if ref, ok := p.footnoteRef(labelStart); ok {
			return append(children, ref), nil
		}
	}

	closeTok, ok := p.findBracketClose(limit)
	if !ok {
		return appendText(children, "[", openRange), nil
	}
	label := p.src[labelStart:closeTok.Start]

	after := byte(0)
	if closeTok.End < len(p.src) {
		after = p.src[closeTok.End]
	}

	switch after {
	case '(':
		url, title, end, ok := p.inlineTarget(closeTok.End)
		if !ok {
			return appendText(children, "[", openRange), nil
		}
		if isImage {
			p.lx.seek(end)
			return append(children, mdast.NewImage(url, title, decodeEscapes(label))), nil
		}
		inner, err := p.inlineSequence(closeTok.Start)
		if err != nil {
			return nil, err
		}
		link := mdast.NewLink(url, title)
		if err := appendAll(link, inner); err != nil {
			return nil, err
		}
		p.lx.seek(end)
		return append(children, link), nil

	case '[':
		refEnd := strings.IndexByte(p.src[closeTok.End:p.lineEnd(closeTok.End)], ']')
		if refEnd < 0 {
			return appendText(children, "[", openRange), nil
		}
		refLabel := p.src[closeTok.End+1 : closeTok.End+refEnd]
		refType := mdast.ReferenceFull
		ident, lbl := normalizeIdentifier(refLabel), refLabel
		if refLabel == "" {
			refType = mdast.ReferenceCollapsed
			ident, lbl = normalizeIdentifier(label), label
		}
		end := closeTok.End + refEnd + 1
		if isImage {
			p.lx.seek(end)
			return append(children, mdast.NewImageReference(ident, lbl, decodeEscapes(label), refType)), nil
		}
		ref := mdast.NewLinkReference(ident, lbl, refType)
		inner, err := p.inlineSequence(closeTok.Start)
		if err != nil {
			return nil, err
		}
		if err := appendAll(ref, inner); err != nil {
			return nil, err
		}
		p.lx.seek(end)
		return append(children, ref), nil

	default:
		// Shortcut candidate: kept provisionally, demoted by the resolve
		// pass when no definition materializes.
		if isImage {
			p.lx.seek(closeTok.End)
			alt := decodeEscapes(label)
			return append(children, mdast.NewImageReference(normalizeIdentifier(label), label, alt, mdast.ReferenceShortcut)), nil
		}
		ref := mdast.NewLinkReference(normalizeIdentifier(label), label, mdast.ReferenceShortcut)
		inner, err := p.inlineSequence(closeTok.Start)
		if err != nil {
			return nil, err
		}
		if err := appendAll(ref, inner); err != nil {
			return nil, err
		}
		p.lx.seek(closeTok.End)
		return append(children, ref), nil
	}
}

// footnoteRef parses "[^name]" where name has no spaces. The cursor sits
// just past the '['; on failure the lexer is left untouched.
func (p *Parser) footnoteRef(labelStart int) (mdast.PhrasingContent, bool) {
	if labelStart >= len(p.src) || p.src[labelStart] != '^' {
		return nil, false
	}
	end := strings.IndexByte(p.src[labelStart:p.lineEnd(labelStart)], ']')
	if end < 0 {
		return nil, false
	}
	name := p.src[labelStart+1 : labelStart+end]
	if name == "" || strings.ContainsAny(name, " \t") {
		return nil, false
	}
	p.lx.seek(labelStart + end + 1)
	return mdast.NewFootnoteReference(normalizeIdentifier(name), name), true
}

// inlineTarget parses "(url "title")" starting at the opening paren
// offset, honoring nested and escaped parens. end is the offset just past
// the closing paren.
func (p *Parser) inlineTarget(parenStart int) (url, title string, end int, ok bool) {
	lineEnd := p.lineEnd(parenStart)
	depth := 0
	closeAt := -1
scan:
	for i := parenStart; i < lineEnd; i++ {
		switch p.src[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				closeAt = i
				break scan
			}
		}
	}
	if closeAt < 0 {
		return "", "", 0, false
	}

	inner := strings.TrimSpace(p.src[parenStart+1 : closeAt])
	end = closeAt + 1
	if inner == "" {
		return "", "", end, true
	}
	url = inner
	if i := strings.IndexAny(inner, " \t"); i >= 0 {
		url = inner[:i]
		title, ok = unquote(strings.TrimSpace(inner[i+1:]))
		if !ok {
			return "", "", 0, false
		}
	}
	return decodeEscapes(url), decodeEscapes(title), end, true
}

// findToken scans ahead for a token matching the predicate before the
// line, the limit, or the stream ends. The lexer is restored to its entry
// position.
func (p *Parser) findToken(limit int, match func(mdast.Token) bool) (mdast.Token, bool) {
	mark := p.lx.Peek()
	defer p.lx.Rollback(mark)
	for {
		tok := p.lx.Next()
		if tok.Kind == mdast.TokEOF || tok.Kind == mdast.TokLineBreak {
			return mdast.Token{}, false
		}
		if limit >= 0 && tok.Start >= limit {
			return mdast.Token{}, false
		}
		if match(tok) {
			return tok, true
		}
	}
}

// findBracketClose scans for the ']' matching the just-consumed '[',
// tracking bracket nesting. The lexer is restored to its entry position.
func (p *Parser) findBracketClose(limit int) (mdast.Token, bool) {
	mark := p.lx.Peek()
	defer p.lx.Rollback(mark)
	depth := 0
	for {
		tok := p.lx.Next()
		if tok.Kind == mdast.TokEOF || tok.Kind == mdast.TokLineBreak {
			return mdast.Token{}, false
		}
		if limit >= 0 && tok.Start >= limit {
			return mdast.Token{}, false
		}
		if tok.Kind != mdast.TokKeyChar {
			continue
		}
		switch p.lx.Text(tok) {
		case "[":
			depth++
		case "]":
			if depth == 0 {
				return tok, true
			}
			depth--
		}
	}
}

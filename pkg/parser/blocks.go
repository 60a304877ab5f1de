package parser

import (
	"fmt"
	"strings"

	"github.com/parchlabs/mdast/pkg/mdast"
)

// parseBlockquote collects the quoted lines, strips the '>' prefixes, and
// re-parses the stripped region as flow content with a child parser. A
// line without the marker still belongs to the quote when it continues an
// open paragraph (lazy continuation).
func (p *Parser) parseBlockquote() (mdast.FlowContent, error) {
	offset := p.lx.Peek().Start
	var region strings.Builder
	prevBlank := true

collect:
	for offset < len(p.src) {
		end := p.lineEnd(offset)
		line := p.src[offset:end]
		stripped, marked := stripQuoteMarker(line)
		switch {
		case marked:
			prevBlank = strings.TrimSpace(stripped) == ""
			region.WriteString(stripped)
		case strings.TrimSpace(line) == "":
			break collect
		case !prevBlank && !p.startsBlockText(line):
			region.WriteString(strings.TrimLeft(line, " \t"))
		default:
			break collect
		}
		region.WriteByte('\n')
		offset = p.nextLineStart(offset)
	}
	p.lx.seek(offset)

	sub, err := p.sub(region.String())
	if err != nil {
		return nil, err
	}
	bq := mdast.NewBlockquote()
	for _, child := range sub.Children() {
		if err := bq.AppendChild(child); err != nil {
			return nil, fmt.Errorf("append %s to blockquote: %w", child.Kind(), err)
		}
	}
	return bq, nil
}

// stripQuoteMarker removes one leading '>' after up to three spaces of
// indentation, plus one following space.
func stripQuoteMarker(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || trimmed == "" || trimmed[0] != '>' {
		return line, false
	}
	rest := trimmed[1:]
	rest = strings.TrimPrefix(rest, " ")
	return rest, true
}

// startsBlockText reports whether a raw line opens a block construct when
// scanned from its beginning.
func (p *Parser) startsBlockText(line string) bool {
	probe := &Parser{lx: NewLexer(line), src: line}
	return probe.startsBlock()
}

// parseFencedCode captures everything between the fence lines verbatim.
// The fence run at the cursor has length >= 3; an unclosed fence runs to
// the end of input.
func (p *Parser) parseFencedCode() (mdast.FlowContent, error) {
	fence := p.lx.Next()
	fenceChar := p.src[fence.Start]

	infoEnd := p.lineEnd(fence.End)
	lang, meta := splitInfo(p.src[fence.End:infoEnd])

	contentStart := p.nextLineStart(fence.End)
	contentEnd := -1
	after := len(p.src)
	for offset := contentStart; offset < len(p.src); offset = p.nextLineStart(offset) {
		if isClosingFence(p.src[offset:p.lineEnd(offset)], fenceChar, fence.Len()) {
			contentEnd = offset
			after = p.nextLineStart(offset)
			break
		}
	}
	if contentEnd < 0 {
		contentEnd = len(p.src)
	}

	value := trimFinalNewline(p.src[contentStart:contentEnd])
	code := mdast.NewCode(value, lang, meta)
	code.Span = mdast.Range{Start: contentStart, End: contentStart + len(value)}
	p.lx.seek(after)
	return code, nil
}

// splitInfo splits a fence info string into the language word and the
// remaining metadata.
func splitInfo(info string) (lang, meta string) {
	info = strings.TrimSpace(info)
	if info == "" {
		return "", ""
	}
	if i := strings.IndexAny(info, " \t"); i >= 0 {
		return info[:i], strings.TrimSpace(info[i+1:])
	}
	return info, ""
}

// isClosingFence reports whether line is a run of at least minLen
// fenceChar bytes with only surrounding whitespace.
func isClosingFence(line string, fenceChar byte, minLen int) bool {
	line = strings.TrimRight(strings.TrimLeft(line, " "), " \t")
	if len(line) < minLen {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != fenceChar {
			return false
		}
	}
	return true
}

func trimFinalNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// parseList consumes consecutive items that share the first marker's
// style. Blank lines between or inside items make the list loose.
func (p *Parser) parseList(first listMarker) (mdast.FlowContent, error) {
	list := mdast.NewList(first.ordered, first.start)
	for {
		m, ok := p.peekListMarker()
		if !ok || m.ordered != first.ordered || m.style != first.style {
			break
		}
		item, blankInside, blankAfter, err := p.parseListItem(m)
		if err != nil {
			return nil, err
		}
		if err := list.AppendChild(item); err != nil {
			return nil, fmt.Errorf("append item to list: %w", err)
		}
		if blankInside {
			list.Tight = false
		}
		if blankAfter {
			p.skipBlankLines()
			if next, ok := p.peekListMarker(); ok &&
				next.ordered == first.ordered && next.style == first.style {
				list.Tight = false
			}
		}
	}
	return list, nil
}

// parseListItem consumes one item: the marker, the remainder of its line,
// and every continuation line indented past the marker. The dedented
// region is re-parsed as flow content. blankInside is true when a blank
// line separated blocks within the item; blankAfter when a blank line
// ended it.
func (p *Parser) parseListItem(m listMarker) (item *mdast.ListItem, blankInside, blankAfter bool, err error) {
	offset := p.lx.Peek().Start
	end := p.lineEnd(offset)
	indent := m.width + 1

	var region strings.Builder
	region.WriteString(strings.TrimLeft(p.src[offset+m.width:end], " \t"))
	region.WriteByte('\n')
	offset = p.nextLineStart(offset)

	prevBlank := false
collect:
	for offset < len(p.src) {
		lineEnd := p.lineEnd(offset)
		line := p.src[offset:lineEnd]
		switch {
		case strings.TrimSpace(line) == "":
			if prevBlank {
				break collect
			}
			prevBlank = true
			region.WriteByte('\n')
		case indentWidth(line) >= indent:
			if prevBlank {
				blankInside = true
			}
			prevBlank = false
			region.WriteString(dedent(line, indent))
			region.WriteByte('\n')
		case !prevBlank && !p.startsBlockText(line):
			region.WriteString(strings.TrimSpace(line))
			region.WriteByte('\n')
		default:
			break collect
		}
		offset = p.nextLineStart(offset)
	}
	blankAfter = prevBlank
	p.lx.seek(offset)

	sub, err := p.sub(region.String())
	if err != nil {
		return nil, false, false, err
	}
	item = mdast.NewListItem()
	for _, child := range sub.Children() {
		if err := item.AppendChild(child); err != nil {
			return nil, false, false, fmt.Errorf("append %s to list item: %w", child.Kind(), err)
		}
	}
	return item, blankInside, blankAfter, nil
}

// indentWidth measures the leading whitespace of line in columns, tabs
// counting as four.
func indentWidth(line string) int {
	col := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			col++
		case '\t':
			col += 4
		default:
			return col
		}
	}
	return col
}

// dedent removes up to indent columns of leading whitespace.
func dedent(line string, indent int) string {
	col := 0
	i := 0
	for i < len(line) && col < indent {
		switch line[i] {
		case ' ':
			col++
		case '\t':
			col += 4
		default:
			return line[i:]
		}
		i++
	}
	return line[i:]
}

// tryDefinition commits when the bracketed label at the cursor closes on
// the same line and is followed by a colon. Labels opening with '^' build
// footnote definitions; everything else builds link definitions. Either
// way the identifier is recorded for the resolve pass.
func (p *Parser) tryDefinition() (mdast.FlowContent, bool, error) {
	mark := p.lx.Peek()
	open := p.lx.Next()

	closeTok, ok := p.findOnLine("]")
	if !ok {
		p.lx.Rollback(mark)
		return nil, false, nil
	}
	label := p.src[open.End:closeTok.Start]
	if closeTok.End >= len(p.src) || p.src[closeTok.End] != ':' {
		p.lx.Rollback(mark)
		return nil, false, nil
	}
	bodyStart := closeTok.End + 1

	if name, ok := strings.CutPrefix(label, "^"); ok {
		if name == "" || strings.ContainsAny(name, " \t") {
			p.lx.Rollback(mark)
			return nil, false, nil
		}
		fd, err := p.footnoteDefinition(name, bodyStart)
		if err != nil {
			return nil, false, err
		}
		return fd, true, nil
	}

	end := p.lineEnd(bodyStart)
	url, title, ok := splitDefinitionRest(p.src[bodyStart:end])
	if !ok {
		p.lx.Rollback(mark)
		return nil, false, nil
	}
	p.lx.seek(end)

	ident := normalizeIdentifier(label)
	p.defs[ident] = struct{}{}
	return mdast.NewDefinition(ident, label, url, title), true, nil
}

// splitDefinitionRest splits the text after "[label]:" into a destination
// and an optional quoted title. Anything else on the line rejects the
// definition.
func splitDefinitionRest(rest string) (url, title string, ok bool) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", "", false
	}
	url = rest
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		url = rest[:i]
		title, ok = unquote(strings.TrimSpace(rest[i+1:]))
		if !ok {
			return "", "", false
		}
	}
	return decodeEscapes(url), decodeEscapes(title), true
}

// unquote strips matching double or single quotes. Empty input is a valid
// absent title.
func unquote(s string) (string, bool) {
	if s == "" {
		return "", true
	}
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1], true
		}
	}
	return "", false
}

// footnoteDefinition collects the body region: the remainder of the
// marker line plus continuation lines indented at least four columns,
// re-parsed as flow content.
func (p *Parser) footnoteDefinition(name string, bodyStart int) (*mdast.FootnoteDefinition, error) {
	end := p.lineEnd(bodyStart)

	var region strings.Builder
	region.WriteString(strings.TrimLeft(p.src[bodyStart:end], " \t"))
	region.WriteByte('\n')
	offset := p.nextLineStart(bodyStart)

	prevBlank := false
collect:
	for offset < len(p.src) {
		lineEnd := p.lineEnd(offset)
		line := p.src[offset:lineEnd]
		switch {
		case strings.TrimSpace(line) == "":
			if prevBlank {
				break collect
			}
			prevBlank = true
			region.WriteByte('\n')
		case indentWidth(line) >= 4:
			prevBlank = false
			region.WriteString(dedent(line, 4))
			region.WriteByte('\n')
		case !prevBlank && !p.startsBlockText(line):
			region.WriteString(strings.TrimSpace(line))
			region.WriteByte('\n')
		default:
			break collect
		}
		offset = p.nextLineStart(offset)
	}
	p.lx.seek(offset)

	sub, err := p.sub(region.String())
	if err != nil {
		return nil, err
	}
	ident := normalizeIdentifier(name)
	fd := mdast.NewFootnoteDefinition(ident, name)
	for _, child := range sub.Children() {
		if err := fd.AppendChild(child); err != nil {
			return nil, fmt.Errorf("append %s to footnote definition: %w", child.Kind(), err)
		}
	}
	p.footnotes[ident] = struct{}{}
	return fd, nil
}

// findOnLine scans ahead for a KeyChar with the given text before the
// line ends. The lexer is restored to its entry position.
func (p *Parser) findOnLine(keyChar string) (mdast.Token, bool) {
	mark := p.lx.Peek()
	defer p.lx.Rollback(mark)
	for {
		tok := p.lx.Next()
		switch tok.Kind {
		case mdast.TokLineBreak, mdast.TokEOF:
			return mdast.Token{}, false
		case mdast.TokKeyChar:
			if p.lx.Text(tok) == keyChar {
				return tok, true
			}
		}
	}
}

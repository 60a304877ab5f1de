package parser

import (
	"fmt"
	"strings"

	"github.com/parchlabs/mdast/pkg/mdast"
)

// tryTable commits only when the line after the candidate header parses
// as a delimiter row; on any failure the lexer rolls back to the entry
// position and the header line is reinterpreted as a paragraph.
func (p *Parser) tryTable() (mdast.FlowContent, bool, error) {
	mark := p.lx.Peek()
	if !strings.Contains(p.src[mark.Start:p.lineEnd(mark.Start)], "|") {
		return nil, false, nil
	}

	header, err := p.tableRow()
	if err != nil {
		return nil, false, err
	}
	if header == nil {
		p.lx.Rollback(mark)
		return nil, false, nil
	}

	sep := p.lx.Peek()
	if sep.Kind != mdast.TokLineBreak || newlineCount(p.lx.Text(sep)) > 1 {
		p.lx.Rollback(mark)
		return nil, false, nil
	}
	p.lx.Next()
	align, ok := p.delimiterRow()
	if !ok {
		p.lx.Rollback(mark)
		return nil, false, nil
	}

	table := mdast.NewTable(align)
	if err := appendRow(table, header, len(align)); err != nil {
		return nil, false, err
	}

	for {
		br := p.lx.Peek()
		if br.Kind != mdast.TokLineBreak || newlineCount(p.lx.Text(br)) > 1 {
			break
		}
		next := p.nextLineStart(br.Start)
		if !strings.Contains(p.src[next:p.lineEnd(next)], "|") {
			break
		}
		p.lx.Next()
		row, err := p.tableRow()
		if err != nil {
			return nil, false, err
		}
		if row == nil {
			break
		}
		if err := appendRow(table, row, len(align)); err != nil {
			return nil, false, err
		}
	}
	return table, true, nil
}

// tableRow parses one line of pipe-separated cells, each cell holding
// phrasing content. Returns nil when the line contains no unescaped pipe.
func (p *Parser) tableRow() (*mdast.TableRow, error) {
	row := mdast.NewTableRow()
	sawPipe := false

	if tok := p.lx.Peek(); tok.Kind == mdast.TokKeyChar && p.lx.Text(tok) == "|" {
		p.lx.Next()
		sawPipe = true
	}
	for {
		if p.lx.Peek().Kind == mdast.TokWhitespace {
			p.lx.Next()
		}
		switch p.lx.Peek().Kind {
		case mdast.TokLineBreak, mdast.TokEOF:
			if !sawPipe {
				return nil, nil
			}
			return row, nil
		}

		limit := -1
		pipe, found := p.findOnLine("|")
		if found {
			sawPipe = true
			limit = pipe.Start
		}
		inner, err := p.inlineSequence(limit)
		if err != nil {
			return nil, err
		}
		cell := mdast.NewTableCell()
		if err := appendAll(cell, trimTrailingSpace(inner)); err != nil {
			return nil, err
		}
		if err := row.AppendChild(cell); err != nil {
			return nil, fmt.Errorf("append cell to row: %w", err)
		}
		if found {
			p.lx.Next()
		}
	}
}

// delimiterRow parses the alignment line that separates the header from
// the body. It accepts only dashes, alignment cells, pipes, and
// whitespace; its cell count fixes the table's column count.
func (p *Parser) delimiterRow() ([]mdast.AlignType, bool) {
	mark := p.lx.Peek()
	var align []mdast.AlignType
	sawPipe := false
	for {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == mdast.TokLineBreak || tok.Kind == mdast.TokEOF:
			if len(align) == 0 || !sawPipe {
				p.lx.Rollback(mark)
				return nil, false
			}
			return align, true
		case tok.Kind == mdast.TokWhitespace:
			p.lx.Next()
		case tok.Kind == mdast.TokDashes:
			align = append(align, mdast.AlignNone)
			p.lx.Next()
		case tok.Kind == mdast.TokAlign:
			align = append(align, tok.Align)
			p.lx.Next()
		case tok.Kind == mdast.TokKeyChar && p.lx.Text(tok) == "|":
			sawPipe = true
			p.lx.Next()
		default:
			p.lx.Rollback(mark)
			return nil, false
		}
	}
}

// appendRow pads or truncates row to the table's column count before
// appending it.
func appendRow(table *mdast.Table, row *mdast.TableRow, cols int) error {
	for row.Len() > cols {
		if _, err := row.RemoveChildAt(row.Len() - 1); err != nil {
			return err
		}
	}
	for row.Len() < cols {
		if err := row.AppendChild(mdast.NewTableCell()); err != nil {
			return err
		}
	}
	if err := table.AppendChild(row); err != nil {
		return fmt.Errorf("append row to table: %w", err)
	}
	return nil
}

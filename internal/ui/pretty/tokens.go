package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/parchlabs/mdast/pkg/mdast"
)

// TokenRenderer renders a token stream one token per line.
type TokenRenderer struct {
	styles *Styles
	width  int
}

// NewTokenRenderer creates a token renderer that truncates token text to
// the given terminal width.
func NewTokenRenderer(styles *Styles, width int) *TokenRenderer {
	if width <= 0 {
		width = defaultTermWidth
	}
	return &TokenRenderer{styles: styles, width: width}
}

// Render formats tokens scanned from source. Alignment cells show their
// column alignment next to the kind.
func (r *TokenRenderer) Render(source string, tokens []mdast.Token) string {
	var builder strings.Builder
	for _, tok := range tokens {
		builder.WriteString(r.line(source, tok))
		builder.WriteString("\n")
	}
	return builder.String()
}

func (r *TokenRenderer) line(source string, tok mdast.Token) string {
	kind := tok.Kind.String()
	if tok.Kind == mdast.TokAlign {
		kind += "(" + tok.Align.String() + ")"
	}

	offset := fmt.Sprintf("[%4d,%4d)", tok.Start, tok.End)
	text := strconv.Quote(tok.Text(source))
	max := r.width - 30
	if max < 10 {
		max = 10
	}
	if len(text) > max {
		text = text[:max-1] + "…"
	}

	return fmt.Sprintf("%s  %-14s %s",
		r.styles.Offset.Render(offset),
		r.styles.TokenKind.Render(kind),
		r.styles.TokenText.Render(text),
	)
}

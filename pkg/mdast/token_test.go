package mdast_test

import (
	"testing"

	"github.com/parchlabs/mdast/pkg/mdast"
)

func TestRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r       mdast.Range
		wantLen int
		empty   bool
	}{
		{"empty at zero", mdast.Range{}, 0, true},
		{"empty mid-source", mdast.Range{Start: 5, End: 5}, 0, true},
		{"single byte", mdast.Range{Start: 3, End: 4}, 1, false},
		{"wide", mdast.Range{Start: 0, End: 10}, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.r.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := tt.r.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestTokenText(t *testing.T) {
	t.Parallel()

	source := "# Heading"

	tests := []struct {
		name string
		tok  mdast.Token
		want string
	}{
		{"pound run", mdast.Token{Kind: mdast.TokPounds, Range: mdast.Range{Start: 0, End: 1}}, "#"},
		{"word", mdast.Token{Kind: mdast.TokText, Range: mdast.Range{Start: 2, End: 9}}, "Heading"},
		{"empty eof", mdast.Token{Kind: mdast.TokEOF, Range: mdast.Range{Start: 9, End: 9}}, ""},
		{"out of bounds", mdast.Token{Kind: mdast.TokText, Range: mdast.Range{Start: 5, End: 50}}, ""},
		{"inverted", mdast.Token{Kind: mdast.TokText, Range: mdast.Range{Start: 7, End: 2}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.tok.Text(source); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenKindString(t *testing.T) {
	t.Parallel()

	kinds := map[mdast.TokenKind]string{
		mdast.TokEOF:          "EOF",
		mdast.TokText:         "Text",
		mdast.TokWhitespace:   "Whitespace",
		mdast.TokLineBreak:    "LineBreak",
		mdast.TokPounds:       "Pounds",
		mdast.TokAsterisks:    "Asterisks",
		mdast.TokUnderscores:  "Underscores",
		mdast.TokDashes:       "Dashes",
		mdast.TokPluses:       "Pluses",
		mdast.TokBackticks:    "Backticks",
		mdast.TokTildes:       "Tildes",
		mdast.TokGreaterThans: "GreaterThans",
		mdast.TokKeyChar:      "KeyChar",
		mdast.TokAlign:        "Align",
	}

	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("TokenKind(%d).String() = %q, want %q", kind, got, want)
		}
	}

	if got := mdast.TokenKind(200).String(); got != "Unknown" {
		t.Errorf("unknown kind String() = %q, want %q", got, "Unknown")
	}
}

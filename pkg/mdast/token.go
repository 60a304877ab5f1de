package mdast

// Range is a half-open [Start, End) byte span into the source text.
type Range struct {
	Start int
	End   int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// TokenKind classifies a lexical token in the Markdown source.
type TokenKind uint8

// Token kinds are purely character-class driven; the lexer has no block or
// inline grammar knowledge.
const (
	// TokEOF terminates the stream. Its range is empty and stable across
	// repeated calls.
	TokEOF TokenKind = iota

	TokText       // greedy plain-text run, escapes absorbed
	TokWhitespace // maximal run of spaces and tabs
	TokLineBreak  // maximal run of \r and \n

	TokPounds       // maximal '#' run
	TokAsterisks    // maximal '*' run
	TokUnderscores  // maximal '_' run
	TokDashes       // '-' run of length > 1, no colons
	TokPluses       // maximal '+' run
	TokBackticks    // maximal '`' run
	TokTildes       // maximal '~' run
	TokGreaterThans // maximal '>' run
	TokKeyChar      // single reserved character
	TokAlign        // table alignment cell: :--, --:, :-:
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "EOF"
	case TokText:
		return "Text"
	case TokWhitespace:
		return "Whitespace"
	case TokLineBreak:
		return "LineBreak"
	case TokPounds:
		return "Pounds"
	case TokAsterisks:
		return "Asterisks"
	case TokUnderscores:
		return "Underscores"
	case TokDashes:
		return "Dashes"
	case TokPluses:
		return "Pluses"
	case TokBackticks:
		return "Backticks"
	case TokTildes:
		return "Tildes"
	case TokGreaterThans:
		return "GreaterThans"
	case TokKeyChar:
		return "KeyChar"
	case TokAlign:
		return "Align"
	default:
		return "Unknown"
	}
}

// Token is a classified span of bytes in the Markdown source.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Range is the half-open byte span of the token.
	Range

	// Align holds the column alignment for TokAlign tokens.
	Align AlignType
}

// Text returns the source text of this token.
func (t Token) Text(source string) string {
	if t.Start < 0 || t.End > len(source) || t.Start > t.End {
		return ""
	}
	return source[t.Start:t.End]
}

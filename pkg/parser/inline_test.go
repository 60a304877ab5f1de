package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parchlabs/mdast/pkg/mdast"
)

// firstParagraph parses the source and returns the first child as a
// paragraph.
func firstParagraph(t *testing.T, source string) *mdast.Paragraph {
	t.Helper()

	doc := mustParse(t, source)
	require.GreaterOrEqual(t, doc.Len(), 1)
	return as[*mdast.Paragraph](t, doc.Children()[0])
}

func TestInline_Emphasis(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "a *em* b\n")

	require.Equal(t, 3, para.Len())
	assert.Equal(t, "a ", textValue(t, para.Children()[0]))
	em := as[*mdast.Emphasis](t, para.Children()[1])
	assert.Equal(t, "em", textValue(t, em.Children()[0]))
	assert.Equal(t, " b", textValue(t, para.Children()[2]))
}

func TestInline_Strong(t *testing.T) {
	t.Parallel()

	for _, source := range []string{"**bold**\n", "__bold__\n"} {
		para := firstParagraph(t, source)
		require.Equalf(t, 1, para.Len(), "source %q", source)
		strong := as[*mdast.Strong](t, para.Children()[0])
		assert.Equal(t, "bold", textValue(t, strong.Children()[0]))
	}
}

func TestInline_StrongInsideEmphasis(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "*a **b** c*\n")

	require.Equal(t, 1, para.Len())
	em := as[*mdast.Emphasis](t, para.Children()[0])
	require.Equal(t, 3, em.Len())
	assert.Equal(t, "a ", textValue(t, em.Children()[0]))
	strong := as[*mdast.Strong](t, em.Children()[1])
	assert.Equal(t, "b", textValue(t, strong.Children()[0]))
	assert.Equal(t, " c", textValue(t, em.Children()[2]))
}

func TestInline_UnmatchedDelimitersStayLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"lone asterisk run", "*unmatched\n", "*unmatched"},
		{"empty strong", "**\n", "**"},
		{"mismatched kinds", "*a_\n", "*a_"},
		{"single tilde", "~x~\n", "~x~"},
		{"lone backtick", "before ` after\n", "before ` after"},
		{"bare bang", "a ! b\n", "a ! b"},
		{"unclosed bracket", "a [ b\n", "a [ b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			para := firstParagraph(t, tt.source)
			require.Equal(t, 1, para.Len())
			assert.Equal(t, tt.want, textValue(t, para.Children()[0]))
		})
	}
}

func TestInline_Code(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "run `a*b` now\n")

	require.Equal(t, 3, para.Len())
	code := as[*mdast.InlineCode](t, para.Children()[1])
	assert.Equal(t, "a*b", code.Value)
}

func TestInline_CodeDoubleBacktick(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "``keep ` tick``\n")

	require.Equal(t, 1, para.Len())
	code := as[*mdast.InlineCode](t, para.Children()[0])
	assert.Equal(t, "keep ` tick", code.Value)
}

func TestInline_CodeIsVerbatim(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "`*not em* [not link]`\n")

	require.Equal(t, 1, para.Len())
	code := as[*mdast.InlineCode](t, para.Children()[0])
	assert.Equal(t, "*not em* [not link]", code.Value)
}

func TestInline_CodeSpanCoversContent(t *testing.T) {
	t.Parallel()

	source := "x `body` y\n"
	para := firstParagraph(t, source)

	code := as[*mdast.InlineCode](t, para.Children()[1])
	assert.Equal(t, code.Value, source[code.Span.Start:code.Span.End])
}

func TestInline_Delete(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "keep ~~gone~~ rest\n")

	require.Equal(t, 3, para.Len())
	del := as[*mdast.Delete](t, para.Children()[1])
	assert.Equal(t, "gone", textValue(t, del.Children()[0]))
}

func TestInline_Link(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		url   string
		title string
		text  string
	}{
		{"url and title", `[a](/u "t")` + "\n", "/u", "t", "a"},
		{"url only", "[a](/u)\n", "/u", "", "a"},
		{"single quoted title", "[a](/u 'q')\n", "/u", "q", "a"},
		{"empty target", "[a]()\n", "", "", "a"},
		{"nested parens in url", "[w](/u(v))\n", "/u(v)", "", "w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			para := firstParagraph(t, tt.src)
			require.Equal(t, 1, para.Len())
			link := as[*mdast.Link](t, para.Children()[0])
			assert.Equal(t, tt.url, link.URL)
			assert.Equal(t, tt.title, link.Title)
			assert.Equal(t, tt.text, textValue(t, link.Children()[0]))
		})
	}
}

func TestInline_LinkTextIsParsed(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "[see *this*](/u)\n")

	link := as[*mdast.Link](t, para.Children()[0])
	require.Equal(t, 2, link.Len())
	assert.Equal(t, "see ", textValue(t, link.Children()[0]))
	as[*mdast.Emphasis](t, link.Children()[1])
}

func TestInline_Image(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, `![alt text](/img.png "caption")`+"\n")

	require.Equal(t, 1, para.Len())
	img := as[*mdast.Image](t, para.Children()[0])
	assert.Equal(t, "/img.png", img.URL)
	assert.Equal(t, "caption", img.Title)
	assert.Equal(t, "alt text", img.Alt)
}

func TestInline_FullReference(t *testing.T) {
	t.Parallel()

	// A full reference is kept even when the identifier is undefined.
	para := firstParagraph(t, "[text][Missing ID]\n")

	require.Equal(t, 1, para.Len())
	ref := as[*mdast.LinkReference](t, para.Children()[0])
	assert.Equal(t, mdast.ReferenceFull, ref.ReferenceType)
	assert.Equal(t, "missing id", ref.Identifier)
	assert.Equal(t, "Missing ID", ref.Label)
	assert.Equal(t, "text", textValue(t, ref.Children()[0]))
}

func TestInline_CollapsedReference(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "[Label][]\n")

	ref := as[*mdast.LinkReference](t, para.Children()[0])
	assert.Equal(t, mdast.ReferenceCollapsed, ref.ReferenceType)
	assert.Equal(t, "label", ref.Identifier)
	assert.Equal(t, "Label", ref.Label)
}

func TestInline_ShortcutReferenceWithDefinition(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "[home]\n\n[home]: /index.html\n")

	require.Equal(t, 1, para.Len())
	ref := as[*mdast.LinkReference](t, para.Children()[0])
	assert.Equal(t, mdast.ReferenceShortcut, ref.ReferenceType)
	assert.Equal(t, "home", ref.Identifier)
	assert.Equal(t, "home", textValue(t, ref.Children()[0]))
}

func TestInline_ImageReference(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "![logo][brand]\n")

	ref := as[*mdast.ImageReference](t, para.Children()[0])
	assert.Equal(t, mdast.ReferenceFull, ref.ReferenceType)
	assert.Equal(t, "brand", ref.Identifier)
	assert.Equal(t, "logo", ref.Alt)
}

func TestInline_ImageShortcutWithDefinition(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "![pic]\n\n[pic]: /p.png\n")

	ref := as[*mdast.ImageReference](t, para.Children()[0])
	assert.Equal(t, mdast.ReferenceShortcut, ref.ReferenceType)
	assert.Equal(t, "pic", ref.Alt)
}

func TestInline_FootnoteReferenceInContext(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "x[^note]y\n\n[^note]: body\n")

	require.Equal(t, 3, para.Len())
	assert.Equal(t, "x", textValue(t, para.Children()[0]))
	ref := as[*mdast.FootnoteReference](t, para.Children()[1])
	assert.Equal(t, "note", ref.Identifier)
	assert.Equal(t, "y", textValue(t, para.Children()[2]))
}

func TestInline_FootnoteLabelWithSpaceIsNotAFootnote(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, "[^a b]\n")

	// Falls back to a shortcut candidate, which then demotes to text.
	require.Equal(t, 1, para.Len())
	assert.Equal(t, "[^a b]", textValue(t, para.Children()[0]))
}

func TestInline_EscapedBracketStaysText(t *testing.T) {
	t.Parallel()

	para := firstParagraph(t, `\[not a link\](/u)`+"\n")

	require.Equal(t, 1, para.Len())
	assert.Equal(t, "[not a link](/u)", textValue(t, para.Children()[0]))
}

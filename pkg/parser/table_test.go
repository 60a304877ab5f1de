package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parchlabs/mdast/pkg/mdast"
)

func cellText(t *testing.T, row mdast.Node, col int) string {
	t.Helper()

	r := as[*mdast.TableRow](t, row)
	require.Greater(t, r.Len(), col)
	cell := as[*mdast.TableCell](t, r.Children()[col])
	if cell.Len() == 0 {
		return ""
	}
	return textValue(t, cell.Children()[0])
}

func TestTable_Basic(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "| a | b |\n| :-- | --: |\n| c | d |\n")

	require.Equal(t, 1, doc.Len())
	table := as[*mdast.Table](t, doc.Children()[0])
	assert.Equal(t, []mdast.AlignType{mdast.AlignLeft, mdast.AlignRight}, table.Align)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, "a", cellText(t, table.Children()[0], 0))
	assert.Equal(t, "b", cellText(t, table.Children()[0], 1))
	assert.Equal(t, "c", cellText(t, table.Children()[1], 0))
	assert.Equal(t, "d", cellText(t, table.Children()[1], 1))
}

func TestTable_AlignmentShapes(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "| w | x | y | z |\n| --- | :-- | :-: | --: |\n")

	table := as[*mdast.Table](t, doc.Children()[0])
	assert.Equal(t, []mdast.AlignType{
		mdast.AlignNone, mdast.AlignLeft, mdast.AlignCenter, mdast.AlignRight,
	}, table.Align)
	assert.Equal(t, 1, table.Len())
}

func TestTable_WithoutDelimiterRowIsParagraph(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "a | b\nplain text\n")

	require.Equal(t, 1, doc.Len())
	para := as[*mdast.Paragraph](t, doc.Children()[0])
	require.Equal(t, 1, para.Len())
	assert.Equal(t, "a | b plain text", textValue(t, para.Children()[0]))
}

func TestTable_PipelessLineIsNeverATable(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "plain\n| :-- |\n")

	as[*mdast.Paragraph](t, doc.Children()[0])
}

func TestTable_RaggedRowsNormalizeToHeaderWidth(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "| a | b |\n| --- | --- |\n| only |\n| x | y | dropped |\n")

	table := as[*mdast.Table](t, doc.Children()[0])
	require.Equal(t, 3, table.Len())

	short := as[*mdast.TableRow](t, table.Children()[1])
	require.Equal(t, 2, short.Len())
	assert.Equal(t, "only", cellText(t, table.Children()[1], 0))
	pad := as[*mdast.TableCell](t, short.Children()[1])
	assert.Zero(t, pad.Len())

	long := as[*mdast.TableRow](t, table.Children()[2])
	require.Equal(t, 2, long.Len())
	assert.Equal(t, "x", cellText(t, table.Children()[2], 0))
	assert.Equal(t, "y", cellText(t, table.Children()[2], 1))
}

func TestTable_EscapedPipeStaysInCell(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "| a \\| b | c |\n| --- | --- |\n")

	table := as[*mdast.Table](t, doc.Children()[0])
	header := as[*mdast.TableRow](t, table.Children()[0])
	require.Equal(t, 2, header.Len())
	assert.Equal(t, "a | b", cellText(t, table.Children()[0], 0))
	assert.Equal(t, "c", cellText(t, table.Children()[0], 1))
}

func TestTable_CellsHoldInlineMarkup(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "| **bold** | `code` |\n| --- | --- |\n")

	table := as[*mdast.Table](t, doc.Children()[0])
	header := as[*mdast.TableRow](t, table.Children()[0])

	first := as[*mdast.TableCell](t, header.Children()[0])
	as[*mdast.Strong](t, first.Children()[0])
	second := as[*mdast.TableCell](t, header.Children()[1])
	as[*mdast.InlineCode](t, second.Children()[0])
}

func TestTable_BlankLineEndsBody(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "| a |\n| --- |\n| b |\n\nafter\n")

	require.Equal(t, 2, doc.Len())
	table := as[*mdast.Table](t, doc.Children()[0])
	assert.Equal(t, 2, table.Len())
	para := as[*mdast.Paragraph](t, doc.Children()[1])
	assert.Equal(t, "after", textValue(t, para.Children()[0]))
}

func TestTable_BodyEndsAtNonTableLine(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "| a |\n| --- |\n| b |\nprose line\n")

	require.Equal(t, 2, doc.Len())
	table := as[*mdast.Table](t, doc.Children()[0])
	assert.Equal(t, 2, table.Len())
	as[*mdast.Paragraph](t, doc.Children()[1])
}

func TestTable_NoLeadingOrTrailingPipes(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "a | b\n:-- | --:\nc | d\n")

	table := as[*mdast.Table](t, doc.Children()[0])
	assert.Equal(t, []mdast.AlignType{mdast.AlignLeft, mdast.AlignRight}, table.Align)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "a", cellText(t, table.Children()[0], 0))
	assert.Equal(t, "d", cellText(t, table.Children()[1], 1))
}

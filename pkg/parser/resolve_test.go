package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parchlabs/mdast/pkg/mdast"
)

func TestResolve_ForwardDefinitionBindsEarlierShortcut(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "See [guide] for details.\n\n[guide]: /docs/guide\n")

	para := as[*mdast.Paragraph](t, doc.Children()[0])
	require.Equal(t, 3, para.Len())
	ref := as[*mdast.LinkReference](t, para.Children()[1])
	assert.Equal(t, mdast.ReferenceShortcut, ref.ReferenceType)
	assert.Equal(t, "guide", ref.Identifier)
}

func TestResolve_UndefinedShortcutDemotesToText(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "before [nope] after\n")

	para := as[*mdast.Paragraph](t, doc.Children()[0])
	require.Equal(t, 1, para.Len(), "demoted text must coalesce with neighbors")
	assert.Equal(t, "before [nope] after", textValue(t, para.Children()[0]))
}

func TestResolve_UndefinedImageShortcutDemotesToText(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "see ![missing] here\n")

	para := as[*mdast.Paragraph](t, doc.Children()[0])
	require.Equal(t, 1, para.Len())
	assert.Equal(t, "see ![missing] here", textValue(t, para.Children()[0]))
}

func TestResolve_UndefinedFootnoteDemotesToText(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "claim[^99]\n")

	para := as[*mdast.Paragraph](t, doc.Children()[0])
	require.Equal(t, 1, para.Len())
	assert.Equal(t, "claim[^99]", textValue(t, para.Children()[0]))
}

func TestResolve_ExplicitReferencesSurviveUndefined(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "[a][missing] and [b][]\n")

	para := as[*mdast.Paragraph](t, doc.Children()[0])
	require.Equal(t, 3, para.Len())

	full := as[*mdast.LinkReference](t, para.Children()[0])
	assert.Equal(t, mdast.ReferenceFull, full.ReferenceType)
	collapsed := as[*mdast.LinkReference](t, para.Children()[2])
	assert.Equal(t, mdast.ReferenceCollapsed, collapsed.ReferenceType)
}

func TestResolve_DemotionReachesNestedSpans(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "*see [nope] now*\n")

	para := as[*mdast.Paragraph](t, doc.Children()[0])
	em := as[*mdast.Emphasis](t, para.Children()[0])
	require.Equal(t, 1, em.Len())
	assert.Equal(t, "see [nope] now", textValue(t, em.Children()[0]))
}

func TestResolve_IdentifierMatchIsCaseAndSpaceInsensitive(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "[Foo   Bar]\n\n[foo bar]: /u\n")

	para := as[*mdast.Paragraph](t, doc.Children()[0])
	ref := as[*mdast.LinkReference](t, para.Children()[0])
	assert.Equal(t, "foo bar", ref.Identifier)
	assert.Equal(t, "Foo   Bar", ref.Label)
}

func TestResolve_DefinitionInsideContainerBinds(t *testing.T) {
	t.Parallel()

	// Definitions collected in nested scopes share the document's table.
	doc := mustParse(t, "[x]\n\n> [x]: /u\n")

	para := as[*mdast.Paragraph](t, doc.Children()[0])
	as[*mdast.LinkReference](t, para.Children()[0])
}

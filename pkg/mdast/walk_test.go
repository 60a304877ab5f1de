package mdast_test

import (
	"errors"
	"testing"

	"github.com/parchlabs/mdast/pkg/mdast"
)

// buildFixtureTree builds:
//
//	Document
//	├── Heading(1) > Text "title"
//	└── Paragraph > Text "a", Emphasis > Text "b"
func buildFixtureTree(t *testing.T) *mdast.Document {
	t.Helper()

	doc := mdast.NewDocument()
	h := mdast.NewHeading(1)
	para := mdast.NewParagraph()
	em := mdast.NewEmphasis()

	for _, step := range []struct {
		parent mdast.Parent
		child  mdast.Node
	}{
		{h, mdast.NewText("title")},
		{doc, h},
		{para, mdast.NewText("a")},
		{em, mdast.NewText("b")},
		{para, em},
		{doc, para},
	} {
		if err := step.parent.AppendChild(step.child); err != nil {
			t.Fatalf("build tree: %v", err)
		}
	}
	return doc
}

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	doc := buildFixtureTree(t)

	var order []mdast.NodeKind
	err := mdast.Walk(doc, func(n mdast.Node) error {
		order = append(order, n.Kind())
		return nil
	})
	if err != nil {
		t.Fatalf("Walk returned %v", err)
	}

	want := []mdast.NodeKind{
		mdast.KindDocument,
		mdast.KindHeading, mdast.KindText,
		mdast.KindParagraph, mdast.KindText, mdast.KindEmphasis, mdast.KindText,
	}
	if len(order) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(order), len(want))
	}
	for i, k := range want {
		if order[i] != k {
			t.Errorf("position %d: got %s, want %s", i, order[i], k)
		}
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	doc := buildFixtureTree(t)
	sentinel := errors.New("stop here")

	visited := 0
	err := mdast.Walk(doc, func(n mdast.Node) error {
		visited++
		if n.Kind() == mdast.KindHeading {
			return sentinel
		}
		return nil
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("Walk returned %v, want sentinel", err)
	}
	if visited != 2 {
		t.Errorf("visited %d nodes before stopping, want 2", visited)
	}
}

func TestWalk_NilRoot(t *testing.T) {
	t.Parallel()

	if err := mdast.Walk(nil, func(mdast.Node) error { return nil }); err != nil {
		t.Fatalf("Walk(nil) returned %v", err)
	}
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	doc := buildFixtureTree(t)

	texts := mdast.FindAll(doc, func(n mdast.Node) bool {
		return n.Kind() == mdast.KindText
	})
	if len(texts) != 3 {
		t.Errorf("found %d text nodes, want 3", len(texts))
	}
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	doc := buildFixtureTree(t)

	first := mdast.FindFirst(doc, func(n mdast.Node) bool {
		return n.Kind() == mdast.KindText
	})
	text, ok := first.(*mdast.Text)
	if !ok {
		t.Fatalf("FindFirst returned %T", first)
	}
	if text.Value != "title" {
		t.Errorf("FindFirst returned %q, want the document-order first text", text.Value)
	}

	if n := mdast.FindFirst(doc, func(mdast.Node) bool { return false }); n != nil {
		t.Errorf("FindFirst with no match returned %v, want nil", n)
	}
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	doc := buildFixtureTree(t)

	if got := len(mdast.FindByKind(doc, mdast.KindEmphasis)); got != 1 {
		t.Errorf("found %d emphasis nodes, want 1", got)
	}
	if got := len(mdast.FindByKind(doc, mdast.KindTable)); got != 0 {
		t.Errorf("found %d tables, want 0", got)
	}
}

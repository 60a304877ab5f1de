package parser

import (
	"fmt"

	"github.com/parchlabs/mdast/pkg/mdast"
)

// resolve is the deferred reference-binding pass. Definitions may appear
// after the references that use them, so binding decisions wait until the
// whole tree is built. Shortcut references whose identifier was never
// defined demote to the literal bracketed text; full and collapsed
// references are kept unresolved for downstream consumers, which mirrors
// how reference-style authors expect dangling explicit references to
// surface.
func (p *Parser) resolve(doc *mdast.Document) error {
	return mdast.Walk(doc, func(n mdast.Node) error {
		parent, ok := n.(mdast.Parent)
		if !ok {
			return nil
		}
		return p.demoteUnresolved(parent)
	})
}

func (p *Parser) demoteUnresolved(parent mdast.Parent) error {
	kids := parent.Children()
	changed := false
	for _, kid := range kids {
		if p.replacementFor(kid) != nil {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	var out []mdast.Node
	push := func(n mdast.Node) {
		if t, ok := n.(*mdast.Text); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*mdast.Text); ok {
				prev.Value += t.Value
				return
			}
		}
		out = append(out, n)
	}
	for _, kid := range kids {
		if repl := p.replacementFor(kid); repl != nil {
			push(repl)
			continue
		}
		push(kid)
	}

	for parent.Len() > 0 {
		if _, err := parent.RemoveChildAt(0); err != nil {
			return err
		}
	}
	for _, n := range out {
		if err := parent.AppendChild(n); err != nil {
			return fmt.Errorf("rebind %s children: %w", parent.Kind(), err)
		}
	}
	return nil
}

// replacementFor returns the literal text a dangling reference demotes
// to, or nil when the node stays as is.
func (p *Parser) replacementFor(n mdast.Node) *mdast.Text {
	switch ref := n.(type) {
	case *mdast.LinkReference:
		if ref.ReferenceType == mdast.ReferenceShortcut && !p.defined(ref.Identifier) {
			return mdast.NewText("[" + ref.Label + "]")
		}
	case *mdast.ImageReference:
		if ref.ReferenceType == mdast.ReferenceShortcut && !p.defined(ref.Identifier) {
			return mdast.NewText("![" + ref.Label + "]")
		}
	case *mdast.FootnoteReference:
		if _, ok := p.footnotes[ref.Identifier]; !ok {
			return mdast.NewText("[^" + ref.Label + "]")
		}
	}
	return nil
}

func (p *Parser) defined(identifier string) bool {
	_, ok := p.defs[identifier]
	return ok
}

package mdast

// Snapshot converts a tree into nested maps keyed the way mdast names
// things, suitable for JSON or YAML encoding and for fixture comparison
// in tests. Optional fields are omitted when empty; children appear under
// "children" in document order.
func Snapshot(n Node) map[string]any {
	v := &snapshotVisitor{}
	n.Accept(v)
	snap := v.snap
	if parent, ok := n.(Parent); ok {
		children := parent.Children()
		out := make([]map[string]any, len(children))
		for i, child := range children {
			out[i] = Snapshot(child)
		}
		snap["children"] = out
	}
	return snap
}

type snapshotVisitor struct {
	BaseVisitor

	snap map[string]any
}

func (v *snapshotVisitor) put(kind string, fields ...any) {
	v.snap = map[string]any{"type": kind}
	for i := 0; i+1 < len(fields); i += 2 {
		key := fields[i].(string)
		switch val := fields[i+1].(type) {
		case string:
			if val != "" {
				v.snap[key] = val
			}
		case bool:
			if val {
				v.snap[key] = val
			}
		default:
			v.snap[key] = val
		}
	}
}

func (v *snapshotVisitor) VisitDocument(*Document)           { v.put("document") }
func (v *snapshotVisitor) VisitParagraph(*Paragraph)         { v.put("paragraph") }
func (v *snapshotVisitor) VisitThematicBreak(*ThematicBreak) { v.put("thematicBreak") }
func (v *snapshotVisitor) VisitBlockquote(*Blockquote)       { v.put("blockquote") }
func (v *snapshotVisitor) VisitListItem(*ListItem)           { v.put("listItem") }
func (v *snapshotVisitor) VisitTableRow(*TableRow)           { v.put("tableRow") }
func (v *snapshotVisitor) VisitTableCell(*TableCell)         { v.put("tableCell") }
func (v *snapshotVisitor) VisitEmphasis(*Emphasis)           { v.put("emphasis") }
func (v *snapshotVisitor) VisitStrong(*Strong)               { v.put("strong") }
func (v *snapshotVisitor) VisitBreak(*Break)                 { v.put("break") }
func (v *snapshotVisitor) VisitDelete(*Delete)               { v.put("delete") }

func (v *snapshotVisitor) VisitHeading(h *Heading) {
	v.put("heading", "depth", h.Depth())
}

func (v *snapshotVisitor) VisitList(l *List) {
	v.put("list", "ordered", l.Ordered, "spread", !l.Tight)
	if l.Ordered {
		v.snap["start"] = l.Start
	}
}

func (v *snapshotVisitor) VisitCode(c *Code) {
	v.put("code", "lang", c.Lang, "meta", c.Meta)
	v.snap["value"] = c.Value
}

func (v *snapshotVisitor) VisitDefinition(d *Definition) {
	v.put("definition", "identifier", d.Identifier, "label", d.Label,
		"url", d.URL, "title", d.Title)
}

func (v *snapshotVisitor) VisitFootnoteDefinition(f *FootnoteDefinition) {
	v.put("footnoteDefinition", "identifier", f.Identifier, "label", f.Label)
}

func (v *snapshotVisitor) VisitTable(t *Table) {
	aligns := make([]string, len(t.Align))
	for i, a := range t.Align {
		aligns[i] = a.String()
	}
	v.put("table")
	v.snap["align"] = aligns
}

func (v *snapshotVisitor) VisitText(t *Text) {
	v.put("text")
	v.snap["value"] = t.Value
}

func (v *snapshotVisitor) VisitInlineCode(c *InlineCode) {
	v.put("inlineCode")
	v.snap["value"] = c.Value
}

func (v *snapshotVisitor) VisitLink(l *Link) {
	v.put("link", "url", l.URL, "title", l.Title)
	if l.URL == "" {
		v.snap["url"] = ""
	}
}

func (v *snapshotVisitor) VisitLinkReference(l *LinkReference) {
	v.put("linkReference", "identifier", l.Identifier, "label", l.Label,
		"referenceType", l.ReferenceType.String())
}

func (v *snapshotVisitor) VisitImage(i *Image) {
	v.put("image", "url", i.URL, "title", i.Title, "alt", i.Alt)
}

func (v *snapshotVisitor) VisitImageReference(i *ImageReference) {
	v.put("imageReference", "identifier", i.Identifier, "label", i.Label,
		"alt", i.Alt, "referenceType", i.ReferenceType.String())
}

func (v *snapshotVisitor) VisitFootnoteReference(f *FootnoteReference) {
	v.put("footnoteReference", "identifier", f.Identifier, "label", f.Label)
}

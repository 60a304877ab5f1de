package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/parchlabs/mdast/pkg/mdast"
)

// TreeRenderer renders a parse tree as an indented outline, one node per
// line with box-drawing branches.
type TreeRenderer struct {
	styles *Styles
	width  int
}

// NewTreeRenderer creates a tree renderer that truncates value previews
// to the given terminal width.
func NewTreeRenderer(styles *Styles, width int) *TreeRenderer {
	if width <= 0 {
		width = defaultTermWidth
	}
	return &TreeRenderer{styles: styles, width: width}
}

// Render returns the rendered outline for the tree rooted at node.
func (r *TreeRenderer) Render(root mdast.Node) string {
	var builder strings.Builder
	r.renderNode(&builder, root, "", "")
	return builder.String()
}

func (r *TreeRenderer) renderNode(builder *strings.Builder, n mdast.Node, branch, indent string) {
	builder.WriteString(r.styles.Branch.Render(branch))
	builder.WriteString(r.label(n))
	builder.WriteString("\n")

	parent, ok := n.(mdast.Parent)
	if !ok {
		return
	}
	children := parent.Children()
	for i, child := range children {
		childBranch := indent + "├── "
		childIndent := indent + "│   "
		if i == len(children)-1 {
			childBranch = indent + "└── "
			childIndent = indent + "    "
		}
		r.renderNode(builder, child, childBranch, childIndent)
	}
}

// label builds the one-line description of a node via visitor dispatch.
func (r *TreeRenderer) label(n mdast.Node) string {
	v := &labelVisitor{styles: r.styles, width: r.width}
	n.Accept(v)
	if v.label == "" {
		v.label = r.styles.NodeKind.Render(n.Kind().String())
	}
	return v.label
}

// labelVisitor formats one line per node variant. Fields that carry the
// node's meaning are shown; empty optionals are omitted.
type labelVisitor struct {
	mdast.BaseVisitor

	styles *Styles
	width  int
	label  string
}

func (v *labelVisitor) kind(name string, details ...string) {
	parts := []string{v.styles.NodeKind.Render(name)}
	for _, d := range details {
		if d != "" {
			parts = append(parts, d)
		}
	}
	v.label = strings.Join(parts, " ")
}

func (v *labelVisitor) detail(key, value string) string {
	if value == "" {
		return ""
	}
	return v.styles.NodeDetail.Render(key + "=" + value)
}

func (v *labelVisitor) preview(value string) string {
	const overhead = 40
	max := v.width - overhead
	if max < 8 {
		max = 8
	}
	value = strconv.Quote(value)
	if len(value) > max {
		value = value[:max-1] + "…"
	}
	return v.styles.NodeValue.Render(value)
}

func (v *labelVisitor) VisitDocument(*mdast.Document) { v.kind("Document") }

func (v *labelVisitor) VisitParagraph(*mdast.Paragraph) { v.kind("Paragraph") }

func (v *labelVisitor) VisitHeading(h *mdast.Heading) {
	v.kind("Heading", v.detail("depth", strconv.Itoa(h.Depth())))
}

func (v *labelVisitor) VisitThematicBreak(*mdast.ThematicBreak) { v.kind("ThematicBreak") }

func (v *labelVisitor) VisitBlockquote(*mdast.Blockquote) { v.kind("Blockquote") }

func (v *labelVisitor) VisitList(l *mdast.List) {
	details := []string{}
	if l.Ordered {
		details = append(details,
			v.detail("ordered", "true"),
			v.detail("start", strconv.Itoa(l.Start)))
	}
	if !l.Tight {
		details = append(details, v.detail("loose", "true"))
	}
	v.kind("List", details...)
}

func (v *labelVisitor) VisitListItem(*mdast.ListItem) { v.kind("ListItem") }

func (v *labelVisitor) VisitCode(c *mdast.Code) {
	v.kind("Code", v.detail("lang", c.Lang), v.detail("meta", c.Meta), v.preview(c.Value))
}

func (v *labelVisitor) VisitDefinition(d *mdast.Definition) {
	v.kind("Definition", v.detail("identifier", d.Identifier),
		v.detail("url", d.URL), v.detail("title", d.Title))
}

func (v *labelVisitor) VisitFootnoteDefinition(f *mdast.FootnoteDefinition) {
	v.kind("FootnoteDefinition", v.detail("identifier", f.Identifier))
}

func (v *labelVisitor) VisitTable(t *mdast.Table) {
	aligns := make([]string, len(t.Align))
	for i, a := range t.Align {
		aligns[i] = a.String()
	}
	v.kind("Table", v.detail("align", strings.Join(aligns, ",")))
}

func (v *labelVisitor) VisitTableRow(*mdast.TableRow) { v.kind("TableRow") }

func (v *labelVisitor) VisitTableCell(*mdast.TableCell) { v.kind("TableCell") }

func (v *labelVisitor) VisitText(t *mdast.Text) {
	v.kind("Text", v.preview(t.Value), v.span(t.Span))
}

func (v *labelVisitor) VisitEmphasis(*mdast.Emphasis) { v.kind("Emphasis") }

func (v *labelVisitor) VisitStrong(*mdast.Strong) { v.kind("Strong") }

func (v *labelVisitor) VisitInlineCode(c *mdast.InlineCode) {
	v.kind("InlineCode", v.preview(c.Value), v.span(c.Span))
}

func (v *labelVisitor) VisitBreak(*mdast.Break) { v.kind("Break") }

func (v *labelVisitor) VisitLink(l *mdast.Link) {
	v.kind("Link", v.detail("url", l.URL), v.detail("title", l.Title))
}

func (v *labelVisitor) VisitLinkReference(l *mdast.LinkReference) {
	v.kind("LinkReference", v.detail("identifier", l.Identifier),
		v.detail("type", l.ReferenceType.String()))
}

func (v *labelVisitor) VisitImage(i *mdast.Image) {
	v.kind("Image", v.detail("url", i.URL), v.detail("alt", i.Alt))
}

func (v *labelVisitor) VisitImageReference(i *mdast.ImageReference) {
	v.kind("ImageReference", v.detail("identifier", i.Identifier),
		v.detail("alt", i.Alt), v.detail("type", i.ReferenceType.String()))
}

func (v *labelVisitor) VisitDelete(*mdast.Delete) { v.kind("Delete") }

func (v *labelVisitor) VisitFootnoteReference(f *mdast.FootnoteReference) {
	v.kind("FootnoteReference", v.detail("identifier", f.Identifier))
}

func (v *labelVisitor) span(r mdast.Range) string {
	if r.IsEmpty() {
		return ""
	}
	return v.styles.Dim.Render(fmt.Sprintf("[%d,%d)", r.Start, r.End))
}

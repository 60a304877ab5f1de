package mdast

import "fmt"

// Document is the root of a parsed Markdown tree. Its content model is
// flow content.
type Document struct {
	container
}

// NewDocument creates an empty document root.
func NewDocument() *Document {
	return &Document{}
}

func (d *Document) Kind() NodeKind   { return KindDocument }
func (d *Document) Accept(v Visitor) { v.VisitDocument(d) }

func (d *Document) AppendChild(child Node) error {
	return appendChecked[FlowContent](&d.container, d, child)
}

// Paragraph represents a unit of discourse dealing with a particular point
// or idea. Its content model is phrasing content.
type Paragraph struct {
	container
}

// NewParagraph creates an empty paragraph.
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

func (p *Paragraph) Kind() NodeKind   { return KindParagraph }
func (p *Paragraph) Accept(v Visitor) { v.VisitParagraph(p) }
func (p *Paragraph) flowContent()     {}

func (p *Paragraph) AppendChild(child Node) error {
	return appendChecked[PhrasingContent](&p.container, p, child)
}

// Heading represents the heading of a section. Depth 1 is the highest rank
// and 6 the lowest. Its content model is phrasing content.
type Heading struct {
	container
	depth int
}

// NewHeading creates a heading of the given depth. Depth outside [1,6] is a
// programming error, not malformed input, and panics: the parser must never
// attempt to build such a node.
func NewHeading(depth int) *Heading {
	if depth < 1 || depth > 6 {
		panic(fmt.Sprintf("mdast: heading depth %d outside [1,6]", depth))
	}
	return &Heading{depth: depth}
}

// Depth returns the heading depth in [1,6].
func (h *Heading) Depth() int { return h.depth }

func (h *Heading) Kind() NodeKind   { return KindHeading }
func (h *Heading) Accept(v Visitor) { v.VisitHeading(h) }
func (h *Heading) flowContent()     {}

func (h *Heading) AppendChild(child Node) error {
	return appendChecked[PhrasingContent](&h.container, h, child)
}

// ThematicBreak represents a thematic break, such as a scene change or a
// transition to another topic.
type ThematicBreak struct{}

// NewThematicBreak creates a thematic break.
func NewThematicBreak() *ThematicBreak {
	return &ThematicBreak{}
}

func (t *ThematicBreak) Kind() NodeKind   { return KindThematicBreak }
func (t *ThematicBreak) Accept(v Visitor) { v.VisitThematicBreak(t) }
func (t *ThematicBreak) flowContent()     {}

// Blockquote represents a section quoted from somewhere else. Its content
// model is flow content.
type Blockquote struct {
	container
}

// NewBlockquote creates an empty blockquote.
func NewBlockquote() *Blockquote {
	return &Blockquote{}
}

func (b *Blockquote) Kind() NodeKind   { return KindBlockquote }
func (b *Blockquote) Accept(v Visitor) { v.VisitBlockquote(b) }
func (b *Blockquote) flowContent()     {}

func (b *Blockquote) AppendChild(child Node) error {
	return appendChecked[FlowContent](&b.container, b, child)
}

// List represents a list of items. Its content model is list content.
type List struct {
	container

	// Ordered is true for numbered lists.
	Ordered bool

	// Start is the number of the first item of an ordered list.
	Start int

	// Tight is false when blank lines separate the items.
	Tight bool
}

// NewList creates an empty list. Ordered lists record their start number.
func NewList(ordered bool, start int) *List {
	return &List{Ordered: ordered, Start: start, Tight: true}
}

func (l *List) Kind() NodeKind   { return KindList }
func (l *List) Accept(v Visitor) { v.VisitList(l) }
func (l *List) flowContent()     {}

func (l *List) AppendChild(child Node) error {
	return appendChecked[ListContent](&l.container, l, child)
}

// ListItem represents one item in a list. Its content model is flow
// content.
type ListItem struct {
	container
}

// NewListItem creates an empty list item.
func NewListItem() *ListItem {
	return &ListItem{}
}

func (l *ListItem) Kind() NodeKind   { return KindListItem }
func (l *ListItem) Accept(v Visitor) { v.VisitListItem(l) }
func (l *ListItem) listContent()     {}

func (l *ListItem) AppendChild(child Node) error {
	return appendChecked[FlowContent](&l.container, l, child)
}

// Code represents a block of preformatted text, such as ASCII art or
// computer code. It is a literal: the payload is held directly.
type Code struct {
	// Value is the verbatim content of the block.
	Value string

	// Lang identifies the code language, if present.
	Lang string

	// Meta holds the remainder of the fence info string after the language.
	Meta string

	// Span is the byte range of Value in the block's source region.
	Span Range
}

// NewCode creates a code block literal.
func NewCode(value, lang, meta string) *Code {
	return &Code{Value: value, Lang: lang, Meta: meta}
}

func (c *Code) Kind() NodeKind   { return KindCode }
func (c *Code) Accept(v Visitor) { v.VisitCode(c) }
func (c *Code) flowContent()     {}

// Definition represents a resource that reference links and images can
// point at. The identifier is normalized; the label preserves the original
// source spelling.
type Definition struct {
	Identifier string
	Label      string
	URL        string

	// Title is advisory information for the resource. Empty means absent.
	Title string
}

// NewDefinition creates a definition with a normalized identifier.
func NewDefinition(identifier, label, url, title string) *Definition {
	return &Definition{Identifier: identifier, Label: label, URL: url, Title: title}
}

func (d *Definition) Kind() NodeKind   { return KindDefinition }
func (d *Definition) Accept(v Visitor) { v.VisitDefinition(d) }
func (d *Definition) flowContent()     {}

// FootnoteDefinition represents the body a footnote reference points at.
// Its content model is flow content.
type FootnoteDefinition struct {
	container

	Identifier string
	Label      string
}

// NewFootnoteDefinition creates an empty footnote definition.
func NewFootnoteDefinition(identifier, label string) *FootnoteDefinition {
	return &FootnoteDefinition{Identifier: identifier, Label: label}
}

func (f *FootnoteDefinition) Kind() NodeKind   { return KindFootnoteDefinition }
func (f *FootnoteDefinition) Accept(v Visitor) { v.VisitFootnoteDefinition(f) }
func (f *FootnoteDefinition) flowContent()     {}

func (f *FootnoteDefinition) AppendChild(child Node) error {
	return appendChecked[FlowContent](&f.container, f, child)
}

// Table represents two-dimensional data. Its content model is table
// content; Align records how cells in each column are aligned.
type Table struct {
	container

	Align []AlignType
}

// NewTable creates an empty table with the given column alignments. The
// alignment row fixes the table's column count.
func NewTable(align []AlignType) *Table {
	return &Table{Align: align}
}

func (t *Table) Kind() NodeKind   { return KindTable }
func (t *Table) Accept(v Visitor) { v.VisitTable(t) }
func (t *Table) flowContent()     {}

func (t *Table) AppendChild(child Node) error {
	return appendChecked[TableContent](&t.container, t, child)
}

// TableRow represents a row of cells in a table. Its content model is row
// content.
type TableRow struct {
	container
}

// NewTableRow creates an empty table row.
func NewTableRow() *TableRow {
	return &TableRow{}
}

func (t *TableRow) Kind() NodeKind   { return KindTableRow }
func (t *TableRow) Accept(v Visitor) { v.VisitTableRow(t) }
func (t *TableRow) tableContent()    {}

func (t *TableRow) AppendChild(child Node) error {
	return appendChecked[RowContent](&t.container, t, child)
}

// TableCell represents a header or data cell in a table. Its content model
// is phrasing content.
type TableCell struct {
	container
}

// NewTableCell creates an empty table cell.
func NewTableCell() *TableCell {
	return &TableCell{}
}

func (t *TableCell) Kind() NodeKind   { return KindTableCell }
func (t *TableCell) Accept(v Visitor) { v.VisitTableCell(t) }
func (t *TableCell) rowContent()      {}

func (t *TableCell) AppendChild(child Node) error {
	return appendChecked[PhrasingContent](&t.container, t, child)
}

// Package mdast provides the typed Markdown syntax tree produced by the
// parser. It defines:
// - Node: the closed set of Markdown construct variants
// - Content-model capabilities: which kinds may nest inside which parents
// - Visitor dispatch and tree traversal helpers
// - Token stream types shared with the lexer
package mdast

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown constructs.
const (
	KindDocument NodeKind = iota

	// Block-level nodes.
	KindParagraph
	KindHeading
	KindThematicBreak
	KindBlockquote
	KindList
	KindListItem
	KindCode
	KindDefinition
	KindFootnoteDefinition
	KindTable
	KindTableRow
	KindTableCell

	// Inline-level nodes.
	KindText
	KindEmphasis
	KindStrong
	KindInlineCode
	KindBreak
	KindLink
	KindLinkReference
	KindImage
	KindImageReference
	KindDelete
	KindFootnoteReference
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindDocument:
		return "Document"
	case KindParagraph:
		return "Paragraph"
	case KindHeading:
		return "Heading"
	case KindThematicBreak:
		return "ThematicBreak"
	case KindBlockquote:
		return "Blockquote"
	case KindList:
		return "List"
	case KindListItem:
		return "ListItem"
	case KindCode:
		return "Code"
	case KindDefinition:
		return "Definition"
	case KindFootnoteDefinition:
		return "FootnoteDefinition"
	case KindTable:
		return "Table"
	case KindTableRow:
		return "TableRow"
	case KindTableCell:
		return "TableCell"
	case KindText:
		return "Text"
	case KindEmphasis:
		return "Emphasis"
	case KindStrong:
		return "Strong"
	case KindInlineCode:
		return "InlineCode"
	case KindBreak:
		return "Break"
	case KindLink:
		return "Link"
	case KindLinkReference:
		return "LinkReference"
	case KindImage:
		return "Image"
	case KindImageReference:
		return "ImageReference"
	case KindDelete:
		return "Delete"
	case KindFootnoteReference:
		return "FootnoteReference"
	default:
		return "Unknown"
	}
}

// Node is implemented by every variant in the tree.
type Node interface {
	// Kind identifies which construct this node represents.
	Kind() NodeKind

	// Accept dispatches to the matching Visitor callback.
	Accept(v Visitor)
}

// FlowContent marks block-level constructs: the sections of a document.
type FlowContent interface {
	Node
	flowContent()
}

// PhrasingContent marks inline constructs: the text of a document and its
// markup.
type PhrasingContent interface {
	Node
	phrasingContent()
}

// ListContent marks the items of a list. Only ListItem satisfies it.
type ListContent interface {
	Node
	listContent()
}

// TableContent marks the rows of a table. Only TableRow satisfies it.
type TableContent interface {
	Node
	tableContent()
}

// RowContent marks the cells of a table row. Only TableCell satisfies it.
type RowContent interface {
	Node
	rowContent()
}

// ReferenceType records how a reference link or image was written in the
// source. It must be preserved for round-trip fidelity.
type ReferenceType uint8

const (
	// ReferenceShortcut represents [label].
	ReferenceShortcut ReferenceType = iota

	// ReferenceCollapsed represents [label][].
	ReferenceCollapsed

	// ReferenceFull represents [text][label].
	ReferenceFull
)

// String returns a human-readable name for the reference type.
func (r ReferenceType) String() string {
	switch r {
	case ReferenceShortcut:
		return "shortcut"
	case ReferenceCollapsed:
		return "collapsed"
	case ReferenceFull:
		return "full"
	default:
		return "unknown"
	}
}

// AlignType records the per-column alignment of a table.
type AlignType uint8

const (
	// AlignNone means no explicit alignment was written.
	AlignNone AlignType = iota

	// AlignLeft represents a :--- delimiter cell.
	AlignLeft

	// AlignRight represents a ---: delimiter cell.
	AlignRight

	// AlignCenter represents a :---: delimiter cell.
	AlignCenter
)

// String returns a human-readable name for the alignment.
func (a AlignType) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "unknown"
	}
}

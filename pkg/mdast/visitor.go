package mdast

// Visitor receives one callback per node variant, dispatched by the node's
// own Accept method. Embed BaseVisitor to implement only the callbacks a
// consumer cares about.
type Visitor interface {
	VisitDocument(*Document)
	VisitParagraph(*Paragraph)
	VisitHeading(*Heading)
	VisitThematicBreak(*ThematicBreak)
	VisitBlockquote(*Blockquote)
	VisitList(*List)
	VisitListItem(*ListItem)
	VisitCode(*Code)
	VisitDefinition(*Definition)
	VisitFootnoteDefinition(*FootnoteDefinition)
	VisitTable(*Table)
	VisitTableRow(*TableRow)
	VisitTableCell(*TableCell)
	VisitText(*Text)
	VisitEmphasis(*Emphasis)
	VisitStrong(*Strong)
	VisitInlineCode(*InlineCode)
	VisitBreak(*Break)
	VisitLink(*Link)
	VisitLinkReference(*LinkReference)
	VisitImage(*Image)
	VisitImageReference(*ImageReference)
	VisitDelete(*Delete)
	VisitFootnoteReference(*FootnoteReference)
}

// BaseVisitor implements Visitor with no-op callbacks.
type BaseVisitor struct{}

var _ Visitor = (*BaseVisitor)(nil)

func (BaseVisitor) VisitDocument(*Document)                     {}
func (BaseVisitor) VisitParagraph(*Paragraph)                   {}
func (BaseVisitor) VisitHeading(*Heading)                       {}
func (BaseVisitor) VisitThematicBreak(*ThematicBreak)           {}
func (BaseVisitor) VisitBlockquote(*Blockquote)                 {}
func (BaseVisitor) VisitList(*List)                             {}
func (BaseVisitor) VisitListItem(*ListItem)                     {}
func (BaseVisitor) VisitCode(*Code)                             {}
func (BaseVisitor) VisitDefinition(*Definition)                 {}
func (BaseVisitor) VisitFootnoteDefinition(*FootnoteDefinition) {}
func (BaseVisitor) VisitTable(*Table)                           {}
func (BaseVisitor) VisitTableRow(*TableRow)                     {}
func (BaseVisitor) VisitTableCell(*TableCell)                   {}
func (BaseVisitor) VisitText(*Text)                             {}
func (BaseVisitor) VisitEmphasis(*Emphasis)                     {}
func (BaseVisitor) VisitStrong(*Strong)                         {}
func (BaseVisitor) VisitInlineCode(*InlineCode)                 {}
func (BaseVisitor) VisitBreak(*Break)                           {}
func (BaseVisitor) VisitLink(*Link)                             {}
func (BaseVisitor) VisitLinkReference(*LinkReference)           {}
func (BaseVisitor) VisitImage(*Image)                           {}
func (BaseVisitor) VisitImageReference(*ImageReference)         {}
func (BaseVisitor) VisitDelete(*Delete)                         {}
func (BaseVisitor) VisitFootnoteReference(*FootnoteReference)   {}

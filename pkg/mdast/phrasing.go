package mdast

// Text represents everything that is just text. Adjacent Text siblings are
// always coalesced by the parser: no two consecutive Text nodes exist in a
// parsed tree.
type Text struct {
	// Value is the text content with escapes decoded.
	Value string

	// Span is the byte range of the content in the block's source region.
	Span Range
}

// NewText creates a text literal.
func NewText(value string) *Text {
	return &Text{Value: value}
}

func (t *Text) Kind() NodeKind   { return KindText }
func (t *Text) Accept(v Visitor) { v.VisitText(t) }
func (t *Text) phrasingContent() {}

// Emphasis represents stress emphasis of its contents. Its content model
// is phrasing content.
type Emphasis struct {
	container
}

// NewEmphasis creates an empty emphasis span.
func NewEmphasis() *Emphasis {
	return &Emphasis{}
}

func (e *Emphasis) Kind() NodeKind   { return KindEmphasis }
func (e *Emphasis) Accept(v Visitor) { v.VisitEmphasis(e) }
func (e *Emphasis) phrasingContent() {}

func (e *Emphasis) AppendChild(child Node) error {
	return appendChecked[PhrasingContent](&e.container, e, child)
}

// Strong represents strong importance, seriousness, or urgency for its
// contents. Its content model is phrasing content.
type Strong struct {
	container
}

// NewStrong creates an empty strong span.
func NewStrong() *Strong {
	return &Strong{}
}

func (s *Strong) Kind() NodeKind   { return KindStrong }
func (s *Strong) Accept(v Visitor) { v.VisitStrong(s) }
func (s *Strong) phrasingContent() {}

func (s *Strong) AppendChild(child Node) error {
	return appendChecked[PhrasingContent](&s.container, s, child)
}

// InlineCode represents a fragment of computer code, such as a file name or
// anything a computer could parse. No nested markup exists inside it.
type InlineCode struct {
	// Value is the verbatim content between the backtick runs.
	Value string

	// Span is the byte range of the content in the block's source region.
	Span Range
}

// NewInlineCode creates an inline code literal.
func NewInlineCode(value string) *InlineCode {
	return &InlineCode{Value: value}
}

func (c *InlineCode) Kind() NodeKind   { return KindInlineCode }
func (c *InlineCode) Accept(v Visitor) { v.VisitInlineCode(c) }
func (c *InlineCode) phrasingContent() {}

// Break represents a hard line break inside a paragraph.
type Break struct{}

// NewBreak creates a hard line break.
func NewBreak() *Break {
	return &Break{}
}

func (b *Break) Kind() NodeKind   { return KindBreak }
func (b *Break) Accept(v Visitor) { v.VisitBreak(b) }
func (b *Break) phrasingContent() {}

// Link represents a hyperlink written inline. Its content model is
// phrasing content.
type Link struct {
	container

	URL string

	// Title is advisory information for the resource. Empty means absent.
	Title string
}

// NewLink creates an empty link to the given resource.
func NewLink(url, title string) *Link {
	return &Link{URL: url, Title: title}
}

func (l *Link) Kind() NodeKind   { return KindLink }
func (l *Link) Accept(v Visitor) { v.VisitLink(l) }
func (l *Link) phrasingContent() {}

func (l *Link) AppendChild(child Node) error {
	return appendChecked[PhrasingContent](&l.container, l, child)
}

// LinkReference represents a hyperlink through association with a
// Definition. The identifier is normalized; the label preserves the
// original source spelling. Its content model is phrasing content.
type LinkReference struct {
	container

	Identifier    string
	Label         string
	ReferenceType ReferenceType
}

// NewLinkReference creates an empty link reference.
func NewLinkReference(identifier, label string, refType ReferenceType) *LinkReference {
	return &LinkReference{Identifier: identifier, Label: label, ReferenceType: refType}
}

func (l *LinkReference) Kind() NodeKind   { return KindLinkReference }
func (l *LinkReference) Accept(v Visitor) { v.VisitLinkReference(l) }
func (l *LinkReference) phrasingContent() {}

func (l *LinkReference) AppendChild(child Node) error {
	return appendChecked[PhrasingContent](&l.container, l, child)
}

// Image represents an image written inline. It is a literal: the alt text
// is held directly rather than as children.
type Image struct {
	URL string

	// Title is advisory information for the resource. Empty means absent.
	Title string

	// Alt is equivalent content for environments that cannot represent the
	// image.
	Alt string
}

// NewImage creates an image literal.
func NewImage(url, title, alt string) *Image {
	return &Image{URL: url, Title: title, Alt: alt}
}

func (i *Image) Kind() NodeKind   { return KindImage }
func (i *Image) Accept(v Visitor) { v.VisitImage(i) }
func (i *Image) phrasingContent() {}

// ImageReference represents an image through association with a
// Definition.
type ImageReference struct {
	Identifier    string
	Label         string
	Alt           string
	ReferenceType ReferenceType
}

// NewImageReference creates an image reference literal.
func NewImageReference(identifier, label, alt string, refType ReferenceType) *ImageReference {
	return &ImageReference{Identifier: identifier, Label: label, Alt: alt, ReferenceType: refType}
}

func (i *ImageReference) Kind() NodeKind   { return KindImageReference }
func (i *ImageReference) Accept(v Visitor) { v.VisitImageReference(i) }
func (i *ImageReference) phrasingContent() {}

// Delete represents contents that are no longer accurate or no longer
// relevant. Its content model is phrasing content.
type Delete struct {
	container
}

// NewDelete creates an empty strikethrough span.
func NewDelete() *Delete {
	return &Delete{}
}

func (d *Delete) Kind() NodeKind   { return KindDelete }
func (d *Delete) Accept(v Visitor) { v.VisitDelete(d) }
func (d *Delete) phrasingContent() {}

func (d *Delete) AppendChild(child Node) error {
	return appendChecked[PhrasingContent](&d.container, d, child)
}

// FootnoteReference represents a marker through association with a
// FootnoteDefinition.
type FootnoteReference struct {
	Identifier string
	Label      string
}

// NewFootnoteReference creates a footnote reference.
func NewFootnoteReference(identifier, label string) *FootnoteReference {
	return &FootnoteReference{Identifier: identifier, Label: label}
}

func (f *FootnoteReference) Kind() NodeKind   { return KindFootnoteReference }
func (f *FootnoteReference) Accept(v Visitor) { v.VisitFootnoteReference(f) }
func (f *FootnoteReference) phrasingContent() {}

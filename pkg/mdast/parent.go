package mdast

// Parent is implemented by nodes that contain children. Children are an
// ordered sequence owned exclusively by the parent; AppendChild rejects any
// child whose content category the parent's model forbids, so a well-formed
// tree can never violate the content model.
type Parent interface {
	Node

	// AppendChild appends a child node. It returns a *ContentModelError if
	// the child's capability does not match this parent's content model.
	AppendChild(child Node) error

	// RemoveChildAt removes and returns the child at the given index.
	RemoveChildAt(index int) (Node, error)

	// Len returns the number of children.
	Len() int

	// Children returns the children in document order.
	Children() []Node
}

// container is the shared child storage embedded by parent-capable nodes.
type container struct {
	children []Node
}

func (c *container) Len() int {
	return len(c.children)
}

func (c *container) Children() []Node {
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

func (c *container) RemoveChildAt(index int) (Node, error) {
	if index < 0 || index >= len(c.children) {
		return nil, ErrIndexOutOfRange
	}
	child := c.children[index]
	c.children = append(c.children[:index], c.children[index+1:]...)
	return child, nil
}

// appendChecked appends child to c after verifying it satisfies the
// capability C required by parent's content model.
func appendChecked[C Node](c *container, parent Node, child Node) error {
	if child == nil {
		return ErrNilChild
	}
	if _, ok := child.(C); !ok {
		return &ContentModelError{ParentKind: parent.Kind(), ChildKind: child.Kind()}
	}
	c.children = append(c.children, child)
	return nil
}

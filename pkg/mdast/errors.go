package mdast

import (
	"errors"
	"fmt"
)

// ErrNilChild is returned when a nil node is appended to a parent.
var ErrNilChild = errors.New("mdast: nil child")

// ErrIndexOutOfRange is returned by RemoveChildAt for an invalid index.
var ErrIndexOutOfRange = errors.New("mdast: child index out of range")

// ContentModelError reports an attempt to append a child whose content
// category the parent's model forbids. Given correct grammar logic this is
// unreachable from real input; if it surfaces it indicates a parser bug.
type ContentModelError struct {
	ParentKind NodeKind
	ChildKind  NodeKind
}

func (e *ContentModelError) Error() string {
	return fmt.Sprintf("mdast: %s cannot contain %s", e.ParentKind, e.ChildKind)
}

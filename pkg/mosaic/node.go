package mosaic

import "fmt"

// Direction selects how a [Parent] arranges its children.
// A Row places First left of Second; a Column places First above Second.
type Direction string

const (
	// Row splits a parent horizontally: First on the left, Second on the right.
	Row Direction = "row"
	// Column splits a parent vertically: First on top, Second below.
	Column Direction = "column"
)

// Other returns the perpendicular direction.
func (d Direction) Other() Direction {
	if d == Row {
		return Column
	}
	return Row
}

// Valid reports whether d is Row or Column.
func (d Direction) Valid() bool { return d == Row || d == Column }

// ParseDirection converts "row" or "column" into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("invalid direction %q: want %q or %q", s, Row, Column)
	}
	return d, nil
}

// Node is a vertex of the split tree: either a [Leaf] or a [Parent].
// The set of implementations is closed; callers switch on the two variants:
//
//	switch n := node.(type) {
//	case mosaic.Leaf:
//	case mosaic.Parent:
//	}
//
// A nil Node is the empty tree.
type Node interface {
	isNode()
}

// Leaf names a single pane. Leaves are compared by identifier.
type Leaf string

func (Leaf) isNode() {}

// Parent splits its area between two exclusively owned subtrees.
//
// SplitPercentage is the share of space (0-100) given to First. A nil
// SplitPercentage means the default even split. 0 and 100 collapse one side
// without removing it from the tree.
type Parent struct {
	Direction       Direction
	First           Node
	Second          Node
	SplitPercentage *float64
}

func (Parent) isNode() {}

// Child returns the subtree on branch b, or nil for an unknown branch.
func (p Parent) Child(b Branch) Node {
	switch b {
	case First:
		return p.First
	case Second:
		return p.Second
	}
	return nil
}

// Split returns the effective split percentage, defaulting to 50.
func (p Parent) Split() float64 {
	if p.SplitPercentage == nil {
		return DefaultSplitPercentage
	}
	return *p.SplitPercentage
}

// withChild returns a copy of p with the subtree on branch b replaced.
func (p Parent) withChild(b Branch, n Node) Parent {
	if b == First {
		p.First = n
	} else {
		p.Second = n
	}
	return p
}

// DefaultSplitPercentage is the split applied when a parent has none.
const DefaultSplitPercentage = 50.0

// Percent returns a pointer to v for use as [Parent.SplitPercentage].
func Percent(v float64) *float64 { return &v }

// IsParent reports whether node is a [Parent].
func IsParent(node Node) bool {
	_, ok := node.(Parent)
	return ok
}

// Equal reports whether a and b describe the same tree, including split
// percentages.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x == y
	case Parent:
		y, ok := b.(Parent)
		if !ok || x.Direction != y.Direction {
			return false
		}
		if (x.SplitPercentage == nil) != (y.SplitPercentage == nil) {
			return false
		}
		if x.SplitPercentage != nil && *x.SplitPercentage != *y.SplitPercentage {
			return false
		}
		return Equal(x.First, y.First) && Equal(x.Second, y.Second)
	}
	return false
}

// SameShape reports whether a and b have identical structure and leaves,
// ignoring split percentages.
func SameShape(a, b Node) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x == y
	case Parent:
		y, ok := b.(Parent)
		return ok && x.Direction == y.Direction && SameShape(x.First, y.First) && SameShape(x.Second, y.Second)
	}
	return false
}

package mosaic

import "iter"

// Corner identifies one of the four corners of the layout rectangle.
type Corner int

const (
	TopLeft Corner = iota + 1
	TopRight
	BottomLeft
	BottomRight
)

var cornerNames = map[Corner]string{
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomLeft:  "bottom-left",
	BottomRight: "bottom-right",
}

func (c Corner) String() string {
	if s, ok := cornerNames[c]; ok {
		return s
	}
	return "unknown"
}

// ParseCorner converts names such as "top-right" into a Corner.
func ParseCorner(s string) (Corner, bool) {
	for c, name := range cornerNames {
		if name == s {
			return c, true
		}
	}
	return 0, false
}

func (c Corner) left() bool { return c == TopLeft || c == BottomLeft }
func (c Corner) top() bool  { return c == TopLeft || c == TopRight }

// Leaves yields the leaves of tree left to right (depth first, First before
// Second). A nil tree yields nothing.
func Leaves(tree Node) iter.Seq[Leaf] {
	return func(yield func(Leaf) bool) {
		walkLeaves(tree, yield)
	}
}

func walkLeaves(n Node, yield func(Leaf) bool) bool {
	switch n := n.(type) {
	case Leaf:
		return yield(n)
	case Parent:
		return walkLeaves(n.First, yield) && walkLeaves(n.Second, yield)
	}
	return true
}

// PathToCorner descends from the root toward corner, taking at each parent
// the child nearest to it, and returns the path of the leaf it reaches.
// New panes are conventionally inserted at [TopRight].
func PathToCorner(tree Node, corner Corner) Path {
	path := Path{}
	node := tree
	for {
		p, ok := node.(Parent)
		if !ok {
			return path
		}
		switch {
		case p.Direction == Row && corner.left(), p.Direction == Column && corner.top():
			path = append(path, First)
			node = p.First
		default:
			path = append(path, Second)
			node = p.Second
		}
	}
}

// Depth returns the length of the longest root-to-leaf path.
// A leaf or nil tree has depth 0.
func Depth(tree Node) int {
	p, ok := tree.(Parent)
	if !ok {
		return 0
	}
	return 1 + max(Depth(p.First), Depth(p.Second))
}

// LeafDepths maps every leaf to its distance from the root.
func LeafDepths(tree Node) map[Leaf]int {
	out := make(map[Leaf]int)
	var walk func(Node, int)
	walk = func(n Node, d int) {
		switch n := n.(type) {
		case Leaf:
			out[n] = d
		case Parent:
			walk(n.First, d+1)
			walk(n.Second, d+1)
		}
	}
	walk(tree, 0)
	return out
}

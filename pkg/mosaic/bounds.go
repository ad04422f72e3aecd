package mosaic

// Box is a rectangle in percentages of the full layout, measured as offsets
// from each edge, so the whole surface is Box{0, 0, 0, 0}.
type Box struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Width returns the horizontal share of the layout covered by b.
func (b Box) Width() float64 { return 100 - b.Left - b.Right }

// Height returns the vertical share of the layout covered by b.
func (b Box) Height() float64 { return 100 - b.Top - b.Bottom }

// split divides b at percentage along direction.
func (b Box) split(percentage float64, d Direction) (first, second Box) {
	first, second = b, b
	if d == Row {
		edge := b.Left + b.Width()*percentage/100
		first.Right = 100 - edge
		second.Left = edge
	} else {
		edge := b.Top + b.Height()*percentage/100
		first.Bottom = 100 - edge
		second.Top = edge
	}
	return first, second
}

// LeafBox pairs a leaf with its path and the area it occupies.
type LeafBox struct {
	Leaf Leaf `json:"leaf"`
	Path Path `json:"path"`
	Box  Box  `json:"box"`
}

// Boxes returns the area of every leaf in tree, in [Leaves] order.
// Collapsed leaves (behind a 0 or 100 split) get a zero-sized box.
func Boxes(tree Node) []LeafBox {
	var out []LeafBox
	var walk func(Node, Path, Box)
	walk = func(n Node, path Path, box Box) {
		switch n := n.(type) {
		case Leaf:
			out = append(out, LeafBox{Leaf: n, Path: path, Box: box})
		case Parent:
			first, second := box.split(n.Split(), n.Direction)
			walk(n.First, path.Append(First), first)
			walk(n.Second, path.Append(Second), second)
		}
	}
	walk(tree, Path{}, Box{})
	return out
}

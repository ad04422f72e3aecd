package mosaic_test

import "github.com/matzehuels/mosaic/pkg/mosaic"

func row(first, second mosaic.Node) mosaic.Parent {
	return mosaic.Parent{Direction: mosaic.Row, First: first, Second: second}
}

func col(first, second mosaic.Node) mosaic.Parent {
	return mosaic.Parent{Direction: mosaic.Column, First: first, Second: second}
}

func withSplit(p mosaic.Parent, split float64) mosaic.Parent {
	p.SplitPercentage = mosaic.Percent(split)
	return p
}

func path(bs ...mosaic.Branch) mosaic.Path {
	return mosaic.Path(append([]mosaic.Branch{}, bs...))
}

const (
	F = mosaic.First
	S = mosaic.Second
)

func apply(t interface {
	Helper()
	Fatalf(string, ...any)
}, tree mosaic.Node, updates ...mosaic.Update) mosaic.Node {
	t.Helper()
	out, err := mosaic.ApplyUpdates(tree, updates)
	if err != nil {
		t.Fatalf("ApplyUpdates: %v", err)
	}
	return out
}

func leafList(tree mosaic.Node) []mosaic.Leaf {
	var out []mosaic.Leaf
	for l := range mosaic.Leaves(tree) {
		out = append(out, l)
	}
	return out
}

const (
	a mosaic.Leaf = "a"
	b mosaic.Leaf = "b"
	c mosaic.Leaf = "c"
	d mosaic.Leaf = "d"
	x mosaic.Leaf = "x"
)

package mosaic_test

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

func makeLeaves(n int) []mosaic.Leaf {
	out := make([]mosaic.Leaf, n)
	for i := range out {
		out[i] = mosaic.Leaf(fmt.Sprintf("pane-%02d", i))
	}
	return out
}

func TestBuildBalancedEmpty(t *testing.T) {
	assert.Nil(t, mosaic.BuildBalanced(nil, mosaic.Row))
	assert.Nil(t, mosaic.BuildBalanced([]mosaic.Leaf{}, mosaic.Column))
}

func TestBuildBalancedSingleLeaf(t *testing.T) {
	got := mosaic.BuildBalanced([]mosaic.Leaf{x}, mosaic.Column)
	assert.Equal(t, mosaic.Node(x), got)
}

func TestBuildBalancedShapes(t *testing.T) {
	tests := []struct {
		name   string
		leaves []mosaic.Leaf
		start  mosaic.Direction
		want   mosaic.Node
	}{
		{"two", []mosaic.Leaf{a, b}, mosaic.Row, row(a, b)},
		{"three", []mosaic.Leaf{a, b, c}, mosaic.Row, row(col(a, b), c)},
		{"four column first", []mosaic.Leaf{a, b, c, d}, mosaic.Column, col(row(a, b), row(c, d))},
		{"five", []mosaic.Leaf{a, b, c, d, x}, mosaic.Row, row(col(row(a, b), c), col(d, x))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mosaic.BuildBalanced(tt.leaves, tt.start)
			assert.True(t, mosaic.Equal(tt.want, got), "got %#v", got)
		})
	}
}

func TestBuildBalancedPreservesOrder(t *testing.T) {
	for n := 1; n <= 33; n++ {
		leaves := makeLeaves(n)
		tree := mosaic.BuildBalanced(leaves, mosaic.Row)
		assert.Equal(t, leaves, leafList(tree), "n=%d", n)
	}
}

func TestBuildBalancedDepth(t *testing.T) {
	for n := 2; n <= 64; n++ {
		tree := mosaic.BuildBalanced(makeLeaves(n), mosaic.Row)
		lo := int(math.Floor(math.Log2(float64(n))))
		hi := int(math.Ceil(math.Log2(float64(n))))

		depths := mosaic.LeafDepths(tree)
		require.Len(t, depths, n)
		for leaf, depth := range depths {
			assert.GreaterOrEqual(t, depth, lo, "n=%d leaf=%s", n, leaf)
			assert.LessOrEqual(t, depth, hi, "n=%d leaf=%s", n, leaf)
		}
		assert.Equal(t, hi, mosaic.Depth(tree), "n=%d", n)
	}
}

func TestBuildBalancedAlternatesDirection(t *testing.T) {
	tree := mosaic.BuildBalanced(makeLeaves(16), mosaic.Column)

	var check func(node mosaic.Node, want mosaic.Direction)
	check = func(node mosaic.Node, want mosaic.Direction) {
		p, ok := node.(mosaic.Parent)
		if !ok {
			return
		}
		assert.Equal(t, want, p.Direction)
		assert.Nil(t, p.SplitPercentage)
		check(p.First, want.Other())
		check(p.Second, want.Other())
	}
	check(tree, mosaic.Column)
}

func TestAlternateDirection(t *testing.T) {
	in := withSplit(col(col(a, b), c), 30)
	got := mosaic.AlternateDirection(in, mosaic.Row)

	assert.True(t, mosaic.Equal(row(col(a, b), c), got))
	assert.True(t, mosaic.Equal(withSplit(col(col(a, b), c), 30), in), "input must not change")
	assert.Equal(t, mosaic.Node(a), mosaic.AlternateDirection(a, mosaic.Column))
}

func TestBuildBalancedDoesNotRetainInput(t *testing.T) {
	leaves := []mosaic.Leaf{a, b, c}
	tree := mosaic.BuildBalanced(leaves, mosaic.Row)
	leaves[0] = x
	assert.True(t, slices.Equal([]mosaic.Leaf{a, b, c}, leafList(tree)))
}

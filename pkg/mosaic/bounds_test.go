package mosaic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

func TestBoxes(t *testing.T) {
	tree := withSplit(row(a, col(b, c)), 25)

	got := mosaic.Boxes(tree)
	require.Len(t, got, 3)

	want := []mosaic.LeafBox{
		{Leaf: a, Path: path(F), Box: mosaic.Box{Top: 0, Right: 75, Bottom: 0, Left: 0}},
		{Leaf: b, Path: path(S, F), Box: mosaic.Box{Top: 0, Right: 0, Bottom: 50, Left: 25}},
		{Leaf: c, Path: path(S, S), Box: mosaic.Box{Top: 50, Right: 0, Bottom: 0, Left: 25}},
	}
	for i := range want {
		assert.Equal(t, want[i].Leaf, got[i].Leaf)
		assert.True(t, want[i].Path.Equal(got[i].Path), "path of %s = %s", got[i].Leaf, got[i].Path)
		assert.Equal(t, want[i].Box, got[i].Box)
	}
}

func TestBoxesCoverLayout(t *testing.T) {
	tree := mosaic.BuildBalanced(makeLeaves(11), mosaic.Column)

	var area float64
	for _, lb := range mosaic.Boxes(tree) {
		area += lb.Box.Width() * lb.Box.Height()
	}
	assert.InDelta(t, 100*100, area, 1e-6)
}

func TestBoxesHidden(t *testing.T) {
	got := mosaic.Boxes(withSplit(row(a, b), 0))
	require.Len(t, got, 2)
	assert.Zero(t, got[0].Box.Width())
	assert.Equal(t, 100.0, got[1].Box.Width())
}

func TestBoxesSingleLeaf(t *testing.T) {
	got := mosaic.Boxes(a)
	require.Len(t, got, 1)
	assert.Equal(t, mosaic.Box{}, got[0].Box)
	assert.True(t, got[0].Path.IsRoot())

	assert.Empty(t, mosaic.Boxes(nil))
}

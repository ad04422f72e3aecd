package mosaic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

func TestIsParent(t *testing.T) {
	assert.True(t, mosaic.IsParent(row(a, b)))
	assert.False(t, mosaic.IsParent(mosaic.Leaf("a")))
	assert.False(t, mosaic.IsParent(nil))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, mosaic.Column, mosaic.Row.Other())
	assert.Equal(t, mosaic.Row, mosaic.Column.Other())

	d, err := mosaic.ParseDirection("column")
	require.NoError(t, err)
	assert.Equal(t, mosaic.Column, d)

	_, err = mosaic.ParseDirection("diagonal")
	assert.Error(t, err)
}

func TestParentSplit(t *testing.T) {
	assert.Equal(t, 50.0, row(a, b).Split())
	assert.Equal(t, 0.0, withSplit(row(a, b), 0).Split())
	assert.Nil(t, row(a, b).Child(mosaic.Branch("third")))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name      string
		a, b      mosaic.Node
		equal     bool
		sameShape bool
	}{
		{"both empty", nil, nil, true, true},
		{"leaves", mosaic.Leaf("a"), mosaic.Leaf("a"), true, true},
		{"different leaves", mosaic.Leaf("a"), mosaic.Leaf("b"), false, false},
		{"leaf vs parent", mosaic.Leaf("a"), row(a, b), false, false},
		{"same parents", row(a, col(b, c)), row(a, col(b, c)), true, true},
		{"direction differs", row(a, b), col(a, b), false, false},
		{"split differs", withSplit(row(a, b), 30), row(a, b), false, true},
		{"split values differ", withSplit(row(a, b), 30), withSplit(row(a, b), 40), false, true},
		{"child differs", row(a, col(b, c)), row(a, col(c, b)), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, mosaic.Equal(tt.a, tt.b))
			assert.Equal(t, tt.sameShape, mosaic.SameShape(tt.a, tt.b))
		})
	}
}

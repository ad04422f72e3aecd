package mosaic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

func TestApplyUpdatesReplace(t *testing.T) {
	tree := row(a, col(b, c))

	got := apply(t, tree, mosaic.Update{Path: path(S, F), Spec: mosaic.Replace{Node: x}})
	assert.True(t, mosaic.Equal(row(a, col(x, c)), got))

	got = apply(t, tree, mosaic.Update{Path: path(), Spec: mosaic.Replace{Node: d}})
	assert.Equal(t, mosaic.Node(d), got)
}

func TestApplyUpdatesMerge(t *testing.T) {
	tree := row(a, col(b, c))
	dir := mosaic.Row

	got := apply(t, tree, mosaic.Update{
		Path: path(S),
		Spec: mosaic.Merge{Direction: &dir, SplitPercentage: mosaic.Percent(25)},
	})
	assert.True(t, mosaic.Equal(row(a, withSplit(row(b, c), 25)), got))
}

func TestApplyUpdatesNestedMerge(t *testing.T) {
	tree := row(a, col(b, c))

	got := apply(t, tree, mosaic.Update{
		Path: path(),
		Spec: mosaic.Merge{
			SplitPercentage: mosaic.Percent(10),
			Second: mosaic.Merge{
				SplitPercentage: mosaic.Percent(90),
				First:           mosaic.Replace{Node: x},
			},
		},
	})
	assert.True(t, mosaic.Equal(withSplit(row(a, withSplit(col(x, c), 90)), 10), got))
}

func TestApplyUpdatesIsSequential(t *testing.T) {
	tree := row(a, b)

	// The second update addresses a node that only exists after the first.
	got := apply(t, tree,
		mosaic.Update{Path: path(S), Spec: mosaic.Replace{Node: col(b, c)}},
		mosaic.Update{Path: path(S, S), Spec: mosaic.Replace{Node: row(c, d)}},
	)
	assert.True(t, mosaic.Equal(row(a, col(b, row(c, d))), got))
}

func TestApplyUpdatesDoesNotMutateInput(t *testing.T) {
	tree := withSplit(row(a, col(b, c)), 40)
	before := withSplit(row(a, col(b, c)), 40)

	_ = apply(t, tree,
		mosaic.ExpandUpdate(path(S, F), 80),
		mosaic.Update{Path: path(S, S), Spec: mosaic.Replace{Node: x}},
	)
	assert.True(t, mosaic.Equal(before, tree))
}

func TestApplyUpdatesEmptyBatch(t *testing.T) {
	tree := row(a, b)
	got, err := mosaic.ApplyUpdates(tree, nil)
	require.NoError(t, err)
	assert.True(t, mosaic.Equal(tree, got))
}

func TestApplyUpdatesEmptyTree(t *testing.T) {
	got, err := mosaic.ApplyUpdates(nil, []mosaic.Update{{Path: path(), Spec: mosaic.Replace{Node: a}}})
	require.NoError(t, err)
	assert.Equal(t, mosaic.Node(a), got)

	_, err = mosaic.ApplyUpdates(nil, []mosaic.Update{{Path: path(F), Spec: mosaic.Replace{Node: a}}})
	assert.True(t, errors.Is(err, mosaic.ErrEmptyRoot))

	_, err = mosaic.ApplyUpdates(nil, []mosaic.Update{{Path: path(), Spec: mosaic.Merge{SplitPercentage: mosaic.Percent(10)}}})
	assert.True(t, errors.Is(err, mosaic.ErrEmptyRoot))
}

func TestApplyUpdatesInvalidPath(t *testing.T) {
	tree := row(a, col(b, c))

	tests := []struct {
		name   string
		update mosaic.Update
		want   mosaic.Path
	}{
		{
			name:   "replace below a leaf",
			update: mosaic.Update{Path: path(F, S), Spec: mosaic.Replace{Node: x}},
			want:   path(F, S),
		},
		{
			name:   "merge into a leaf",
			update: mosaic.Update{Path: path(S, S), Spec: mosaic.Merge{SplitPercentage: mosaic.Percent(5)}},
			want:   path(S, S),
		},
		{
			name:   "walk through a leaf",
			update: mosaic.Update{Path: path(F, F, F), Spec: mosaic.Replace{Node: x}},
			want:   path(F, F),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mosaic.ApplyUpdates(tree, []mosaic.Update{tt.update})
			assert.Nil(t, got)
			var nf *mosaic.PathNotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, tt.want, nf.Path)
		})
	}
}

func TestApplyUpdatesAllOrNothing(t *testing.T) {
	tree := row(a, b)
	got, err := mosaic.ApplyUpdates(tree, []mosaic.Update{
		{Path: path(F), Spec: mosaic.Replace{Node: x}},
		{Path: path(S, S), Spec: mosaic.Replace{Node: c}},
	})
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, mosaic.Equal(row(a, b), tree))
}

func TestUpdateNest(t *testing.T) {
	u := mosaic.Update{Path: path(S, F), Spec: mosaic.Replace{Node: x}}
	want := mosaic.Merge{Second: mosaic.Merge{First: mosaic.Replace{Node: x}}}
	assert.Equal(t, mosaic.Spec(want), u.Nest())

	root := mosaic.Update{Path: path(), Spec: mosaic.Replace{Node: x}}
	assert.Equal(t, mosaic.Spec(mosaic.Replace{Node: x}), root.Nest())
}

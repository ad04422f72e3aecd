// Package ids generates pane keys and workspace identifiers.
package ids

import (
	"github.com/google/uuid"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// NewLeaf returns a fresh random pane key.
func NewLeaf() mosaic.Leaf {
	return mosaic.Leaf(uuid.New().String())
}

// NewLeaves returns n fresh pane keys.
func NewLeaves(n int) []mosaic.Leaf {
	if n <= 0 {
		return nil
	}
	out := make([]mosaic.Leaf, n)
	for i := range out {
		out[i] = NewLeaf()
	}
	return out
}

// NewWorkspace returns a short workspace identifier for logs and hooks.
func NewWorkspace() string {
	return "ws-" + uuid.New().String()[:8]
}

// IsGenerated reports whether key was produced by [NewLeaf].
func IsGenerated(key mosaic.Leaf) bool {
	_, err := uuid.Parse(string(key))
	return err == nil
}

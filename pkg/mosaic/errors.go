package mosaic

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRoot is returned when a non-root path is resolved against an
	// empty tree.
	ErrEmptyRoot = errors.New("root is empty, cannot fetch path")

	// ErrRootPath is returned by operations that act on a node's parent
	// ([RemoveUpdate], [HideUpdate]) when given the root path.
	ErrRootPath = errors.New("operation requires a non-root path")

	// ErrInvalidDrop is returned by [DragToUpdates] when the destination is
	// the dragged node itself or lies inside it.
	ErrInvalidDrop = errors.New("destination lies inside the dragged subtree")
)

// PathNotFoundError reports a path that does not resolve against a tree.
type PathNotFoundError struct {
	Path Path
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path [%s] did not resolve to a node", e.Path.join(", "))
}

// InvalidBranchError reports a branch selector other than first or second.
type InvalidBranchError struct {
	Branch Branch
}

func (e *InvalidBranchError) Error() string {
	return fmt.Sprintf("branch %q not a valid branch", string(e.Branch))
}

// Package mosaic provides the split-tree layout model behind a tiling panel
// manager, together with the algorithms that build, query and transform it.
//
// # Overview
//
// A layout is a binary tree. Each [Leaf] names a pane; each [Parent] divides
// its rectangle between two subtrees, side by side ([Row]) or stacked
// ([Column]), giving [Parent.SplitPercentage] of the space to First:
//
//	tree := mosaic.Parent{
//	    Direction: mosaic.Row,
//	    First:     mosaic.Leaf("editor"),
//	    Second: mosaic.Parent{
//	        Direction: mosaic.Column,
//	        First:     mosaic.Leaf("preview"),
//	        Second:    mosaic.Leaf("terminal"),
//	    },
//	    SplitPercentage: mosaic.Percent(60),
//	}
//
// Trees are values. No function in this package mutates a tree; every
// transformation returns a new one, so callers can keep old versions and
// share trees across goroutines freely.
//
// # Addressing
//
// A [Path] is a sequence of [First]/[Second] branches from the root. Use
// [Resolve] for a lenient lookup and [ResolveStrict] when a definite node is
// required. Paths have a dotted text form ("second.first") read by
// [ParsePath].
//
// # Updates
//
// Edits are expressed as data. An [Update] pairs a path with a [Spec]:
// [Replace] swaps the addressed subtree, [Merge] rewrites selected fields and
// may recurse into children. [ApplyUpdates] runs a batch in order and either
// returns the final tree or fails without a partial result.
//
// # Structural Operations
//
// The operation helpers compute updates without applying them:
//
//   - [InsertUpdate]: add a pane beside the top-right leaf
//   - [RemoveUpdate]: collapse a node's parent into its sibling
//   - [HideUpdate]: shrink a node to zero size while keeping it in the tree
//   - [ExpandUpdate]: grow a node by rewriting every ancestor split
//   - [DragToUpdates]: move a subtree next to another one
//
// A typical caller computes the updates, feeds them to [ApplyUpdates], and
// stores the result as its new tree:
//
//	updates, err := mosaic.DragToUpdates(tree, src, dst, mosaic.Right)
//	if err != nil {
//	    return err
//	}
//	tree, err = mosaic.ApplyUpdates(tree, updates)
//
// # Errors
//
// Stale or malformed paths are reported as [ErrEmptyRoot],
// [*PathNotFoundError] or [*InvalidBranchError]. They indicate that the
// caller's path no longer matches its tree and are never retried here.
package mosaic

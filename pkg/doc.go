// Package pkg provides the libraries behind mosaic, a split-tree layout engine
// for tiling panel managers.
//
// # Overview
//
// A mosaic layout is a binary tree: leaves are pane keys, parents split their
// area between two children along a row or a column. The pkg directory is
// organized into three areas:
//
//  1. [mosaic] - The tree model and every pure transform on it
//  2. [io], [render/splittree], [cache] - Serialization, diagrams and the render cache
//  3. [workspace], [api] - Stateful and networked front ends
//
// # Architecture
//
// The typical data flow:
//
//	layout.json / HTTP request
//	         ↓
//	    [io] package (decode tree and updates)
//	         ↓
//	    [mosaic] package (build, query, compute updates, apply)
//	         ↓
//	    [workspace] package (optional: hold the current root, notify callers)
//	         ↓
//	    JSON / YAML / TOML / DOT / SVG output
//
// # Quick Start
//
//	tree := mosaic.BuildBalanced([]mosaic.Leaf{"editor", "terminal", "preview"}, mosaic.Row)
//	u, _ := mosaic.RemoveUpdate(tree, mosaic.Path{mosaic.First, mosaic.Second})
//	tree, _ = mosaic.ApplyUpdates(tree, []mosaic.Update{u})
//	_ = io.WriteTree(os.Stdout, tree, io.FormatJSON)
//
// # Main Packages
//
// [mosaic] - Nodes, paths, the balanced builder, traversal queries, the
// update engine and the structural operations (insert, remove, hide,
// expand, drag).
//
// [io] - JSON, YAML and TOML codecs for trees and update batches.
//
// [render/splittree] - Graphviz DOT, SVG and PNG diagrams of a tree.
//
// [workspace] - A mutex-guarded current root with change and release
// callbacks.
//
// [api] - A stateless HTTP service exposing the transforms as JSON endpoints.
//
// [errors] - Structured error codes shared by the CLI and the service.
//
// [observability] - Optional hooks for workspace and HTTP events.
//
// [ids] - Generated pane keys.
//
// [buildinfo] - Version information set at link time.
//
// [mosaic]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/mosaic
// [io]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/io
// [render/splittree]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/render/splittree
// [workspace]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/workspace
// [api]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/api
// [errors]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/observability
// [ids]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/ids
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mosaic/pkg/buildinfo
package pkg

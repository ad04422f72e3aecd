// Package splittree draws the structure of a split tree as a Graphviz diagram.
//
// Parents are rendered as ellipses labelled with their direction and split,
// leaves as boxes labelled with their key. Edges are labelled with the branch
// they follow, so every node's path can be read off the diagram:
//
//	dot := splittree.ToDOT(tree, splittree.Options{ShowPaths: true})
//	svg, err := splittree.RenderSVG(ctx, dot)
//
// Collapsed children (behind a 0 or 100 split) are drawn dashed.
package splittree

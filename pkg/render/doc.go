// Package render groups the diagram renderers for mosaic layouts.
//
// The [splittree] subpackage draws a layout's binary split tree with
// Graphviz: parents as ellipses labelled with direction and split, leaves as
// boxes. It produces DOT text in pure Go and renders SVG or PNG in-process
// through the WebAssembly build of Graphviz.
//
//	dot := splittree.ToDOT(tree, splittree.Options{ShowPaths: true})
//	svg, err := splittree.RenderSVG(ctx, dot)
//
// Rendered output is cached by the CLI through [github.com/matzehuels/mosaic/pkg/cache].
package render

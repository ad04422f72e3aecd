package splittree

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// Options configures diagram output.
type Options struct {
	// ShowPaths adds each leaf's dotted path under its key.
	ShowPaths bool
}

// ToDOT converts tree to Graphviz DOT. An empty tree yields a graph with a
// single "empty" placeholder node.
func ToDOT(tree mosaic.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph SplitTree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"Helvetica\", fontsize=14];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=10, arrowhead=none];\n")
	buf.WriteString("\n")

	if tree == nil {
		buf.WriteString("  \"empty\" [shape=plaintext, label=\"(empty)\"];\n")
		buf.WriteString("}\n")
		return buf.String()
	}

	writeNode(&buf, tree, mosaic.Path{}, false, opts)
	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, n mosaic.Node, path mosaic.Path, collapsed bool, opts Options) {
	id := path.String()
	style := "filled"
	if collapsed {
		style = "filled,dashed"
	}

	switch n := n.(type) {
	case mosaic.Leaf:
		label := string(n)
		if opts.ShowPaths {
			label += "\n" + id
		}
		fmt.Fprintf(buf, "  %q [shape=box, style=%q, fillcolor=white, label=%q];\n", id, "rounded,"+style, label)
	case mosaic.Parent:
		label := fmt.Sprintf("%s %s%%", n.Direction, formatPercent(n.Split()))
		fmt.Fprintf(buf, "  %q [shape=ellipse, style=%q, fillcolor=lightgrey, label=%q];\n", id, style, label)
		for _, b := range []mosaic.Branch{mosaic.First, mosaic.Second} {
			child := path.Append(b)
			hidden := collapsed || isCollapsed(n, b)
			fmt.Fprintf(buf, "  %q -> %q [label=%q];\n", id, child.String(), string(b))
			writeNode(buf, n.Child(b), child, hidden, opts)
		}
	}
}

func isCollapsed(p mosaic.Parent, b mosaic.Branch) bool {
	split := p.Split()
	if b == mosaic.First {
		return split == 0
	}
	return split == 100
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// Format names accepted by [Render].
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Render produces tree as DOT, SVG or PNG.
func Render(ctx context.Context, tree mosaic.Node, format string, opts Options) ([]byte, error) {
	dot := ToDOT(tree, opts)
	switch strings.ToLower(format) {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return RenderSVG(ctx, dot)
	case FormatPNG:
		return RenderPNG(ctx, dot)
	}
	return nil, fmt.Errorf("unsupported diagram format %q", format)
}

package splittree

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/mosaic/pkg/mosaic"
)

func sampleTree() mosaic.Node {
	return mosaic.Parent{
		Direction:       mosaic.Row,
		First:           mosaic.Leaf("editor"),
		SplitPercentage: mosaic.Percent(0),
		Second: mosaic.Parent{
			Direction: mosaic.Column,
			First:     mosaic.Leaf("terminal"),
			Second:    mosaic.Leaf("preview"),
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{})

	if !strings.HasPrefix(dot, "digraph SplitTree {") {
		t.Error("ToDOT() should start with 'digraph SplitTree {'")
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("ToDOT() should end with '}'")
	}

	expected := []string{
		`"." [shape=ellipse`,
		`label="row 0%"`,
		`label="column 50%"`,
		`"." -> "first" [label="first"]`,
		`"second" -> "second.second" [label="second"]`,
		`label="editor"`,
		`"first" [shape=box, style="rounded,filled,dashed"`,
		`"second.first" [shape=box, style="rounded,filled",`,
	}
	for _, exp := range expected {
		if !strings.Contains(dot, exp) {
			t.Errorf("ToDOT() missing %q\n%s", exp, dot)
		}
	}
}

func TestToDOTShowPaths(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{ShowPaths: true})
	if !strings.Contains(dot, `label="preview\nsecond.second"`) {
		t.Errorf("ToDOT() should include leaf paths\n%s", dot)
	}
}

func TestToDOTEmptyAndLeaf(t *testing.T) {
	if dot := ToDOT(nil, Options{}); !strings.Contains(dot, "(empty)") {
		t.Error("ToDOT(nil) should draw a placeholder")
	}

	dot := ToDOT(mosaic.Leaf("solo"), Options{})
	if !strings.Contains(dot, `"." [shape=box`) || strings.Contains(dot, "->") {
		t.Errorf("ToDOT(leaf) = %s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := Render(context.Background(), sampleTree(), FormatSVG, Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("Render(svg) should produce an svg document")
	}
	if !bytes.Contains(svg, []byte("terminal")) {
		t.Error("Render(svg) should contain leaf labels")
	}
}

func TestRenderFormats(t *testing.T) {
	out, err := Render(context.Background(), mosaic.Leaf("a"), FormatDOT, Options{})
	if err != nil {
		t.Fatalf("Render(dot) error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("digraph")) {
		t.Errorf("Render(dot) = %s", out)
	}

	if _, err := Render(context.Background(), mosaic.Leaf("a"), "gif", Options{}); err == nil {
		t.Error("Render(gif) should fail")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); !bytes.Equal(got, plain) {
		t.Errorf("normalizeViewBox() changed svg without viewBox: %s", got)
	}
}

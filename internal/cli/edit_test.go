package cli

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/workspace"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m editModel, keys ...tea.KeyMsg) editModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(editModel)
	}
	return m
}

func newTestEditor(root mosaic.Node) (editModel, *[]mosaic.Node) {
	var saved []mosaic.Node
	ws := workspace.New(root, workspace.WithLogger(log.New(io.Discard)))
	m := newEditModel(ws, mosaic.Row, func(n mosaic.Node) error {
		saved = append(saved, n)
		return nil
	})
	return m, &saved
}

func sampleTree() mosaic.Node {
	return mosaic.Parent{
		Direction: mosaic.Row,
		First:     mosaic.Leaf("a"),
		Second:    mosaic.Parent{Direction: mosaic.Column, First: mosaic.Leaf("b"), Second: mosaic.Leaf("c")},
	}
}

func TestEditRemoveAndSave(t *testing.T) {
	m, saved := newTestEditor(sampleTree())

	m = press(m, key("j"), key("x"))
	if !m.dirty {
		t.Error("model should be dirty after remove")
	}
	if got := leafKeys(m.ws.Root()); len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("leaves after remove = %v, want [a c]", got)
	}

	m = press(m, key("w"))
	if m.dirty {
		t.Error("model should be clean after save")
	}
	if len(*saved) != 1 || !mosaic.Equal((*saved)[0], m.ws.Root()) {
		t.Errorf("saved = %v, want current root", *saved)
	}
}

func TestEditMarkAndDrop(t *testing.T) {
	m, _ := newTestEditor(sampleTree())

	m = press(m, key("m"), key("j"), tea.KeyMsg{Type: tea.KeyShiftDown})
	if m.marked != nil {
		t.Error("mark should be cleared after a drop")
	}
	got := leafKeys(m.ws.Root())
	want := []mosaic.Leaf{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("leaves = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("leaves = %v, want %v", got, want)
		}
	}
}

func TestEditDropWithoutMark(t *testing.T) {
	m, _ := newTestEditor(sampleTree())

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	if m.status == "" {
		t.Error("dropping without a mark should report a status")
	}
	if m.dirty {
		t.Error("failed drop should not dirty the model")
	}
}

func TestEditMarkHidesWithoutRelease(t *testing.T) {
	releases := 0
	ws := workspace.New(sampleTree(),
		workspace.WithLogger(log.New(io.Discard)),
		workspace.WithOnRelease(func() { releases++ }),
	)
	m := newEditModel(ws, mosaic.Row, func(mosaic.Node) error { return nil })

	m = press(m, key("m"))
	if split := ws.Root().(mosaic.Parent).Split(); split != 0 {
		t.Errorf("split after mark = %v, want 0", split)
	}
	if releases != 0 {
		t.Errorf("releases after mark = %d, want 0", releases)
	}
	if m.dirty {
		t.Error("marking should not dirty the model")
	}

	m = press(m, key("m"))
	if m.marked != nil {
		t.Error("second m should cancel the mark")
	}
	if !mosaic.Equal(sampleTree(), ws.Root()) {
		t.Errorf("root after cancel = %v, want original", ws.Root())
	}

	m = press(m, key("m"), tea.KeyMsg{Type: tea.KeyShiftDown})
	if m.status == "" {
		t.Error("dropping a leaf onto itself should report a status")
	}
	if m.marked != nil || !mosaic.Equal(sampleTree(), ws.Root()) {
		t.Errorf("failed drop should restore the layout, got %v", ws.Root())
	}

	m = press(m, key("m"), key("j"), tea.KeyMsg{Type: tea.KeyShiftDown})
	if releases != 1 {
		t.Errorf("releases after drop = %d, want 1", releases)
	}
	dropped := ws.Root()

	m = press(m, key("m"))
	if mosaic.Equal(dropped, ws.Root()) {
		t.Fatal("mark should hide the selected leaf")
	}
	m = press(m, key("q"))
	if m.marked != nil {
		t.Error("quitting should cancel the mark")
	}
	if !mosaic.Equal(dropped, ws.Root()) {
		t.Errorf("root after quit = %v, want %v", ws.Root(), dropped)
	}
}

func TestEditAddFocusesNewLeaf(t *testing.T) {
	m, _ := newTestEditor(mosaic.Leaf("a"))

	m = press(m, key("a"))
	if len(m.boxes) != 2 {
		t.Fatalf("boxes = %d, want 2", len(m.boxes))
	}
	if m.boxes[m.cursor].Leaf == "a" {
		t.Error("cursor should move to the added leaf")
	}
}

func TestEditHideExpandBalance(t *testing.T) {
	m, _ := newTestEditor(sampleTree())

	m = press(m, key("h"))
	if split := m.ws.Root().(mosaic.Parent).Split(); split != 0 {
		t.Errorf("split after hide = %v, want 0", split)
	}

	m = press(m, key("e"))
	if split := m.ws.Root().(mosaic.Parent).Split(); split != workspace.DefaultExpandPercentage {
		t.Errorf("split after expand = %v, want %v", split, workspace.DefaultExpandPercentage)
	}

	m = press(m, key("b"))
	if mosaic.Depth(m.ws.Root()) != 2 {
		t.Errorf("depth after balance = %d, want 2", mosaic.Depth(m.ws.Root()))
	}
}

func TestEditRemoveLastLeaf(t *testing.T) {
	m, _ := newTestEditor(mosaic.Leaf("a"))

	m = press(m, key("x"))
	if m.ws.Root() != nil {
		t.Errorf("root = %v, want empty", m.ws.Root())
	}
	if !strings.Contains(m.View(), "empty layout") {
		t.Error("view should mention the empty layout")
	}
}

func TestEditView(t *testing.T) {
	m, _ := newTestEditor(sampleTree())

	view := m.View()
	for _, want := range []string{"Layout Editor", "[a]", "second.first", "[3 leaves]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestDrawPreview(t *testing.T) {
	tests := []struct {
		name     string
		tree     mosaic.Node
		w, h     int
		selected int
		want     string
	}{
		{
			name:     "single leaf",
			tree:     mosaic.Leaf("a"),
			w:        10,
			h:        4,
			selected: -1,
			want: "+---------+\n" +
				"|         |\n" +
				"|    a    |\n" +
				"|         |\n" +
				"+---------+",
		},
		{
			name:     "row with selection",
			tree:     mosaic.Parent{Direction: mosaic.Row, First: mosaic.Leaf("a"), Second: mosaic.Leaf("b")},
			w:        10,
			h:        2,
			selected: 0,
			want: "+----+----+\n" +
				"|[a] | b  |\n" +
				"+----+----+",
		},
		{
			name: "hidden leaf is skipped",
			tree: mosaic.Parent{
				Direction:       mosaic.Row,
				First:           mosaic.Leaf("a"),
				Second:          mosaic.Leaf("b"),
				SplitPercentage: mosaic.Percent(100),
			},
			w:        6,
			h:        2,
			selected: -1,
			want: "+-----+\n" +
				"|  a  |\n" +
				"+-----+",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drawPreview(mosaic.Boxes(tt.tree), tt.w, tt.h, tt.selected, -1)
			if got != tt.want {
				t.Errorf("drawPreview() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

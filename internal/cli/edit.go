package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	pkgerrors "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/ids"
	pkgio "github.com/matzehuels/mosaic/pkg/io"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/workspace"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listMarkedStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	previewStyle      = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	defaultPreviewWidth  = 60
	defaultPreviewHeight = 16
)

// editCommand creates the edit command for interactive layout editing.
func (c *CLI) editCommand() *cobra.Command {
	var (
		output   string
		autosave bool
	)

	cmd := &cobra.Command{
		Use:   "edit <layout>",
		Short: "Edit a layout interactively in the terminal",
		Long: `Edit a layout interactively in the terminal.

Keys:
  ↑/↓ j/k        select a leaf
  a              add a leaf at the top-right corner
  x              remove the selected leaf
  h              hide the selected leaf
  e              expand the selected leaf
  m              mark (and hide) the selected leaf for moving; m again cancels
  shift+arrow    drop the marked leaf beside the selected one
  b              rebalance all leaves
  w              save
  q              quit

With --autosave the layout is written after every completed change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := output
			if target == "" && args[0] != stdinArg {
				target = args[0]
			}
			if target == "" {
				return pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "editing stdin needs --output")
			}
			if err := pkgerrors.ValidateFilePath(target); err != nil {
				return err
			}

			tree, err := c.readTree(cmd, args[0])
			if err != nil {
				return err
			}
			return c.runEdit(cmd, tree, target, autosave, args[0] == stdinArg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "save to this file instead of the input")
	cmd.Flags().BoolVar(&autosave, "autosave", false, "save after every change")

	return cmd
}

func (c *CLI) runEdit(cmd *cobra.Command, tree mosaic.Node, target string, autosave, readFromStdin bool) error {
	save := func(root mosaic.Node) error { return pkgio.ExportTree(root, target) }

	var saveErr error
	opts := []workspace.Option{
		workspace.WithLogger(log.New(io.Discard)),
		workspace.WithExpandPercentage(c.cfg.ExpandPercentage),
	}
	var ws *workspace.Workspace
	if autosave {
		opts = append(opts, workspace.WithOnRelease(func() {
			if err := save(ws.Root()); err != nil && saveErr == nil {
				saveErr = err
			}
		}))
	}
	ws = workspace.New(tree, opts...)

	programOpts := []tea.ProgramOption{tea.WithContext(cmd.Context()), tea.WithAltScreen()}
	if readFromStdin {
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	final, err := tea.NewProgram(newEditModel(ws, c.cfg.Direction(), save), programOpts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if saveErr != nil {
		return saveErr
	}

	status := cmd.ErrOrStderr()
	if em, ok := final.(editModel); ok && em.dirty && !autosave {
		printWarning(status, "Unsaved changes discarded")
		return nil
	}
	if autosave {
		printSuccess(status, "Layout saved")
		printFile(status, target)
	}
	return nil
}

// =============================================================================
// editModel - Interactive layout editor
// =============================================================================

// editModel is the bubbletea model for the layout editor. Edits go through a
// workspace so each key press is one applied batch.
type editModel struct {
	ws        *workspace.Workspace
	direction mosaic.Direction
	save      func(mosaic.Node) error

	boxes  []mosaic.LeafBox
	cursor int
	marked  mosaic.Path     // nil when nothing is marked
	restore []mosaic.Update // undoes the hide applied by the mark
	focus   mosaic.Leaf     // moved to by the next refresh

	width, height int
	status        string
	dirty         bool
}

func newEditModel(ws *workspace.Workspace, direction mosaic.Direction, save func(mosaic.Node) error) editModel {
	m := editModel{
		ws:        ws,
		direction: direction,
		save:      save,
		width:     defaultPreviewWidth,
		height:    defaultPreviewHeight,
	}
	m.refresh()
	return m
}

func (m *editModel) refresh() {
	m.boxes = mosaic.Boxes(m.ws.Root())
	if m.focus != "" {
		for i, b := range m.boxes {
			if b.Leaf == m.focus {
				m.cursor = i
			}
		}
		m.focus = ""
	}
	if m.cursor >= len(m.boxes) {
		m.cursor = max(len(m.boxes)-1, 0)
	}
}

func (m editModel) selected() (mosaic.LeafBox, bool) {
	if m.cursor < 0 || m.cursor >= len(m.boxes) {
		return mosaic.LeafBox{}, false
	}
	return m.boxes[m.cursor], true
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			_ = m.clearMark()
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.boxes)-1 {
				m.cursor++
			}
			return m, nil
		case "w":
			if err := m.clearMark(); err != nil {
				m.status = pkgerrors.UserMessage(err)
				return m, nil
			}
			m.refresh()
			if err := m.save(m.ws.Root()); err != nil {
				m.status = "save failed: " + err.Error()
				return m, nil
			}
			m.dirty = false
			m.status = "saved"
			return m, nil
		}
		m.status = ""
		if err := m.apply(key); err != nil {
			m.status = pkgerrors.UserMessage(err)
		}
		m.refresh()
	case tea.WindowSizeMsg:
		m.width = min(max(msg.Width-2, 20), 100)
		m.height = max(msg.Height/2, 6)
	}
	return m, nil
}

// apply runs the edit bound to key.
func (m *editModel) apply(key string) error {
	sel, ok := m.selected()
	if key == "m" {
		if !ok {
			return nil
		}
		toggle := m.marked != nil && m.marked.Equal(sel.Path)
		if err := m.clearMark(); err != nil || toggle {
			return err
		}
		return m.mark(sel)
	}

	var err error
	switch key {
	case "a", "b", "x", "h", "e":
		if err := m.clearMark(); err != nil {
			return err
		}
	}
	switch key {
	case "a":
		item := ids.NewLeaf()
		if err = m.ws.Add(item); err == nil {
			m.focus = item
		}
	case "b":
		leaves := make([]mosaic.Leaf, len(m.boxes))
		for i, b := range m.boxes {
			leaves[i] = b.Leaf
		}
		err = m.ws.ReplaceWith(mosaic.Path{}, mosaic.BuildBalanced(leaves, m.direction))
	case "x", "h", "e", "shift+left", "shift+right", "shift+up", "shift+down":
		if !ok {
			return nil
		}
		err = m.applyToSelection(key, sel)
	default:
		return nil
	}
	if err == nil {
		m.dirty = true
	}
	return err
}

func (m *editModel) applyToSelection(key string, sel mosaic.LeafBox) error {
	switch key {
	case "x":
		if sel.Path.IsRoot() {
			return m.ws.ReplaceWith(mosaic.Path{}, nil)
		}
		return m.ws.Remove(sel.Path)
	case "h":
		return m.ws.Hide(sel.Path)
	case "e":
		return m.ws.Expand(sel.Path)
	}

	if m.marked == nil {
		return pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "mark a leaf with m first")
	}
	position := map[string]mosaic.Position{
		"shift+left":  mosaic.Left,
		"shift+right": mosaic.Right,
		"shift+up":    mosaic.Top,
		"shift+down":  mosaic.Bottom,
	}[key]
	if err := m.ws.Drag(m.marked, sel.Path, position); err != nil {
		if restoreErr := m.clearMark(); restoreErr != nil {
			return restoreErr
		}
		return err
	}
	m.marked, m.restore = nil, nil
	return nil
}

// mark hides the selected leaf as the source of the next drop. The hide is
// an intermediate step, so it does not release the workspace.
func (m *editModel) mark(sel mosaic.LeafBox) error {
	hide, err := mosaic.HideUpdate(sel.Path)
	if err != nil {
		return err
	}
	parentPath := sel.Path.Parent()
	parent, _ := mosaic.Resolve(m.ws.Root(), parentPath)
	if err := m.ws.UpdateTree([]mosaic.Update{hide}, true); err != nil {
		return err
	}
	m.marked = sel.Path
	m.restore = []mosaic.Update{{Path: parentPath, Spec: mosaic.Replace{Node: parent}}}
	m.status = "marked " + string(sel.Leaf)
	return nil
}

// clearMark drops the mark and reverts its hide.
func (m *editModel) clearMark() error {
	if m.marked == nil {
		return nil
	}
	restore := m.restore
	m.marked, m.restore = nil, nil
	return m.ws.UpdateTree(restore, true)
}

func (m editModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout Editor"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  a add  x remove  h hide  e expand  m mark  shift+arrow drop  b balance  w save  q quit"))
	b.WriteString("\n\n")

	markedIdx := -1
	for i, box := range m.boxes {
		if m.marked != nil && box.Path.Equal(m.marked) {
			markedIdx = i
		}
	}

	b.WriteString(previewStyle.Render(drawPreview(m.boxes, m.width, m.height, m.cursor, markedIdx)))
	b.WriteString("\n\n")

	if len(m.boxes) == 0 {
		b.WriteString(listDimStyle.Render("  (empty layout, press a to add a leaf)"))
		b.WriteString("\n")
	}
	for i, box := range m.boxes {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-24s %s", cursor, box.Leaf, listDimStyle.Render(box.Path.String()))
		switch {
		case i == m.cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case i == markedIdx:
			b.WriteString(listMarkedStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := fmt.Sprintf("  [%d leaves]", len(m.boxes))
	if m.dirty {
		footer += " modified"
	}
	b.WriteString(listDimStyle.Render(footer))
	if m.status != "" {
		b.WriteString("  " + StyleWarning.Render(m.status))
	}
	b.WriteString("\n")

	return b.String()
}

// drawPreview draws boxes on a w x h character grid (plus one row and column
// for the closing edges). The selected leaf is labelled [key], the marked one
// *key. Collapsed leaves are not drawn.
func drawPreview(boxes []mosaic.LeafBox, w, h, selected, marked int) string {
	grid := make([][]rune, h+1)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", w+1))
	}
	put := func(x, y int, ch rune) {
		switch cur := grid[y][x]; cur {
		case ' ', ch:
			grid[y][x] = ch
		default:
			grid[y][x] = '+'
		}
	}
	scale := func(v float64, n int) int { return int(math.Round(v * float64(n) / 100)) }

	for i, box := range boxes {
		x0, x1 := scale(box.Box.Left, w), scale(100-box.Box.Right, w)
		y0, y1 := scale(box.Box.Top, h), scale(100-box.Box.Bottom, h)
		if x1-x0 < 1 || y1-y0 < 1 {
			continue
		}
		for x := x0; x <= x1; x++ {
			put(x, y0, '-')
			put(x, y1, '-')
		}
		for y := y0; y <= y1; y++ {
			put(x0, y, '|')
			put(x1, y, '|')
		}
		for _, p := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
			grid[p[1]][p[0]] = '+'
		}

		inner := x1 - x0 - 1
		if y1-y0 < 2 || inner < 1 {
			continue
		}
		label := string(box.Leaf)
		switch i {
		case selected:
			label = "[" + label + "]"
		case marked:
			label = "*" + label
		}
		runes := []rune(label)
		if len(runes) > inner {
			runes = runes[:inner]
		}
		start := x0 + 1 + (inner-len(runes))/2
		row := (y0 + y1) / 2
		copy(grid[row][start:], runes)
	}

	lines := make([]string, len(grid))
	for y, r := range grid {
		lines[y] = string(r)
	}
	return strings.Join(lines, "\n")
}

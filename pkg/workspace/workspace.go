// Package workspace holds the current layout of a tiling panel and applies
// root actions to it.
//
// The tree transforms in package mosaic are pure; a Workspace is the
// caller-side owner of the authoritative root. Each action computes its
// updates against the current root, applies them as one all-or-nothing
// batch, stores the result and then notifies the caller:
//
//   - OnChange receives every new root.
//   - OnRelease marks the end of an interaction. [Workspace.UpdateTree] can
//     suppress it so intermediate steps of a gesture (for example hiding a
//     pane at drag start) do not signal completion.
//
// Callbacks run after the workspace lock is released, so they may call back
// into the workspace. Notifications are delivered one at a time in the order
// the roots were stored; an action whose notification is queued behind
// another caller's may return before its own callbacks have run.
package workspace

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/ids"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/observability"
)

// DefaultExpandPercentage is the share [Workspace.Expand] gives a node when
// no percentage is passed.
const DefaultExpandPercentage = 70.0

// Option configures a Workspace.
type Option func(*Workspace)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option { return func(w *Workspace) { w.logger = l } }

// WithOnChange registers the callback invoked with each new root.
func WithOnChange(fn func(mosaic.Node)) Option { return func(w *Workspace) { w.onChange = fn } }

// WithOnRelease registers the callback invoked when an interaction completes.
func WithOnRelease(fn func()) Option { return func(w *Workspace) { w.onRelease = fn } }

// WithExpandPercentage overrides [DefaultExpandPercentage].
func WithExpandPercentage(pct float64) Option {
	return func(w *Workspace) { w.expandPercentage = pct }
}

// WithID sets the identifier reported to logs and hooks.
func WithID(id string) Option { return func(w *Workspace) { w.id = id } }

// Workspace is a mutex-guarded layout root. It is safe for concurrent use;
// concurrent actions serialize.
type Workspace struct {
	mu   sync.Mutex
	root mosaic.Node

	// pending holds notifications in commit order; notifying is set while
	// one goroutine drains it.
	pending   []notification
	notifying bool

	id               string
	logger           *log.Logger
	onChange         func(mosaic.Node)
	onRelease        func()
	expandPercentage float64
}

type notification struct {
	root    mosaic.Node
	release bool
}

// New returns a workspace holding root, which may be nil.
func New(root mosaic.Node, opts ...Option) *Workspace {
	w := &Workspace{
		root:             root,
		expandPercentage: DefaultExpandPercentage,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = log.Default()
	}
	if w.id == "" {
		w.id = ids.NewWorkspace()
	}
	return w
}

// ID returns the workspace identifier.
func (w *Workspace) ID() string { return w.id }

// Root returns the current layout.
func (w *Workspace) Root() mosaic.Node {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.root
}

// UpdateTree applies updates to the current root. On success OnChange is
// called with the new root, followed by OnRelease unless suppressRelease is
// set. On failure the root is left untouched and no callback runs.
func (w *Workspace) UpdateTree(updates []mosaic.Update, suppressRelease bool) error {
	return w.update(func(mosaic.Node) ([]mosaic.Update, error) { return updates, nil }, suppressRelease)
}

// Expand grows the node at path by giving it percentage of every ancestor
// split. Without a percentage the workspace default is used.
func (w *Workspace) Expand(path mosaic.Path, percentage ...float64) error {
	pct := w.expandPercentage
	if len(percentage) > 0 {
		pct = percentage[0]
	}
	return w.update(func(mosaic.Node) ([]mosaic.Update, error) {
		return []mosaic.Update{mosaic.ExpandUpdate(path, pct)}, nil
	}, false)
}

// Remove deletes the node at path, promoting its sibling.
func (w *Workspace) Remove(path mosaic.Path) error {
	return w.update(func(root mosaic.Node) ([]mosaic.Update, error) {
		u, err := mosaic.RemoveUpdate(root, path)
		if err != nil {
			return nil, err
		}
		return []mosaic.Update{u}, nil
	}, false)
}

// Hide collapses the node at path to zero size.
func (w *Workspace) Hide(path mosaic.Path) error {
	return w.update(func(mosaic.Node) ([]mosaic.Update, error) {
		u, err := mosaic.HideUpdate(path)
		if err != nil {
			return nil, err
		}
		return []mosaic.Update{u}, nil
	}, false)
}

// ReplaceWith substitutes node for the subtree at path.
func (w *Workspace) ReplaceWith(path mosaic.Path, node mosaic.Node) error {
	return w.update(func(mosaic.Node) ([]mosaic.Update, error) {
		return []mosaic.Update{{Path: path, Spec: mosaic.Replace{Node: node}}}, nil
	}, false)
}

// Add inserts item next to the top-right leaf.
func (w *Workspace) Add(item mosaic.Node) error {
	return w.update(func(root mosaic.Node) ([]mosaic.Update, error) {
		u, err := mosaic.InsertUpdate(root, item)
		if err != nil {
			return nil, err
		}
		return []mosaic.Update{u}, nil
	}, false)
}

// Drag moves the subtree at source next to destination and completes the
// interaction.
func (w *Workspace) Drag(source, destination mosaic.Path, position mosaic.Position) error {
	return w.update(func(root mosaic.Node) ([]mosaic.Update, error) {
		return mosaic.DragToUpdates(root, source, destination, position)
	}, false)
}

// update computes and applies a batch under the lock, then runs callbacks.
func (w *Workspace) update(plan func(mosaic.Node) ([]mosaic.Update, error), suppressRelease bool) error {
	start := time.Now()

	w.mu.Lock()
	updates, err := plan(w.root)
	var next mosaic.Node
	if err == nil {
		next, err = mosaic.ApplyUpdates(w.root, updates)
	}
	if err == nil {
		w.root = next
		w.pending = append(w.pending, notification{root: next, release: !suppressRelease})
	}
	w.mu.Unlock()

	observability.Workspace().OnApply(w.id, len(updates), time.Since(start), err)
	if err != nil {
		w.logger.Debug("update rejected", "workspace", w.id, "err", err)
		return err
	}
	w.logger.Debug("applied updates", "workspace", w.id, "count", len(updates), "release", !suppressRelease)

	w.notify()
	return nil
}

// notify drains pending notifications unless another goroutine already is.
// A callback that updates the workspace only queues its notification; the
// active drainer delivers it after the current callback returns.
func (w *Workspace) notify() {
	w.mu.Lock()
	if w.notifying {
		w.mu.Unlock()
		return
	}
	w.notifying = true

	for len(w.pending) > 0 {
		n := w.pending[0]
		w.pending = w.pending[1:]
		w.mu.Unlock()

		if w.onChange != nil {
			w.onChange(n.root)
		}
		if n.release {
			observability.Workspace().OnRelease(w.id)
			if w.onRelease != nil {
				w.onRelease()
			}
		}

		w.mu.Lock()
	}
	w.notifying = false
	w.mu.Unlock()
}

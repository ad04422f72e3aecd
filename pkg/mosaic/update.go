package mosaic

import "slices"

// Spec describes how to transform the subtree an [Update] addresses.
// It is either a [Replace] or a [Merge].
type Spec interface {
	isSpec()
}

// Replace discards the addressed subtree and substitutes Node.
type Replace struct {
	Node Node
}

func (Replace) isSpec() {}

// Merge updates only the named fields of the addressed [Parent]. Nil fields
// are left untouched; First and Second recurse into the children, so one
// Merge can rewrite several levels at once.
type Merge struct {
	Direction       *Direction
	SplitPercentage *float64
	First           Spec
	Second          Spec
}

func (Merge) isSpec() {}

func (m Merge) isZero() bool {
	return m.Direction == nil && m.SplitPercentage == nil && m.First == nil && m.Second == nil
}

func (m Merge) child(b Branch) Spec {
	if b == First {
		return m.First
	}
	return m.Second
}

func (m Merge) withChild(b Branch, s Spec) Merge {
	if b == First {
		m.First = s
	} else {
		m.Second = s
	}
	return m
}

// Update is a localized edit: Spec applied to the subtree at Path.
type Update struct {
	Path Path
	Spec Spec
}

// Nest rewrites u as an equivalent root-addressed Spec by wrapping its Spec
// in one Merge per branch of the path.
func (u Update) Nest() Spec {
	spec := u.Spec
	for i := len(u.Path) - 1; i >= 0; i-- {
		spec = Merge{}.withChild(u.Path[i], spec)
	}
	return spec
}

// ApplyUpdates applies updates to tree in order; each update sees the result
// of the previous one. The batch is all-or-nothing: if any update fails to
// resolve, the error is returned together with a nil tree. tree itself is
// never modified.
func ApplyUpdates(tree Node, updates []Update) (Node, error) {
	current := tree
	for _, u := range updates {
		next, err := applySpec(current, u.Nest(), Path{})
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// applySpec returns node transformed by spec. at is the path of node from the
// root of the batch and only feeds error reporting.
func applySpec(node Node, spec Spec, at Path) (Node, error) {
	switch s := spec.(type) {
	case nil:
		return node, nil
	case Replace:
		return s.Node, nil
	case Merge:
		if s.isZero() {
			return node, nil
		}
		if node == nil {
			if len(at) == 0 {
				return nil, ErrEmptyRoot
			}
			return nil, &PathNotFoundError{Path: slices.Clone(at)}
		}
		p, ok := node.(Parent)
		if !ok {
			return nil, &PathNotFoundError{Path: mergeTarget(s, at)}
		}
		if s.Direction != nil {
			p.Direction = *s.Direction
		}
		if s.SplitPercentage != nil {
			p.SplitPercentage = Percent(*s.SplitPercentage)
		}
		for _, b := range []Branch{First, Second} {
			sub := s.child(b)
			if sub == nil {
				continue
			}
			child, err := applySpec(p.Child(b), sub, at.Append(b))
			if err != nil {
				return nil, err
			}
			p = p.withChild(b, child)
		}
		return p, nil
	}
	return nil, &PathNotFoundError{Path: slices.Clone(at)}
}

// mergeTarget reports the deepest path a merge tried to reach through a leaf:
// the leaf's own path plus the first branch the merge descends into.
func mergeTarget(m Merge, at Path) Path {
	switch {
	case m.First != nil:
		return at.Append(First)
	case m.Second != nil:
		return at.Append(Second)
	}
	return slices.Clone(at)
}

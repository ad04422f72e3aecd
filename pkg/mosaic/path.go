package mosaic

import (
	"slices"
	"strings"
)

// Branch selects one child of a [Parent].
type Branch string

const (
	First  Branch = "first"
	Second Branch = "second"
)

// Valid reports whether b is First or Second.
func (b Branch) Valid() bool { return b == First || b == Second }

// OtherBranch returns the sibling of b.
// Anything other than First or Second yields an [*InvalidBranchError].
func OtherBranch(b Branch) (Branch, error) {
	switch b {
	case First:
		return Second, nil
	case Second:
		return First, nil
	}
	return "", &InvalidBranchError{Branch: b}
}

// Path is a root-to-node walk. The empty path addresses the root.
type Path []Branch

// ParsePath parses the dotted form produced by [Path.String], e.g.
// "first.second". The empty string and "." both denote the root.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "." {
		return Path{}, nil
	}
	parts := strings.Split(s, ".")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		b := Branch(strings.ToLower(strings.TrimSpace(part)))
		if !b.Valid() {
			return nil, &InvalidBranchError{Branch: Branch(part)}
		}
		p = append(p, b)
	}
	return p, nil
}

// String returns the dotted form of p, or "." for the root.
func (p Path) String() string {
	if len(p) == 0 {
		return "."
	}
	return p.join(".")
}

func (p Path) join(sep string) string {
	parts := make([]string, len(p))
	for i, b := range p {
		parts[i] = string(b)
	}
	return strings.Join(parts, sep)
}

// IsRoot reports whether p addresses the root.
func (p Path) IsRoot() bool { return len(p) == 0 }

// Parent returns p without its last branch. The root's parent is the root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return slices.Clone(p[:len(p)-1])
}

// Last returns the final branch of p and false if p is the root.
func (p Path) Last() (Branch, bool) {
	if len(p) == 0 {
		return "", false
	}
	return p[len(p)-1], true
}

// Append returns a new path extending p with bs. p is not modified.
func (p Path) Append(bs ...Branch) Path {
	out := make(Path, 0, len(p)+len(bs))
	out = append(out, p...)
	return append(out, bs...)
}

// HasPrefix reports whether prefix addresses p itself or one of its ancestors.
func (p Path) HasPrefix(prefix Path) bool {
	return len(prefix) <= len(p) && slices.Equal(p[:len(prefix)], prefix)
}

// Equal reports whether p and q address the same node.
func (p Path) Equal(q Path) bool { return slices.Equal(p, q) }

// Resolve walks path from tree. The empty path resolves to tree itself,
// even when tree is nil. ok is false when any step is missing.
func Resolve(tree Node, path Path) (node Node, ok bool) {
	node = tree
	if len(path) == 0 {
		return node, true
	}
	for _, b := range path {
		p, isParent := node.(Parent)
		if !isParent {
			return nil, false
		}
		node = p.Child(b)
		if node == nil {
			return nil, false
		}
	}
	return node, true
}

// ResolveStrict is [Resolve] for callers that need a definite node.
// It returns [ErrEmptyRoot] when tree is nil, whatever the path, and a
// [*PathNotFoundError] when path does not resolve.
func ResolveStrict(tree Node, path Path) (Node, error) {
	if tree == nil {
		return nil, ErrEmptyRoot
	}
	node, ok := Resolve(tree, path)
	if !ok || node == nil {
		return nil, &PathNotFoundError{Path: slices.Clone(path)}
	}
	return node, nil
}

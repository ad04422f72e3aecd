package mosaic

// InsertUpdate returns the update that adds item next to the current
// top-right leaf of root.
//
// The leaf and item are wrapped in a new parent whose direction is
// perpendicular to the leaf's own parent (row when the leaf is the root), so
// successive insertions alternate between rows and columns. In a row the
// existing leaf stays first; in a column the new item goes on top.
//
// When root is empty the update simply replaces it with item.
func InsertUpdate(root Node, item Node) (Update, error) {
	if root == nil {
		return Update{Path: Path{}, Spec: Replace{Node: item}}, nil
	}
	path := PathToCorner(root, TopRight)
	destination, err := ResolveStrict(root, path)
	if err != nil {
		return Update{}, err
	}
	direction := Row
	if !path.IsRoot() {
		if parent, ok := parentAt(root, path.Parent()); ok {
			direction = parent.Direction.Other()
		}
	}
	split := Parent{Direction: direction, First: destination, Second: item}
	if direction == Column {
		split.First, split.Second = item, destination
	}
	return Update{Path: path, Spec: Replace{Node: split}}, nil
}

// AddNode returns root with item inserted as described by [InsertUpdate].
func AddNode(root Node, item Node) (Node, error) {
	u, err := InsertUpdate(root, item)
	if err != nil {
		return nil, err
	}
	return ApplyUpdates(root, []Update{u})
}

// parentAt returns the node at path when it is a parent.
func parentAt(tree Node, path Path) (Parent, bool) {
	n, ok := Resolve(tree, path)
	if !ok {
		return Parent{}, false
	}
	p, ok := n.(Parent)
	return p, ok
}

// RemoveUpdate returns the update that removes the node at path by replacing
// its parent with the node's sibling. No parent is ever left with a single
// child.
//
// The root cannot be removed this way ([ErrRootPath]); a sibling that does
// not resolve yields the error from [ResolveStrict].
func RemoveUpdate(root Node, path Path) (Update, error) {
	last, ok := path.Last()
	if !ok {
		return Update{}, ErrRootPath
	}
	other, err := OtherBranch(last)
	if err != nil {
		return Update{}, err
	}
	parentPath := path.Parent()
	sibling, err := ResolveStrict(root, parentPath.Append(other))
	if err != nil {
		return Update{}, err
	}
	return Update{Path: parentPath, Spec: Replace{Node: sibling}}, nil
}

// HideUpdate returns the update that collapses the node at path to zero size
// by setting its parent's split to 0 (for a first child) or 100 (for a
// second child). The node stays in the tree and addressable.
func HideUpdate(path Path) (Update, error) {
	last, ok := path.Last()
	if !ok {
		return Update{}, ErrRootPath
	}
	if _, err := OtherBranch(last); err != nil {
		return Update{}, err
	}
	split := 100.0
	if last == First {
		split = 0
	}
	return Update{Path: path.Parent(), Spec: Merge{SplitPercentage: Percent(split)}}, nil
}

// ExpandUpdate returns a single root-addressed update that grows the node at
// path by giving it percentage of every ancestor split along the way.
//
// At each level the ancestor's split becomes percentage when the path takes
// First there, and 100-percentage when it takes Second. percentage is
// clamped to [0, 100].
func ExpandUpdate(path Path, percentage float64) Update {
	percentage = min(max(percentage, 0), 100)
	var spec Spec = Merge{}
	for i := len(path) - 1; i >= 0; i-- {
		branch := path[i]
		split := percentage
		if branch == Second {
			split = 100 - percentage
		}
		spec = Merge{SplitPercentage: Percent(split)}.withChild(branch, spec)
	}
	return Update{Path: Path{}, Spec: spec}
}

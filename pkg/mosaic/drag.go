package mosaic

import "fmt"

// Position is where a dragged node lands relative to its drop target.
type Position string

const (
	Top    Position = "top"
	Bottom Position = "bottom"
	Left   Position = "left"
	Right  Position = "right"
)

// ParsePosition converts "top", "bottom", "left" or "right" into a Position.
func ParsePosition(s string) (Position, error) {
	switch p := Position(s); p {
	case Top, Bottom, Left, Right:
		return p, nil
	}
	return "", fmt.Errorf("invalid drop position %q", s)
}

// Direction returns the split direction a drop at p creates.
func (p Position) Direction() Direction {
	if p == Left || p == Right {
		return Row
	}
	return Column
}

// leading reports whether the dragged node becomes the first child.
func (p Position) leading() bool { return p == Left || p == Top }

// DragToUpdates returns the updates that move the subtree at source so it
// becomes a sibling of the subtree at destination, split in the direction
// implied by position.
//
// When destination is an ancestor of source, the removal happens inside the
// destination's own value and a single update is returned. Otherwise the
// result is a remove update followed by a placement update whose path has
// been corrected for the level the removal collapses.
func DragToUpdates(root Node, source, destination Path, position Position) ([]Update, error) {
	destinationNode, err := ResolveStrict(root, destination)
	if err != nil {
		return nil, err
	}
	sourceNode, err := ResolveStrict(root, source)
	if err != nil {
		return nil, err
	}
	plan, err := planDrop(source, destination)
	if err != nil {
		return nil, err
	}

	var updates []Update
	if plan.nested {
		remove, err := RemoveUpdate(destinationNode, source[len(destination):])
		if err != nil {
			return nil, err
		}
		if destinationNode, err = ApplyUpdates(destinationNode, []Update{remove}); err != nil {
			return nil, err
		}
	} else {
		remove, err := RemoveUpdate(root, source)
		if err != nil {
			return nil, err
		}
		updates = append(updates, remove)
	}

	split := Parent{Direction: position.Direction(), First: destinationNode, Second: sourceNode}
	if position.leading() {
		split.First, split.Second = sourceNode, destinationNode
	}
	return append(updates, Update{Path: plan.destination, Spec: Replace{Node: split}}), nil
}

// dropPlan is where a drag's placement update must be addressed.
type dropPlan struct {
	// destination is the placement path, valid after any removal update has
	// been applied.
	destination Path
	// nested is set when destination is an ancestor of source, so the source
	// must be removed from within the destination's value.
	nested bool
}

// planDrop handles the path arithmetic of a drag in one place.
//
// Removing source collapses its parent into source's sibling. When that
// parent lies on the path to destination, destination loses the level at
// index len(source)-1, which is spliced out here.
func planDrop(source, destination Path) (dropPlan, error) {
	if len(source) == 0 || destination.HasPrefix(source) {
		return dropPlan{}, ErrInvalidDrop
	}
	if source.HasPrefix(destination) {
		return dropPlan{destination: destination.Append(), nested: true}, nil
	}
	cut := len(source) - 1
	if len(destination) > cut && destination[:cut].Equal(source[:cut]) {
		corrected := destination[:cut].Append(destination[cut+1:]...)
		return dropPlan{destination: corrected}, nil
	}
	return dropPlan{destination: destination.Append()}, nil
}

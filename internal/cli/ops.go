package cli

import (
	"github.com/spf13/cobra"

	pkgerrors "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/ids"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/workspace"
)

// applyCommand creates the apply command.
func (c *CLI) applyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <layout> <updates>",
		Short: "Apply an update batch to a layout",
		Long: `Apply an update batch to a layout and print the result.

Updates run in order and each sees the result of the previous one. If any
update fails to resolve, nothing is printed and the command fails.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == stdinArg && args[1] == stdinArg {
				return pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "only one of layout and updates can be read from stdin")
			}
			tree, err := c.readTree(cmd, args[0])
			if err != nil {
				return err
			}
			updates, err := c.readUpdates(cmd, args[1])
			if err != nil {
				return err
			}
			return c.emit(cmd, tree, updates, true)
		},
	}
}

// opCommand builds a command that computes updates for one operation on the
// layout in args[0] and prints them, or the applied tree with --apply.
func (c *CLI) opCommand(cmd *cobra.Command, plan func(tree mosaic.Node, args []string) ([]mosaic.Update, error)) *cobra.Command {
	var apply bool
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		tree, err := c.readTree(cmd, args[0])
		if err != nil {
			return err
		}
		updates, err := plan(tree, args[1:])
		if err != nil {
			return err
		}
		return c.emit(cmd, tree, updates, apply)
	}
	cmd.Flags().BoolVarP(&apply, "apply", "a", false, "print the resulting layout instead of the updates")
	return cmd
}

// insertCommand creates the insert command.
func (c *CLI) insertCommand() *cobra.Command {
	return c.opCommand(&cobra.Command{
		Use:   "insert <layout> [leaf]",
		Short: "Insert a leaf at the top-right corner",
		Long: `Insert a leaf at the top-right corner of a layout.

The leaf at the top-right corner is split in the direction perpendicular
to its parent's: in a row the new leaf goes right, in a column it goes on
top. A random key is generated when none is given.`,
		Args: cobra.RangeArgs(1, 2),
	}, func(tree mosaic.Node, args []string) ([]mosaic.Update, error) {
		item := ids.NewLeaf()
		if len(args) > 0 {
			if err := pkgerrors.ValidateLeafKey(args[0]); err != nil {
				return nil, err
			}
			item = mosaic.Leaf(args[0])
		}
		u, err := mosaic.InsertUpdate(tree, item)
		if err != nil {
			return nil, err
		}
		return []mosaic.Update{u}, nil
	})
}

// removeCommand creates the remove command.
func (c *CLI) removeCommand() *cobra.Command {
	return c.opCommand(&cobra.Command{
		Use:   "remove <layout> <path>",
		Short: "Remove the node at a path; its sibling takes the parent's place",
		Args:  cobra.ExactArgs(2),
	}, func(tree mosaic.Node, args []string) ([]mosaic.Update, error) {
		path, err := mosaic.ParsePath(args[0])
		if err != nil {
			return nil, err
		}
		u, err := mosaic.RemoveUpdate(tree, path)
		if err != nil {
			return nil, err
		}
		return []mosaic.Update{u}, nil
	})
}

// hideCommand creates the hide command.
func (c *CLI) hideCommand() *cobra.Command {
	return c.opCommand(&cobra.Command{
		Use:   "hide <layout> <path>",
		Short: "Collapse the node at a path to zero size",
		Args:  cobra.ExactArgs(2),
	}, func(_ mosaic.Node, args []string) ([]mosaic.Update, error) {
		path, err := mosaic.ParsePath(args[0])
		if err != nil {
			return nil, err
		}
		u, err := mosaic.HideUpdate(path)
		if err != nil {
			return nil, err
		}
		return []mosaic.Update{u}, nil
	})
}

// expandCommand creates the expand command.
func (c *CLI) expandCommand() *cobra.Command {
	cmd := c.opCommand(&cobra.Command{
		Use:   "expand <layout> <path>",
		Short: "Grow the node at a path by resizing every ancestor split",
		Args:  cobra.ExactArgs(2),
	}, func(_ mosaic.Node, args []string) ([]mosaic.Update, error) {
		path, err := mosaic.ParsePath(args[0])
		if err != nil {
			return nil, err
		}
		return []mosaic.Update{mosaic.ExpandUpdate(path, c.cfg.ExpandPercentage)}, nil
	})
	cmd.Flags().Float64("percentage", workspace.DefaultExpandPercentage, "share given to the node at each level")
	return cmd
}

// dragCommand creates the drag command.
func (c *CLI) dragCommand() *cobra.Command {
	var position string

	cmd := c.opCommand(&cobra.Command{
		Use:   "drag <layout> <source> <destination>",
		Short: "Move the node at source next to the node at destination",
		Long: `Move the node at source next to the node at destination.

--position says on which side of the destination the moved node lands:
left or right split the destination in a row, top or bottom in a column.`,
		Example: `  mosaic drag layout.json first second.second --position top --apply`,
		Args:    cobra.ExactArgs(3),
	}, func(tree mosaic.Node, args []string) ([]mosaic.Update, error) {
		source, err := mosaic.ParsePath(args[0])
		if err != nil {
			return nil, err
		}
		destination, err := mosaic.ParsePath(args[1])
		if err != nil {
			return nil, err
		}
		pos, err := mosaic.ParsePosition(position)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidInput, err, "invalid --position")
		}
		return mosaic.DragToUpdates(tree, source, destination, pos)
	})
	cmd.Flags().StringVarP(&position, "position", "p", string(mosaic.Right), "top, bottom, left, right")
	return cmd
}

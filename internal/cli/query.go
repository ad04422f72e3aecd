package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/internal/config"
	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// leavesCommand creates the leaves command listing pane keys in order.
func (c *CLI) leavesCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "leaves <layout>",
		Short: "List the leaves of a layout, left to right",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := c.readTree(cmd, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			boxes := mosaic.Boxes(tree)
			if plain {
				for _, b := range boxes {
					fmt.Fprintln(w, b.Leaf)
				}
				return nil
			}
			rows := make([][]string, len(boxes))
			for i, b := range boxes {
				rows[i] = []string{strconv.Itoa(i + 1), string(b.Leaf), b.Path.String(), strconv.Itoa(len(b.Path))}
			}
			fmt.Fprintln(w, renderTable([]string{"#", "Leaf", "Path", "Depth"}, rows, 0, 3))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print one key per line")

	return cmd
}

// cornerCommand creates the corner command.
func (c *CLI) cornerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corner <layout>",
		Short: "Print the path of the leaf in a corner of the layout",
		Long: `Print the path of the leaf in a corner of the layout.

At each parent the walk takes the child nearer to the corner: the first
child of a row toward the left edge, the first child of a column toward the
top edge, and the second child otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := c.readTree(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mosaic.PathToCorner(tree, c.cfg.CornerValue()))
			return nil
		},
	}

	cmd.Flags().String("corner", config.DefaultCorner, "top-left, top-right, bottom-left, bottom-right")

	return cmd
}

// resolveCommand creates the resolve command printing the subtree at a path.
func (c *CLI) resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <layout> <path>",
		Short: "Print the subtree at a dotted path",
		Example: `  mosaic resolve layout.json second.first
  cat layout.json | mosaic resolve - .`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := c.readTree(cmd, args[0])
			if err != nil {
				return err
			}
			path, err := mosaic.ParsePath(args[1])
			if err != nil {
				return err
			}
			node, err := mosaic.ResolveStrict(tree, path)
			if err != nil {
				return err
			}
			return c.writeTree(cmd, node)
		},
	}
}

// boxesCommand creates the boxes command printing each leaf's area.
func (c *CLI) boxesCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "boxes <layout>",
		Short: "Print the area each leaf covers, in percent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := c.readTree(cmd, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			boxes := mosaic.Boxes(tree)
			if plain {
				for _, b := range boxes {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", b.Leaf, b.Path,
						pct(b.Box.Top), pct(b.Box.Right), pct(b.Box.Bottom), pct(b.Box.Left))
				}
				return nil
			}
			rows := make([][]string, len(boxes))
			for i, b := range boxes {
				rows[i] = []string{
					string(b.Leaf), b.Path.String(),
					pct(b.Box.Top), pct(b.Box.Right), pct(b.Box.Bottom), pct(b.Box.Left),
					pct(b.Box.Width()), pct(b.Box.Height()),
				}
			}
			headers := []string{"Leaf", "Path", "Top", "Right", "Bottom", "Left", "Width", "Height"}
			fmt.Fprintln(w, renderTable(headers, rows, 2, 3, 4, 5, 6, 7))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print tab-separated leaf, path, top, right, bottom, left")

	return cmd
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

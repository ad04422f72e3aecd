package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/internal/config"
	pkgerrors "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/ids"
	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// buildCommand creates the build command for generating balanced layouts.
func (c *CLI) buildCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "build [leaf...]",
		Short: "Build a balanced layout from leaf keys",
		Long: `Build a balanced layout from leaf keys.

Leaves are paired up level by level so that all of them end up at nearly the
same depth, keeping their order. Split directions alternate per level,
starting with --direction. With --count, random keys are generated instead.`,
		Example: `  mosaic build editor terminal preview
  mosaic build --count 4 --direction column -f yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			leaves, err := buildLeaves(args, count)
			if err != nil {
				return err
			}
			tree := mosaic.BuildBalanced(leaves, c.cfg.Direction())
			loggerFromContext(cmd.Context()).Debug("built layout", "leaves", len(leaves), "depth", mosaic.Depth(tree))
			return c.writeTree(cmd, tree)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "generate this many random leaf keys")
	cmd.Flags().String("direction", config.DefaultStartDirection, "direction of the root split: row, column")

	return cmd
}

func buildLeaves(args []string, count int) ([]mosaic.Leaf, error) {
	if len(args) > 0 && count > 0 {
		return nil, pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "give leaf keys or --count, not both")
	}
	if count < 0 {
		return nil, pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "--count must not be negative")
	}
	if count > 0 {
		return ids.NewLeaves(count), nil
	}
	leaves := make([]mosaic.Leaf, len(args))
	for i, key := range args {
		if err := pkgerrors.ValidateLeafKey(key); err != nil {
			return nil, err
		}
		leaves[i] = mosaic.Leaf(key)
	}
	return leaves, nil
}

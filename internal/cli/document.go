package cli

import (
	"github.com/spf13/cobra"

	pkgerrors "github.com/matzehuels/mosaic/pkg/errors"
	pkgio "github.com/matzehuels/mosaic/pkg/io"
	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// stdinArg names standard input as a document source.
const stdinArg = "-"

// readTree loads a layout from path, or from stdin in the configured format
// when path is "-".
func (c *CLI) readTree(cmd *cobra.Command, path string) (mosaic.Node, error) {
	if path == stdinArg {
		return pkgio.ReadTree(cmd.InOrStdin(), c.cfg.OutputFormat())
	}
	if err := pkgerrors.ValidateFilePath(path); err != nil {
		return nil, err
	}
	return pkgio.ImportTree(path)
}

// readUpdates loads an update batch the same way as readTree.
func (c *CLI) readUpdates(cmd *cobra.Command, path string) ([]mosaic.Update, error) {
	if path == stdinArg {
		return pkgio.ReadUpdates(cmd.InOrStdin(), c.cfg.OutputFormat())
	}
	if err := pkgerrors.ValidateFilePath(path); err != nil {
		return nil, err
	}
	return pkgio.ImportUpdates(path)
}

func (c *CLI) writeTree(cmd *cobra.Command, tree mosaic.Node) error {
	return pkgio.WriteTree(cmd.OutOrStdout(), tree, c.cfg.OutputFormat())
}

func (c *CLI) writeUpdates(cmd *cobra.Command, updates []mosaic.Update) error {
	return pkgio.WriteUpdates(cmd.OutOrStdout(), updates, c.cfg.OutputFormat())
}

// emit prints updates, or the tree they produce when apply is set.
func (c *CLI) emit(cmd *cobra.Command, tree mosaic.Node, updates []mosaic.Update, apply bool) error {
	if !apply {
		return c.writeUpdates(cmd, updates)
	}
	next, err := mosaic.ApplyUpdates(tree, updates)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("applied updates", "count", len(updates))
	return c.writeTree(cmd, next)
}

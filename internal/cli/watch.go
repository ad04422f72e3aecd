package cli

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	pkgerrors "github.com/matzehuels/mosaic/pkg/errors"
	pkgio "github.com/matzehuels/mosaic/pkg/io"
	"github.com/matzehuels/mosaic/pkg/mosaic"
)

// watchDebounce collapses bursts of file events from editors.
const watchDebounce = 100 * time.Millisecond

// watchCommand creates the watch command.
func (c *CLI) watchCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "watch <layout> [updates]",
		Short: "Re-apply updates whenever the input files change",
		Long: `Re-apply updates whenever the input files change.

The layout (with the update batch applied, if one is given) is written once at
start and again after every change to either file. Errors are reported and
the previous output is left in place.`,
		Example: `  mosaic watch base.yaml drag.yaml -o current.json`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				if a == stdinArg {
					return pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "watch needs files, not stdin")
				}
				if err := pkgerrors.ValidateFilePath(a); err != nil {
					return err
				}
			}
			if err := checkWatchOutput(output, args); err != nil {
				return err
			}
			updates := ""
			if len(args) == 2 {
				updates = args[1]
			}
			return c.runWatch(cmd, args[0], updates, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, format from its extension (default stdout)")

	return cmd
}

// checkWatchOutput rejects an output file that is also a watched input.
func checkWatchOutput(output string, inputs []string) error {
	if output == "" {
		return nil
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		abs, err := filepath.Abs(in)
		if err != nil {
			return err
		}
		if abs == out {
			return pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "output %s is a watched input", output)
		}
	}
	return nil
}

func (c *CLI) runWatch(cmd *cobra.Command, layout, updates, output string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	status := cmd.ErrOrStderr()

	var mu sync.Mutex
	rebuild := func() {
		mu.Lock()
		defer mu.Unlock()
		tree, err := c.rebuild(cmd, layout, updates, output)
		if err != nil {
			printWarning(status, "%s", pkgerrors.UserMessage(err))
			return
		}
		printSuccess(status, "Layout has %d leaves", len(mosaic.Boxes(tree)))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	watched := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range []string{layout, updates} {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	rebuild()
	printInfo(status, "Watching %d file(s), press Ctrl+C to stop", len(watched))

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			logger.Debug("file changed", "file", event.Name, "op", event.Op.String())
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, rebuild)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

// rebuild reads layout, applies the batch in updates (if any) and writes the
// result to output, or stdout when output is empty.
func (c *CLI) rebuild(cmd *cobra.Command, layout, updates, output string) (mosaic.Node, error) {
	tree, err := pkgio.ImportTree(layout)
	if err != nil {
		return nil, err
	}
	if updates != "" {
		batch, err := pkgio.ImportUpdates(updates)
		if err != nil {
			return nil, err
		}
		if tree, err = mosaic.ApplyUpdates(tree, batch); err != nil {
			return nil, err
		}
	}
	if output == "" {
		return tree, c.writeTree(cmd, tree)
	}
	return tree, pkgio.ExportTree(tree, output)
}

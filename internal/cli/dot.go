package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/cache"
	pkgerrors "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/render/splittree"
)

// dotCommand creates the dot command for drawing split trees.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output    string
		kind      string
		showPaths bool
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "dot <layout>",
		Short: "Draw the split tree of a layout with Graphviz",
		Long: `Draw the split tree of a layout with Graphviz.

Parents are drawn as ellipses labelled with their direction and split, leaves
as boxes. Leaves hidden behind a 0 or 100 split get a dashed outline.
DOT is printed to stdout; svg and png are rendered in-process and cached
under the cache directory (see "mosaic cache path").`,
		Example: `  mosaic dot layout.json | dot -Tpdf > layout.pdf
  mosaic dot layout.json -t svg -o layout.svg --paths`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind = strings.ToLower(kind)
			switch kind {
			case splittree.FormatDOT, splittree.FormatSVG:
			case splittree.FormatPNG:
				if output == "" {
					return pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "png output needs --output")
				}
			default:
				return pkgerrors.New(pkgerrors.ErrCodeInvalidFormat, "unsupported diagram type %q (dot, svg, png)", kind)
			}
			if output != "" {
				if err := pkgerrors.ValidateFilePath(output); err != nil {
					return err
				}
			}

			tree, err := c.readTree(cmd, args[0])
			if err != nil {
				return err
			}
			store := c.diagramCache(noCache)
			defer store.Close()
			return c.runDot(cmd, store, tree, kind, output, splittree.Options{ShowPaths: showPaths})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&kind, "type", "t", splittree.FormatDOT, "diagram type: dot, svg, png")
	cmd.Flags().BoolVar(&showPaths, "paths", false, "label leaves with their paths")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "render without reading or writing the diagram cache")

	return cmd
}

func (c *CLI) runDot(cmd *cobra.Command, store cache.Cache, tree mosaic.Node, kind, output string, opts splittree.Options) error {
	status := cmd.ErrOrStderr()

	data, err := c.renderDiagram(cmd, store, tree, kind, opts)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess(status, "Wrote %s diagram", kind)
	printFile(status, output)
	return nil
}

// renderDiagram renders tree as kind. Rendered svg and png are looked up in
// and written to store, keyed by the DOT source.
func (c *CLI) renderDiagram(cmd *cobra.Command, store cache.Cache, tree mosaic.Node, kind string, opts splittree.Options) ([]byte, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	dot := splittree.ToDOT(tree, opts)
	if kind == splittree.FormatDOT {
		return []byte(dot), nil
	}

	key := cache.DiagramKey(dot, kind)
	if data, ok, err := store.Get(ctx, key); err != nil {
		logger.Debug("diagram cache read failed", "error", err)
	} else if ok {
		logger.Debug("diagram cache hit", "type", kind)
		return data, nil
	}

	prog := newProgress(logger)
	status := cmd.ErrOrStderr()
	var spinner *Spinner
	if isTerminal(status) {
		spinner = newSpinner(ctx, status, fmt.Sprintf("Rendering %s...", kind))
		spinner.Start()
	}
	var (
		data []byte
		err  error
	)
	switch kind {
	case splittree.FormatSVG:
		data, err = splittree.RenderSVG(ctx, dot)
	default:
		data, err = splittree.RenderPNG(ctx, dot)
	}
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return nil, err
	}
	prog.done("Rendered " + kind)

	if err := store.Set(ctx, key, data, diagramTTL); err != nil {
		logger.Debug("diagram cache write failed", "error", err)
	}
	return data, nil
}

package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/internal/config"
	"github.com/matzehuels/mosaic/pkg/buildinfo"
)

const appName = "mosaic"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfgFile string
	cfg     *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Mosaic builds and edits split-tree tiling layouts",
		Long: `Mosaic is a CLI tool for tiling panel layouts stored as binary split trees.

Every leaf is a pane key; every parent splits its area in a row or a column.
Layouts and update batches are read from JSON, YAML or TOML files.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default ./mosaic.yaml)")
	pf.StringP("format", "f", config.DefaultFormat, "document format: json, yaml, toml")
	pf.BoolP("verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.leavesCommand())
	root.AddCommand(c.cornerCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.boxesCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.insertCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.hideCommand())
	root.AddCommand(c.expandCommand())
	root.AddCommand(c.dragCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig resolves settings for the command being run and attaches the
// logger to its context.
func (c *CLI) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	c.cfg = cfg
	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	if cfg.File != "" {
		c.Logger.Debug("loaded config", "file", cfg.File)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

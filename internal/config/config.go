// Package config loads mosaic CLI settings.
//
// Values are layered, lowest to highest precedence: built-in defaults, a
// mosaic.yaml file, MOSAIC_* environment variables and explicitly set
// command-line flags. Nested keys use a double underscore in the
// environment (MOSAIC_SERVE__ADDR sets serve.addr).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	pkgerrors "github.com/matzehuels/mosaic/pkg/errors"
	pkgio "github.com/matzehuels/mosaic/pkg/io"
	"github.com/matzehuels/mosaic/pkg/mosaic"
	"github.com/matzehuels/mosaic/pkg/workspace"
)

const (
	appName   = "mosaic"
	envPrefix = "MOSAIC_"

	DefaultStartDirection  = "row"
	DefaultFormat          = "json"
	DefaultCorner          = "top-right"
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds resolved settings.
type Config struct {
	StartDirection   string      `koanf:"start_direction"`
	ExpandPercentage float64     `koanf:"expand_percentage"`
	Format           string      `koanf:"format"`
	Corner           string      `koanf:"corner"`
	Verbose          bool        `koanf:"verbose"`
	Serve            ServeConfig `koanf:"serve"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// ServeConfig configures the HTTP service.
type ServeConfig struct {
	Addr            string        `koanf:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// flagKeys maps flag names that differ from their config key.
var flagKeys = map[string]string{
	"addr":             "serve.addr",
	"shutdown-timeout": "serve.shutdown_timeout",
	"direction":        "start_direction",
	"percentage":       "expand_percentage",
}

// candidates lists the files searched when no explicit path is given.
func candidates() []string {
	out := []string{appName + ".yaml", appName + ".yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		out = append(out, filepath.Join(dir, appName, appName+".yaml"))
	}
	return out
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range candidates() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load resolves configuration from cfgFile (or the default search
// locations), the environment and the changed flags in flags.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"start_direction":        DefaultStartDirection,
		"expand_percentage":      workspace.DefaultExpandPercentage,
		"format":                 DefaultFormat,
		"corner":                 DefaultCorner,
		"verbose":                false,
		"serve.addr":             DefaultAddr,
		"serve.shutdown_timeout": DefaultShutdownTimeout.String(),
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, pkgerrors.Wrap(pkgerrors.ErrCodeFileNotFound, err, "config file %s not found", used)
			}
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			if key, ok := flagKeys[f.Name]; ok {
				return key, posflag.FlagVal(flags, f)
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if _, err := mosaic.ParseDirection(c.StartDirection); err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidInput, err, "invalid start_direction")
	}
	if err := pkgerrors.ValidatePercentage(c.ExpandPercentage); err != nil {
		return err
	}
	if _, err := pkgio.ParseFormat(c.Format); err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidFormat, err, "invalid format")
	}
	if _, ok := mosaic.ParseCorner(c.Corner); !ok {
		return pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "invalid corner %q", c.Corner)
	}
	if c.Serve.Addr == "" {
		return pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "serve.addr cannot be empty")
	}
	return nil
}

// Direction returns the parsed start direction. Call after [Config.Validate].
func (c *Config) Direction() mosaic.Direction {
	d, _ := mosaic.ParseDirection(c.StartDirection)
	return d
}

// OutputFormat returns the parsed output format. Call after [Config.Validate].
func (c *Config) OutputFormat() pkgio.Format {
	f, _ := pkgio.ParseFormat(c.Format)
	return f
}

// CornerValue returns the parsed corner. Call after [Config.Validate].
func (c *Config) CornerValue() mosaic.Corner {
	corner, _ := mosaic.ParseCorner(c.Corner)
	return corner
}

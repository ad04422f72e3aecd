package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mosaic/pkg/cache"
	"github.com/matzehuels/mosaic/pkg/render/splittree"
)

func TestProgressReportsElapsed(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, LogInfo)).done("Rendered svg")

	assert.Regexp(t, regexp.MustCompile(`Rendered svg \(\d+(\.\d+)?[mµn]?s\)`), buf.String())
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	custom := newLogger(&bytes.Buffer{}, LogDebug)
	assert.Same(t, custom, loggerFromContext(withLogger(context.Background(), custom)))
}

// seedDiagram stores a rendered svg for sampleLayout so dot can answer from
// the cache without running Graphviz.
func seedDiagram(t *testing.T, dir string) {
	t.Helper()
	store, err := cache.NewFileCache(filepath.Join(dir, "cache", appName))
	require.NoError(t, err)
	dot := splittree.ToDOT(readJSONTree(t, sampleLayout), splittree.Options{})
	require.NoError(t, store.Set(context.Background(), cache.DiagramKey(dot, splittree.FormatSVG), []byte("<svg/>"), 0))
}

func TestVerboseReachesCommandLogger(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		env       string
		wantDebug bool
	}{
		{"default level", nil, "", false},
		{"verbose flag", []string{"-v"}, "", true},
		{"verbose long flag", []string{"--verbose"}, "", true},
		{"verbose from environment", nil, "true", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			seedDiagram(t, dir)
			if tt.env != "" {
				t.Setenv("MOSAIC_VERBOSE", tt.env)
			}

			args := append([]string{"dot", "-", "-t", "svg"}, tt.args...)
			res := run(t, sampleLayout, args...)
			require.NoError(t, res.err)
			assert.Equal(t, "<svg/>", res.stdout)

			if tt.wantDebug {
				assert.Contains(t, res.stderr, "diagram cache hit")
			} else {
				assert.NotContains(t, res.stderr, "diagram cache hit")
			}
		})
	}
}

func TestVerboseLogsLoadedConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "mosaic.yaml", "verbose: true\nformat: yaml\n")

	res := run(t, "", "build", "a")
	require.NoError(t, res.err)
	assert.Equal(t, "a\n", res.stdout)
	assert.Contains(t, res.stderr, "loaded config")
	assert.Contains(t, res.stderr, "mosaic.yaml")
}

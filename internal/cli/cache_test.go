package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mosaic/pkg/cache"
	"github.com/matzehuels/mosaic/pkg/render/splittree"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	dir, err := cacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg-cache", "mosaic"), dir)

	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", home)
	dir, err = cacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".cache", "mosaic"), dir)
}

func TestCachePathCommand(t *testing.T) {
	dir := isolate(t)

	res := run(t, "", "cache", "path")
	require.NoError(t, res.err)
	assert.Equal(t, filepath.Join(dir, "cache", "mosaic")+"\n", res.stdout)
}

func TestCacheClearCommand(t *testing.T) {
	dir := isolate(t)

	res := run(t, "", "cache", "clear")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Cache is empty")

	store, err := cache.NewFileCache(filepath.Join(dir, "cache", "mosaic"))
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "one", []byte("1"), 0))
	require.NoError(t, store.Set(ctx, "two", []byte("2"), 0))

	res = run(t, "", "cache", "clear")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Cleared 2 cached diagrams")

	_, ok, err := store.Get(ctx, "one")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRenderDiagramCacheHit(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	tree := readJSONTree(t, sampleLayout)
	dot := splittree.ToDOT(tree, splittree.Options{})
	key := cache.DiagramKey(dot, splittree.FormatSVG)
	require.NoError(t, store.Set(context.Background(), key, []byte("<svg>cached</svg>"), 0))

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetErr(io.Discard)

	c := New(io.Discard, LogInfo)
	data, err := c.renderDiagram(cmd, store, tree, splittree.FormatSVG, splittree.Options{})
	require.NoError(t, err)
	assert.Equal(t, "<svg>cached</svg>", string(data))

	data, err = c.renderDiagram(cmd, store, tree, splittree.FormatDOT, splittree.Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "digraph SplitTree {"))
}

func TestDiagramCacheDisabled(t *testing.T) {
	c := New(io.Discard, LogInfo)
	_, isNull := c.diagramCache(true).(*cache.NullCache)
	assert.True(t, isNull)

	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	_, isFile := c.diagramCache(false).(*cache.FileCache)
	assert.True(t, isFile)
	_, err := os.Stat(filepath.Join(os.Getenv("XDG_CACHE_HOME"), "mosaic"))
	assert.NoError(t, err)
}

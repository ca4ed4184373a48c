package wfconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrdyn/wfctile/wfconfig"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Basic(t *testing.T) {
	path := writeTemp(t, `
[[tiles]]
name = "grass.png"
symmetry = "X"

[[tiles]]
name = "path.png"
symmetry = "I"
weight = 2.5

[[neighbors]]
left = "grass"
right = "path"
`)

	cfg, err := wfconfig.LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Tiles, 2)
	assert.Equal(t, "grass.png", cfg.Tiles[0].Name)
	assert.Equal(t, "X", cfg.Tiles[0].Symmetry)
	require.NotNil(t, cfg.Tiles[1].Weight)
	assert.Equal(t, 2.5, *cfg.Tiles[1].Weight)
	require.Len(t, cfg.Neighbors, 1)
	assert.Equal(t, "grass", cfg.Neighbors[0].Left)
	assert.Equal(t, "path", cfg.Neighbors[0].Right)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := wfconfig.LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, wfconfig.ErrConfigRead)
}

func TestLoadConfig_BadToml(t *testing.T) {
	path := writeTemp(t, "this is not valid toml [[[")
	_, err := wfconfig.LoadConfig(path)
	assert.ErrorIs(t, err, wfconfig.ErrConfigParse)
}

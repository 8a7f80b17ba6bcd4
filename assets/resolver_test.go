package assets_test

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/grotto/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverPaths(t *testing.T) {
	r := assets.NewResolver("/opt/grotto/bin/")

	assert.Equal(t, "/opt/grotto/bin", r.Root())
	assert.Equal(t, filepath.Join("/opt/grotto/bin", "res", "textures", "brick.png"), r.AssetPath("textures/brick.png"))
	assert.Equal(t, filepath.Join("/opt/grotto/bin", "shaders", "basic.vert"), r.ShaderPath("basic.vert"))
	assert.Equal(t, filepath.Join("/opt/grotto/bin", "res", "brick.png"), r.AssetPath("./textures/../brick.png"))
}

func TestFromExecutable(t *testing.T) {
	r, err := assets.FromExecutable()
	require.NoError(t, err)

	info, err := os.Stat(r.Root())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpenAsset(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "res", "textures"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "res", "textures", "brick.txt"), []byte("brick"), 0o644))

	r := assets.NewResolver(root)

	f, err := r.OpenAsset("textures/brick.txt")
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "brick", string(data))

	_, err = r.OpenAsset("textures/missing.png")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.png")
}

package tileimg_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrdyn/wfctile/tileimg"
	"github.com/nrdyn/wfctile/variant"
)

func writeTestPNG(t *testing.T, dir, name string, size int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestFSLoader_LoadsPNG(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "a.png", 4, color.White)

	var loader tileimg.Loader = tileimg.FSLoader{}
	img, err := loader.Load(dir, "a.png")
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestFSLoader_MissingFile(t *testing.T) {
	loader := tileimg.FSLoader{}
	_, err := loader.Load(t.TempDir(), "missing.png")
	assert.Error(t, err)
}

func TestCompositor_Save_IncompleteSolution(t *testing.T) {
	c := tileimg.Compositor{}
	err := c.Save(filepath.Join(t.TempDir(), "out.png"), 2, 2, 4, []int32{0, -1, 0, 0}, nil)
	assert.ErrorIs(t, err, tileimg.ErrIncompleteSolution)
}

func TestCompositor_Save_Writes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	variants := []variant.Variant{{Index: 0, Label: "a", Weight: 1, Image: img}}

	c := tileimg.Compositor{}
	out := filepath.Join(t.TempDir(), "out.png")
	err := c.Save(out, 1, 1, 2, []int32{0}, variants)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

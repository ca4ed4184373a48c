package variant_test

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrdyn/wfctile/variant"
	"github.com/nrdyn/wfctile/wfconfig"
)

// fakeLoader returns a solid NxN image per tile name; it never touches disk.
type fakeLoader struct{ size int }

func (f fakeLoader) Load(folder, name string) (image.Image, error) {
	img := image.NewNRGBA(image.Rect(0, 0, f.size, f.size))
	return img, nil
}

func TestExpand_EmptyTileSet(t *testing.T) {
	_, err := variant.Expand(&wfconfig.Config{}, "tiles", fakeLoader{size: 4})
	assert.ErrorIs(t, err, variant.ErrEmptyTileSet)
}

func TestExpand_Cardinalities(t *testing.T) {
	cfg := &wfconfig.Config{
		Tiles: []wfconfig.Tile{
			{Name: "a.png", Symmetry: "X"},
			{Name: "b.png", Symmetry: "I"},
			{Name: "c.png", Symmetry: "L"},
			{Name: "d.png", Symmetry: "T"},
			{Name: "e.png", Symmetry: "F"},
			{Name: "f.png", Symmetry: "\\"},
		},
	}
	set, err := variant.Expand(cfg, "tiles", fakeLoader{size: 8})
	require.NoError(t, err)

	wantTotal := 1 + 2 + 4 + 4 + 8 + 2
	assert.Equal(t, wantTotal, len(set.Variants))
	assert.Equal(t, wantTotal, set.Actions.NumVariants())
	assert.Equal(t, 8, set.TileSize)

	// Invariant 5 (spec.md §8): A[t][0] == t for every variant.
	for v := 0; v < set.Actions.NumVariants(); v++ {
		assert.EqualValues(t, v, set.Actions.At(v, 0), "A[%d][0]", v)
	}
}

func TestExpand_DefaultWeightAndLabels(t *testing.T) {
	w := 3.0
	cfg := &wfconfig.Config{
		Tiles: []wfconfig.Tile{
			{Name: "grass.png", Symmetry: "I"},
			{Name: "path.png", Symmetry: "I", Weight: &w},
		},
	}
	set, err := variant.Expand(cfg, "tiles", fakeLoader{size: 4})
	require.NoError(t, err)

	assert.Equal(t, 1.0, set.Variants[0].Weight)
	assert.Equal(t, "grass 0", set.Variants[0].Label)
	assert.Equal(t, "grass 1", set.Variants[1].Label)
	assert.Equal(t, 3.0, set.Variants[2].Weight)
	assert.Equal(t, "path 0", set.Variants[2].Label)

	assert.Equal(t, 0, set.FirstOccurrence["grass"])
	assert.Equal(t, 2, set.FirstOccurrence["path"])
}

func TestExpand_BadTileName(t *testing.T) {
	cfg := &wfconfig.Config{Tiles: []wfconfig.Tile{{Name: "", Symmetry: "X"}}}
	_, err := variant.Expand(cfg, "tiles", fakeLoader{size: 4})
	assert.ErrorIs(t, err, variant.ErrBadTileName)
}

func TestExpand_TileSizeMismatch(t *testing.T) {
	cfg := &wfconfig.Config{
		Tiles: []wfconfig.Tile{
			{Name: "a.png", Symmetry: "X"},
			{Name: "b.png", Symmetry: "X"},
		},
	}
	_, err := variant.Expand(cfg, "tiles", sizedLoader{sizes: map[string]int{"a.png": 4, "b.png": 8}})
	assert.ErrorIs(t, err, variant.ErrTileSizeMismatch)
}

type sizedLoader struct{ sizes map[string]int }

func (s sizedLoader) Load(folder, name string) (image.Image, error) {
	sz, ok := s.sizes[name]
	if !ok {
		return nil, fmt.Errorf("no such tile %s", name)
	}
	return image.NewNRGBA(image.Rect(0, 0, sz, sz)), nil
}

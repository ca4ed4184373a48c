package variant

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nrdyn/wfctile/wfconfig"
)

// Expand reads cfg's declared tiles, enumerates every distinct oriented
// variant under each tile's symmetry class, loads and orients each
// variant's pixel payload via loader, and fills the corresponding rows of
// the shared action table. See spec.md §4.1.
//
// Variant 0 of a tile's block is the tile as declared. Variants 1..min(c-1,3)
// are successive 90° rotations of variant 0; variants 4..c-1 are horizontal
// reflections of variants 0..c-5 — built by rotating/reflecting the
// previously-built image in the same block, not by re-deriving from the
// source pixels, matching the reference implementation exactly.
//
// Complexity: O(T) image transforms, O(1) image loads per source tile.
func Expand(cfg *wfconfig.Config, folder string, loader Loader) (*Set, error) {
	if len(cfg.Tiles) == 0 {
		return nil, ErrEmptyTileSet
	}

	var variants []Variant
	firstOccurrence := make(map[string]int, len(cfg.Tiles))
	tileSize := 0

	// First pass: determine total variant count so the action table can be
	// allocated once, then fill it block by block.
	cardinalities := make([]int, len(cfg.Tiles))
	total := 0
	for i, tile := range cfg.Tiles {
		sym := ParseSymmetry(tile.Symmetry)
		cardinalities[i] = sym.Cardinality()
		total += cardinalities[i]
	}
	actions := NewActionTable(total)

	for ti, tile := range cfg.Tiles {
		sym := ParseSymmetry(tile.Symmetry)
		c := cardinalities[ti]
		base := len(variants)

		stem, err := stemOf(tile.Name)
		if err != nil {
			return nil, err
		}
		firstOccurrence[stem] = base

		weight := 1.0
		if tile.Weight != nil {
			weight = *tile.Weight
		}

		img, err := loader.Load(folder, tile.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTileImageUnreadable, tile.Name, err)
		}
		b := img.Bounds()
		w, h := b.Dx(), b.Dy()
		if w != h {
			return nil, fmt.Errorf("%w: %s: not square (%dx%d)", ErrTileSizeMismatch, tile.Name, w, h)
		}
		if tileSize == 0 {
			tileSize = w
		} else if w != tileSize {
			return nil, fmt.Errorf("%w: %s: expected %dx%d, got %dx%d", ErrTileSizeMismatch, tile.Name, tileSize, tileSize, w, w)
		}

		for i := 0; i < c; i++ {
			a1 := sym.Rotate(i)
			a2 := sym.Rotate(a1)
			a3 := sym.Rotate(a2)
			row := [8]int32{
				int32(i + base),
				int32(a1 + base),
				int32(a2 + base),
				int32(a3 + base),
				int32(sym.Reflect(i) + base),
				int32(sym.Reflect(a1) + base),
				int32(sym.Reflect(a2) + base),
				int32(sym.Reflect(a3) + base),
			}
			for k, v := range row {
				actions.Set(base+i, k, v)
			}

			var vimg = img
			switch {
			case i == 0:
				vimg = img
			case i <= 3:
				vimg = rotate90(variants[base+i-1].Image)
			default:
				vimg = fliph(variants[base+i-4].Image)
			}

			variants = append(variants, Variant{
				Index:  base + i,
				Label:  fmt.Sprintf("%s %d", stem, i),
				Weight: weight,
				Image:  vimg,
			})
		}
	}

	return &Set{
		Variants:        variants,
		Actions:         actions,
		FirstOccurrence: firstOccurrence,
		TileSize:        tileSize,
	}, nil
}

// stemOf extracts the file stem (name without extension) used as a tile's
// map key, matching the reference implementation's Path::file_stem.
func stemOf(name string) (string, error) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		return "", fmt.Errorf("%w: %q", ErrBadTileName, name)
	}
	return stem, nil
}

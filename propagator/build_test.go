package propagator_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrdyn/wfctile/propagator"
	"github.com/nrdyn/wfctile/variant"
	"github.com/nrdyn/wfctile/wfconfig"
)

type solidLoader struct{ size int }

func (s solidLoader) Load(folder, name string) (image.Image, error) {
	return image.NewNRGBA(image.Rect(0, 0, s.size, s.size)), nil
}

func expandX(t *testing.T, names ...string) *variant.Set {
	t.Helper()
	var tiles []wfconfig.Tile
	for _, n := range names {
		tiles = append(tiles, wfconfig.Tile{Name: n, Symmetry: "X"})
	}
	set, err := variant.Expand(&wfconfig.Config{Tiles: tiles}, "tiles", solidLoader{size: 4})
	require.NoError(t, err)
	return set
}

func TestBuild_EmptyNeighborSet(t *testing.T) {
	set := expandX(t, "a.png")
	_, err := propagator.Build(set, nil)
	assert.ErrorIs(t, err, propagator.ErrEmptyNeighborSet)
}

func TestBuild_UnknownStem(t *testing.T) {
	set := expandX(t, "a.png")
	_, err := propagator.Build(set, []wfconfig.Neighbor{{Left: "a", Right: "ghost"}})
	assert.ErrorIs(t, err, propagator.ErrUnknownTileStem)
}

func TestBuild_BadOrientationIndex(t *testing.T) {
	set := expandX(t, "a.png")
	_, err := propagator.Build(set, []wfconfig.Neighbor{{Left: "a 9", Right: "a"}})
	assert.ErrorIs(t, err, propagator.ErrBadOrientationIndex)
}

// S1: single self-adjacent X tile; every direction's propagator for the
// sole variant 0 must admit only variant 0.
func TestBuild_SingleSelfAdjacentTile(t *testing.T) {
	set := expandX(t, "a.png")
	p, err := propagator.Build(set, []wfconfig.Neighbor{{Left: "a", Right: "a"}})
	require.NoError(t, err)

	for d := propagator.Direction(0); d < 4; d++ {
		assert.Equal(t, []int32{0}, p.Neighbors(d, 0), "direction %d", d)
	}
}

// A single declared {a,b} pair closes into a bidirectional West/East
// relation for both variants, per the four set2 calls §4.2 describes: the
// horizontal block fires set2(West, R, L) and set2(West, A[L][4], A[R][4]),
// and for X tiles A[t][4]==t, so both (b,a) and (a,b) land in dense[West].
// A "declare only A->B" one-way adjacency is not expressible this way — the
// closure always yields a and b as mutual West/East neighbors — so no
// direction/variant ends up with an empty list and Diagnostics stays empty.
func TestBuild_OneWayAdjacency(t *testing.T) {
	set := expandX(t, "a.png", "b.png")
	aIdx := int32(set.FirstOccurrence["a"])
	bIdx := int32(set.FirstOccurrence["b"])

	p, err := propagator.Build(set, []wfconfig.Neighbor{{Left: "a", Right: "b"}})
	require.NoError(t, err)

	assert.Contains(t, p.Neighbors(propagator.West, bIdx), aIdx)
	assert.Contains(t, p.Neighbors(propagator.West, aIdx), bIdx)
	assert.Empty(t, p.Diagnostics)
}

// Invariant 4 (spec.md §8): t2 ∈ P[d][t1] ⇔ t1 ∈ P[opp(d)][t2].
func TestBuild_BidirectionalClosure(t *testing.T) {
	set := expandX(t, "a.png", "b.png", "c.png")
	p, err := propagator.Build(set, []wfconfig.Neighbor{
		{Left: "a", Right: "b"},
		{Left: "b", Right: "c"},
		{Left: "c", Right: "a"},
	})
	require.NoError(t, err)

	n := p.NumVariants()
	for d := propagator.Direction(0); d < 4; d++ {
		for t1 := 0; t1 < n; t1++ {
			for _, t2 := range p.Neighbors(d, int32(t1)) {
				assert.Contains(t, p.Neighbors(propagator.Opposite(d), t2), int32(t1))
			}
		}
	}
}

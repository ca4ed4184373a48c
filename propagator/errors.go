package propagator

import "errors"

// Sentinel errors for propagator construction.
var (
	// ErrEmptyNeighborSet indicates the configuration declared no neighbor pairs.
	ErrEmptyNeighborSet = errors.New("propagator: neighbor set is empty")

	// ErrUnknownTileStem indicates a neighbor declaration referenced a tile
	// stem that was never declared in the tile set.
	ErrUnknownTileStem = errors.New("propagator: unknown tile stem")

	// ErrBadOrientationIndex indicates a neighbor declaration's orientation
	// suffix is not a valid index for that tile's symmetry class.
	ErrBadOrientationIndex = errors.New("propagator: bad orientation index")
)

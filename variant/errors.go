package variant

import "errors"

// Sentinel errors for tile expansion.
var (
	// ErrEmptyTileSet indicates the configuration declared no tiles.
	ErrEmptyTileSet = errors.New("variant: tile set is empty")

	// ErrTileImageUnreadable indicates the image loader could not produce
	// a pixel buffer for a declared tile.
	ErrTileImageUnreadable = errors.New("variant: tile image unreadable")

	// ErrBadTileName indicates a tile's declared name has no usable file stem.
	ErrBadTileName = errors.New("variant: bad tile name")

	// ErrTileSizeMismatch indicates a tile's image does not match the
	// square tile_size established by the first tile in the set.
	ErrTileSizeMismatch = errors.New("variant: tile image size mismatch")
)

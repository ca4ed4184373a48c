// Package variant expands a declared tile set into its dense set of
// oriented variants and builds the 8-column symmetry action table used to
// derive adjacencies under rotation and reflection.
//
// What:
//
//   - Symmetry enumerates the six symmetry classes (L, T, I, Slash, F, X)
//     and exposes each class's cardinality and its pure rotate/reflect
//     group action (see Symmetry.Cardinality, Symmetry.Rotate, Symmetry.Reflect).
//   - Expand walks a wfconfig.Config's declared tiles, reserves a
//     contiguous block of variant indices per tile, fills the ActionTable
//     a row at a time, and loads+orients every variant's pixel payload via
//     a tileimg.Loader.
//   - ActionTable is a flat T×8 table: column 0..3 are the four rotations,
//     column 4..7 are those rotations composed with a horizontal flip.
//     ActionTable.At(t, 0) == t always holds.
//
// Why:
//
//   - Every later stage (propagator, wave) reasons purely in terms of
//     dense variant indices; Expand is the one place pixel orientation and
//     symmetry-class bookkeeping happens.
//
// Complexity:
//
//   - Expand: O(T) variant creation + O(1) image loads per source tile;
//     each non-base variant's image is produced by a pixel-by-pixel
//     rotate90 or fliph of an earlier variant in the same block.
//
// Errors:
//
//   - ErrEmptyTileSet: the config declared no tiles.
//   - ErrTileImageUnreadable: the image loader failed for some tile.
//   - ErrBadTileName: a tile's file name has no usable stem.
package variant

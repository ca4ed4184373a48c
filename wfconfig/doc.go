// Package wfconfig defines the input configuration model the solver
// consumes — the declared tile set and legal horizontal adjacencies — and
// a TOML loader that fills it.
//
// What:
//
//   - Config{Tiles, Neighbors} mirrors the "config.toml" shape original
//     tiled-WFC implementations use: a list of tiles (name, symmetry,
//     optional weight) and a list of left→right adjacency declarations.
//   - LoadConfig reads and decodes a config.toml file from disk.
//
// Why:
//
//   - Config parsing is explicitly an external collaborator of the core
//     solver (spec.md §1), but the module still needs a concrete,
//     testable implementation to be runnable end to end.
//
// Errors:
//
//   - ErrConfigRead: the config file could not be opened/read.
//   - ErrConfigParse: the file's contents are not valid TOML for Config.
package wfconfig

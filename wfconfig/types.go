package wfconfig

import "errors"

// Sentinel errors for configuration loading.
var (
	// ErrConfigRead indicates the configuration file could not be read.
	ErrConfigRead = errors.New("wfconfig: failed to read config file")

	// ErrConfigParse indicates the configuration file is not valid TOML
	// for the Config shape.
	ErrConfigParse = errors.New("wfconfig: failed to parse config file")
)

// Tile declares one source tile: its image file name (extension included;
// the stem is used as the tile's key), its symmetry class letter, and an
// optional relative sampling weight (default 1.0 when nil or omitted).
type Tile struct {
	Name     string   `toml:"name"`
	Symmetry string   `toml:"symmetry"`
	Weight   *float64 `toml:"weight"`
}

// Neighbor declares that Right may sit immediately east of Left in the
// declared orientation. Each side is either a bare tile stem ("grass") or
// a stem followed by a space and an orientation index ("grass 1").
type Neighbor struct {
	Left  string `toml:"left"`
	Right string `toml:"right"`
}

// Config is the parsed tile/neighbor declaration consumed by variant.Expand
// and propagator.Build.
type Config struct {
	Tiles     []Tile     `toml:"tiles"`
	Neighbors []Neighbor `toml:"neighbors"`
}

package tileimg

import "errors"

// ErrIncompleteSolution is returned by Compositor.Save when asked to
// rasterize a grid containing at least one unobserved cell (spec.md §7).
var ErrIncompleteSolution = errors.New("tileimg: solution is incomplete, cannot rasterize")

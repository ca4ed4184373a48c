// Package tileimg loads tile images from disk and rasterizes a finished
// solve back into a single PNG (spec.md §6, §7 ErrIncompleteSolution).
//
// What:
//
//   - FSLoader implements variant.Loader by opening
//     "<folder>/<name>" and decoding it with the standard image
//     package; no pack example or other_examples/ file offers an image
//     decoding library, so this is the one component of the module
//     deliberately built on the standard library (documented in
//     DESIGN.md).
//   - Compositor.Save rasterizes a completed solver grid into a single
//     W*tileSize × H*tileSize PNG, mirroring original_source's
//     ImageBuffer::copy_from loop.
package tileimg

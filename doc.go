// Package wfctile is a tiled Wave Function Collapse solver: given square
// image tiles annotated with a symmetry class and weight, plus a list of
// legal horizontal adjacencies, it expands the tile set under symmetry,
// derives the full 4-direction adjacency relation, and runs an
// observe/propagate loop until every cell of a W×H grid holds a single
// consistent tile variant (or a contradiction forces a restart with a
// fresh seed).
//
// 🧩 What is wfctile?
//
//	A small, dependency-light constraint solver organized as:
//
//	  • variant/    — tile expansion & the 8-column symmetry action table
//	  • propagator/ — the 4-direction adjacency relation, closed under symmetry
//	  • wave/       — the per-cell boolean wave, compatibility counters, entropy
//	  • solver/     — cell-selection heuristics and the observe/ban/propagate loop
//	  • rngx/       — a seeded, deterministic ChaCha8 RNG and weighted sampling
//	  • wfconfig/   — the TOML tile/neighbor configuration model
//	  • tileimg/    — tile image loading and final-grid compositing
//	  • cmd/wfctile — a CLI that wires the above into a runnable tool
//
// ✨ Why this shape?
//
//   - The solver is the entire point: single-threaded, synchronous,
//     deterministic given (config, seed, heuristic, periodic).
//   - Everything else — TOML, image I/O, CLI, progress, logging — is glue
//     consumed or produced through narrow interfaces, never reached into.
//
// See SPEC_FULL.md and DESIGN.md for the full design rationale.
package wfctile

// Package solver ties tile expansion (variant), adjacency (propagator)
// and wave state (wave) together into the select/observe/propagate/run
// loop spec.md §4.4–§4.8 describes.
//
// What:
//
//   - Heuristic selects which of the three cell-selection strategies
//     (ScanLine, Entropy, MRV) a Solver uses to pick the next cell to
//     collapse.
//   - Solver.Run drives one deterministic attempt: clear the wave, loop
//     select → observe → propagate until no cell remains to collapse or
//     a contradiction is found, then finalize.
//   - Solver.Cells and Solver.Dump expose the finished (or partial)
//     grid for rasterization and diagnostics.
//
// The loop is single-threaded and synchronous by design (spec.md §5):
// no goroutines, no context.Context, the only cancellation knob is the
// step limit passed to Run.
package solver

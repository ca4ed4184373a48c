// Package wave holds the per-cell boolean wave, its compatibility
// counters, weighted-entropy bookkeeping, and the ban/propagate machinery
// that keeps them consistent (spec.md §3 Wave/Compatibility
// counters/Per-cell weighted sums, §4.3, §4.6, §4.7).
//
// What:
//
//   - State is a W×H grid of boolean supersets over [0, T) variants, laid
//     out as flat row-major slices (cell*T+variant, and (cell*T+variant)*4+dir
//     for the per-direction compatibility counters) for the cache locality
//     spec.md §9 calls for — never nested slices or per-cell maps.
//   - Clear resets State to its initial fully-unobserved configuration;
//     Ban removes one (cell, variant) and updates every dependent sum;
//     Propagate drains the ban stack, decrementing neighbor compatibility
//     counters and cascading further bans until the stack empties or a
//     contradiction (a cell with zero live variants) is found.
//
// Contradiction detection is checked at the moment of the offending ban,
// not via the reference implementation's `sums_of_ones[0] > 0` proxy —
// spec.md §9 flags that proxy as a bug and forbids replicating it.
package wave

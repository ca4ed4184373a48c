// Package rngx provides the solver's single source of randomness: a
// seeded, deterministic byte stream and the weighted-sampling helper
// built on top of it (spec.md §4.5, §5, §8 invariant 8).
//
// What:
//
//   - ChaCha8 wraps golang.org/x/crypto/chacha20, keyed by a 64-bit seed,
//     and exposes Uint64/Float64 draws consumed by the solver's observe
//     step and its entropy tie-break noise. Despite the name, the
//     underlying cipher runs the standard 20 rounds (x/crypto has no
//     reduced-round variant) rather than the 8 rounds of the reference's
//     rand_chacha::ChaCha8Rng; the name tracks the reference's stream for
//     readability, not its round count, and the extra rounds only cost
//     throughput, not determinism.
//   - WeightedSample implements the prefix-sum sampler: given a
//     distribution and a draw r ∈ [0,1), returns the least index whose
//     cumulative weight meets r·Σweights.
//
// Why: identical seed, tile set, neighbor set, heuristic and periodicity
// must yield bit-identical runs. Centralizing every draw behind one
// stream keeps that guarantee trivial to audit.
package rngx

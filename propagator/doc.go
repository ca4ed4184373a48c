// Package propagator expands a declared set of horizontal neighbor pairs
// into the full 4-direction adjacency relation, closed under the symmetry
// of the participating tiles (spec.md §4.2).
//
// What:
//
//   - Build consumes a variant.Set and a []wfconfig.Neighbor list and
//     produces a Propagator: four per-variant lists of admissible
//     neighbor variants, one list per direction.
//   - Directions are indexed 0=west, 1=south, 2=east, 3=north;
//     Opposite(d) gives the paired direction ({0,2} and {1,3}).
//
// Why:
//
//   - A single declared "A may have B to its east" adjacency implies, by
//     the symmetry group of A and B, three further horizontal adjacencies
//     and four vertical ones; Build derives all of them so the solver
//     never special-cases symmetry again.
//
// Invariant (spec.md §8, invariant 4): t2 ∈ P[d][t1] ⇔ t1 ∈ P[opp(d)][t2].
//
// Diagnostics:
//
//   - A (direction, variant) pair with no admissible neighbor is not an
//     error — it is recorded in Propagator.Diagnostics and logged via
//     logrus, matching the reference implementation's eprintln warning,
//     but any solve that demands that direction will contradict.
package propagator

package propagator

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/nrdyn/wfctile/variant"
	"github.com/nrdyn/wfctile/wfconfig"
)

// Build expands neighbors into the full 4-direction adjacency relation
// over set's variants, closed under symmetry (spec.md §4.2).
func Build(set *variant.Set, neighbors []wfconfig.Neighbor) (*Propagator, error) {
	if len(neighbors) == 0 {
		return nil, ErrEmptyNeighborSet
	}

	n := set.Actions.NumVariants()
	// dense[d] is a flat T×T bool matrix: dense[d][t1*n+t2] == true means
	// t2 is an admissible d-neighbor of t1.
	dense := [4][]bool{
		make([]bool, n*n),
		make([]bool, n*n),
		make([]bool, n*n),
		make([]bool, n*n),
	}
	set2 := func(d Direction, t1, t2 int32) { dense[d][int(t1)*n+int(t2)] = true }

	for _, nb := range neighbors {
		L, err := resolve(set, nb.Left)
		if err != nil {
			return nil, err
		}
		R, err := resolve(set, nb.Right)
		if err != nil {
			return nil, err
		}
		A := set.Actions
		D := A.At(int(L), 1)
		U := A.At(int(R), 1)

		// Horizontal (d=West): (R,L), (A[R][6],A[L][6]), (A[L][4],A[R][4]), (A[L][2],A[R][2]).
		set2(West, R, L)
		set2(West, A.At(int(R), 6), A.At(int(L), 6))
		set2(West, A.At(int(L), 4), A.At(int(R), 4))
		set2(West, A.At(int(L), 2), A.At(int(R), 2))

		// Vertical (d=South): (U,D), (A[D][6],A[U][6]), (A[U][4],A[D][4]), (A[D][2],A[U][2]).
		set2(South, U, D)
		set2(South, A.At(int(D), 6), A.At(int(U), 6))
		set2(South, A.At(int(U), 4), A.At(int(D), 4))
		set2(South, A.At(int(D), 2), A.At(int(U), 2))
	}

	// Derive opposite directions: P_dense[East][t2][t1] = P_dense[West][t1][t2];
	// P_dense[North][t2][t1] = P_dense[South][t1][t2].
	for t1 := 0; t1 < n; t1++ {
		for t2 := 0; t2 < n; t2++ {
			if dense[West][t1*n+t2] {
				dense[East][t2*n+t1] = true
			}
			if dense[South][t1*n+t2] {
				dense[North][t2*n+t1] = true
			}
		}
	}

	p := &Propagator{}
	for d := Direction(0); d < 4; d++ {
		p.Dirs[d] = make([][]int32, n)
		for t1 := 0; t1 < n; t1++ {
			row := dense[d][t1*n : t1*n+n]
			var list []int32
			for t2, ok := range row {
				if ok {
					list = append(list, int32(t2))
				}
			}
			p.Dirs[d][t1] = list
			if len(list) == 0 {
				msg := fmt.Sprintf("tile %s has no neighbors in direction %d", set.Label(t1), d)
				log.Warn(msg)
				p.Diagnostics = append(p.Diagnostics, msg)
			}
		}
	}

	return p, nil
}

// resolve parses a neighbor descriptor ("stem" or "stem k") and returns
// A[first_occurrence[stem]][k], the variant reached by applying transform
// column k to the tile's base (as-declared) variant. k defaults to 0 and
// must lie in [0, c), c being the tile's symmetry-class cardinality.
func resolve(set *variant.Set, descriptor string) (int32, error) {
	fields := strings.Fields(descriptor)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty descriptor", ErrUnknownTileStem)
	}
	stem := fields[0]
	base, ok := set.FirstOccurrence[stem]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTileStem, stem)
	}

	col := 0
	if len(fields) > 1 {
		k, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrBadOrientationIndex, descriptor, err)
		}
		col = k
	}
	// The tile's block runs from base to the next tile's base (or the end of
	// the set); its length is the symmetry class's cardinality.
	card := len(set.Variants) - base
	for _, b := range set.FirstOccurrence {
		if b > base && b-base < card {
			card = b - base
		}
	}
	if col < 0 || col >= card {
		return 0, fmt.Errorf("%w: %q", ErrBadOrientationIndex, descriptor)
	}

	return set.Actions.At(base, col), nil
}

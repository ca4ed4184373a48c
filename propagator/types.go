package propagator

// Direction indexes one of the four orthogonal neighbor directions.
type Direction int

const (
	// West is the -x direction.
	West Direction = 0
	// South is the +y direction.
	South Direction = 1
	// East is the +x direction.
	East Direction = 2
	// North is the -y direction.
	North Direction = 3
)

// DX and DY give the coordinate offset for each Direction, indexed the
// same way: (x+DX[d], y+DY[d]) is the neighbor of (x,y) in direction d.
var (
	DX = [4]int{-1, 0, 1, 0}
	DY = [4]int{0, 1, 0, -1}
)

// opposite maps each Direction to its paired direction: {West,East} and
// {South,North}.
var opposite = [4]Direction{East, North, West, South}

// Opposite returns the direction paired with d.
func Opposite(d Direction) Direction {
	return opposite[d]
}

// Propagator is the full 4-direction adjacency relation. Dirs[d][t1] lists
// every t2 that may occupy the d-neighbor of a cell currently holding t1.
// Immutable once built by Build.
type Propagator struct {
	Dirs [4][][]int32

	// Diagnostics records "(direction, variant) has no admissible
	// neighbor" warnings raised during Build; a non-empty entry does not
	// fail construction but guarantees a contradiction on first demand.
	Diagnostics []string
}

// Neighbors returns the admissible variants for the neighbor of a cell
// holding variant t1 in direction d.
func (p *Propagator) Neighbors(d Direction, t1 int32) []int32 {
	return p.Dirs[d][t1]
}

// NumVariants returns T, the number of variants this propagator was built for.
func (p *Propagator) NumVariants() int {
	return len(p.Dirs[West])
}

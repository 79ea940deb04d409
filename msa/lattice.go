package msa

import "math"

// sentinel is strictly below any reachable score.
const sentinel = math.MinInt / 4

// lattice is a dense N-dimensional score array stored row-major in a flat
// slice: the last axis is contiguous, so increasing flat index enumerates
// coordinates in lexicographic order.
type lattice struct {
	dims    []int // Lₖ+1 per axis
	strides []int // flat distance of one step along axis k
	offsets []int // offsets[mask] = flat distance of move mask
	cells   []int
}

// LatticeSize returns Π(lengths[k]+1) and false if the product overflows
// int or a length is negative. Use it to reject a problem before Align
// allocates anything.
func LatticeSize(lengths ...int) (int, bool) {
	total := 1
	for _, l := range lengths {
		if l < 0 {
			return 0, false
		}
		d := l + 1
		if total > math.MaxInt/d {
			return 0, false
		}
		total *= d
	}

	return total, true
}

// LatticeWork estimates the fill cost of aligning sequences of the given
// lengths: cells × (2ᴺ−1) moves × N(N−1)/2 pairs per column (at least one
// pair, so a single sequence still counts its cells). Returns false on
// overflow or a negative length.
func LatticeWork(lengths ...int) (int, bool) {
	cells, ok := LatticeSize(lengths...)
	if !ok {
		return 0, false
	}
	n := len(lengths)
	if n >= 62 {
		return 0, false
	}
	moves := 1<<n - 1
	pairs := max(n*(n-1)/2, 1)

	work := cells
	for _, f := range []int{moves, pairs} {
		if f == 0 {
			return 0, true
		}
		if work > math.MaxInt/f {
			return 0, false
		}
		work *= f
	}

	return work, true
}

// newLattice allocates the lattice for the given lengths and fills every
// cell with sentinel. The caller has already checked the size.
func newLattice(lengths []int, total int) *lattice {
	n := len(lengths)
	lat := &lattice{
		dims:    make([]int, n),
		strides: make([]int, n),
		offsets: make([]int, 1<<n),
		cells:   make([]int, total),
	}
	stride := 1
	for k := n - 1; k >= 0; k-- {
		lat.dims[k] = lengths[k] + 1
		lat.strides[k] = stride
		stride *= lat.dims[k]
	}
	for mask := 1; mask < 1<<n; mask++ {
		for k := 0; k < n; k++ {
			if moves(mask, n, k) {
				lat.offsets[mask] += lat.strides[k]
			}
		}
	}
	for i := range lat.cells {
		lat.cells[i] = sentinel
	}

	return lat
}

// next advances coordinate p to its row-major successor (odometer step).
func (lat *lattice) next(p []int) {
	for k := len(p) - 1; k >= 0; k-- {
		p[k]++
		if p[k] < lat.dims[k] {
			return
		}
		p[k] = 0
	}
}

// moves reports whether sequence k advances under move mask. Bit N−1−k
// belongs to sequence k, so ascending masks enumerate delta tuples in
// lexicographic order: (0,…,0,1) first, (1,…,1) last.
func moves(mask, n, k int) bool {
	return mask>>(n-1-k)&1 == 1
}

// blocked returns the mask of sequences that cannot move back from p
// (pₖ == 0). A move is valid iff mask&blocked == 0.
func blocked(p []int) int {
	n := len(p)
	b := 0
	for k, v := range p {
		if v == 0 {
			b |= 1 << (n - 1 - k)
		}
	}

	return b
}

package msa

import "github.com/katalvlaran/lvmsa/scoring"

// problem is the validated, encoded input of one Align call. Its scratch
// buffers make columnScore allocation-free; a problem is never shared.
type problem struct {
	m       *scoring.Matrix
	n       int
	lengths []int
	raw     [][]byte // residues as given
	enc     [][]int  // residues as matrix indices
	gap     int      // matrix index of the gap symbol
	endGaps EndGapPolicy

	sym  []int  // scratch: matrix index per sequence for the current column
	done []bool // scratch: sequence already finished before the column
}

// columnScore is the sum-of-pairs score of the column that enters p by
// move mask. Sequence k contributes residue pₖ−1 when it advances, the gap
// symbol otherwise. Under EndGapsFree a pair is skipped when either member
// had no residues left before the column (pₖ−δₖ == Lₖ).
func (pb *problem) columnScore(p []int, mask int) int {
	for k := 0; k < pb.n; k++ {
		from := p[k]
		if moves(mask, pb.n, k) {
			pb.sym[k] = pb.enc[k][p[k]-1]
			from--
		} else {
			pb.sym[k] = pb.gap
		}
		pb.done[k] = pb.endGaps == EndGapsFree && from == pb.lengths[k]
	}

	sum := 0
	for i := 0; i < pb.n; i++ {
		if pb.done[i] {
			continue
		}
		for j := i + 1; j < pb.n; j++ {
			if pb.done[j] {
				continue
			}
			sum += pb.m.At(pb.sym[i], pb.sym[j])
		}
	}

	return sum
}

// fill computes every cell in one monotone row-major pass. The origin is
// the base case 0; each other cell is written exactly once, after all of
// its predecessors (p−δ precedes p lexicographically).
func (pb *problem) fill(lat *lattice) {
	lat.cells[0] = 0

	p := make([]int, pb.n)
	full := 1 << pb.n
	for idx := 1; idx < len(lat.cells); idx++ {
		lat.next(p)
		b := blocked(p)
		best := sentinel
		for mask := 1; mask < full; mask++ {
			if mask&b != 0 {
				continue
			}
			s := pb.columnScore(p, mask) + lat.cells[idx-lat.offsets[mask]]
			if s > best {
				best = s
			}
		}
		lat.cells[idx] = best
	}
}

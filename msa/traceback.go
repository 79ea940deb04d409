package msa

import "slices"

// traceback walks from the corner back to the origin and returns the move
// of every column in forward order.
//
// Move choice follows policy; among equally good moves the greatest mask
// wins (the last one enumerated, i.e. the lexicographically greatest delta
// tuple, which prefers advancing more sequences at once).
func (pb *problem) traceback(lat *lattice, policy TracebackPolicy) []int {
	p := slices.Clone(pb.lengths)
	idx := len(lat.cells) - 1
	full := 1 << pb.n

	var path []int
	for idx != 0 {
		b := blocked(p)
		bestMask, bestVal := 0, sentinel
		for mask := 1; mask < full; mask++ {
			if mask&b != 0 {
				continue
			}
			v := lat.cells[idx-lat.offsets[mask]]
			if policy == TracebackConsistent {
				v += pb.columnScore(p, mask)
			}
			if v >= bestVal {
				bestMask, bestVal = mask, v
			}
		}

		path = append(path, bestMask)
		idx -= lat.offsets[bestMask]
		for k := 0; k < pb.n; k++ {
			if moves(bestMask, pb.n, k) {
				p[k]--
			}
		}
	}
	slices.Reverse(path)

	return path
}

// rows renders the forward move path as one gapped string per sequence.
func (pb *problem) rows(path []int, marker byte) []string {
	out := make([]string, pb.n)
	buf := make([]byte, len(path))
	for k := 0; k < pb.n; k++ {
		pos := 0
		for c, mask := range path {
			if moves(mask, pb.n, k) {
				buf[c] = pb.raw[k][pos]
				pos++
			} else {
				buf[c] = marker
			}
		}
		out[k] = string(buf)
	}

	return out
}

package msa

import (
	"fmt"

	"github.com/katalvlaran/lvmsa/scoring"
)

// SumOfPairs scores an existing gapped alignment with the engine's matrix,
// gap marker and end-gap policy. For an alignment produced by this engine
// under TracebackConsistent the result equals Alignment.Score.
//
// Each row's gap markers map to the matrix gap symbol; all other bytes must
// be in the alphabet.
func (e *Engine) SumOfPairs(rows []string) (int, error) {
	n := len(rows)
	if n == 0 {
		return 0, ErrDegenerateInput
	}
	width := len(rows[0])
	for k, r := range rows {
		if len(r) != width {
			return 0, fmt.Errorf("row %d has %d columns, row 0 has %d: %w", k, len(r), width, ErrRaggedAlignment)
		}
	}

	marker := e.opts.gapMarker
	gap := e.m.GapIndex()
	free := e.opts.endGaps == EndGapsFree

	// residues per row, to know when a sequence is finished
	total := make([]int, n)
	for k, r := range rows {
		for i := 0; i < width; i++ {
			if r[i] != marker {
				total[k]++
			}
		}
	}

	consumed := make([]int, n)
	sym := make([]int, n)
	done := make([]bool, n)
	sum := 0
	for c := 0; c < width; c++ {
		for k, r := range rows {
			done[k] = free && consumed[k] == total[k]
			if r[c] == marker {
				sym[k] = gap
				continue
			}
			idx, ok := e.m.Index(r[c])
			if !ok {
				return 0, fmt.Errorf("row %d column %d: residue %q: %w: %w",
					k, c, r[c], ErrInvalidInput, scoring.ErrUnknownSymbol)
			}
			sym[k] = idx
			consumed[k]++
		}
		for i := 0; i < n; i++ {
			if done[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !done[j] {
					sum += e.m.At(sym[i], sym[j])
				}
			}
		}
	}

	return sum, nil
}

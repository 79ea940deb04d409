// SPDX-License-Identifier: MIT

package scoring

import (
	"bytes"
	_ "embed"
	"fmt"
)

//go:embed data/blosum62.txt
var blosum62 []byte

// BLOSUM62 returns the standard BLOSUM62 protein matrix, gap symbol '*'.
// Each call parses the embedded table and returns an independent Matrix.
func BLOSUM62() (*Matrix, error) {
	return Parse(bytes.NewReader(blosum62))
}

// Uniform builds a toy matrix over alphabet plus a gap symbol: identical
// residues score match, different residues mismatch, residue-vs-gap gap,
// and gap-vs-gap 0. The gap symbol must not already be in alphabet.
//
// Example: Uniform("ACGT", 1, -1, -2) is the classic +1/-1/-2 DNA scheme.
func Uniform(alphabet string, match, mismatch, gap int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if bytes.IndexByte([]byte(alphabet), o.gap) >= 0 {
		return nil, fmt.Errorf("Uniform: gap %q listed in alphabet: %w", o.gap, ErrDuplicateSymbol)
	}
	m, err := newMatrix(append([]byte(alphabet), o.gap), o.gap)
	if err != nil {
		return nil, err
	}
	g := m.GapIndex()
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			var s int
			switch {
			case i == g && j == g:
				s = 0
			case i == g || j == g:
				s = gap
			case i == j:
				s = match
			default:
				s = mismatch
			}
			m.data[i*m.n+j] = s
		}
	}

	return m, nil
}

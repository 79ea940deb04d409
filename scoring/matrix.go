// SPDX-License-Identifier: MIT

// Package scoring: Matrix is a dense, row-major table of int scores keyed by
// residue byte. Storage follows the flat-slice layout of a dense matrix:
// cell (i,j) lives at data[i*n+j].
package scoring

import (
	"fmt"
	"strings"
)

// noIndex marks a byte that is not part of the alphabet.
const noIndex = -1

// Matrix is an immutable substitution score table.
type Matrix struct {
	alphabet []byte   // symbols in header order
	index    [256]int // symbol → row/col, noIndex if absent
	gap      byte     // reserved gap symbol, always in alphabet
	n        int      // len(alphabet)
	data     []int    // n*n scores, row-major
}

// New builds a Matrix from an alphabet (one byte per symbol) and an n×n
// score table whose rows and columns follow the alphabet order.
//
// Stage 1 (Validate): non-empty alphabet, unique symbols, square table,
// gap symbol present, symmetry (unless disabled).
// Stage 2 (Prepare): copy scores into flat storage, build the index.
// Complexity: O(n²).
func New(alphabet string, scores [][]int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	m, err := newMatrix([]byte(alphabet), o.gap)
	if err != nil {
		return nil, err
	}
	if len(scores) != m.n {
		return nil, fmt.Errorf("New: %d rows for %d symbols: %w", len(scores), m.n, ErrNonSquare)
	}
	for i, row := range scores {
		if len(row) != m.n {
			return nil, fmt.Errorf("New: row %q has %d values, want %d: %w",
				m.alphabet[i], len(row), m.n, ErrNonSquare)
		}
		copy(m.data[i*m.n:(i+1)*m.n], row)
	}
	if o.checkSymmetry {
		if err = m.validateSymmetric(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// newMatrix allocates an empty table for alphabet and validates its symbols.
func newMatrix(alphabet []byte, gap byte) (*Matrix, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	m := &Matrix{
		alphabet: append([]byte(nil), alphabet...),
		gap:      gap,
		n:        len(alphabet),
	}
	for i := range m.index {
		m.index[i] = noIndex
	}
	for i, sym := range m.alphabet {
		if m.index[sym] != noIndex {
			return nil, fmt.Errorf("symbol %q: %w", sym, ErrDuplicateSymbol)
		}
		m.index[sym] = i
	}
	if m.index[gap] == noIndex {
		return nil, fmt.Errorf("gap %q: %w", gap, ErrMissingGap)
	}
	m.data = make([]int, m.n*m.n)

	return m, nil
}

// validateSymmetric checks the upper triangle against the lower one.
// Complexity: O(n²/2).
func (m *Matrix) validateSymmetric() error {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return fmt.Errorf("score(%q,%q)=%d, score(%q,%q)=%d: %w",
					m.alphabet[i], m.alphabet[j], m.data[i*m.n+j],
					m.alphabet[j], m.alphabet[i], m.data[j*m.n+i], ErrAsymmetry)
			}
		}
	}

	return nil
}

// Score returns the substitution score of the ordered pair (a, b).
// Returns ErrUnknownSymbol if either byte is outside the alphabet.
// Complexity: O(1).
func (m *Matrix) Score(a, b byte) (int, error) {
	i, ok := m.Index(a)
	if !ok {
		return 0, fmt.Errorf("Score(%q,%q): %q: %w", a, b, a, ErrUnknownSymbol)
	}
	j, ok := m.Index(b)
	if !ok {
		return 0, fmt.Errorf("Score(%q,%q): %q: %w", a, b, b, ErrUnknownSymbol)
	}

	return m.data[i*m.n+j], nil
}

// Index returns the row/column of sym and whether sym is in the alphabet.
func (m *Matrix) Index(sym byte) (int, bool) {
	i := m.index[sym]

	return i, i != noIndex
}

// At returns the score at row i, column j (alphabet order). It performs no
// bounds checking beyond the slice's own: indices must come from Index or
// GapIndex. This is the hot path of the alignment lattice.
func (m *Matrix) At(i, j int) int {
	return m.data[i*m.n+j]
}

// Gap returns the reserved gap symbol.
func (m *Matrix) Gap() byte { return m.gap }

// GapIndex returns the row/column of the gap symbol.
func (m *Matrix) GapIndex() int { return m.index[m.gap] }

// Len returns the alphabet size, gap included.
func (m *Matrix) Len() int { return m.n }

// Alphabet returns the symbols in header order.
func (m *Matrix) Alphabet() string { return string(m.alphabet) }

// String renders the matrix in the same header-row format Parse accepts.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString(" ")
	for _, sym := range m.alphabet {
		fmt.Fprintf(&sb, " %3c", sym)
	}
	sb.WriteByte('\n')
	for i, sym := range m.alphabet {
		sb.WriteByte(sym)
		for j := 0; j < m.n; j++ {
			fmt.Fprintf(&sb, " %3d", m.data[i*m.n+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

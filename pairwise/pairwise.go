package pairwise

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmsa/scoring"
)

var (
	// ErrNilMatrix indicates a nil scoring matrix.
	ErrNilMatrix = errors.New("pairwise: nil scoring matrix")

	// ErrUnknownResidue indicates a residue outside the matrix alphabet.
	ErrUnknownResidue = errors.New("pairwise: unknown residue")

	// ErrGapMarker indicates a gap marker that is also a matrix symbol.
	ErrGapMarker = errors.New("pairwise: gap marker is a matrix symbol")
)

// GapMarker is the default symbol written into aligned strings for gaps.
const GapMarker byte = '-'

// Option configures Global.
type Option func(*options)

type options struct {
	marker byte
}

// WithGapMarker sets the gap symbol of the aligned strings.
func WithGapMarker(b byte) Option {
	return func(o *options) { o.marker = b }
}

// Result is an optimal global alignment of two sequences.
type Result struct {
	A, B  string // gapped, equal length
	Score int
}

// encode maps residues to matrix indices.
func encode(m *scoring.Matrix, s []byte, name string) ([]int, error) {
	out := make([]int, len(s))
	for i, c := range s {
		idx, ok := m.Index(c)
		if !ok {
			return nil, fmt.Errorf("%s position %d: residue %q: %w", name, i, c, ErrUnknownResidue)
		}
		out[i] = idx
	}

	return out, nil
}

// Global aligns a and b and returns the gapped strings and the score.
//
// Example:
//
//	m, _ := scoring.Uniform("ACGT", 1, -1, -2)
//	res, _ := pairwise.Global(m, []byte("GATTACA"), []byte("GCATGCT"))
//
// Returns ErrGapMarker when the marker (GapMarker unless WithGapMarker is
// given) is a symbol of m, since the gapped strings would be ambiguous.
func Global(m *scoring.Matrix, a, b []byte, opts ...Option) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMatrix
	}
	o := options{marker: GapMarker}
	for _, opt := range opts {
		opt(&o)
	}
	if _, ok := m.Index(o.marker); ok {
		return Result{}, fmt.Errorf("%q: %w", o.marker, ErrGapMarker)
	}
	ea, err := encode(m, a, "a")
	if err != nil {
		return Result{}, err
	}
	eb, err := encode(m, b, "b")
	if err != nil {
		return Result{}, err
	}
	n, w := len(ea), len(eb)
	g := m.GapIndex()

	// Prepare DP storage
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, w+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = dp[i-1][0] + m.At(ea[i-1], g)
	}
	for j := 1; j <= w; j++ {
		dp[0][j] = dp[0][j-1] + m.At(g, eb[j-1])
	}

	// Fill DP
	for i := 1; i <= n; i++ {
		for j := 1; j <= w; j++ {
			dp[i][j] = max(
				dp[i-1][j-1]+m.At(ea[i-1], eb[j-1]),
				dp[i-1][j]+m.At(ea[i-1], g),
				dp[i][j-1]+m.At(g, eb[j-1]),
			)
		}
	}

	// Backtrack, collecting columns in reverse
	ra := make([]byte, 0, n+w)
	rb := make([]byte, 0, n+w)
	i, j := n, w
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+m.At(ea[i-1], eb[j-1]):
			i, j = i-1, j-1
			ra, rb = append(ra, a[i]), append(rb, b[j])
		case i > 0 && dp[i][j] == dp[i-1][j]+m.At(ea[i-1], g):
			i--
			ra, rb = append(ra, a[i]), append(rb, o.marker)
		default:
			j--
			ra, rb = append(ra, o.marker), append(rb, b[j])
		}
	}
	slices.Reverse(ra)
	slices.Reverse(rb)

	return Result{A: string(ra), B: string(rb), Score: dp[n][w]}, nil
}

// GlobalScore returns only the optimal score, keeping two rows of the table.
func GlobalScore(m *scoring.Matrix, a, b []byte) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	ea, err := encode(m, a, "a")
	if err != nil {
		return 0, err
	}
	eb, err := encode(m, b, "b")
	if err != nil {
		return 0, err
	}
	w := len(eb)
	g := m.GapIndex()

	prev := make([]int, w+1)
	curr := make([]int, w+1)
	for j := 1; j <= w; j++ {
		prev[j] = prev[j-1] + m.At(g, eb[j-1])
	}
	for i := 1; i <= len(ea); i++ {
		curr[0] = prev[0] + m.At(ea[i-1], g)
		for j := 1; j <= w; j++ {
			curr[j] = max(
				prev[j-1]+m.At(ea[i-1], eb[j-1]),
				prev[j]+m.At(ea[i-1], g),
				curr[j-1]+m.At(g, eb[j-1]),
			)
		}
		prev, curr = curr, prev
	}

	return prev[w], nil
}

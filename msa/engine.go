package msa

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvmsa/scoring"
)

// Engine aligns sequences under one scoring matrix and configuration.
// It holds no per-call state: concurrent Align calls are safe, each owns
// its own lattice.
type Engine struct {
	m    *scoring.Matrix
	opts Options
}

// NewEngine validates the matrix and options.
//
// Returns ErrInvalidInput if m is nil or the gap marker is any symbol of the
// alphabet, the matrix gap symbol included: sequences may contain every
// alphabet symbol, and stripping markers from a row must give the input back.
func NewEngine(m *scoring.Matrix, opts ...Option) (*Engine, error) {
	if m == nil {
		return nil, fmt.Errorf("nil scoring matrix: %w", ErrInvalidInput)
	}
	o := gatherOptions(opts...)
	if _, ok := m.Index(o.gapMarker); ok {
		return nil, fmt.Errorf("gap marker %q is a symbol of the alphabet: %w", o.gapMarker, ErrInvalidInput)
	}

	return &Engine{m: m, opts: o}, nil
}

// Align is shorthand for NewEngine(m, opts...) followed by Engine.Align.
func Align(m *scoring.Matrix, seqs []Sequence, opts ...Option) (*Alignment, error) {
	eng, err := NewEngine(m, opts...)
	if err != nil {
		return nil, err
	}

	return eng.Align(seqs...)
}

// AlignStrings aligns plain strings.
func (e *Engine) AlignStrings(ss ...string) (*Alignment, error) {
	seqs := make([]Sequence, len(ss))
	for i, s := range ss {
		seqs[i] = Text(s)
	}

	return e.Align(seqs...)
}

// Align computes an optimal sum-of-pairs alignment of seqs.
//
// Errors (all reported before the lattice is allocated):
//   - ErrDegenerateInput: no sequences.
//   - ErrInvalidInput:    a residue outside the matrix alphabet.
//   - ErrLatticeTooLarge: more than MaxSequences sequences, Π(Lₖ+1)
//     above the configured cell limit, or LatticeWork above the work limit.
func (e *Engine) Align(seqs ...Sequence) (*Alignment, error) {
	pb, total, err := e.prepare(seqs)
	if err != nil {
		return nil, err
	}
	log := e.opts.logger.With(slog.Int("sequences", pb.n), slog.Int("cells", total))

	start := time.Now()
	lat := newLattice(pb.lengths, total)
	pb.fill(lat)
	score := lat.cells[len(lat.cells)-1]
	log.Debug("lattice filled", slog.Int("score", score), slog.Duration("elapsed", time.Since(start)))

	start = time.Now()
	path := pb.traceback(lat, e.opts.traceback)
	log.Debug("traceback complete",
		slog.Int("columns", len(path)),
		slog.String("policy", e.opts.traceback.String()),
		slog.Duration("elapsed", time.Since(start)))

	return &Alignment{
		Rows:    pb.rows(path, e.opts.gapMarker),
		Score:   score,
		Columns: len(path),
		Cells:   total,
	}, nil
}

// prepare validates and encodes the input and checks the lattice size.
func (e *Engine) prepare(seqs []Sequence) (*problem, int, error) {
	n := len(seqs)
	if n == 0 {
		return nil, 0, ErrDegenerateInput
	}
	if n > MaxSequences {
		return nil, 0, fmt.Errorf("%d sequences, limit %d: %w", n, MaxSequences, ErrLatticeTooLarge)
	}

	pb := &problem{
		m:       e.m,
		n:       n,
		lengths: make([]int, n),
		raw:     make([][]byte, n),
		enc:     make([][]int, n),
		gap:     e.m.GapIndex(),
		endGaps: e.opts.endGaps,
		sym:     make([]int, n),
		done:    make([]bool, n),
	}
	for k, s := range seqs {
		if s == nil {
			return nil, 0, fmt.Errorf("sequence %d is nil: %w", k, ErrInvalidInput)
		}
		l := s.Len()
		pb.lengths[k] = l
		pb.raw[k] = make([]byte, l)
		pb.enc[k] = make([]int, l)
		for i := 0; i < l; i++ {
			c := s.At(i)
			idx, ok := e.m.Index(c)
			if !ok {
				return nil, 0, fmt.Errorf("sequence %d position %d: residue %q: %w: %w",
					k, i, c, ErrInvalidInput, scoring.ErrUnknownSymbol)
			}
			pb.raw[k][i] = c
			pb.enc[k][i] = idx
		}
	}

	total, ok := LatticeSize(pb.lengths...)
	if !ok {
		return nil, 0, fmt.Errorf("lattice size overflows int: %w", ErrLatticeTooLarge)
	}
	if total > e.opts.maxCells {
		return nil, 0, fmt.Errorf("%d cells, limit %d: %w", total, e.opts.maxCells, ErrLatticeTooLarge)
	}
	work, ok := LatticeWork(pb.lengths...)
	if !ok || work > e.opts.maxWork {
		return nil, 0, fmt.Errorf("%d sequences over %d cells exceed the work limit %d: %w",
			n, total, e.opts.maxWork, ErrLatticeTooLarge)
	}

	return pb, total, nil
}

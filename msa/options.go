package msa

import (
	"io"
	"log/slog"
)

// Defaults.
const (
	// DefaultGapMarker is the output symbol for a gap.
	DefaultGapMarker byte = '-'

	// DefaultMaxCells bounds the lattice at 32Mi cells (256 MiB of int64).
	DefaultMaxCells = 1 << 25

	// DefaultMaxWork bounds the estimated fill work, LatticeWork, at 2³⁶
	// column-pair evaluations.
	DefaultMaxWork = 1 << 36

	// MaxSequences bounds N; beyond it the 2ᴺ move table alone is impractical.
	MaxSequences = 16
)

const (
	panicMaxCellsInvalid  = "msa: WithMaxCells: limit must be > 0"
	panicMaxWorkInvalid   = "msa: WithMaxWork: limit must be > 0"
	panicGapMarkerInvalid = "msa: WithGapMarker: marker must be a printable, non-space ASCII byte"
)

// Option configures an Engine.
type Option func(*Options)

// Options holds the effective Engine configuration.
type Options struct {
	endGaps   EndGapPolicy
	traceback TracebackPolicy
	gapMarker byte
	maxCells  int
	maxWork   int
	logger    *slog.Logger
}

// WithEndGaps selects the end-gap policy (default EndGapsScored).
func WithEndGaps(p EndGapPolicy) Option {
	return func(o *Options) { o.endGaps = p }
}

// WithTraceback selects the traceback policy (default TracebackPredecessor).
func WithTraceback(p TracebackPolicy) Option {
	return func(o *Options) { o.traceback = p }
}

// WithGapMarker sets the gap symbol written into output rows.
func WithGapMarker(b byte) Option {
	if b <= ' ' || b > '~' {
		panic(panicGapMarkerInvalid)
	}

	return func(o *Options) { o.gapMarker = b }
}

// WithMaxCells sets the lattice size limit.
func WithMaxCells(n int) Option {
	if n <= 0 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *Options) { o.maxCells = n }
}

// WithMaxWork sets the limit on LatticeWork. The cell limit bounds memory;
// this one bounds time, which grows as 2ᴺ·N² per cell.
func WithMaxWork(n int) Option {
	if n <= 0 {
		panic(panicMaxWorkInvalid)
	}

	return func(o *Options) { o.maxWork = n }
}

// WithLogger routes debug logs (lattice size, phase timings) to l.
// A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		endGaps:   EndGapsScored,
		traceback: TracebackPredecessor,
		gapMarker: DefaultGapMarker,
		maxCells:  DefaultMaxCells,
		maxWork:   DefaultMaxWork,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}

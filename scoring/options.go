// SPDX-License-Identifier: MIT

package scoring

// Defaults.
const (
	// DefaultGapSymbol is the reserved gap symbol of NCBI-style tables.
	DefaultGapSymbol byte = '*'

	// DefaultCheckSymmetry rejects tables with score(a,b) != score(b,a).
	DefaultCheckSymmetry = true
)

const panicGapSymbolInvalid = "scoring: WithGapSymbol: gap symbol must be a printable, non-space ASCII byte"

// Option configures matrix construction.
type Option func(*Options)

// Options holds the effective construction settings.
type Options struct {
	gap           byte
	checkSymmetry bool
}

// WithGapSymbol sets the reserved gap symbol. Panics on whitespace or
// non-printable bytes, which can never appear in a header row.
func WithGapSymbol(sym byte) Option {
	if sym <= ' ' || sym > '~' {
		panic(panicGapSymbolInvalid)
	}

	return func(o *Options) { o.gap = sym }
}

// WithSymmetryCheck toggles the symmetry validation.
func WithSymmetryCheck(on bool) Option {
	return func(o *Options) { o.checkSymmetry = on }
}

func defaultOptions() Options {
	return Options{
		gap:           DefaultGapSymbol,
		checkSymmetry: DefaultCheckSymmetry,
	}
}

// gatherOptions applies opts over the defaults in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

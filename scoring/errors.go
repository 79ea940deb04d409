// SPDX-License-Identifier: MIT

// Package scoring: sentinel error set.
// All constructors and the parser return these sentinels (possibly wrapped
// with line or symbol context); callers match them via errors.Is.
package scoring

import "errors"

var (
	// ErrEmptyAlphabet is returned when a matrix declares no symbols.
	ErrEmptyAlphabet = errors.New("scoring: empty alphabet")

	// ErrDuplicateSymbol is returned when the header names a symbol twice,
	// or a symbol has more than one row.
	ErrDuplicateSymbol = errors.New("scoring: duplicate symbol")

	// ErrBadSymbol is returned when a header or row label is not a single byte.
	ErrBadSymbol = errors.New("scoring: symbol must be a single byte")

	// ErrNonSquare signals that the score table is not |alphabet|×|alphabet|.
	ErrNonSquare = errors.New("scoring: matrix is not square")

	// ErrMissingRow is returned when a header symbol has no score row.
	ErrMissingRow = errors.New("scoring: missing row for symbol")

	// ErrUnknownSymbol indicates a lookup or row label outside the alphabet.
	ErrUnknownSymbol = errors.New("scoring: unknown symbol")

	// ErrMissingGap is returned when the configured gap symbol is not part
	// of the alphabet.
	ErrMissingGap = errors.New("scoring: gap symbol not in alphabet")

	// ErrAsymmetry signals score(a,b) != score(b,a) for some pair.
	ErrAsymmetry = errors.New("scoring: matrix is not symmetric")

	// ErrBadValue is returned for a cell that is not an integer.
	ErrBadValue = errors.New("scoring: invalid score value")
)

package msa

import "errors"

var (
	// ErrInvalidInput indicates a residue outside the scoring alphabet, a nil
	// matrix, or a gap marker that collides with a residue symbol.
	ErrInvalidInput = errors.New("msa: invalid input")

	// ErrDegenerateInput indicates that no sequences were given.
	ErrDegenerateInput = errors.New("msa: no sequences to align")

	// ErrLatticeTooLarge indicates that the lattice would exceed the cell
	// limit (or MaxSequences), reported before any allocation.
	ErrLatticeTooLarge = errors.New("msa: lattice too large")

	// ErrRaggedAlignment indicates rows of different lengths passed to SumOfPairs.
	ErrRaggedAlignment = errors.New("msa: alignment rows differ in length")

	// ErrUnknownPolicy is returned by the policy parsers.
	ErrUnknownPolicy = errors.New("msa: unknown policy")
)

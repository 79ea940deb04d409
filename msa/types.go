package msa

import (
	"fmt"
	"strings"
)

// Sequence is anything with indexed residue access.
type Sequence interface {
	// Len returns the number of residues.
	Len() int
	// At returns residue i, 0 ≤ i < Len().
	At(i int) byte
}

// Text adapts a string to Sequence.
type Text string

// Len implements Sequence.
func (t Text) Len() int { return len(t) }

// At implements Sequence.
func (t Text) At(i int) byte { return t[i] }

// Bytes adapts a byte slice to Sequence.
type Bytes []byte

// Len implements Sequence.
func (b Bytes) Len() int { return len(b) }

// At implements Sequence.
func (b Bytes) At(i int) byte { return b[i] }

// Alignment is the result of one Align call.
type Alignment struct {
	// Rows holds one gapped string per input sequence, in input order.
	// All rows have length Columns.
	Rows []string
	// Score is the optimal sum-of-pairs score (the lattice corner).
	Score int
	// Columns is the alignment length.
	Columns int
	// Cells is the number of lattice cells that were filled.
	Cells int
}

// String renders the rows one per line.
func (a *Alignment) String() string {
	return strings.Join(a.Rows, "\n")
}

// EndGapPolicy decides how columns after a sequence's last residue are scored.
type EndGapPolicy int

const (
	// EndGapsScored scores every pair in every column, like classical
	// global alignment.
	EndGapsScored EndGapPolicy = iota

	// EndGapsFree drops a pair's contribution once either sequence of the
	// pair has been fully consumed: a finished sequence imposes no further
	// cost against any partner. "Finished" is judged at the column's source
	// cell (pₖ−δₖ == Lₖ), not at its destination; a destination test would
	// also waive the column that consumes the last residue.
	EndGapsFree
)

func (p EndGapPolicy) String() string {
	switch p {
	case EndGapsScored:
		return "scored"
	case EndGapsFree:
		return "free"
	default:
		return fmt.Sprintf("EndGapPolicy(%d)", int(p))
	}
}

// ParseEndGapPolicy maps "scored" / "free" to a policy.
func ParseEndGapPolicy(s string) (EndGapPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scored", "":
		return EndGapsScored, nil
	case "free":
		return EndGapsFree, nil
	}

	return 0, fmt.Errorf("end gaps %q: %w", s, ErrUnknownPolicy)
}

// TracebackPolicy decides which predecessor the traceback steps to.
type TracebackPolicy int

const (
	// TracebackPredecessor picks the move whose predecessor cell holds the
	// highest score, ignoring the score of the column itself. The emitted
	// alignment may then score below Alignment.Score.
	TracebackPredecessor TracebackPolicy = iota

	// TracebackConsistent picks the move maximizing predecessor score plus
	// column score, so the emitted alignment always rescores to
	// Alignment.Score.
	TracebackConsistent
)

func (p TracebackPolicy) String() string {
	switch p {
	case TracebackPredecessor:
		return "predecessor"
	case TracebackConsistent:
		return "consistent"
	default:
		return fmt.Sprintf("TracebackPolicy(%d)", int(p))
	}
}

// ParseTracebackPolicy maps "predecessor" / "consistent" to a policy.
func ParseTracebackPolicy(s string) (TracebackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "predecessor", "":
		return TracebackPredecessor, nil
	case "consistent":
		return TracebackConsistent, nil
	}

	return 0, fmt.Errorf("traceback %q: %w", s, ErrUnknownPolicy)
}

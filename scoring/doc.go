// Package scoring provides immutable residue substitution matrices for
// sequence alignment.
//
// A Matrix maps an ordered pair of residue symbols to an integer score.
// Its alphabet always contains one reserved gap symbol (default '*'),
// whose row gives the cost of aligning a residue against a gap.
//
// ✨ Key features:
//   - dense row-major storage with O(1) symbol→index lookup
//   - text parser for the classic header-row format (NCBI BLOSUM/PAM files)
//   - embedded BLOSUM62 table
//   - Uniform builder for toy match/mismatch/gap matrices
//
// ⚙️ Usage:
//
//	m, err := scoring.BLOSUM62()
//	if err != nil {
//		// handle
//	}
//	s, err := m.Score('W', 'W') // 11
//
// A Matrix is read-only after construction and is safe for concurrent use.
package scoring

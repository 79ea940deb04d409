// Package msa computes exact multiple sequence alignments by dynamic
// programming over an N-dimensional score lattice.
//
// 🚀 What is exact N-way alignment?
//
//	Pairwise global alignment fills an (n+1)×(m+1) table. Aligning N
//	sequences at once generalizes that table to an N-dimensional lattice
//	of Π(Lₖ+1) cells, where cell p holds the best sum-of-pairs score of
//	aligning the first pₖ residues of every sequence k. Each cell has up
//	to 2ᴺ−1 predecessors: one per non-empty subset of sequences that
//	advance by one residue in the last column.
//
// ✨ Key features:
//   - exact sum-of-pairs optimum under any scoring.Matrix
//   - end-gap policy: scored (classical global) or free after a sequence ends
//   - deterministic traceback with a documented tie-break
//   - SumOfPairs rescoring of any gapped alignment
//   - LatticeSize pre-flight to reject oversized problems before allocation
//
// ⚙️ Usage:
//
//	m, _ := scoring.BLOSUM62()
//	eng, err := msa.NewEngine(m)
//	if err != nil {
//		// handle
//	}
//	aln, err := eng.AlignStrings("HEAGAWGHEE", "PAWHEAE", "HEAWGE")
//	// aln.Rows are equal-length gapped strings, aln.Score the optimum.
//
// Algorithm outline:
//  1. Validate: N ≥ 1, every residue in the matrix alphabet, lattice size
//     within the configured limit.
//  2. Fill: visit cells in row-major order (componentwise order refines
//     lexicographic order, so every predecessor is final), origin = 0,
//     lattice[p] = max over moves δ of columnScore(p, δ) + lattice[p−δ].
//  3. Traceback: from the corner to the origin, choose a move per the
//     traceback policy, emit one column per step, reverse at the end.
//
// Complexity:
//
//	Time   = O(Π(Lₖ+1) · 2ᴺ · N²)
//	Memory = O(Π(Lₖ+1))
//
// The cost is exponential in N by nature; the package targets a handful
// of sequences of modest length.
package msa

// Package lvmsa is an exact multiple sequence aligner: it finds the
// alignment of N sequences that maximizes the sum-of-pairs substitution
// score, by dynamic programming over the full N-dimensional lattice.
//
// 🚀 What is in lvmsa?
//
//	• scoring/    substitution matrices: parsing, validation, BLOSUM62, Uniform
//	• msa/        the N-way engine: lattice fill, traceback, SumOfPairs
//	• pairwise/   classic two-sequence Needleman–Wunsch over the same matrices
//	• fasta/      FASTA reader (plain, gzip, stdin)
//	• cmd/lvmsa   CLI: align, pairwise, matrix, serve, version
//
// Quick ASCII example (toy matrix: match 1, mismatch -1, gap -2):
//
//	SEQ-
//	SEQA      score 1 with every end gap scored, 3 with end gaps free
//
// The lattice holds ∏(Lᵢ+1) cells and each cell looks at up to 2ᴺ−1
// predecessors, so the engine is for a handful of short sequences. Sizes
// are checked with LatticeSize before anything is allocated.
//
//	go install github.com/katalvlaran/lvmsa/cmd/lvmsa@latest
package lvmsa

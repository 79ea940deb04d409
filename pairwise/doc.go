// Package pairwise implements textbook Needleman–Wunsch global alignment
// of two sequences with a linear gap cost taken from a scoring.Matrix.
//
// It is the N=2 special case of package msa, kept separate because its
// O(n·m) table is small enough for long sequences and because it serves
// as an independent oracle for the N-way engine.
//
// Algorithm Outline:
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) table D.
//  2. Initialize D[0][0] = 0, D[i][0] = D[i-1][0] + s(aᵢ, gap),
//     D[0][j] = D[0][j-1] + s(gap, bⱼ).
//  3. D[i][j] = max(D[i-1][j-1] + s(aᵢ, bⱼ),
//     D[i-1][j] + s(aᵢ, gap),
//     D[i][j-1] + s(gap, bⱼ)).
//  4. Score = D[n][m]; backtrack from (n,m) preferring diagonal, then up,
//     then left.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (Global) or O(m) (GlobalScore)
package pairwise

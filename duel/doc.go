// SPDX-License-Identifier: MIT

// Package duel scores pairwise contests between candidates.
//
// Per ballot, with ranks rA and rB:
//
//   - rA ranked and (rB unranked or rA < rB)  → +1 for A
//   - rB ranked and (rA unranked or rB < rA)  → −1 (B wins)
//   - both unranked, or rA == rB              →  0
//
// Score sums this over all ballots, so Score(A,B) == −Score(B,A) exactly.
//
// Matrix holds the full margin table m[i][j] = Score(i, j), computed once in
// O(ballots × candidates²) and then shared by every resolver. Orientation is
// fixed: row i is the candidate, column j the opponent, positive means i is
// preferred. Precomputed inputs enter through FromMargins (antisymmetric
// margins) or FromCounts (raw "voters preferring i over j" counts).
package duel

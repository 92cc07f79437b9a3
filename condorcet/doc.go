// SPDX-License-Identifier: MIT

// Package condorcet resolves ranked-ballot elections from their pairwise
// duel margins.
//
// What:
//
//   - FindWinner: the undefeated (dominant) candidate of a duel graph, if
//     exactly one exists.
//   - Minimax (Simpson–Kramer): maximise the worst pairwise margin.
//   - RankedPairs (Tideman): lock victories strongest first, skipping any
//     that would close a cycle; the winner is the source of the locked graph.
//   - Schulze: widest beatpaths; the winner beats the most rivals by path.
//   - Vote: checker first, completion method only when no Condorcet winner
//     exists.
//
// Inputs are *duel.Matrix values, built either from ballots
// (duel.FromTable) or from precomputed duel data (duel.FromMargins,
// duel.FromCounts); every method works on both.
//
// Determinism:
//
//   - Ties between candidates are broken first-seen in candidate order: a
//     later candidate replaces the leader only on a strictly better value.
//     All co-leaders are reported in VoteResult.Tied.
//   - Ranked Pairs uses duelgraph.SortedEdges, a total order.
//
// Errors (match with errors.Is):
//
//   - ErrNoCandidates       zero candidates
//   - ErrCapacityExceeded   more candidates than WithMaxCandidates allows
//   - ErrUnknownCandidate   a referenced name is absent
//   - ErrMalformedRank      a ballot rank is neither positive nor unranked
//   - ErrMalformedMatrix    a precomputed duel matrix is inconsistent
//   - ErrUnknownMethod      ParseMethod / Vote with an unsupported method
//   - ErrNoCondorcetWinner  MethodCondorcet when nobody is undefeated
//
// Every call is synchronous, owns its graphs and matrices, and keeps no
// state between calls. A Trace, when supplied through WithTrace, records
// the intermediate steps.
package condorcet

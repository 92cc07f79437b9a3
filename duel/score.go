// SPDX-License-Identifier: MIT

package duel

import (
	"fmt"

	"github.com/katalvlaran/condorcet/ballot"
)

// Compare returns the contribution of one ballot to the duel a-vs-b:
// +1 if a is preferred, −1 if b is preferred, 0 otherwise.
// Ranks are assumed valid (positive or ballot.Unranked).
func Compare(ra, rb ballot.Rank) int {
	switch {
	case ra.IsRanked() && (!rb.IsRanked() || ra < rb):
		return 1
	case rb.IsRanked() && (!ra.IsRanked() || rb < ra):
		return -1
	default:
		return 0 // both unranked, or tied rank
	}
}

// Score sums Compare over every ballot of t for candidates a and b.
//
// Errors:
//   - ballot.ErrUnknownCandidate if a or b is not in t.
//   - ballot.ErrMalformedRank if any visited rank is invalid.
//
// Complexity: O(ballots).
func Score(t ballot.Table, a, b string) (int, error) {
	names := t.CandidateNames()
	var raw [2]string
	for k, c := range [...]string{a, b} {
		i := indexOfNormalized(names, c)
		if i < 0 {
			return 0, fmt.Errorf("duel: Score(%q, %q): %q: %w", a, b, c, ballot.ErrUnknownCandidate)
		}
		raw[k] = names[i] // the table is queried with its own spelling
	}

	var total int
	for i, n := 0, t.BallotCount(); i < n; i++ {
		ra, err := rankAt(t, i, raw[0])
		if err != nil {
			return 0, err
		}
		rb, err := rankAt(t, i, raw[1])
		if err != nil {
			return 0, err
		}
		total += Compare(ra, rb)
	}

	return total, nil
}

// rankAt fetches and validates one rank.
func rankAt(t ballot.Table, b int, name string) (ballot.Rank, error) {
	r, err := t.BallotRank(b, name)
	if err != nil {
		return 0, fmt.Errorf("duel: %w", err)
	}
	if err = r.Validate(); err != nil {
		return 0, fmt.Errorf("duel: ballot %d, candidate %q: %w", b, name, err)
	}

	return r, nil
}

// indexOfNormalized finds name among names, comparing normalized forms.
func indexOfNormalized(names []string, name string) int {
	want := ballot.NormalizeName(name)
	for i, n := range names {
		if ballot.NormalizeName(n) == want {
			return i
		}
	}

	return -1
}

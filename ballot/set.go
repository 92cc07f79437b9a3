// SPDX-License-Identifier: MIT

package ballot

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Set is an immutable in-memory Table.
//
// ranks[b][c] is the rank ballot b gives to candidate index c.
type Set struct {
	names []string       // candidate display names, NFC-normalised
	index map[string]int // normalised name → candidate index
	ranks [][]Rank       // one row per ballot, one column per candidate
}

// NormalizeName trims surrounding spaces and applies Unicode NFC so that
// composed and decomposed spellings of a name compare equal.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// NewSet builds a Set from candidate names and rank rows.
//
// Each row must have exactly len(names) entries, in candidate order.
// Rows are copied; the caller may reuse its slices.
//
// Errors: ErrNoCandidates, ErrDuplicateCandidate, ErrMalformedRank, or a row
// length mismatch wrapped around ErrMalformedRank.
func NewSet(names []string, rows [][]Rank) (*Set, error) {
	s, err := newSet(names)
	if err != nil {
		return nil, err
	}

	s.ranks = make([][]Rank, len(rows))
	for b, row := range rows {
		if len(row) != len(s.names) {
			return nil, fmt.Errorf("ballot %d: %d ranks for %d candidates: %w",
				b, len(row), len(s.names), ErrMalformedRank)
		}
		cp := make([]Rank, len(row))
		for c, r := range row {
			if err = r.Validate(); err != nil {
				return nil, fmt.Errorf("ballot %d, candidate %q: %w", b, s.names[c], err)
			}
			cp[c] = r
		}
		s.ranks[b] = cp
	}

	return s, nil
}

// FromMaps builds a Set from per-ballot name→rank maps. Candidates missing
// from a map are Unranked.
func FromMaps(names []string, ballots []map[string]Rank) (*Set, error) {
	s, err := newSet(names)
	if err != nil {
		return nil, err
	}

	s.ranks = make([][]Rank, len(ballots))
	for b, m := range ballots {
		row := make([]Rank, len(s.names))
		for c := range row {
			row[c] = Unranked
		}
		for name, r := range m {
			c, ok := s.index[NormalizeName(name)]
			if !ok {
				return nil, fmt.Errorf("ballot %d: %q: %w", b, name, ErrUnknownCandidate)
			}
			if err = r.Validate(); err != nil {
				return nil, fmt.Errorf("ballot %d, candidate %q: %w", b, name, err)
			}
			row[c] = r
		}
		s.ranks[b] = row
	}

	return s, nil
}

// newSet validates names and prepares the lookup index.
func newSet(names []string) (*Set, error) {
	if len(names) == 0 {
		return nil, ErrNoCandidates
	}
	s := &Set{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, raw := range names {
		n := NormalizeName(raw)
		if n == "" {
			return nil, fmt.Errorf("candidate %d: empty name: %w", i, ErrUnknownCandidate)
		}
		if _, dup := s.index[n]; dup {
			return nil, fmt.Errorf("candidate %q: %w", n, ErrDuplicateCandidate)
		}
		s.names[i] = n
		s.index[n] = i
	}

	return s, nil
}

// CandidateNames returns a copy of the candidate names in index order.
func (s *Set) CandidateNames() []string {
	return append([]string(nil), s.names...)
}

// BallotCount returns the number of ballots.
func (s *Set) BallotCount() int { return len(s.ranks) }

// Index returns the candidate index of name.
func (s *Set) Index(name string) (int, bool) {
	i, ok := s.index[NormalizeName(name)]

	return i, ok
}

// BallotRank returns the rank ballot b gives to candidate.
func (s *Set) BallotRank(b int, candidate string) (Rank, error) {
	if b < 0 || b >= len(s.ranks) {
		return 0, fmt.Errorf("BallotRank(%d): %w", b, ErrBallotOutOfRange)
	}
	c, ok := s.Index(candidate)
	if !ok {
		return 0, fmt.Errorf("BallotRank(%d, %q): %w", b, candidate, ErrUnknownCandidate)
	}

	return s.ranks[b][c], nil
}

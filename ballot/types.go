// SPDX-License-Identifier: MIT

package ballot

import (
	"errors"
	"fmt"
)

// Sentinel errors for ballot data.
var (
	// ErrNoCandidates indicates that zero candidates were supplied.
	ErrNoCandidates = errors.New("ballot: no candidates")

	// ErrUnknownCandidate indicates a referenced candidate name is absent.
	ErrUnknownCandidate = errors.New("ballot: unknown candidate")

	// ErrMalformedRank indicates a rank that is neither positive nor Unranked.
	ErrMalformedRank = errors.New("ballot: malformed rank")

	// ErrDuplicateCandidate indicates two candidates share a display name.
	ErrDuplicateCandidate = errors.New("ballot: duplicate candidate")

	// ErrBallotOutOfRange indicates a ballot index outside [0, BallotCount).
	ErrBallotOutOfRange = errors.New("ballot: ballot index out of range")
)

// Rank is a ballot position: 1 is the most preferred. Equal ranks are allowed
// and express indifference between the candidates that share them.
type Rank int

// Unranked marks a candidate the voter did not rank (abstention).
const Unranked Rank = -1

// IsRanked reports whether r is a real position.
func (r Rank) IsRanked() bool { return r > 0 }

// Validate returns ErrMalformedRank unless r is positive or Unranked.
func (r Rank) Validate() error {
	if r > 0 || r == Unranked {
		return nil
	}

	return fmt.Errorf("rank %d: %w", int(r), ErrMalformedRank)
}

// Candidate pairs a stable index with its display name.
type Candidate struct {
	Index int
	Name  string
}

// Table is the read-only tabular view over parsed ballots.
//
// CandidateNames returns names in their stable order; the position of a name
// is its candidate index. BallotRank returns Unranked for abstentions and
// ErrUnknownCandidate / ErrBallotOutOfRange for bad references. Implementations
// may return malformed ranks; consumers validate them.
type Table interface {
	CandidateNames() []string
	BallotCount() int
	BallotRank(ballot int, candidate string) (Rank, error)
}

// Candidates lists t's candidates with their indices.
func Candidates(t Table) []Candidate {
	names := t.CandidateNames()
	out := make([]Candidate, len(names))
	for i, n := range names {
		out[i] = Candidate{Index: i, Name: n}
	}

	return out
}

// SPDX-License-Identifier: MIT

package duel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/condorcet/ballot"
	"github.com/katalvlaran/condorcet/matrix"
)

// ErrMalformedMatrix indicates a precomputed duel matrix that is not square,
// has a non-zero diagonal, or (for margins) is not antisymmetric.
var ErrMalformedMatrix = errors.New("duel: malformed duel matrix")

// Matrix is the complete pairwise margin table of one election.
// It is immutable once built.
type Matrix struct {
	names   []string
	margins *matrix.Dense // margins[i][j] == Score(i, j)
	voters  int
}

// FromTable computes every pairwise margin of t in a single pass.
//
// Each ballot's ranks are read and validated once, then all
// candidate pairs are compared. Complexity: O(ballots × candidates²).
//
// Errors: ballot.ErrNoCandidates, ballot.ErrMalformedRank, or any error
// returned by t.BallotRank.
func FromTable(t ballot.Table) (*Matrix, error) {
	// 1) Names: the table is queried with its own spelling, the matrix
	//    stores the normalized one.
	names := t.CandidateNames()
	clean, err := cleanNames("FromTable", names)
	if err != nil {
		return nil, err
	}
	n := len(names)
	margins, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("duel: FromTable: %w", err)
	}

	// 2) Accumulate in a local grid; margins is written once at the end so
	//    a failing ballot leaves nothing half-built.
	acc := make([]int, n*n)
	ranks := make([]ballot.Rank, n)
	var b, i, j, c int
	for b = 0; b < t.BallotCount(); b++ {
		// 2a) read and validate this ballot's ranks once
		for i = 0; i < n; i++ {
			if ranks[i], err = rankAt(t, b, names[i]); err != nil {
				return nil, err
			}
		}
		// 2b) upper triangle only; the lower one is its negation
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				c = Compare(ranks[i], ranks[j])
				acc[i*n+j] += c
				acc[j*n+i] -= c
			}
		}
	}
	// 3) Commit.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = margins.Set(i, j, acc[i*n+j]) // in range by construction
		}
	}

	return &Matrix{names: clean, margins: margins, voters: t.BallotCount()}, nil
}

// FromMargins wraps a precomputed margin matrix: rows[i][j] is the margin of
// names[i] over names[j]. The matrix must be square, sized to names, with a
// zero diagonal and rows[i][j] == −rows[j][i]. Voters is reported as given.
func FromMargins(names []string, rows [][]int, voters int) (*Matrix, error) {
	m, err := fromRows("FromMargins", names, rows)
	if err != nil {
		return nil, err
	}
	n := len(names)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rows[i][j] != -rows[j][i] {
				return nil, fmt.Errorf("duel: FromMargins: m[%d][%d]=%d, m[%d][%d]=%d: %w",
					i, j, rows[i][j], j, i, rows[j][i], ErrMalformedMatrix)
			}
		}
	}
	m.voters = voters

	return m, nil
}

// FromCounts wraps a precomputed count matrix: counts[i][j] is the number of
// voters preferring names[i] over names[j]. Margins are counts[i][j] −
// counts[j][i]; the voter count is the largest counts[i][j] + counts[j][i].
// Negative counts are rejected.
func FromCounts(names []string, counts [][]int) (*Matrix, error) {
	m, err := fromRows("FromCounts", names, counts)
	if err != nil {
		return nil, err
	}
	n := len(names)
	var voters int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if counts[i][j] < 0 {
				return nil, fmt.Errorf("duel: FromCounts: negative count at [%d][%d]: %w", i, j, ErrMalformedMatrix)
			}
			_ = m.margins.Set(i, j, counts[i][j]-counts[j][i])
			if i < j {
				voters = max(voters, counts[i][j]+counts[j][i])
			}
		}
	}
	m.voters = voters

	return m, nil
}

// fromRows validates names and shape shared by the precomputed constructors.
func fromRows(op string, names []string, rows [][]int) (*Matrix, error) {
	clean, err := cleanNames(op, names)
	if err != nil {
		return nil, err
	}
	if len(rows) != len(names) {
		return nil, fmt.Errorf("duel: %s: %d rows for %d candidates: %w", op, len(rows), len(names), ErrMalformedMatrix)
	}
	d, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("duel: %s: %v: %w", op, err, ErrMalformedMatrix)
	}
	for i := range rows {
		if rows[i][i] != 0 {
			return nil, fmt.Errorf("duel: %s: diagonal [%d][%d]=%d: %w", op, i, i, rows[i][i], ErrMalformedMatrix)
		}
	}

	return &Matrix{names: clean, margins: d}, nil
}

// cleanNames normalizes names and rejects an empty list, empty names and
// names that collide after normalization.
func cleanNames(op string, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("duel: %s: %w", op, ballot.ErrNoCandidates)
	}
	seen := make(map[string]struct{}, len(names))
	clean := make([]string, len(names))
	for i, raw := range names {
		n := ballot.NormalizeName(raw)
		if _, dup := seen[n]; dup || n == "" {
			return nil, fmt.Errorf("duel: %s: candidate %q: %w", op, raw, ballot.ErrDuplicateCandidate)
		}
		seen[n] = struct{}{}
		clean[i] = n
	}

	return clean, nil
}

// Len returns the number of candidates.
func (m *Matrix) Len() int { return len(m.names) }

// Names returns a copy of the candidate names in index order.
func (m *Matrix) Names() []string { return append([]string(nil), m.names...) }

// Name returns the name at index i.
func (m *Matrix) Name(i int) string { return m.names[i] }

// Voters returns the number of ballots behind the margins.
func (m *Matrix) Voters() int { return m.voters }

// Index returns the index of name.
func (m *Matrix) Index(name string) (int, bool) {
	i := indexOf(m.names, ballot.NormalizeName(name))

	return i, i >= 0
}

// Margin returns margin[i][j]. Indices must be in range.
func (m *Matrix) Margin(i, j int) int {
	v, _ := m.margins.At(i, j)

	return v
}

// MarginOf returns the margin of candidate a over candidate b.
func (m *Matrix) MarginOf(a, b string) (int, error) {
	i, ok := m.Index(a)
	if !ok {
		return 0, fmt.Errorf("duel: MarginOf(%q): %w", a, ballot.ErrUnknownCandidate)
	}
	j, ok := m.Index(b)
	if !ok {
		return 0, fmt.Errorf("duel: MarginOf(%q): %w", b, ballot.ErrUnknownCandidate)
	}

	return m.Margin(i, j), nil
}

// Row returns a copy of candidate i's margins against every opponent.
func (m *Matrix) Row(i int) []int { return m.margins.Row(i) }

// Dense returns a deep copy of the margin matrix.
func (m *Matrix) Dense() *matrix.Dense { return m.margins.Clone() }

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}

	return -1
}

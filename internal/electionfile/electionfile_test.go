package electionfile

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/condorcet/ballot"
	"github.com/katalvlaran/condorcet/duel"
)

func TestLoad_Ballots(t *testing.T) {
	e, err := Load(filepath.Join("testdata", "board.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "board 2026", e.Title)
	assert.Nil(t, e.Matrix)
	require.NotNil(t, e.Ballots)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, e.Candidates())
	assert.Equal(t, 6, e.Ballots.BallotCount()) // counts expanded

	r, err := e.Ballots.BallotRank(3, "Alice")
	require.NoError(t, err)
	assert.Equal(t, ballot.Unranked, r)

	ab, err := duel.Score(e.Ballots, "Alice", "Bob")
	require.NoError(t, err)
	assert.Equal(t, 4, ab)
}

func TestLoad_DuelJSON(t *testing.T) {
	e, err := Load(filepath.Join("testdata", "cycle.json"))
	require.NoError(t, err)

	require.NotNil(t, e.Matrix)
	assert.Nil(t, e.Ballots)
	assert.Equal(t, 9, e.Matrix.Voters())
	assert.Equal(t, 2, e.Matrix.Margin(0, 2))
	assert.Equal(t, "Well", e.Candidates()[3])
}

func TestLoad_Counts(t *testing.T) {
	e, err := Load(filepath.Join("testdata", "counts.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 45, e.Matrix.Voters())
	m, err := e.Matrix.MarginOf("E", "A")
	require.NoError(t, err)
	assert.Equal(t, 1, m)
}

func TestLoad_CSV(t *testing.T) {
	e, err := Load(filepath.Join("testdata", "ballots.csv"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, e.Candidates())
	assert.Equal(t, 3, e.Ballots.BallotCount())
	r, err := e.Ballots.BallotRank(2, "Bob")
	require.NoError(t, err)
	assert.Equal(t, ballot.Unranked, r)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "absent.yaml"))
	assert.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", ``, ErrInvalidDocument},
		{"not yaml", `candidates: [A, B`, ErrInvalidDocument},
		{"unknown field", "candidates: [A]\nvoters: 3\n", ErrInvalidDocument},
		{"no candidates", "ballots:\n  - ranks: {}\n", ballot.ErrNoCandidates},
		{"unknown candidate", "candidates: [A, B]\nballots:\n  - ranks: {C: 1}\n", ballot.ErrUnknownCandidate},
		{"zero rank", "candidates: [A, B]\nballots:\n  - ranks: {A: 0}\n", ballot.ErrMalformedRank},
		{"negative count", "candidates: [A]\nballots:\n  - ranks: {A: 1}\n    count: -2\n", ErrInvalidDocument},
		{"count over cap", "candidates: [A]\nballots:\n  - ranks: {A: 1}\n    count: 1000000000\n", ErrInvalidDocument},
		{"total over cap", "candidates: [A]\nballots:\n  - ranks: {A: 1}\n    count: 600000\n  - ranks: {A: 1}\n    count: 400001\n", ErrInvalidDocument},
		{"duplicate names", "candidates: [A, A]\n", ballot.ErrDuplicateCandidate},
		{"both sections", "candidates: [A, B]\nballots:\n  - ranks: {A: 1}\nduels:\n  matrix: [[0, 1], [-1, 0]]\n", ErrInvalidDocument},
		{"bad kind", "candidates: [A, B]\nduels:\n  kind: wins\n  matrix: [[0, 1], [-1, 0]]\n", ErrInvalidDocument},
		{"asymmetric margins", "candidates: [A, B]\nduels:\n  matrix: [[0, 1], [1, 0]]\n", duel.ErrMalformedMatrix},
		{"wrong voters", "candidates: [A, B]\nduels:\n  kind: counts\n  voters: 7\n  matrix: [[0, 2], [1, 0]]\n", ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_ZeroCountDropsBallot(t *testing.T) {
	e, err := Decode(strings.NewReader("candidates: [A, B]\nballots:\n  - ranks: {A: 1}\n    count: 0\n  - ranks: {B: 1}\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, e.Ballots.BallotCount())
}

func TestDecode_CountAtCap(t *testing.T) {
	doc := fmt.Sprintf("candidates: [A, B]\nballots:\n  - ranks: {A: 1, B: 2}\n    count: %d\n", MaxBallots)
	e, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, MaxBallots, e.Ballots.BallotCount())
}

func TestDecodeCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", ballot.ErrNoCandidates},
		{"not a number", "A,B\n1,x\n", ErrInvalidDocument},
		{"ragged", "A,B\n1,2,3\n", ErrInvalidDocument},
		{"zero rank", "A,B\n0,1\n", ballot.ErrMalformedRank},
		{"duplicate", "A,A\n1,2\n", ballot.ErrDuplicateCandidate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCSV(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeCSV_Comma(t *testing.T) {
	e, err := DecodeCSV(strings.NewReader("A, B, C\n1, 2, 3\n3, 1, 2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, e.Candidates())
	m, err := duel.FromTable(e.Ballots)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Margin(1, 2))
}

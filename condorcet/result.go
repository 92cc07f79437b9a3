// SPDX-License-Identifier: MIT

package condorcet

// VoteResult is the immutable outcome of one resolution call.
//
// Score meaning depends on the deciding path:
//
//   - Condorcet winner: smallest positive victory margin of the winner.
//   - Minimax: the maximin value.
//   - RankedPairs: number of locked edges leaving the winner.
//   - Schulze: number of rivals beaten by beatpath.
//
// Score is nil when the value is undefined (e.g. Minimax on one candidate).
type VoteResult struct {
	Method     Method   `json:"method"`
	Candidates int      `json:"candidates"`
	Voters     int      `json:"voters"`
	Winner     string   `json:"winner"`
	Score      *int     `json:"score,omitempty"`
	Condorcet  bool     `json:"condorcet"`
	Tied       []string `json:"tied,omitempty"`
}

// ScoreValue returns the score and whether it is defined.
func (r VoteResult) ScoreValue() (int, bool) {
	if r.Score == nil {
		return 0, false
	}

	return *r.Score, true
}

// IsTie reports whether more than one candidate shared the winning position.
func (r VoteResult) IsTie() bool { return len(r.Tied) > 1 }

func intPtr(v int) *int { return &v }

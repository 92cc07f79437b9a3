// SPDX-License-Identifier: MIT

package condorcet

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/condorcet/duel"
	"github.com/katalvlaran/condorcet/duelgraph"
	"github.com/katalvlaran/condorcet/matrix"
)

// Schulze elects by the beatpath method.
//
// Path strengths start from the margins (non-positive entries mean no
// path), are widened by matrix.WidestPaths, and candidate i beats j when
// p[i][j] > p[j][i]. The candidate with the most beats wins, first in
// matrix order on ties; Score is that beat count.
// Complexity: O(V³).
func Schulze(m *duel.Matrix, opts ...Option) (VoteResult, error) {
	r, err := newRun(MethodSchulze, m, opts)
	if err != nil {
		return VoteResult{}, err
	}

	return r.schulze()
}

func (r *run) schulze() (VoteResult, error) {
	p := r.m.Dense()
	if err := matrix.InitStrengths(p); err != nil {
		return VoteResult{}, fmt.Errorf("%s: %w", r.method, err)
	}
	if err := matrix.WidestPaths(p); err != nil {
		return VoteResult{}, fmt.Errorf("%s: %w", r.method, err)
	}
	rows := p.Rows()
	if r.traced() {
		r.record(Step{Kind: StepPath, Note: "path strengths",
			Snapshot: &duelgraph.Snapshot{Names: r.m.Names(), Weights: rows}})
	}

	n := len(rows)
	beats := make([]int, n)
	best := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rows[i][j] > rows[j][i] {
				beats[i]++
			}
		}
		r.record(Step{Kind: StepBeats, Candidate: r.m.Name(i), Value: beats[i]})
		if beats[i] > beats[best] {
			best = i
		}
	}

	res := r.result()
	res.Winner = r.m.Name(best)
	res.Score = intPtr(beats[best])
	res.Tied = r.ties(beats, beats[best])
	r.log.Debug("schulze", slog.String("leader", res.Winner), slog.Int("beats", beats[best]))

	return r.finish(res), nil
}

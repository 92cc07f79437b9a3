// SPDX-License-Identifier: MIT

package condorcet

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/condorcet/duel"
)

// Minimax elects the candidate whose worst pairwise margin is largest
// (Simpson–Kramer). Score is that maximin value; it is nil for a single
// candidate, who wins trivially.
//
// Ties keep the first candidate in matrix order; every candidate sharing
// the maximin value is listed in Tied.
// Complexity: O(V²).
func Minimax(m *duel.Matrix, opts ...Option) (VoteResult, error) {
	r, err := newRun(MethodMinimax, m, opts)
	if err != nil {
		return VoteResult{}, err
	}

	return r.minimax(), nil
}

func (r *run) minimax() VoteResult {
	n := r.m.Len()
	res := r.result()
	if n == 1 {
		res.Winner = r.m.Name(0)

		return r.finish(res)
	}

	worst := make([]int, n)
	best := -1
	for i := 0; i < n; i++ {
		w := math.MaxInt
		for j := 0; j < n; j++ {
			if j != i && r.m.Margin(i, j) < w {
				w = r.m.Margin(i, j)
			}
		}
		worst[i] = w
		r.record(Step{Kind: StepWorst, Candidate: r.m.Name(i), Value: w})
		if best < 0 || w > worst[best] {
			best = i
		}
	}

	res.Winner = r.m.Name(best)
	res.Score = intPtr(worst[best])
	res.Tied = r.ties(worst, worst[best])
	r.log.Debug("minimax", slog.String("leader", res.Winner), slog.Int("maximin", worst[best]))

	return r.finish(res)
}

// ties returns the names whose value equals top, or nil when only one does.
// A tie step is recorded when several share it.
func (r *run) ties(values []int, top int) []string {
	var names []string
	for i, v := range values {
		if v == top {
			names = append(names, r.m.Name(i))
		}
	}
	if len(names) < 2 {
		return nil
	}
	r.record(Step{Kind: StepTie, Names: append([]string(nil), names...), Value: top})

	return names
}

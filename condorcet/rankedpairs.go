// SPDX-License-Identifier: MIT

package condorcet

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/condorcet/duel"
	"github.com/katalvlaran/condorcet/duelgraph"
)

// RankedPairs elects by Tideman's method.
//
// Steps:
//  1. Sort all positive duel edges by weight desc, from asc, to asc.
//  2. Lock each edge into an initially edgeless graph unless it closes a
//     cycle there, in which case it is rejected.
//  3. Remove every node that has an incoming locked edge.
//  4. The first remaining node is the winner.
//
// The locked graph is acyclic, so step 3 always leaves at least one node.
// Several remaining nodes (equal-weight victories or unbeaten isolated
// candidates) are reported in Tied. Score is the number of locked edges
// leaving the winner.
// Complexity: O(E·V²) with E ≤ V(V-1)/2.
func RankedPairs(m *duel.Matrix, opts ...Option) (VoteResult, error) {
	r, err := newRun(MethodRankedPairs, m, opts)
	if err != nil {
		return VoteResult{}, err
	}

	return r.rankedPairs()
}

func (r *run) rankedPairs() (VoteResult, error) {
	// 1) Full duel graph, then the locked subgraph of it.
	full, err := r.graph()
	if err != nil {
		return VoteResult{}, err
	}
	locked, err := r.lock(full)
	if err != nil {
		return VoteResult{}, err
	}
	if r.traced() {
		r.record(Step{Kind: StepSnapshot, Note: "locked", Snapshot: snapshotOf(locked)})
	}

	// 2) Out-degrees are taken before removal; they become the Score.
	out := make(map[string]int, locked.Len())
	for _, e := range locked.SortedEdges() {
		out[locked.Name(e.From)]++
	}

	// 3) Drop every node with an incoming locked edge.
	dominant := make(map[string]bool)
	for _, name := range locked.Dominant() {
		dominant[name] = true
	}
	for _, name := range locked.Names() {
		if dominant[name] {
			continue
		}
		if _, err = locked.RemoveNode(name); err != nil {
			return VoteResult{}, fmt.Errorf("%s: %w", r.method, err)
		}
		step := Step{Kind: StepRemove, Candidate: name}
		if r.traced() {
			step.Snapshot = snapshotOf(locked)
		}
		r.record(step)
	}

	// 4) Survivors are in candidate order; the first wins.
	remaining := locked.Names()
	res := r.result()
	res.Winner = remaining[0]
	res.Score = intPtr(out[res.Winner])
	if len(remaining) > 1 {
		res.Tied = remaining
		r.record(Step{Kind: StepTie, Names: append([]string(nil), remaining...)})
	}

	return r.finish(res), nil
}

// lock builds the locked graph from full's sorted edges.
func (r *run) lock(full *duelgraph.Graph) (*duelgraph.Graph, error) {
	locked, err := duelgraph.FromNames(full.Names(), duelgraph.WithMaxNodes(full.MaxNodes()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.method, err)
	}

	// 1) Weight desc, then from asc, then to asc.
	var kept, rejected int
	for _, e := range full.SortedEdges() {
		from, to := full.Name(e.From), full.Name(e.To)
		if err = locked.SetEdge(from, to, e.Weight); err != nil {
			return nil, fmt.Errorf("%s: %w", r.method, err)
		}
		// 2) Tentatively locked; undo it if it closed a cycle.
		step := Step{Kind: StepLock, Candidate: from, Opponent: to, Value: e.Weight}
		if locked.IsCycled() {
			if err = locked.RemoveEdge(from, to); err != nil {
				return nil, fmt.Errorf("%s: %w", r.method, err)
			}
			step.Kind = StepReject
			rejected++
		} else {
			kept++
		}
		// 3) Trace the graph as it stands after this edge.
		if r.traced() {
			step.Snapshot = snapshotOf(locked)
		}
		r.record(step)
	}
	r.log.Debug("ranked pairs locked", slog.Int("locked", kept), slog.Int("rejected", rejected))

	return locked, nil
}

// SPDX-License-Identifier: MIT
// File: checker.go
// Role: shared prologue, duel graph construction and the Condorcet checker.

package condorcet

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/condorcet/duel"
	"github.com/katalvlaran/condorcet/duelgraph"
)

// run carries one resolution call's inputs and settings.
type run struct {
	method Method
	m      *duel.Matrix
	opts   options
	log    *slog.Logger
}

// newRun validates m against the options and records the duel steps.
func newRun(method Method, m *duel.Matrix, opts []Option) (*run, error) {
	o := gatherOptions(opts)
	if m == nil || m.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrNoCandidates)
	}
	if m.Len() > o.maxCandidates {
		return nil, fmt.Errorf("%s: %d candidates, bound %d: %w",
			method, m.Len(), o.maxCandidates, ErrCapacityExceeded)
	}

	r := &run{
		method: method,
		m:      m,
		opts:   o,
		log:    o.logger.With(slog.String("method", method.String())),
	}
	r.log.Debug("resolve start", slog.Int("candidates", m.Len()), slog.Int("voters", m.Voters()))

	if r.traced() {
		n := m.Len()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v := m.Margin(i, j); v > 0 {
					r.record(Step{Kind: StepDuel, Candidate: m.Name(i), Opponent: m.Name(j), Value: v})
				}
			}
		}
	}

	return r, nil
}

func (r *run) traced() bool { return r.opts.trace.enabled() }

func (r *run) record(s Step) { r.opts.trace.add(s) }

func (r *run) result() VoteResult {
	return VoteResult{Method: r.method, Candidates: r.m.Len(), Voters: r.m.Voters()}
}

// finish stamps the winner step and the closing log record.
func (r *run) finish(res VoteResult) VoteResult {
	step := Step{Kind: StepWinner, Candidate: res.Winner}
	if res.Score != nil {
		step.Value = *res.Score
	}
	r.record(step)
	r.log.Debug("resolve done",
		slog.String("winner", res.Winner),
		slog.Bool("condorcet", res.Condorcet),
		slog.Int("tied", len(res.Tied)))

	return res
}

// graph builds the duel graph of r.m bounded by the configured capacity.
func (r *run) graph() (*duelgraph.Graph, error) {
	g, err := buildGraph(r.m, r.opts.maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.method, err)
	}

	return g, nil
}

// BuildGraph returns the duel graph of m: one node per candidate in matrix
// order and an edge i→j of weight margin(i,j) wherever that margin is
// positive. Fails with ErrNoCandidates or ErrCapacityExceeded.
// Complexity: O(V²).
func BuildGraph(m *duel.Matrix, opts ...Option) (*duelgraph.Graph, error) {
	o := gatherOptions(opts)
	if m == nil || m.Len() == 0 {
		return nil, fmt.Errorf("BuildGraph: %w", ErrNoCandidates)
	}

	return buildGraph(m, o.maxCandidates)
}

func buildGraph(m *duel.Matrix, maxNodes int) (*duelgraph.Graph, error) {
	names := m.Names()
	g, err := duelgraph.FromNames(names, duelgraph.WithMaxNodes(maxNodes))
	if err != nil {
		return nil, err
	}
	n := len(names)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := m.Margin(i, j); v > 0 {
				if err = g.SetEdge(names[i], names[j], v); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// FindWinner returns the Condorcet winner of g: the unique node with no
// incoming edge. It reports false when no node, or more than one node, is
// undefeated. g is not modified.
// Complexity: O(V²).
func FindWinner(g *duelgraph.Graph) (string, bool) {
	if g == nil {
		return "", false
	}
	dom := g.Dominant()
	if len(dom) != 1 {
		return "", false
	}

	return dom[0], true
}

// Condorcet runs only the checker. It fails with ErrNoCondorcetWinner when
// no unique undefeated candidate exists.
func Condorcet(m *duel.Matrix, opts ...Option) (VoteResult, error) {
	r, err := newRun(MethodCondorcet, m, opts)
	if err != nil {
		return VoteResult{}, err
	}
	res, ok, err := r.check()
	if err != nil {
		return VoteResult{}, err
	}
	if !ok {
		return VoteResult{}, fmt.Errorf("%s: %w", r.method, ErrNoCondorcetWinner)
	}

	return r.finish(res), nil
}

// check looks for a Condorcet winner. On success the result carries the
// winner's smallest positive victory margin as Score.
func (r *run) check() (VoteResult, bool, error) {
	g, err := r.graph()
	if err != nil {
		return VoteResult{}, false, err
	}
	if r.traced() {
		r.record(Step{Kind: StepSnapshot, Note: "duel graph", Snapshot: snapshotOf(g)})
	}

	name, ok := FindWinner(g)
	r.record(Step{Kind: StepCondorcet, Candidate: name})
	if !ok {
		r.log.Debug("no condorcet winner", slog.Int("dominant", len(g.Dominant())))

		return VoteResult{}, false, nil
	}

	// graph nodes are in matrix order
	w, err := g.NodeIndex(name)
	if err != nil {
		return VoteResult{}, false, fmt.Errorf("%s: %w", r.method, err)
	}
	res := r.result()
	res.Winner = name
	res.Condorcet = true
	smallest := 0
	for j := 0; j < r.m.Len(); j++ {
		if v := r.m.Margin(w, j); v > 0 && (smallest == 0 || v < smallest) {
			smallest = v
		}
	}
	if smallest > 0 {
		res.Score = intPtr(smallest)
	}

	return res, true, nil
}

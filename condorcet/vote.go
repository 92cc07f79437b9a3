// SPDX-License-Identifier: MIT

package condorcet

import (
	"fmt"

	"github.com/katalvlaran/condorcet/ballot"
	"github.com/katalvlaran/condorcet/duel"
)

// Vote runs the Condorcet checker and, only when it finds no winner, the
// completion method. The result's Condorcet field tells which path decided.
// MethodCondorcet behaves as Condorcet.
func Vote(method Method, m *duel.Matrix, opts ...Option) (VoteResult, error) {
	if !method.Valid() {
		return VoteResult{}, fmt.Errorf("Vote(%q): %w", method, ErrUnknownMethod)
	}
	if method == MethodCondorcet {
		return Condorcet(m, opts...)
	}

	r, err := newRun(method, m, opts)
	if err != nil {
		return VoteResult{}, err
	}
	res, ok, err := r.check()
	if err != nil {
		return VoteResult{}, err
	}
	if ok {
		return r.finish(res), nil
	}

	switch method {
	case MethodMinimax:
		return r.minimax(), nil
	case MethodRankedPairs:
		return r.rankedPairs()
	default:
		return r.schulze()
	}
}

// VoteTable builds the duel matrix of t and runs Vote on it. The candidate
// bound is checked before any ballot is scanned.
func VoteTable(t ballot.Table, method Method, opts ...Option) (VoteResult, error) {
	if t == nil {
		return VoteResult{}, fmt.Errorf("VoteTable: %w", ErrNoCandidates)
	}
	o := gatherOptions(opts)
	if n := len(t.CandidateNames()); n > o.maxCandidates {
		return VoteResult{}, fmt.Errorf("VoteTable: %d candidates, bound %d: %w",
			n, o.maxCandidates, ErrCapacityExceeded)
	}
	m, err := duel.FromTable(t)
	if err != nil {
		return VoteResult{}, fmt.Errorf("VoteTable: %w", err)
	}

	return Vote(method, m, opts...)
}

// SPDX-License-Identifier: MIT

package condorcet

import (
	"errors"

	"github.com/katalvlaran/condorcet/ballot"
	"github.com/katalvlaran/condorcet/duel"
	"github.com/katalvlaran/condorcet/duelgraph"
)

// Caller-facing error kinds. The first five alias the sentinels of the
// packages that raise them, so errors.Is works across package boundaries.
var (
	ErrNoCandidates     = ballot.ErrNoCandidates
	ErrCapacityExceeded = duelgraph.ErrCapacityExceeded
	ErrUnknownCandidate = ballot.ErrUnknownCandidate
	ErrMalformedRank    = ballot.ErrMalformedRank
	ErrMalformedMatrix  = duel.ErrMalformedMatrix

	// ErrUnknownMethod indicates an unsupported resolution method.
	ErrUnknownMethod = errors.New("condorcet: unknown method")

	// ErrNoCondorcetWinner indicates MethodCondorcet found no unique
	// undefeated candidate.
	ErrNoCondorcetWinner = errors.New("condorcet: no condorcet winner")
)

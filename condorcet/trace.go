// SPDX-License-Identifier: MIT

package condorcet

import (
	"encoding/json"

	"github.com/katalvlaran/condorcet/duelgraph"
)

// StepKind labels a trace step.
type StepKind string

// Trace step kinds.
const (
	StepDuel      StepKind = "duel"      // positive margin Candidate over Opponent
	StepCondorcet StepKind = "condorcet" // checker outcome; Candidate empty when none
	StepSnapshot  StepKind = "snapshot"  // graph state, Note says which
	StepLock      StepKind = "lock"      // edge kept, no cycle
	StepReject    StepKind = "reject"    // edge dropped, it closed a cycle
	StepRemove    StepKind = "remove"    // non-dominant node removed
	StepTie       StepKind = "tie"       // several candidates share the lead
	StepWorst     StepKind = "worst"     // minimax worst margin of Candidate
	StepPath      StepKind = "path"      // Schulze strengths after widening
	StepBeats     StepKind = "beats"     // Schulze beat count of Candidate
	StepWinner    StepKind = "winner"
)

// Step is one recorded event. Fields irrelevant to Kind are zero.
type Step struct {
	Kind      StepKind            `json:"kind"`
	Candidate string              `json:"candidate,omitempty"`
	Opponent  string              `json:"opponent,omitempty"`
	Value     int                 `json:"value"`
	Names     []string            `json:"names,omitempty"`
	Note      string              `json:"note,omitempty"`
	Snapshot  *duelgraph.Snapshot `json:"snapshot,omitempty"`
}

// Trace is an ordered, append-only record of resolution steps.
// The zero value is ready to use. A nil *Trace ignores every record.
type Trace struct {
	steps []Step
}

// NewTrace returns an empty Trace.
func NewTrace() *Trace { return &Trace{} }

// add appends s; no-op on a nil receiver.
func (t *Trace) add(s Step) {
	if t == nil {
		return
	}
	t.steps = append(t.steps, s)
}

// enabled reports whether recording is on, so callers can skip snapshots.
func (t *Trace) enabled() bool { return t != nil }

// Len returns the number of steps.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}

	return len(t.steps)
}

// Steps returns a copy of all steps in order.
func (t *Trace) Steps() []Step {
	if t == nil {
		return nil
	}

	return append([]Step(nil), t.steps...)
}

// Kind returns the steps of one kind, in order.
func (t *Trace) Kind(k StepKind) []Step {
	var out []Step
	for _, s := range t.Steps() {
		if s.Kind == k {
			out = append(out, s)
		}
	}

	return out
}

// Reset clears the trace for reuse.
func (t *Trace) Reset() {
	if t != nil {
		t.steps = t.steps[:0]
	}
}

// MarshalJSON encodes the steps as a JSON array.
func (t *Trace) MarshalJSON() ([]byte, error) {
	steps := t.Steps()
	if steps == nil {
		steps = []Step{}
	}

	return json.Marshal(steps)
}

func snapshotOf(g *duelgraph.Graph) *duelgraph.Snapshot {
	s := g.Snapshot()

	return &s
}

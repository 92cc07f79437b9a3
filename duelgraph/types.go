// SPDX-License-Identifier: MIT

package duelgraph

import (
	"errors"

	"github.com/katalvlaran/condorcet/matrix"
)

// Sentinel errors for duel graph operations.
var (
	// ErrCapacityExceeded indicates AddNode beyond the configured node bound.
	ErrCapacityExceeded = errors.New("duelgraph: capacity exceeded")

	// ErrUnknownNode indicates an operation referenced a non-existent node.
	ErrUnknownNode = errors.New("duelgraph: unknown node")

	// ErrDuplicateNode indicates AddNode with a name already present.
	ErrDuplicateNode = errors.New("duelgraph: duplicate node")

	// ErrEmptyName indicates AddNode with an empty name.
	ErrEmptyName = errors.New("duelgraph: empty node name")

	// ErrSelfLoop indicates SetEdge with from == to.
	ErrSelfLoop = errors.New("duelgraph: self-loop not allowed")
)

// DefaultMaxNodes is the node bound used when WithMaxNodes is not given.
const DefaultMaxNodes = 256

const panicMaxNodesInvalid = "duelgraph: WithMaxNodes: bound must be >= 1"

// Edge is a positive duel victory: From beats To by Weight.
// From and To are node indices at the time the edge was listed.
type Edge struct {
	Weight int
	From   int
	To     int
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithMaxNodes sets the node bound. Panics if n < 1 (programmer error).
func WithMaxNodes(n int) Option {
	if n < 1 {
		panic(panicMaxNodesInvalid)
	}

	return func(g *Graph) { g.maxNodes = n }
}

// Graph is a bounded directed graph over named nodes with a dense
// non-negative weight matrix sized to the current node count.
type Graph struct {
	maxNodes int           // upper bound on len(names)
	names    []string      // index → name, insertion order
	weights  *matrix.Dense // weights[i][j] > 0 ⇔ edge i→j
}

// New creates an empty Graph.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(g)
	}
	g.weights, _ = matrix.NewDense(0) // 0 is a valid order

	return g
}

// FromNames creates a Graph holding the given nodes in order.
// Fails with the same errors as AddNode; nothing is returned on failure.
func FromNames(names []string, opts ...Option) (*Graph, error) {
	g := New(opts...)
	for _, n := range names {
		if _, err := g.AddNode(n); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Len returns the current node count.
func (g *Graph) Len() int { return len(g.names) }

// MaxNodes returns the configured node bound.
func (g *Graph) MaxNodes() int { return g.maxNodes }

// Names returns a copy of the node names in index order.
func (g *Graph) Names() []string { return append([]string(nil), g.names...) }

// Name returns the name of node i. Panics if i is out of range.
func (g *Graph) Name(i int) string { return g.names[i] }

// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: edge mutation, lookup and ordered enumeration.
//
// Determinism:
//   - SortedEdges is a total order: weight desc, then From asc, then To asc.

package duelgraph

import (
	"fmt"
	"sort"
)

// resolvePair maps two names to indices, rejecting unknown names and loops.
func (g *Graph) resolvePair(op, from, to string) (int, int, error) {
	i, err := g.NodeIndex(from)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	j, err := g.NodeIndex(to)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	if i == j {
		return 0, 0, fmt.Errorf("%s(%q, %q): %w", op, from, to, ErrSelfLoop)
	}

	return i, j, nil
}

// SetEdge stores from→to with weight, overwriting any prior value.
// A weight <= 0 is a no-op (after the names are validated): negative duel
// scores never become edges.
// Complexity: O(V).
func (g *Graph) SetEdge(from, to string, weight int) error {
	i, j, err := g.resolvePair("SetEdge", from, to)
	if err != nil {
		return err
	}
	if weight <= 0 {
		return nil
	}

	return g.weights.Set(i, j, weight)
}

// RemoveEdge clears from→to. Removing an absent edge is not an error.
// Complexity: O(V).
func (g *Graph) RemoveEdge(from, to string) error {
	i, j, err := g.resolvePair("RemoveEdge", from, to)
	if err != nil {
		return err
	}

	return g.weights.Set(i, j, 0)
}

// Weight returns the weight of from→to (0 when there is no edge).
func (g *Graph) Weight(from, to string) (int, error) {
	i, j, err := g.resolvePair("Weight", from, to)
	if err != nil {
		return 0, err
	}

	return g.weightAt(i, j), nil
}

// weightAt reads an in-range cell.
func (g *Graph) weightAt(i, j int) int {
	w, _ := g.weights.At(i, j)

	return w
}

// EdgeCount returns the number of positive edges.
func (g *Graph) EdgeCount() int {
	var c int
	n := len(g.names)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if g.weightAt(i, j) > 0 {
				c++
			}
		}
	}

	return c
}

// SortedEdges lists every positive edge ordered by weight descending, ties
// broken by From ascending then To ascending.
// Complexity: O(V² log V).
func (g *Graph) SortedEdges() []Edge {
	n := len(g.names)
	edges := make([]Edge, 0, n*(n-1)/2+1)
	var i, j, w int
	for i = 0; i < n; i++ { // row-major scan already yields (From, To) ascending
		for j = 0; j < n; j++ {
			if w = g.weightAt(i, j); w > 0 {
				edges = append(edges, Edge{Weight: w, From: i, To: j})
			}
		}
	}

	sort.SliceStable(edges, func(a, b int) bool {
		ea, eb := edges[a], edges[b]
		if ea.Weight != eb.Weight {
			return ea.Weight > eb.Weight
		}
		if ea.From != eb.From {
			return ea.From < eb.From
		}

		return ea.To < eb.To
	})

	return edges
}

// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: node lifecycle & node-level queries.
//
// Determinism:
//   - Node indices follow insertion order; RemoveNode compacts without
//     reordering survivors.

package duelgraph

import "fmt"

// NodeIndex returns the index of name, or ErrUnknownNode.
// Complexity: O(V).
func (g *Graph) NodeIndex(name string) (int, error) {
	for i, n := range g.names {
		if n == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("NodeIndex(%q): %w", name, ErrUnknownNode)
}

// HasNode reports whether name is present.
func (g *Graph) HasNode(name string) bool {
	_, err := g.NodeIndex(name)

	return err == nil
}

// AddNode appends a node with no edges and returns its index.
//
// Errors: ErrEmptyName, ErrDuplicateNode, ErrCapacityExceeded. On error the
// graph is unchanged.
// Complexity: O(V²) for the matrix regrow.
func (g *Graph) AddNode(name string) (int, error) {
	if name == "" {
		return -1, ErrEmptyName
	}
	if g.HasNode(name) {
		return -1, fmt.Errorf("AddNode(%q): %w", name, ErrDuplicateNode)
	}
	if len(g.names) >= g.maxNodes {
		return -1, fmt.Errorf("AddNode(%q): %d nodes: %w", name, g.maxNodes, ErrCapacityExceeded)
	}

	// The new row and column start at zero, so a re-added name never
	// inherits edges from a removed node of the same name.
	g.weights = g.weights.Grow()
	g.names = append(g.names, name)

	return len(g.names) - 1, nil
}

// RemoveNode deletes name and every edge touching it, compacting indices.
// It returns the index the node held.
// Complexity: O(V²).
func (g *Graph) RemoveNode(name string) (int, error) {
	p, err := g.NodeIndex(name)
	if err != nil {
		return -1, fmt.Errorf("RemoveNode: %w", err)
	}
	w, err := g.weights.Without(p)
	if err != nil {
		return -1, fmt.Errorf("RemoveNode(%q): %w", name, err)
	}

	names := make([]string, 0, len(g.names)-1)
	names = append(names, g.names[:p]...)
	names = append(names, g.names[p+1:]...)
	g.names, g.weights = names, w

	return p, nil
}

// IsDominant reports whether no node has a positive edge into name.
// Complexity: O(V).
func (g *Graph) IsDominant(name string) (bool, error) {
	p, err := g.NodeIndex(name)
	if err != nil {
		return false, fmt.Errorf("IsDominant: %w", err)
	}

	return g.dominantAt(p), nil
}

// IsIsolated reports whether name has no positive edge in either direction.
// Complexity: O(V).
func (g *Graph) IsIsolated(name string) (bool, error) {
	p, err := g.NodeIndex(name)
	if err != nil {
		return false, fmt.Errorf("IsIsolated: %w", err)
	}
	for j := range g.names {
		if g.weightAt(p, j) > 0 {
			return false, nil
		}
	}

	return g.dominantAt(p), nil
}

// Dominant returns the names of all dominant nodes in index order.
// Complexity: O(V²).
func (g *Graph) Dominant() []string {
	var out []string
	for p, n := range g.names {
		if g.dominantAt(p) {
			out = append(out, n)
		}
	}

	return out
}

// dominantAt is IsDominant on an already-resolved index.
func (g *Graph) dominantAt(p int) bool {
	for i := range g.names {
		if g.weightAt(i, p) > 0 {
			return false
		}
	}

	return true
}

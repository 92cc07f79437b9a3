// SPDX-License-Identifier: MIT
// File: view.go
// Role: copies and read-only renderings of a Graph.

package duelgraph

import (
	"fmt"
	"strings"
)

// Snapshot is a deep, detached copy of a graph's state.
type Snapshot struct {
	Names   []string `json:"names"`
	Weights [][]int  `json:"weights"`
}

// Clone returns an independent deep copy with the same bound.
// Complexity: O(V²).
func (g *Graph) Clone() *Graph {
	return &Graph{
		maxNodes: g.maxNodes,
		names:    g.Names(),
		weights:  g.weights.Clone(),
	}
}

// Snapshot captures names and weights.
func (g *Graph) Snapshot() Snapshot {
	return Snapshot{Names: g.Names(), Weights: g.weights.Rows()}
}

// Label returns the short display label of index i: A…Z, then A1…Z1, A2….
// Labels are presentation only.
func Label(i int) string {
	letter := string(rune('A' + i%26))
	if i < 26 {
		return letter
	}

	return fmt.Sprintf("%s%d", letter, i/26)
}

// String renders the weight matrix with labels and a legend, "-" for no edge.
func (g *Graph) String() string {
	var sb strings.Builder
	n := len(g.names)

	sb.WriteString("    |")
	for j := 0; j < n; j++ {
		fmt.Fprintf(&sb, " %3s |", Label(j))
	}
	sb.WriteString("\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%3s |", Label(i))
		for j := 0; j < n; j++ {
			if w := g.weightAt(i, j); w > 0 {
				fmt.Fprintf(&sb, " %3d |", w)
			} else {
				sb.WriteString("   - |")
			}
		}
		fmt.Fprintf(&sb, "   %s = %s\n", Label(i), g.names[i])
	}

	return sb.String()
}

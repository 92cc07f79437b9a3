// SPDX-License-Identifier: MIT

// Cycle detection over positive edges with three-colour marking.
//
// A Gray node is on the current DFS stack; reaching a Gray node again is a
// back-edge and therefore a cycle. Black nodes are fully explored and are
// skipped, so a descendant shared by two branches is never mistaken for a
// cycle.
//
// Complexity:
//
//   - Time:   O(V²) (each row of the adjacency matrix scanned once)
//   - Memory: O(V)  (state slice + recursion stack)
package duelgraph

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // node and all descendants explored
)

// IsCycled reports whether the positive-weight edges contain a directed cycle.
func (g *Graph) IsCycled() bool {
	n := len(g.names)
	state := make([]int, n) // all White

	for v := 0; v < n; v++ {
		if state[v] == White && g.visit(v, state) {
			return true
		}
	}

	return false
}

// visit explores v depth-first and returns true on the first back-edge.
func (g *Graph) visit(v int, state []int) bool {
	state[v] = Gray
	for w := range state {
		if g.weightAt(v, w) <= 0 {
			continue
		}
		switch state[w] {
		case Gray:
			return true // back-edge
		case White:
			if g.visit(w, state) {
				return true
			}
		}
	}
	state[v] = Black

	return false
}

// SPDX-License-Identifier: MIT

// Package duelgraph implements the bounded, directed, positively weighted
// graph used to model pairwise duel victories.
//
// What:
//
//   - Nodes are candidates, identified by a unique name and a dense index
//     (insertion order). Indices are compacted on removal, preserving the
//     relative order of the remaining nodes.
//   - An edge from→to with weight w > 0 means "from beats to by w".
//     Weights are never negative; a weight of 0 means "no edge".
//   - The node count is bounded (WithMaxNodes); AddNode beyond the bound
//     fails with ErrCapacityExceeded.
//
// Queries:
//
//   - IsDominant: no positive edge enters the node.
//   - IsIsolated: no positive edge enters or leaves the node.
//   - IsCycled: any directed cycle over positive edges, found with a
//     White/Gray/Black depth-first search.
//   - SortedEdges: every positive edge, weight descending, ties broken by
//     (from, to) index ascending.
//
// Errors:
//
//   - ErrCapacityExceeded  AddNode beyond the configured bound
//   - ErrUnknownNode       a referenced name is not in the graph
//   - ErrDuplicateNode     AddNode with an existing name
//   - ErrEmptyName         AddNode with an empty name
//   - ErrSelfLoop          SetEdge from a node to itself
//
// Every mutator validates all of its arguments before touching state.
//
// Complexity:
//
//   - AddNode, RemoveNode: O(V²) (matrix regrow/compaction)
//   - SetEdge, RemoveEdge, IsDominant: O(V)
//   - IsCycled: O(V²) over the adjacency matrix
//   - SortedEdges: O(V² log V)
//
// A Graph is not safe for concurrent mutation; each resolution owns its own.
package duelgraph

// Package matrix provides the dense square integer matrix behind duel
// graphs and duel tables, plus the widest-path closure used by Schulze.
//
// The package provides:
//
//   - Dense: flat row-major n×n storage with bounds-checked At/Set, copies
//     (Row, Rows, Clone), and order changes (Without removes a row and
//     column, Grow appends a zero one).
//   - InitStrengths and WidestPaths: in-place bottleneck closure, the
//     max/min dual of Floyd–Warshall, with NoPath marking absent paths.
//
// Indices are 0-based. Public accessors return ErrOutOfRange rather than
// panic; see errors.go for the sentinel set.
package matrix

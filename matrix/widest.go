// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Widest-path (bottleneck) closure over a dense strength matrix, the
//     max/min dual of Floyd–Warshall. In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; NoPath (-1) means "no path"; only strictly positive
//     strengths take part in widening; the diagonal is forced to 0.

package matrix

const opWidestPaths = "WidestPaths"

// NoPath marks the absence of a path in a strength matrix.
const NoPath = -1

// InitStrengths converts a margin matrix into an initial strength matrix
// in-place: diag = 0; off-diagonal values <= 0 become NoPath; positive values
// are kept.
// Complexity: O(n²).
func InitStrengths(m *Dense) error {
	if m == nil {
		return matrixErrorf("InitStrengths", ErrNilMatrix)
	}
	n := m.n
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				m.data[i*n+j] = 0
			case m.data[i*n+j] <= 0:
				m.data[i*n+j] = NoPath
			}
		}
	}

	return nil
}

// WidestPaths runs the bottleneck closure on m in-place:
//
//	for k, i, j: if p[i,k] > 0 and p[k,j] > 0:
//	    p[i,j] = max(p[i,j], min(p[i,k], p[k,j]))
//
// On return p[i,j] >= min(p[i,k], p[k,j]) for every triple whose right-hand
// terms are both positive. Loop order is fixed (k → i → j).
// Complexity: Time O(n³), extra space O(1).
func WidestPaths(m *Dense) error {
	if m == nil {
		return matrixErrorf(opWidestPaths, ErrNilMatrix)
	}

	n := m.n
	data := m.data
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			ik = data[i*n+k]
			if ik <= 0 { // no usable path i→k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				if j == i || j == k {
					continue
				}
				kj = data[baseK+j]
				if kj <= 0 {
					continue
				}
				cand = min(ik, kj) // bottleneck through k
				if cand > data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

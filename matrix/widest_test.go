package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/condorcet/matrix"
)

func TestInitStrengths(t *testing.T) {
	m, _ := matrix.FromRows([][]int{
		{5, 3, -2},
		{-3, 0, 0},
		{2, 0, 9},
	})
	require.NoError(t, matrix.InitStrengths(m))
	assert.Equal(t, [][]int{
		{0, 3, matrix.NoPath},
		{matrix.NoPath, 0, matrix.NoPath},
		{2, matrix.NoPath, 0},
	}, m.Rows())

	assert.ErrorIs(t, matrix.InitStrengths(nil), matrix.ErrNilMatrix)
}

// TestWidestPaths_Textbook uses the five-candidate, 45-voter beatpath example
// (winning-votes strengths) whose strongest paths are well known.
func TestWidestPaths_Textbook(t *testing.T) {
	m, _ := matrix.FromRows([][]int{
		{0, 0, 26, 30, 0},
		{25, 0, 0, 33, 0},
		{0, 29, 0, 0, 24},
		{0, 0, 28, 0, 0},
		{23, 27, 0, 31, 0},
	})
	require.NoError(t, matrix.InitStrengths(m))
	require.NoError(t, matrix.WidestPaths(m))

	assert.Equal(t, [][]int{
		{0, 28, 28, 30, 24},
		{25, 0, 28, 33, 24},
		{25, 29, 0, 29, 24},
		{25, 28, 28, 0, 24},
		{25, 28, 28, 31, 0},
	}, m.Rows())
}

func TestWidestPaths_NoPathStaysNoPath(t *testing.T) {
	// 0 → 1 only; nothing reaches 0 and 1 reaches nobody.
	m, _ := matrix.FromRows([][]int{{0, 4}, {-4, 0}})
	require.NoError(t, matrix.InitStrengths(m))
	require.NoError(t, matrix.WidestPaths(m))
	assert.Equal(t, [][]int{{0, 4}, {matrix.NoPath, 0}}, m.Rows())

	assert.ErrorIs(t, matrix.WidestPaths(nil), matrix.ErrNilMatrix)
}

// TestWidestPaths_FixedPoint checks p[i][j] >= min(p[i][k], p[k][j]) for all
// distinct i, j whenever both right-hand terms are positive.
func TestWidestPaths_FixedPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(7)
		rows := make([][]int, n)
		for i := range rows {
			rows[i] = make([]int, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				v := rng.Intn(21) - 10
				rows[i][j], rows[j][i] = v, -v
			}
		}
		m, err := matrix.FromRows(rows)
		require.NoError(t, err)
		require.NoError(t, matrix.InitStrengths(m))
		require.NoError(t, matrix.WidestPaths(m))

		p := m.Rows()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				for k := 0; k < n; k++ {
					if p[i][k] > 0 && p[k][j] > 0 {
						assert.GreaterOrEqual(t, p[i][j], min(p[i][k], p[k][j]),
							"trial %d: i=%d k=%d j=%d", trial, i, k, j)
					}
				}
			}
		}
	}
}

func BenchmarkWidestPaths_32(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	const n = 32
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rng.Intn(201) - 100
			rows[i][j], rows[j][i] = v, -v
		}
	}
	base, _ := matrix.FromRows(rows)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := base.Clone()
		_ = matrix.InitStrengths(m)
		_ = matrix.WidestPaths(m)
	}
}

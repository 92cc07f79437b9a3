package duelgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/condorcet/duelgraph"
)

type e = struct {
	From, To string
	W        int
}

// build creates a graph from names and (from, to, weight) triples.
func build(t *testing.T, names []string, edges ...e) *duelgraph.Graph {
	t.Helper()
	g, err := duelgraph.FromNames(names)
	require.NoError(t, err)
	for _, ed := range edges {
		require.NoError(t, g.SetEdge(ed.From, ed.To, ed.W))
	}

	return g
}

func TestAddNode(t *testing.T) {
	g := duelgraph.New(duelgraph.WithMaxNodes(2))
	assert.Equal(t, 2, g.MaxNodes())

	i, err := g.AddNode("A")
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	i, err = g.AddNode("B")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = g.AddNode("C")
	assert.ErrorIs(t, err, duelgraph.ErrCapacityExceeded)
	_, err = g.AddNode("A")
	assert.ErrorIs(t, err, duelgraph.ErrDuplicateNode)
	_, err = g.AddNode("")
	assert.ErrorIs(t, err, duelgraph.ErrEmptyName)

	// Failed calls leave the graph untouched.
	assert.Equal(t, []string{"A", "B"}, g.Names())
}

func TestNew_DefaultBound(t *testing.T) {
	g := duelgraph.New()
	assert.Equal(t, duelgraph.DefaultMaxNodes, g.MaxNodes())
	assert.Equal(t, 0, g.Len())
	assert.False(t, g.IsCycled())
	assert.Empty(t, g.SortedEdges())
}

func TestWithMaxNodes_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { duelgraph.WithMaxNodes(0) })
}

func TestFromNames_Capacity(t *testing.T) {
	_, err := duelgraph.FromNames([]string{"A", "B", "C"}, duelgraph.WithMaxNodes(2))
	assert.ErrorIs(t, err, duelgraph.ErrCapacityExceeded)
}

func TestSetEdge(t *testing.T) {
	g := build(t, []string{"A", "B"})

	require.NoError(t, g.SetEdge("A", "B", 3))
	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3, w)

	// overwrite
	require.NoError(t, g.SetEdge("A", "B", 5))
	w, _ = g.Weight("A", "B")
	assert.Equal(t, 5, w)

	// non-positive weights never create or alter edges
	require.NoError(t, g.SetEdge("B", "A", -2))
	require.NoError(t, g.SetEdge("A", "B", 0))
	w, _ = g.Weight("B", "A")
	assert.Zero(t, w)
	w, _ = g.Weight("A", "B")
	assert.Equal(t, 5, w)

	assert.ErrorIs(t, g.SetEdge("A", "Z", 1), duelgraph.ErrUnknownNode)
	assert.ErrorIs(t, g.SetEdge("Z", "A", 1), duelgraph.ErrUnknownNode)
	assert.ErrorIs(t, g.SetEdge("A", "A", 1), duelgraph.ErrSelfLoop)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRemoveEdge(t *testing.T) {
	g := build(t, []string{"A", "B"}, e{"A", "B", 2})
	require.NoError(t, g.RemoveEdge("A", "B"))
	require.NoError(t, g.RemoveEdge("A", "B")) // idempotent
	assert.Equal(t, 0, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge("A", "Q"), duelgraph.ErrUnknownNode)
}

func TestRemoveNode_CompactsInOrder(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"},
		e{"A", "B", 1}, e{"B", "C", 2}, e{"C", "D", 3}, e{"D", "A", 4}, e{"A", "C", 5})

	p, err := g.RemoveNode("B")
	require.NoError(t, err)
	assert.Equal(t, 1, p)
	assert.Equal(t, []string{"A", "C", "D"}, g.Names())

	snap := g.Snapshot()
	assert.Equal(t, [][]int{
		{0, 5, 0},
		{0, 0, 3},
		{4, 0, 0},
	}, snap.Weights)

	_, err = g.RemoveNode("B")
	assert.ErrorIs(t, err, duelgraph.ErrUnknownNode)
}

func TestRemoveNode_ReAddHasNoEdges(t *testing.T) {
	g := build(t, []string{"A", "B", "C"},
		e{"A", "B", 1}, e{"B", "C", 2}, e{"C", "B", 7})
	before := g.Len()

	_, err := g.RemoveNode("B")
	require.NoError(t, err)
	_, err = g.AddNode("B")
	require.NoError(t, err)

	assert.Equal(t, before, g.Len())
	for _, other := range []string{"A", "C"} {
		w, err := g.Weight(other, "B")
		require.NoError(t, err)
		assert.Zero(t, w)
		w, err = g.Weight("B", other)
		require.NoError(t, err)
		assert.Zero(t, w)
	}
	assert.Equal(t, 0, g.EdgeCount())
}

func TestIsDominantAndIsolated(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"}, e{"A", "B", 1}, e{"A", "C", 1}, e{"C", "B", 2})

	dom, err := g.IsDominant("A")
	require.NoError(t, err)
	assert.True(t, dom)
	dom, _ = g.IsDominant("B")
	assert.False(t, dom)

	iso, err := g.IsIsolated("D")
	require.NoError(t, err)
	assert.True(t, iso)
	iso, _ = g.IsIsolated("A")
	assert.False(t, iso, "A has outgoing edges")

	assert.Equal(t, []string{"A", "D"}, g.Dominant())

	_, err = g.IsDominant("X")
	assert.ErrorIs(t, err, duelgraph.ErrUnknownNode)
	_, err = g.IsIsolated("X")
	assert.ErrorIs(t, err, duelgraph.ErrUnknownNode)
}

func TestIsCycled(t *testing.T) {
	cases := []struct {
		name  string
		names []string
		edges []e
		want  bool
	}{
		{"empty", nil, nil, false},
		{"chain", []string{"A", "B", "C"}, []e{{"A", "B", 1}, {"B", "C", 1}}, false},
		{
			// A→B, A→C, B→D, C→D: D is reached twice but there is no cycle.
			"shared descendant", []string{"A", "B", "C", "D"},
			[]e{{"A", "B", 1}, {"A", "C", 1}, {"B", "D", 1}, {"C", "D", 1}}, false,
		},
		{"two cycle", []string{"A", "B"}, []e{{"A", "B", 1}, {"B", "A", 1}}, true},
		{
			// D→B, C→D, B→C.
			"three cycle off the first node", []string{"A", "B", "C", "D"},
			[]e{{"D", "B", 1}, {"C", "D", 2}, {"B", "C", 3}}, true,
		},
		{
			"cycle in second component", []string{"A", "B", "C", "D", "E"},
			[]e{{"A", "B", 1}, {"C", "D", 1}, {"D", "E", 1}, {"E", "C", 1}}, true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.names, tc.edges...)
			assert.Equal(t, tc.want, g.IsCycled())
		})
	}
}

func TestSortedEdges_TotalOrder(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"},
		e{"C", "A", 2}, e{"A", "D", 5}, e{"B", "C", 2}, e{"D", "B", 5}, e{"A", "B", 2})

	assert.Equal(t, []duelgraph.Edge{
		{Weight: 5, From: 0, To: 3},
		{Weight: 5, From: 3, To: 1},
		{Weight: 2, From: 0, To: 1},
		{Weight: 2, From: 1, To: 2},
		{Weight: 2, From: 2, To: 0},
	}, g.SortedEdges())
}

func TestClone_IsIndependent(t *testing.T) {
	g := build(t, []string{"A", "B"}, e{"A", "B", 4})
	c := g.Clone()
	require.NoError(t, c.RemoveEdge("A", "B"))
	_, err := c.AddNode("C")
	require.NoError(t, err)

	w, _ := g.Weight("A", "B")
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, g.MaxNodes(), c.MaxNodes())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "A", duelgraph.Label(0))
	assert.Equal(t, "Z", duelgraph.Label(25))
	assert.Equal(t, "A1", duelgraph.Label(26))
	assert.Equal(t, "C2", duelgraph.Label(54))
}

func TestString(t *testing.T) {
	g := build(t, []string{"Alice", "Bob"}, e{"Alice", "Bob", 3})
	want := "" +
		"    |   A |   B |\n" +
		"  A |   - |   3 |   A = Alice\n" +
		"  B |   - |   - |   B = Bob\n"
	assert.Equal(t, want, g.String())
}

func TestNoFunctionalCapBeyondAlphabet(t *testing.T) {
	g := duelgraph.New()
	for i := 0; i < 40; i++ {
		_, err := g.AddNode(duelgraph.Label(i))
		require.NoError(t, err)
	}
	assert.Equal(t, 40, g.Len())
}

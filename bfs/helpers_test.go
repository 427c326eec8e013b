package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/core"
)

// build creates a graph from cities and name pairs.
func build(t testing.TB, cities []city.City, edges [][2]string) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, c := range cities {
		_, err := b.AddCity(c)
		require.NoError(t, err)
	}
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}

	return b.Build()
}

// lineWithIsland is A(0,0)-B(0,1)-C(1,1) plus the isolated D(5,5).
func lineWithIsland(t testing.TB) *core.Graph {
	return build(t, []city.City{
		city.New("A", 0, 0),
		city.New("B", 0, 1),
		city.New("C", 1, 1),
		city.New("D", 5, 5),
	}, [][2]string{{"A", "B"}, {"B", "C"}})
}

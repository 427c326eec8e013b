package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/core"
)

func TestBuilder_AddCity_Indices(t *testing.T) {
	b := core.NewBuilder()
	i, err := b.AddCity(city.New("Boston", 42.36, -71.06))
	require.NoError(t, err)
	j, err := b.AddCity(city.New("Albany", 42.65, -73.75))
	require.NoError(t, err)

	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
	assert.Equal(t, 2, b.Len())
}

func TestBuilder_AddCity_Errors(t *testing.T) {
	b := core.NewBuilder()
	_, err := b.AddCity(city.City{})
	assert.ErrorIs(t, err, core.ErrEmptyCityName)

	_, err = b.AddCity(city.New("Boston", 0, 0))
	require.NoError(t, err)
	_, err = b.AddCity(city.New("Boston", 1, 1))
	assert.ErrorIs(t, err, core.ErrDuplicateCity)

	// a case variant is a distinct exact name
	_, err = b.AddCity(city.New("BOSTON", 1, 1))
	assert.NoError(t, err)
}

func TestBuilder_AddEdge_UnknownCity(t *testing.T) {
	b := core.NewBuilder()
	_, err := b.AddCity(city.New("A", 0, 0))
	require.NoError(t, err)

	err = b.AddEdge("A", "Nowhere")
	assert.ErrorIs(t, err, core.ErrCityNotFound)
	assert.Contains(t, err.Error(), "Nowhere")

	assert.ErrorIs(t, b.AddEdgeIndex(0, 7), core.ErrIndexOutOfRange)
	assert.ErrorIs(t, b.AddEdgeIndex(-1, 0), core.ErrIndexOutOfRange)
}

func TestBuilder_SealedAfterBuild(t *testing.T) {
	b := core.NewBuilder()
	_, err := b.AddCity(city.New("A", 0, 0))
	require.NoError(t, err)
	g := b.Build()

	_, err = b.AddCity(city.New("B", 0, 1))
	assert.ErrorIs(t, err, core.ErrBuilderSealed)
	assert.ErrorIs(t, b.AddEdge("A", "A"), core.ErrBuilderSealed)
	assert.Equal(t, 1, g.Len())
	assert.Same(t, g, b.Build())
}

func TestGraph_NeighborsSymmetric(t *testing.T) {
	g := buildTriangleLine(t)

	nA, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, nA)

	nB, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, nB, "insertion order")

	nD, err := g.Neighbors(3)
	require.NoError(t, err)
	assert.NotNil(t, nD)
	assert.Empty(t, nD, "isolated city")

	_, err = g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestGraph_NeighborsReturnsCopy(t *testing.T) {
	g := buildTriangleLine(t)

	n, err := g.Neighbors(1)
	require.NoError(t, err)
	n[0] = 99

	again, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, again)
}

func TestGraph_Lookup_CaseInsensitive(t *testing.T) {
	b := core.NewBuilder()
	_, err := b.AddCity(city.New("Boston", 42.36, -71.06))
	require.NoError(t, err)
	_, err = b.AddCity(city.New("New_York", 40.71, -74.0))
	require.NoError(t, err)
	g := b.Build()

	for _, name := range []string{"Boston", "boston", "BOSTON", "bOsToN"} {
		i, ok := g.Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, 0, i, name)
	}

	_, ok := g.IndexOf("boston")
	assert.False(t, ok, "exact index is case-sensitive")

	_, err = g.Resolve("Chicago")
	assert.ErrorIs(t, err, core.ErrCityNotFound)
}

func TestGraph_Lookup_ExactWinsOverFold(t *testing.T) {
	b := core.NewBuilder()
	_, err := b.AddCity(city.New("Paris", 0, 0))
	require.NoError(t, err)
	_, err = b.AddCity(city.New("PARIS", 1, 1))
	require.NoError(t, err)
	g := b.Build()

	i, ok := g.Lookup("PARIS")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = g.Lookup("paris")
	require.True(t, ok)
	assert.Equal(t, 0, i, "first spelling wins for folded lookups")
}

func TestGraph_CityAccessors(t *testing.T) {
	g := buildTriangleLine(t)

	c, err := g.City(2)
	require.NoError(t, err)
	assert.Equal(t, "C", c.Name)

	_, err = g.City(-1)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Names())
	assert.Len(t, g.Cities(), 4)
	assert.Panics(t, func() { g.MustCity(10) })
}

func TestGraph_DuplicatesAndLoops(t *testing.T) {
	b := core.NewBuilder()
	_, _ = b.AddCity(city.New("A", 0, 0))
	_, _ = b.AddCity(city.New("B", 0, 1))
	require.NoError(t, b.AddEdge("A", "B"))
	require.NoError(t, b.AddEdge("b", "a"))
	require.NoError(t, b.AddEdge("A", "A"))
	g := b.Build()

	n, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0, 0}, n)

	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(0, 0))
	assert.False(t, g.HasEdge(1, 1))
	assert.False(t, g.HasEdge(0, 9))

	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 0, To: 1}, {From: 0, To: 0}}, g.Edges())

	s := g.Stats()
	assert.Equal(t, core.Stats{CityCount: 2, EdgeCount: 3, SelfLoops: 1, MaxDegree: 4}, s)
}

func TestGraph_EachNeighbor_StopsEarly(t *testing.T) {
	g := buildTriangleLine(t)

	var seen []int
	require.NoError(t, g.EachNeighbor(1, func(j int) bool {
		seen = append(seen, j)
		return false
	}))
	assert.Equal(t, []int{0}, seen)
	assert.ErrorIs(t, g.EachNeighbor(9, func(int) bool { return true }), core.ErrIndexOutOfRange)
}

func TestGraph_Stats_Isolated(t *testing.T) {
	g := buildTriangleLine(t)
	s := g.Stats()

	assert.Equal(t, 4, s.CityCount)
	assert.Equal(t, 2, s.EdgeCount)
	assert.Equal(t, 1, s.IsolatedCount)
	assert.Equal(t, 2, s.MaxDegree)
	assert.Equal(t, 2, g.EdgeCount())
}

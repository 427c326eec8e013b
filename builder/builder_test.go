package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citysearch/builder"
	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/core"
)

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"C0", "C1", "C2", "C3"}, g.Names())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 3))
	assert.InDelta(t, city.Scale, city.Distance(g.MustCity(0), g.MustCity(1)), 1e-9)

	_, err = builder.BuildGraph(nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph([]builder.Option{builder.WithSpacing(2)}, builder.Cycle(6))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge(5, 0))
	for i := 0; i < 6; i++ {
		d, _ := g.Degree(i)
		assert.Equal(t, 2, d)
	}
	assert.InDelta(t, 2*city.Scale, city.Distance(g.MustCity(0), g.MustCity(1)), 1e-9)

	_, err = builder.BuildGraph(nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestStar(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(5))
	require.NoError(t, err)
	hub, _ := g.Degree(0)
	assert.Equal(t, 4, hub)
	assert.Equal(t, 4, g.EdgeCount())
	for i := 1; i < 5; i++ {
		assert.InDelta(t, city.Scale, city.Distance(g.MustCity(0), g.MustCity(i)), 1e-9)
	}
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())

	g, err = builder.BuildGraph(nil, builder.Complete(1))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	assert.Zero(t, g.EdgeCount())
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.Len())
	assert.Equal(t, 3*3+2*4, g.EdgeCount())

	i, ok := g.IndexOf("2,3")
	require.True(t, ok)
	assert.Equal(t, 11, i)
	c := g.MustCity(i)
	assert.Equal(t, 2.0, c.Latitude)
	assert.Equal(t, 3.0, c.Longitude)

	_, err = builder.BuildGraph(nil, builder.Grid(0, 4))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.RandomSparse(10, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, builder.RandomSparse(10, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	full, err := builder.BuildGraph(nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, full.EdgeCount())

	empty, err := builder.BuildGraph(nil, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.EdgeCount())
	assert.Equal(t, 6, empty.Stats().IsolatedCount)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph([]builder.Option{builder.WithSeed(99)}, builder.RandomSparse(30, 0.1))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.Cities(), b.Cities())
	assert.Equal(t, a.Edges(), b.Edges())

	side := math.Sqrt(30)
	for _, c := range a.Cities() {
		assert.GreaterOrEqual(t, c.Latitude, 0.0)
		assert.Less(t, c.Latitude, side)
	}
}

func TestCompose(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithExcelColumnIDs()},
		builder.Path(3),
		builder.Star(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, g.Names())
	assert.True(t, g.HasEdge(3, 4))
	assert.False(t, g.HasEdge(2, 3))
}

func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "city7", builder.SymbolNumberIDFn("city")(7))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithRand(nil) })

	g, err := builder.BuildGraph([]builder.Option{builder.WithSymbNumb("X")}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"X0", "X1"}, g.Names())
}

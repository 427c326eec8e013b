package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/core"
)

// buildTriangleLine builds A(0,0)-B(0,1)-C(1,1) plus the isolated D(5,5).
func buildTriangleLine(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, c := range []city.City{
		city.New("A", 0, 0),
		city.New("B", 0, 1),
		city.New("C", 1, 1),
		city.New("D", 5, 5),
	} {
		_, err := b.AddCity(c)
		require.NoError(t, err)
	}
	require.NoError(t, b.AddEdge("A", "B"))
	require.NoError(t, b.AddEdge("B", "C"))

	return b.Build()
}

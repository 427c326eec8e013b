package astar_test

import (
	"fmt"

	"github.com/katalvlaran/citysearch/astar"
	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/core"
)

// ExampleAStar finds the shortest-distance route on a small map where the
// fewest-hop route (via Far) is much longer.
func ExampleAStar() {
	b := core.NewBuilder()
	_, _ = b.AddCity(city.New("S", 0, 0))
	_, _ = b.AddCity(city.New("P", 0, 1))
	_, _ = b.AddCity(city.New("T", 0, 2))
	_, _ = b.AddCity(city.New("Far", 9, 9))
	_ = b.AddEdge("S", "P")
	_ = b.AddEdge("P", "T")
	_ = b.AddEdge("S", "Far")
	_ = b.AddEdge("Far", "T")
	g := b.Build()

	res, _ := astar.AStar(g, 0, 2)
	r, _ := res.Route(g)
	fmt.Println(r.Names(), r.Hops, city.FormatFloat(res.Cost))
	// Output:
	// [S P T] 2 200.0
}

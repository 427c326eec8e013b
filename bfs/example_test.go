package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/citysearch/bfs"
	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/core"
)

// ExampleBFS finds the fewest-hop route in a small network.
// Two routes exist from "A" to "K": A–B–C–K (3 hops) and A–E–K (2 hops).
func ExampleBFS() {
	b := core.NewBuilder()
	for i, name := range []string{"A", "B", "C", "E", "K"} {
		_, _ = b.AddCity(city.New(name, float64(i), 0))
	}
	_ = b.AddEdge("A", "B")
	_ = b.AddEdge("B", "C")
	_ = b.AddEdge("C", "K")
	_ = b.AddEdge("A", "E")
	_ = b.AddEdge("E", "K")
	g := b.Build()

	start, _ := g.Lookup("a")
	goal, _ := g.Lookup("k")
	res, err := bfs.BFS(g, start, goal)
	if err != nil || !res.Found {
		fmt.Println("no path")
		return
	}
	r, _ := res.Route(g)
	fmt.Println(r.Names(), r.Hops)
	// Output:
	// [A E K] 2
}

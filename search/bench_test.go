package search_test

import (
	"testing"

	"github.com/katalvlaran/citysearch/builder"
	"github.com/katalvlaran/citysearch/search"
)

// BenchmarkRunAll_RandomSparse runs the three searches on a 500-city network.
func BenchmarkRunAll_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph([]builder.Option{builder.WithSeed(5)}, builder.RandomSparse(500, 0.01))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.RunAll(g, 0, g.Len()-1); err != nil {
			b.Fatal(err)
		}
	}
}

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/core"
)

// Constructor appends cities and edges to b using the resolved config.
// Constructors validate their parameters before adding anything.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph resolves opts, applies cons in order and seals the graph.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder()
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}

// addCity names the next city with cfg.idFn and returns its index.
func addCity(method string, b *core.Builder, name string, lat, lon float64) (int, error) {
	idx, err := b.AddCity(city.New(name, lat, lon))
	if err != nil {
		return 0, fmt.Errorf("%s: AddCity(%s): %w", method, name, err)
	}

	return idx, nil
}

func addEdge(method string, b *core.Builder, u, v int) error {
	if err := b.AddEdgeIndex(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, u, v, err)
	}

	return nil
}

// ring places n cities evenly on a circle whose chord between neighbors is
// cfg.spacing, returning their indices.
func ring(method string, b *core.Builder, cfg builderConfig, n int, cLat, cLon float64) ([]int, error) {
	radius := cfg.spacing
	if n > 1 {
		radius = cfg.spacing / (2 * math.Sin(math.Pi/float64(n)))
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		idx, err := addCity(method, b, cfg.idFn(b.Len()), cLat+radius*math.Sin(theta), cLon+radius*math.Cos(theta))
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}

	return out, nil
}

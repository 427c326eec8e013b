package loader

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/core"
)

// Build assembles an immutable graph. City indices follow the order of
// cities; edges resolve their endpoints case-insensitively.
func Build(cities []city.City, edges []EdgeRecord) (*core.Graph, error) {
	b := core.NewBuilder()
	for _, c := range cities {
		if _, err := b.AddCity(c); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err := b.AddEdge(e.A, e.B); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrUnknownCity, e.Line, err)
		}
	}

	return b.Build(), nil
}

// Files is a Source reading a city file and an edge file from disk.
type Files struct {
	Cities string
	Edges  string
}

// Load reads both files and builds the graph.
func (f Files) Load(ctx context.Context) (*core.Graph, error) {
	cities, err := readFile(f.Cities, ReadCities)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	edges, err := readFile(f.Edges, ReadEdges)
	if err != nil {
		return nil, err
	}

	g, err := Build(cities, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Edges, err)
	}

	return g, nil
}

// LoadFiles is Files{cityPath, edgePath}.Load with a background context.
func LoadFiles(cityPath, edgePath string) (*core.Graph, error) {
	return Files{Cities: cityPath, Edges: edgePath}.Load(context.Background())
}

func readFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	fh, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	v, err := parse(fh)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// File: methods.go
// Role: Builder lifecycle (AddCity, AddEdge, Build).
// Determinism:
//   - City indices follow AddCity call order.
//   - Adjacency lists follow AddEdge call order.

package core

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/citysearch/city"
)

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{g: &Graph{
		byName: make(map[string]int),
		byFold: make(map[string]int),
	}}
}

// AddCity appends c and returns its index.
//
// Errors:
//   - ErrEmptyCityName if c.Name is empty.
//   - ErrDuplicateCity if a city with exactly the same name exists.
//
// Names differing only in case are both accepted; case-insensitive lookup
// resolves to the one added first.
func (b *Builder) AddCity(c city.City) (int, error) {
	if b.built {
		return -1, ErrBuilderSealed
	}
	if c.Name == "" {
		return -1, ErrEmptyCityName
	}
	if _, dup := b.g.byName[c.Name]; dup {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateCity, c.Name)
	}

	id := len(b.g.cities)
	b.g.cities = append(b.g.cities, c)
	b.g.adjacency = append(b.g.adjacency, nil)
	b.g.byName[c.Name] = id

	folded := strings.ToLower(c.Name)
	if _, seen := b.g.byFold[folded]; !seen {
		b.g.byFold[folded] = id
	}

	return id, nil
}

// AddEdge connects the cities named a and b in both directions.
// Names are resolved case-insensitively, matching the query resolution.
// Returns ErrCityNotFound (wrapped with the offending name) if either end is unknown.
func (b *Builder) AddEdge(a, bName string) error {
	from, ok := b.g.Lookup(a)
	if !ok {
		return fmt.Errorf("%w: %q", ErrCityNotFound, a)
	}
	to, ok := b.g.Lookup(bName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrCityNotFound, bName)
	}

	return b.AddEdgeIndex(from, to)
}

// AddEdgeIndex connects two cities by index in both directions.
// Self-loops and duplicates are stored as given.
func (b *Builder) AddEdgeIndex(from, to int) error {
	if b.built {
		return ErrBuilderSealed
	}
	n := len(b.g.cities)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, from)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, to)
	}

	b.g.adjacency[from] = append(b.g.adjacency[from], to)
	b.g.adjacency[to] = append(b.g.adjacency[to], from)
	b.g.edges++

	return nil
}

// Len reports how many cities were added so far.
func (b *Builder) Len() int { return len(b.g.cities) }

// Build seals the Builder and returns the finished Graph. Later mutations
// return ErrBuilderSealed; a second Build call returns the same Graph.
func (b *Builder) Build() *Graph {
	b.built = true

	return b.g
}

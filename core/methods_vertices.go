// File: methods_vertices.go
// Role: City catalog queries (Len, City, Cities, Lookup, IndexOf, Names).
// Determinism:
//   - Cities() and Names() follow index order.

package core

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/citysearch/city"
)

// Len returns the number of cities.
func (g *Graph) Len() int { return len(g.cities) }

// Valid reports whether i is a city index of g.
func (g *Graph) Valid(i int) bool { return i >= 0 && i < len(g.cities) }

// City returns the city with index i.
func (g *Graph) City(i int) (city.City, error) {
	if !g.Valid(i) {
		return city.City{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	return g.cities[i], nil
}

// MustCity is City for indices already known to be valid; it panics otherwise.
func (g *Graph) MustCity(i int) city.City {
	c, err := g.City(i)
	if err != nil {
		panic(err)
	}

	return c
}

// Cities returns a copy of all cities in index order.
func (g *Graph) Cities() []city.City {
	out := make([]city.City, len(g.cities))
	copy(out, g.cities)

	return out
}

// Names returns all city names in index order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.cities))
	for i, c := range g.cities {
		out[i] = c.Name
	}

	return out
}

// IndexOf resolves an exact city name.
func (g *Graph) IndexOf(name string) (int, bool) {
	i, ok := g.byName[name]

	return i, ok
}

// Lookup resolves a user-supplied name case-insensitively. An exact match
// wins over a case-folded one.
func (g *Graph) Lookup(name string) (int, bool) {
	if i, ok := g.byName[name]; ok {
		return i, true
	}
	i, ok := g.byFold[strings.ToLower(name)]

	return i, ok
}

// Resolve is Lookup returning ErrCityNotFound wrapped with the name.
func (g *Graph) Resolve(name string) (int, error) {
	i, ok := g.Lookup(name)
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}

	return i, nil
}

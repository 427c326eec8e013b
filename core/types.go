// File: types.go
// Role: Graph and Builder types, sentinel errors.
// Concurrency:
//   - Builder is single-owner; Graph is immutable and safe for concurrent reads.

package core

import (
	"errors"

	"github.com/katalvlaran/citysearch/city"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCityName indicates that a city record has an empty name.
	ErrEmptyCityName = errors.New("core: city name is empty")

	// ErrDuplicateCity indicates that a city with the same exact name was already added.
	ErrDuplicateCity = errors.New("core: duplicate city name")

	// ErrCityNotFound indicates a name did not resolve to any loaded city.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrIndexOutOfRange indicates a city index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("core: city index out of range")

	// ErrGraphNil indicates a nil *Graph was supplied.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrBuilderSealed indicates a mutation after Build was called.
	ErrBuilderSealed = errors.New("core: builder already built")
)

// Graph is the immutable city graph.
//
// cities[i] is the city with index i; adjacency[i] lists neighbor indices in
// insertion order. byName maps exact names, byFold maps lower-cased names to
// the first city carrying that spelling.
type Graph struct {
	cities    []city.City
	adjacency [][]int
	byName    map[string]int
	byFold    map[string]int
	edges     int
}

// Builder accumulates cities and edges and produces a Graph.
// All cities must be added before the edges that reference them.
type Builder struct {
	g     *Graph
	built bool
}

// Edge is an undirected connection between two city indices, as loaded.
type Edge struct {
	From int
	To   int
}

// Stats is a read-only summary of a Graph.
type Stats struct {
	CityCount     int // number of cities
	EdgeCount     int // undirected edges as loaded (duplicates counted)
	IsolatedCount int // cities with no neighbors
	SelfLoops     int // edges with From == To
	MaxDegree     int // largest adjacency list length
}

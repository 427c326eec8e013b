package route

import (
	"errors"

	"github.com/katalvlaran/citysearch/city"
)

// NoPredecessor marks the start city in a Predecessors map.
const NoPredecessor = -1

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("route: graph is nil")

	// ErrGoalNotReached indicates the goal has no entry in the predecessor map.
	ErrGoalNotReached = errors.New("route: goal not in predecessor map")

	// ErrBrokenChain indicates the predecessor chain loops, leaves the graph,
	// or never reaches a city mapped to NoPredecessor.
	ErrBrokenChain = errors.New("route: broken predecessor chain")
)

// Predecessors maps a visited city index to the index that discovered it.
// A map is built fresh by each search call and owned by that call's result.
type Predecessors map[int]int

// NewPredecessors returns a map seeded with start → NoPredecessor.
func NewPredecessors(start, sizeHint int) Predecessors {
	p := make(Predecessors, sizeHint)
	p[start] = NoPredecessor

	return p
}

// Reached reports whether i has been discovered.
func (p Predecessors) Reached(i int) bool {
	_, ok := p[i]

	return ok
}

// Route is a start-to-goal sequence of cities.
//
//   - Cities: start first, goal last.
//   - Hops: number of edges, len(Cities)-1.
//   - Distance: sum of city.Distance over consecutive pairs.
type Route struct {
	Cities   []city.City
	Hops     int
	Distance float64
}

// Start returns the first city of r.
func (r *Route) Start() city.City { return r.Cities[0] }

// Goal returns the last city of r.
func (r *Route) Goal() city.City { return r.Cities[len(r.Cities)-1] }

// Names returns the city names of r in order.
func (r *Route) Names() []string {
	out := make([]string, len(r.Cities))
	for i, c := range r.Cities {
		out[i] = c.Name
	}

	return out
}

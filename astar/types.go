// Package astar defines core types and configuration options
// for best-first (A*) search between two cities.
//
// A* orders its open set by fScore = gScore + h(city, goal), where gScore is
// the best known route distance from the start and h defaults to
// city.Distance. Edge costs are city.Distance between the endpoints, so the
// default heuristic is consistent by construction.
//
// Options:
//
//	- WithHeuristic(h): replace the distance estimate (must be non-nil).
//	- WithOnExpand(fn): hook called for every non-stale pop.
//
// Errors (sentinel):
//
//	- ErrGraphNil        if the provided graph pointer is nil.
//	- ErrStartNotFound   if start is not a city index of the graph.
//	- ErrGoalNotFound    if goal is not a city index of the graph.
//	- ErrOptionViolation if an option carries an invalid value.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/route"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to AStar.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrStartNotFound indicates that the start index is not a city of the graph.
	ErrStartNotFound = errors.New("astar: start city not found")

	// ErrGoalNotFound indicates that the goal index is not a city of the graph.
	ErrGoalNotFound = errors.New("astar: goal city not found")

	// ErrOptionViolation indicates an invalid option value (e.g. nil heuristic).
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining distance from a city to the goal.
type Heuristic func(from, goal city.City) float64

// Zero is a heuristic that always returns 0; with it A* degenerates to Dijkstra.
func Zero(city.City, city.City) float64 { return 0 }

// Options configures the behavior of the A* algorithm.
//
// Heuristic: remaining-cost estimate. Default is city.Distance.
// OnExpand:  optional hook invoked with (index, fScore) on every expansion.
type Options struct {
	Heuristic Heuristic
	OnExpand  func(idx int, f float64)

	err error
}

// Option represents a functional option for configuring A*.
type Option func(*Options)

// WithHeuristic replaces the default city.Distance heuristic.
// A nil heuristic is rejected with ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers a hook called for every expanded (non-stale) city.
func WithOnExpand(fn func(idx int, f float64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// DefaultOptions returns Options using city.Distance and no hook.
func DefaultOptions() Options {
	return Options{
		Heuristic: city.Distance,
	}
}

// Result is the outcome of one A* search.
//
//   - Found: the goal was popped from the open set.
//   - Predecessors: best-known discovery links; start → route.NoPredecessor.
//   - Order: expanded cities in pop order (stale pops excluded).
//   - GScore: best known distance from the start for every discovered city.
//   - Cost: GScore of the goal when Found.
//   - Stale: number of superseded open-set entries that were discarded.
type Result struct {
	Start        int
	Goal         int
	Found        bool
	Predecessors route.Predecessors
	Order        []int
	GScore       map[int]float64
	Cost         float64
	Stale        int
}

// Route reconstructs the start → goal route. Returns route.ErrGoalNotReached
// if the search did not find the goal.
func (r *Result) Route(g *core.Graph) (*route.Route, error) {
	if !r.Found {
		return nil, fmt.Errorf("%w: astar found no path to %d", route.ErrGoalNotReached, r.Goal)
	}

	return route.Walk(g, r.Predecessors, r.Goal)
}

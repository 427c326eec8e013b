// Package dfs defines types and options for depth-first search between two
// cities, including a pre-visit hook and depth limiting.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/route"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start index is not a city of the graph.
	ErrStartNotFound = errors.New("dfs: start city not found")

	// ErrGoalNotFound indicates that the goal index is not a city of the graph.
	ErrGoalNotFound = errors.New("dfs: goal city not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, goal, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// OnVisit, if non-nil, is invoked when a city is popped from the stack,
	// before the goal check. Returning an error aborts traversal with that error.
	OnVisit func(idx int) error

	// MaxDepth, if non-negative, stops pushing neighbors of cities at that
	// depth. A depth of 0 visits only the start. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with no hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithOnVisit returns an Option that installs fn as a pop hook.
func WithOnVisit(fn func(idx int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start city is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// Result captures the outcome of a depth-first search.
type Result struct {
	// Start and Goal echo the query.
	Start int
	Goal  int

	// Found is false when the stack emptied without popping the goal.
	Found bool

	// Predecessors maps each pushed city to the city that pushed it first.
	Predecessors route.Predecessors

	// Order records cities in the sequence they were popped.
	Order []int

	// Depth maps each pushed city to its tree depth from the start.
	Depth map[int]int
}

// Route reconstructs the start → goal route. Returns route.ErrGoalNotReached
// if the search did not find the goal.
func (r *Result) Route(g *core.Graph) (*route.Route, error) {
	if !r.Found {
		return nil, fmt.Errorf("%w: dfs found no path to %d", route.ErrGoalNotReached, r.Goal)
	}

	return route.Walk(g, r.Predecessors, r.Goal)
}

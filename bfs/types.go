// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/route"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start index is not a city of the graph.
	ErrStartNotFound = errors.New("bfs: start city not found")

	// ErrGoalNotFound is returned when the goal index is not a city of the graph.
	ErrGoalNotFound = errors.New("bfs: goal city not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a city is enqueued.
	// Receives the city index and its depth from the start.
	OnEnqueue func(idx, depth int)

	// OnVisit is called when a city is dequeued, before the goal check.
	// If it returns an error, BFS aborts and propagates that error.
	OnVisit func(idx, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(idx, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(idx, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a BFS run:
//   - Found: whether the goal was dequeued. False is the "no path" outcome.
//   - Predecessors: discovery links, start → route.NoPredecessor.
//   - Order: cities in dequeue order.
//   - Depth: hop distance from the start for every enqueued city.
type Result struct {
	Start        int
	Goal         int
	Found        bool
	Predecessors route.Predecessors
	Order        []int
	Depth        map[int]int
}

// Route reconstructs the start → goal route. Returns route.ErrGoalNotReached
// if the search did not find the goal.
func (r *Result) Route(g *core.Graph) (*route.Route, error) {
	if !r.Found {
		return nil, fmt.Errorf("%w: bfs found no path to %d", route.ErrGoalNotReached, r.Goal)
	}

	return route.Walk(g, r.Predecessors, r.Goal)
}

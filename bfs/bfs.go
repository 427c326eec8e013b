// Package bfs provides breadth-first search between two cities of a
// core.Graph, returning the predecessor links of a minimum-hop route.
//
// BFS explores cities in increasing hop distance from the start, with
// optional hooks and depth limiting.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/route"
)

// queueItem pairs a city index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g from start until goal is dequeued or
// the queue is exhausted. Exhaustion is reported as Result.Found == false,
// not as an error.
//
// Returns ErrGraphNil, ErrStartNotFound or ErrGoalNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start, goal int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.Valid(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	if !g.Valid(goal) {
		return nil, fmt.Errorf("%w: %d", ErrGoalNotFound, goal)
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Start:        start,
			Goal:         goal,
			Predecessors: route.NewPredecessors(start, n),
			Order:        make([]int, 0, n),
			Depth:        make(map[int]int, n),
		},
	}

	// Seed queue with start city (no predecessor)
	w.enqueue(start, 0, route.NoPredecessor)

	return w.res, w.loop()
}

// enqueue marks idx visited at depth d, records its predecessor,
// calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	w.res.Depth[idx] = d
	w.res.Predecessors[idx] = parent
	w.opts.OnEnqueue(idx, d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until the goal is found, it empties, or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.idx == w.res.Goal {
			w.res.Found = true
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the city in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.idx)
	if err := w.opts.OnVisit(item.idx, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.idx, err)
	}

	return nil
}

// enqueueNeighbors enqueues every unseen neighbor in adjacency order,
// honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	return w.graph.EachNeighbor(item.idx, func(nbr int) bool {
		// duplicates and self-loops are absorbed here
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.idx)
		}
		return true
	})
}

// Package astar implements best-first (A*) search between two cities of a
// core.Graph.
//
// Notes on implementation choices:
//
//   - The open set stores (fScore, gScore, seq, city) values directly; the
//     heap never consults a mutable score map.
//   - Relaxation is strict: a neighbor is updated only if it has no gScore
//     yet or the tentative gScore is strictly smaller.
//   - We use a "lazy" decrease-key strategy: improved cities are pushed
//     again and superseded entries are skipped on pop when their captured
//     gScore is larger than the recorded one.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/route"
)

// AStar searches g from start to goal, pricing edges with city.Distance.
// Frontier exhaustion is reported as Result.Found == false.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. options must be valid (ErrOptionViolation).
//  3. start and goal must be city indices of g (ErrStartNotFound, ErrGoalNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E) (lazy heap may hold one entry per relaxation)
func AStar(g *core.Graph, start, goal int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if !g.Valid(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	if !g.Valid(goal) {
		return nil, fmt.Errorf("%w: %d", ErrGoalNotFound, goal)
	}

	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		goal:    g.MustCity(goal),
		res: &Result{
			Start:        start,
			Goal:         goal,
			Predecessors: route.NewPredecessors(start, n),
			Order:        make([]int, 0, n),
			GScore:       make(map[int]float64, n),
		},
		pq: make(openSet, 0, n),
	}
	r.init(start)
	if err := r.process(); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *core.Graph
	options Options
	goal    city.City
	res     *Result
	pq      openSet
	seq     int
}

// init records gScore(start) = 0 and pushes the start.
func (r *runner) init(start int) {
	heap.Init(&r.pq)
	r.res.GScore[start] = 0
	r.push(start, 0)
}

// push enqueues idx with fScore = gScore + h(idx, goal).
func (r *runner) push(idx int, gScore float64) {
	f := gScore + r.options.Heuristic(r.g.MustCity(idx), r.goal)
	heap.Push(&r.pq, openItem{idx: idx, f: f, g: gScore, seq: r.seq})
	r.seq++
}

// process pops the lowest-fScore city until the goal is popped or the open set is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(openItem)

		// A better route to this city was found after this entry was pushed.
		if item.g > r.res.GScore[item.idx] {
			r.res.Stale++
			continue
		}

		r.res.Order = append(r.res.Order, item.idx)
		if r.options.OnExpand != nil {
			r.options.OnExpand(item.idx, item.f)
		}

		if item.idx == r.res.Goal {
			r.res.Found = true
			r.res.Cost = item.g
			return nil
		}

		if err := r.relax(item.idx, item.g); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each neighbor of u and records strictly better routes.
func (r *runner) relax(u int, gu float64) error {
	from := r.g.MustCity(u)

	return r.g.EachNeighbor(u, func(v int) bool {
		tentative := gu + city.Distance(from, r.g.MustCity(v))
		if known, ok := r.res.GScore[v]; ok && tentative >= known {
			return true
		}
		r.res.GScore[v] = tentative
		r.res.Predecessors[v] = u
		r.push(v, tentative)
		return true
	})
}

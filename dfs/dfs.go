// Package dfs implements an explicit-stack depth-first search between two
// cities of a core.Graph.
//
// Key features:
//   - Iterative: no recursion, so deep chains cannot overflow the goroutine stack.
//   - Visited on push: a city is pushed at most once and keeps its first predecessor.
//   - Deterministic: neighbors are pushed in descending index order.
//
// Complexity:
//
//   - Time:   O(V + E·log d) where d is the largest degree (per-city neighbor sort).
//   - Memory: O(V) for the stack and metadata.
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/route"
)

// frame is one stack entry.
type frame struct {
	idx   int
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph // underlying graph
	opts    Options     // traversal options
	stack   []frame
	visited []bool
	res     *Result // result collector
}

// DFS performs depth-first search on g from start until goal is popped or
// the stack empties. An empty stack yields Result.Found == false.
func DFS(g *core.Graph, start, goal int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Verify endpoints
	if !g.Valid(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	if !g.Valid(goal) {
		return nil, fmt.Errorf("%w: %d", ErrGoalNotFound, goal)
	}

	// 4. Initialize result with capacity hint
	n := g.Len()
	walker := &dfsWalker{
		graph:   g,
		opts:    dopts,
		stack:   make([]frame, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Start:        start,
			Goal:         goal,
			Predecessors: route.NewPredecessors(start, n),
			Order:        make([]int, 0, n),
			Depth:        make(map[int]int, n),
		},
	}

	// 5. Traverse
	walker.push(start, 0, route.NoPredecessor)
	if err := walker.run(); err != nil {
		return walker.res, err
	}

	return walker.res, nil
}

// push marks idx visited and records its predecessor and depth.
func (w *dfsWalker) push(idx, depth, parent int) {
	w.visited[idx] = true
	w.res.Predecessors[idx] = parent
	w.res.Depth[idx] = depth
	w.stack = append(w.stack, frame{idx: idx, depth: depth})
}

// run pops until the goal is reached or the stack is empty.
func (w *dfsWalker) run() error {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.res.Order = append(w.res.Order, top.idx)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.idx); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", top.idx, err)
			}
		}

		if top.idx == w.res.Goal {
			w.res.Found = true
			return nil
		}

		// Depth limit: do not expand past it
		if w.opts.MaxDepth >= 0 && top.depth >= w.opts.MaxDepth {
			continue
		}

		nbrs, err := w.graph.Neighbors(top.idx)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", top.idx, err)
		}
		// Descending order, on a copy: the graph's adjacency is never reordered.
		sort.Sort(sort.Reverse(sort.IntSlice(nbrs)))

		for _, nid := range nbrs {
			if !w.visited[nid] {
				w.push(nid, top.depth+1, top.idx)
			}
		}
	}

	return nil
}

// Package bfs provides breadth-first search between two cities of a
// core.Graph, returning unweighted shortest-path predecessor links,
// hop depths, and visit order.
//
// What
//
//   - Explore cities in non-decreasing hop count from a start city.
//   - Stop as soon as the goal is dequeued (Result.Found == true).
//   - Report queue exhaustion as Result.Found == false ("no path found").
//   - Cities are marked visited when enqueued; each is enqueued at most once,
//     so duplicate edges and self-loops are harmless.
//
// Determinism
//
//	Neighbors are enqueued in adjacency (insertion) order with no sorting,
//	so the visit sequence is fully reproducible for a given graph.
//
// Guarantee
//
//	The returned route has the minimum number of edges among all routes
//	from start to goal. It is not necessarily the shortest in distance.
//
// Complexity (V = cities, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start, goal)
//	if err != nil {
//		// ErrGraphNil, ErrStartNotFound, ErrGoalNotFound, ErrOptionViolation, or hook errors
//	}
//	if !res.Found {
//		// no path
//	}
//	r, _ := res.Route(g)
//
// Options
//
//   - WithMaxDepth(d):    stop exploring beyond depth d (>0).
//   - WithOnEnqueue(fn):  hook when a city is enqueued.
//   - WithOnVisit(fn):    hook when a city is dequeued; returning error aborts BFS.
package bfs

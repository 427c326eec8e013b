// Package dfs provides depth-first search between two cities of a
// core.Graph, using an explicit stack.
//
// Algorithm
//
//  1. Push the start and mark it visited.
//  2. Pop a city. If it is the goal, stop: Result.Found = true.
//  3. Otherwise sort its neighbors in descending index order and push every
//     unvisited one, marking it visited and recording the popped city as its
//     predecessor at push time.
//  4. When the stack empties, Result.Found = false ("no path found").
//
// Because neighbors are pushed high-to-low, the lowest-index neighbor is on
// top of the stack and is explored first. This tie-break is part of the
// contract: re-running DFS on the same graph always produces the same route.
//
// Marking on push (not on pop) means a city keeps the predecessor that first
// pushed it; there is no backtracking or re-parenting.
//
// Options:
//
//   - WithOnVisit(fn)     hook on pop; error aborts traversal.
//   - WithMaxDepth(limit) do not expand cities at depth >= limit (>=0).
//
// Errors:
//
//   - ErrGraphNil         if g is nil.
//   - ErrStartNotFound    if start is not a city index of g.
//   - ErrGoalNotFound     if goal is not a city index of g.
//   - any error returned by OnVisit.
package dfs

// Package astar implements best-first (A*) search on a core.Graph.
//
// A* expands cities in ascending fScore = gScore + h(city, goal):
//
//   - gScore: best known distance from the start (sum of city.Distance over edges).
//   - h: remaining-distance estimate, city.Distance to the goal by default.
//
// Algorithm:
//
//  1. gScore(start) = 0; push start with fScore h(start, goal).
//  2. Pop the lowest fScore entry; ties pop in push order.
//  3. Discard the entry if a strictly better gScore was recorded after it was pushed.
//  4. If it is the goal, stop: Result.Found = true, Result.Cost = gScore(goal).
//  5. For each neighbor, tentative = gScore(u) + distance(u, v). When v has no
//     gScore or tentative is strictly smaller, record gScore, predecessor, and push.
//  6. When the open set empties, Result.Found = false ("no path found").
//
// Because the default heuristic is the edge-cost metric itself, it never
// overestimates and is consistent; the reported route is the shortest by
// distance. Stale entries cannot corrupt the predecessor map: predecessors
// only change on strict improvement, and a superseded entry is never expanded.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
//
// Example usage:
//
//	res, err := astar.AStar(g, start, goal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    r, _ := res.Route(g)
//	    fmt.Println(r.Names(), res.Cost)
//	}
package astar

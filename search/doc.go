// Package search is the driver-facing facade over the three traversal
// packages (bfs, dfs, astar).
//
// It provides:
//
//   - Algorithm: BFS, DFS, AStar, with stable names ("bfs", "dfs", "astar")
//     and report titles.
//   - Run(g, alg, start, goal): one search, reduced to an Outcome.
//   - Plan(g, req, algs...): resolve user-supplied names case-insensitively,
//     then run each algorithm in order (default: BFS, DFS, A*).
//
// Unresolved names are not errors: they are listed in Response.Missing and
// no search is started, so the traversal packages never see an invalid
// index. "No path found" is Outcome.Found == false.
package search

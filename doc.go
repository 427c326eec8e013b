// Package citysearch finds routes between named cities in a fixed,
// undirected geographic graph and reports, for each of three strategies,
// the path, its hop count and its total distance.
//
// Layout:
//
//	city/    City value and the scaled Euclidean Distance
//	core/    immutable indexed Graph and its Builder
//	route/   predecessor maps and path reconstruction
//	bfs/     breadth-first search (fewest hops)
//	dfs/     iterative depth-first search, descending neighbor order
//	astar/   A* with an explicit (f, g, seq) heap (shortest distance)
//	search/  algorithm selection, name resolution, Plan/Run facade
//	loader/  city/edge record files and the query file
//	citydb/  SQLite records source
//	report/  text report and JSON document
//	config/  defaults, .env and environment settings
//	server/  HTTP API with metrics
//
// The command lives in cmd/citysearch.
//
// Quick start:
//
//	g, err := loader.LoadFiles("city.dat", "edge.dat")
//	if err != nil {
//		log.Fatal(err)
//	}
//	resp, err := search.Plan(g, search.Request{From: "Boston", To: "Albany"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(report.Text(resp))
package citysearch

// Package server exposes the city graph over HTTP.
//
// Routes:
//
//	GET /api/route?from=<name>&to=<name>[&algorithm=bfs|dfs|astar]
//	GET /api/cities
//	GET /healthz
//	GET /metrics
//
// /api/route runs every algorithm in report order unless one is named, and
// answers with a report.Document. Unresolved names yield 404 with the
// Missing list filled in. Identical concurrent queries share one run
// through a singleflight.Group; the graph is immutable, so any number of
// requests may search it at once.
package server

// Package city defines the City value used throughout citysearch and the
// planar distance function shared by path-cost accumulation and the A*
// heuristic.
//
// What
//
//   - City: immutable (Name, Region, Latitude, Longitude) record.
//   - Distance(a, b): sqrt(Δlat² + Δlon²) · Scale.
//
// The coordinates are treated as planar. Distance is NOT a great-circle
// formula; it is a scaled Euclidean metric. Because the same function prices
// edges and estimates the remaining cost, it is a consistent heuristic for
// astar by construction.
//
// Properties
//
//   - Distance(a, a) == 0
//   - Distance(a, b) == Distance(b, a)
//   - Distance(a, b) == 0 iff a and b share coordinates
//
// Complexity: O(1) time and space.
package city

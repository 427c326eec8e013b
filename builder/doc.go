// Package builder generates synthetic city networks for tests, benchmarks
// and demos.
//
// A network is assembled by BuildGraph from one or more Constructors, each
// appending cities and edges to a core.Builder:
//
//   - Path(n):              n cities on a line, consecutive ones connected.
//   - Cycle(n):             n cities on a circle, closed ring.
//   - Star(n):              a hub at the origin plus n-1 spokes on a circle.
//   - Complete(n):          n cities on a circle, every pair connected.
//   - Grid(rows, cols):     a lattice with 4-neighborhood, names "r,c".
//   - RandomSparse(n, p):   n cities scattered in a square, each pair
//     connected with probability p.
//
// Options:
//
//   - WithSeed / WithRand: RNG for RandomSparse (required when 0 < p < 1).
//   - WithIDScheme:        index → city name (default "C0", "C1", ...).
//   - WithSpacing:         coordinate unit between neighbors (default 1).
//
// Constructors call the ID scheme with the running city count, so several
// constructors can be composed in one BuildGraph call without name clashes.
// Same options and constructor order yield identical graphs.
package builder

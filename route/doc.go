// Package route turns a predecessor map produced by a search into an
// ordered start-to-goal Route with hop count and accumulated distance.
//
// What
//
//   - Predecessors: city index → index of the city that discovered it.
//     The start maps to NoPredecessor.
//   - Walk(g, preds, goal): follow predecessors back from goal until the
//     NoPredecessor sentinel, reverse, and price every consecutive pair with
//     city.Distance.
//
// Guarantees
//
//   - The walk is bounded by g.Len() steps; a map that loops or never reaches
//     a start is rejected with ErrBrokenChain instead of spinning forever.
//   - A single-city route (start == goal) has 0 hops and 0 distance.
//
// Complexity: O(L) time and space where L is the route length.
package route

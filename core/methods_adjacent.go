// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Degree, Edges).
// Determinism:
//   - Neighbors(i) preserves edge insertion order; callers sort if they need another order.

package core

import "fmt"

// Neighbors returns a copy of the neighbor indices of city i in insertion order.
// An isolated city yields an empty, non-nil slice.
func (g *Graph) Neighbors(i int) ([]int, error) {
	if !g.Valid(i) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	out := make([]int, len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out, nil
}

// EachNeighbor calls fn for every neighbor of i in insertion order without
// copying. Iteration stops early when fn returns false.
func (g *Graph) EachNeighbor(i int, fn func(j int) bool) error {
	if !g.Valid(i) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	for _, j := range g.adjacency[i] {
		if !fn(j) {
			return nil
		}
	}

	return nil
}

// Degree returns the adjacency list length of city i (duplicates and loops included).
func (g *Graph) Degree(i int) (int, error) {
	if !g.Valid(i) {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	return len(g.adjacency[i]), nil
}

// HasEdge reports whether j appears in the adjacency list of i.
func (g *Graph) HasEdge(i, j int) bool {
	if !g.Valid(i) || !g.Valid(j) {
		return false
	}
	for _, k := range g.adjacency[i] {
		if k == j {
			return true
		}
	}

	return false
}

// Edges reconstructs the loaded edge list with From <= To, one entry per
// loaded edge. Self-loops appear twice in adjacency and once here.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for from, nbrs := range g.adjacency {
		loops := 0
		for _, to := range nbrs {
			switch {
			case from < to:
				out = append(out, Edge{From: from, To: to})
			case from == to:
				// a self-loop was appended twice to the same list
				loops++
				if loops%2 == 1 {
					out = append(out, Edge{From: from, To: to})
				}
			}
		}
	}

	return out
}

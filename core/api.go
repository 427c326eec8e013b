// File: api.go
// Role: Read-only summaries over an immutable Graph.

package core

// EdgeCount returns the number of loaded edges (duplicates counted).
func (g *Graph) EdgeCount() int { return g.edges }

// Stats produces a deterministic summary of g.
//
// Complexity: Time O(V + E), Space O(1).
func (g *Graph) Stats() Stats {
	s := Stats{CityCount: len(g.cities), EdgeCount: g.edges}
	for i, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			s.IsolatedCount++
		}
		if len(nbrs) > s.MaxDegree {
			s.MaxDegree = len(nbrs)
		}
		for _, j := range nbrs {
			if j == i {
				s.SelfLoops++
			}
		}
	}
	// each self-loop was appended twice to its own list
	s.SelfLoops /= 2

	return s
}

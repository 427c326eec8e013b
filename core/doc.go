// Package core provides the immutable Graph Store that every search reads.
//
// A Graph G = (V, E) holds:
//
//   - an ordered sequence of city.City values indexed 0..N-1 (load order);
//   - an undirected adjacency relation: for every loaded edge (a, b) both
//     a→b and b→a are present, in insertion order;
//   - a precomputed name index: exact names for internal keys and a
//     case-folded index for resolving user-supplied names.
//
// Construction
//
//	b := core.NewBuilder()
//	b.AddCity(city.New("Boston", 42.36, -71.06))   // index 0
//	b.AddCity(city.New("Albany", 42.65, -73.75))   // index 1
//	b.AddEdge("Boston", "albany")                  // names resolve case-insensitively
//	g := b.Build()
//
// Once built, a Graph is never mutated. Every getter returns copies, so a
// single *Graph can be handed to any number of searches.
//
// Tolerances
//
//   - Self-loops and duplicate edges are stored as given; traversals must
//     cope with them (their visited bookkeeping does).
//   - Isolated cities are valid: Neighbors returns an empty slice.
//
// Errors:
//
//	ErrEmptyCityName    - AddCity with an empty name.
//	ErrDuplicateCity    - AddCity with a name already present (exact match).
//	ErrCityNotFound     - name lookup failed.
//	ErrIndexOutOfRange  - index outside [0, Len()).
//	ErrGraphNil         - nil *Graph passed to a helper.
//	ErrBuilderSealed    - AddCity/AddEdge after Build.
//
// Complexity:
//
//	Lookup / IndexOf      O(1)
//	Neighbors(i)          O(deg(i)) (copy)
//	Build                 O(V + E)
package core

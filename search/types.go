package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/route"
)

// Sentinel errors for the search facade.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm value or name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects a traversal strategy.
type Algorithm int

const (
	// BFS is breadth-first search: minimum hop count.
	BFS Algorithm = iota
	// DFS is depth-first search with descending neighbor order.
	DFS
	// AStar is best-first search: minimum distance.
	AStar
)

// DefaultOrder is the fixed report order.
var DefaultOrder = []Algorithm{BFS, DFS, AStar}

// String returns the short name used on the command line and in JSON.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Title returns the report section title.
func (a Algorithm) Title() string {
	switch a {
	case BFS:
		return "Breadth-First Search"
	case DFS:
		return "Depth-First Search"
	case AStar:
		return "A* Search"
	default:
		return a.String()
	}
}

// ParseAlgorithm maps a name (case-insensitive; "a*" accepted) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return BFS, nil
	case "dfs", "depth-first":
		return DFS, nil
	case "astar", "a*", "best-first":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Outcome is the reduced result of one search.
//
//   - Found == false is the "no path found" variant; Route is nil then.
//   - Expanded counts the cities popped from the frontier.
type Outcome struct {
	Algorithm Algorithm
	Start     city.City
	Goal      city.City
	Found     bool
	Route     *route.Route
	Expanded  int
}

// Request names the two endpoints of a query as typed by the user.
type Request struct {
	From string
	To   string
}

// Response is the result of Plan.
//
// Missing lists the request names that did not resolve, in request order;
// when it is non-empty Outcomes is empty.
type Response struct {
	Request  Request
	Missing  []string
	Outcomes []*Outcome
}

// Resolved reports whether both names were found.
func (r *Response) Resolved() bool { return len(r.Missing) == 0 }

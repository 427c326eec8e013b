package route

import (
	"fmt"

	"github.com/katalvlaran/citysearch/city"
	"github.com/katalvlaran/citysearch/core"
)

// Walk reconstructs the route ending at goal from preds.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrGoalNotReached if goal is absent from preds.
//   - ErrBrokenChain if the chain exceeds g.Len() steps or points outside g.
func Walk(g *core.Graph, preds Predecessors, goal int) (*Route, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !preds.Reached(goal) {
		return nil, fmt.Errorf("%w: %d", ErrGoalNotReached, goal)
	}

	// build reversed index chain
	chain := make([]int, 0, 8)
	for cur := goal; cur != NoPredecessor; {
		if !g.Valid(cur) {
			return nil, fmt.Errorf("%w: index %d outside graph", ErrBrokenChain, cur)
		}
		if len(chain) == g.Len() {
			return nil, fmt.Errorf("%w: no start within %d steps of %d", ErrBrokenChain, g.Len(), goal)
		}
		chain = append(chain, cur)
		prev, ok := preds[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %d has no predecessor entry", ErrBrokenChain, cur)
		}
		cur = prev
	}

	// reverse to get start → goal
	cities := make([]city.City, len(chain))
	for i, idx := range chain {
		cities[len(chain)-1-i] = g.MustCity(idx)
	}

	return &Route{
		Cities:   cities,
		Hops:     len(cities) - 1,
		Distance: Length(cities),
	}, nil
}

// Length sums city.Distance over consecutive pairs of cities.
func Length(cities []city.City) float64 {
	var total float64
	for i := 1; i < len(cities); i++ {
		total += city.Distance(cities[i-1], cities[i])
	}

	return total
}

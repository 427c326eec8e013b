package search

import (
	"fmt"

	"github.com/katalvlaran/citysearch/astar"
	"github.com/katalvlaran/citysearch/bfs"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/dfs"
	"github.com/katalvlaran/citysearch/route"
)

// Run executes alg on g between two valid city indices.
// Each call builds its own predecessor map; nothing is shared between runs.
func Run(g *core.Graph, alg Algorithm, start, goal int) (*Outcome, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var (
		found    bool
		preds    route.Predecessors
		expanded int
	)
	switch alg {
	case BFS:
		res, err := bfs.BFS(g, start, goal)
		if err != nil {
			return nil, err
		}
		found, preds, expanded = res.Found, res.Predecessors, len(res.Order)
	case DFS:
		res, err := dfs.DFS(g, start, goal)
		if err != nil {
			return nil, err
		}
		found, preds, expanded = res.Found, res.Predecessors, len(res.Order)
	case AStar:
		res, err := astar.AStar(g, start, goal)
		if err != nil {
			return nil, err
		}
		found, preds, expanded = res.Found, res.Predecessors, len(res.Order)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	out := &Outcome{
		Algorithm: alg,
		Start:     g.MustCity(start),
		Goal:      g.MustCity(goal),
		Found:     found,
		Expanded:  expanded,
	}
	if !found {
		return out, nil
	}

	r, err := route.Walk(g, preds, goal)
	if err != nil {
		return nil, fmt.Errorf("search: %s route: %w", alg, err)
	}
	out.Route = r

	return out, nil
}

// RunAll runs every algorithm in algs (DefaultOrder when empty) sequentially.
func RunAll(g *core.Graph, start, goal int, algs ...Algorithm) ([]*Outcome, error) {
	if len(algs) == 0 {
		algs = DefaultOrder
	}
	out := make([]*Outcome, 0, len(algs))
	for _, alg := range algs {
		o, err := Run(g, alg, start, goal)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, nil
}

// Plan resolves req against g and, if both names resolve, runs algs.
func Plan(g *core.Graph, req Request, algs ...Algorithm) (*Response, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	resp := &Response{Request: req}
	start, okStart := g.Lookup(req.From)
	if !okStart {
		resp.Missing = append(resp.Missing, req.From)
	}
	goal, okGoal := g.Lookup(req.To)
	if !okGoal {
		resp.Missing = append(resp.Missing, req.To)
	}
	if !resp.Resolved() {
		return resp, nil
	}

	outcomes, err := RunAll(g, start, goal, algs...)
	if err != nil {
		return nil, err
	}
	resp.Outcomes = outcomes

	return resp, nil
}

// Resolve maps a user-supplied name to a city index, case-insensitively.
func Resolve(g *core.Graph, name string) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	return g.Resolve(name)
}

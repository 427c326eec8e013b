package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/citysearch/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodGrid     = "Grid"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minGridDim       = 1
	gridIDFmt        = "%d,%d"
)

// Path builds n cities due north of each other, spacing apart, chained in order.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		prev := -1
		for i := 0; i < n; i++ {
			idx, err := addCity(methodPath, b, cfg.idFn(b.Len()), float64(i)*cfg.spacing, 0)
			if err != nil {
				return err
			}
			if prev >= 0 {
				if err := addEdge(methodPath, b, prev, idx); err != nil {
					return err
				}
			}
			prev = idx
		}

		return nil
	}
}

// Cycle builds a closed ring of n cities.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		idx, err := ring(methodCycle, b, cfg, n, 0, 0)
		if err != nil {
			return err
		}
		for i := range idx {
			if err := addEdge(methodCycle, b, idx[i], idx[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a hub at the origin and n-1 spokes at distance spacing.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub, err := addCity(methodStar, b, cfg.idFn(b.Len()), 0, 0)
		if err != nil {
			return err
		}
		leaves := n - 1
		for i := 0; i < leaves; i++ {
			theta := 2 * math.Pi * float64(i) / float64(leaves)
			leaf, err := addCity(methodStar, b, cfg.idFn(b.Len()),
				cfg.spacing*math.Sin(theta), cfg.spacing*math.Cos(theta))
			if err != nil {
				return err
			}
			if err := addEdge(methodStar, b, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds n cities on a circle with every pair connected.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		idx, err := ring(methodComplete, b, cfg, n, 0, 0)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, b, idx[i], idx[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols lattice in row-major order. City (r, c) sits at
// latitude r·spacing, longitude c·spacing and is named "r,c" regardless of
// the ID scheme. Edges go right and down.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := b.Len()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				name := fmt.Sprintf(gridIDFmt, r, c)
				if _, err := addCity(methodGrid, b, name, float64(r)*cfg.spacing, float64(c)*cfg.spacing); err != nil {
					return err
				}
			}
		}
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(methodGrid, b, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, b, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

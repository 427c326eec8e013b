package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/citysearch/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse scatters n cities uniformly in a square of side
// spacing·√n and connects each unordered pair {i, j}, i < j, with
// probability p. An RNG is required unless p is 0 or 1; with p in {0, 1}
// and no RNG, cities are laid out on a ring instead.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var idx []int
		if rng == nil {
			var err error
			if idx, err = ring(methodRandomSparse, b, cfg, n, 0, 0); err != nil {
				return err
			}
		} else {
			side := cfg.spacing * math.Sqrt(float64(n))
			idx = make([]int, n)
			for i := 0; i < n; i++ {
				id, err := addCity(methodRandomSparse, b, cfg.idFn(b.Len()), rng.Float64()*side, rng.Float64()*side)
				if err != nil {
					return err
				}
				idx[i] = id
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if rng != nil && p > probMin && p < probMax {
					keep = rng.Float64() <= p
				}
				if !keep {
					continue
				}
				if err := addEdge(methodRandomSparse, b, idx[i], idx[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

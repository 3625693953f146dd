// SPDX-License-Identifier: MIT
// Package: mlnet/builder
//
// impl_random_sparse.go: Erdős–Rényi G(n,p) in one layer.
//
// Contract:
//   • All n actors are placed in the layer first, isolated ones included.
//   • Pairs i<j are tried in lexicographic order; an edge is kept when
//     rng.Float64() ≤ p.
//   • p=0 and p=1 need no RNG; 0<p<1 requires WithSeed or WithRand.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mlnet/core"
)

// RandomSparse returns a Constructor that samples G(n,p) in layer.
//
// Errors: ErrTooFewVertices if n < 1; ErrInvalidProbability if p ∉ [0,1];
// ErrNeedRandSource if 0<p<1 and no RNG is configured.
//
// Complexity: O(n²) trials.
func RandomSparse(layer string, n int, p float64) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if err := validateTarget(MethodRandomSparse, net, layer); err != nil {
			return err
		}
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if !(p >= MinProbability && p <= MaxProbability) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		if p > MinProbability && p < MaxProbability && cfg.rng == nil {
			return fmt.Errorf("%s: p=%.6f requires rng: %w", MethodRandomSparse, p, ErrNeedRandSource)
		}
		if err := addNodes(MethodRandomSparse, net, cfg, layer, 0, n); err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < MaxProbability && cfg.rng.Float64() > p {
					continue
				}
				if err := addEdge(MethodRandomSparse, net, cfg, layer, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

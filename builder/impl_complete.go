// SPDX-License-Identifier: MIT
// Package: mlnet/builder
//
// impl_complete.go: cliques in one layer.

package builder

import "github.com/katalvlaran/mlnet/core"

// Complete returns a Constructor that builds K_n in layer. Edges are emitted
// for i<j in lexicographic (i, j) order.
//
// Errors: ErrTooFewVertices if n < 1.
//
// Complexity: O(n²).
func Complete(layer string, n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if err := validateTarget(MethodComplete, net, layer); err != nil {
			return err
		}
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		if err := addNodes(MethodComplete, net, cfg, layer, 0, n); err != nil {
			return err
		}

		return addClique(MethodComplete, net, cfg, layer, 0, n)
	}
}

// DisjointCliques returns a Constructor that builds k cliques of the given
// size in layer. Clique c holds actors c*size .. (c+1)*size-1, so the same
// call on two layers yields aligned communities.
//
// Errors: ErrTooFewVertices if k < 1 or size < 1.
//
// Complexity: O(k·size²).
func DisjointCliques(layer string, k, size int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if err := validateTarget(MethodDisjointCliques, net, layer); err != nil {
			return err
		}
		if err := validateMin(MethodDisjointCliques, "k", k, MinCliqueCount); err != nil {
			return err
		}
		if err := validateMin(MethodDisjointCliques, "size", size, MinCompleteNodes); err != nil {
			return err
		}
		if err := addNodes(MethodDisjointCliques, net, cfg, layer, 0, k*size); err != nil {
			return err
		}
		for c := 0; c < k; c++ {
			if err := addClique(MethodDisjointCliques, net, cfg, layer, c*size, (c+1)*size); err != nil {
				return err
			}
		}

		return nil
	}
}

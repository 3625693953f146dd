// SPDX-License-Identifier: MIT
// Package: mlnet/builder
//
// impl_cycle.go: ring C_n and path P_n in one layer.

package builder

import "github.com/katalvlaran/mlnet/core"

// Cycle returns a Constructor that builds the ring C_n in layer: actors
// 0..n-1 and edges {i, (i+1)%n} for i = 0..n-1.
//
// Errors: ErrTooFewVertices if n < 3; ErrConstructFailed for a nil network
// or empty layer name.
//
// Complexity: O(n).
func Cycle(layer string, n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if err := validateTarget(MethodCycle, net, layer); err != nil {
			return err
		}
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		if err := addNodes(MethodCycle, net, cfg, layer, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(MethodCycle, net, cfg, layer, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the path P_n in layer: actors
// 0..n-1 and edges {i, i+1}.
//
// Errors: ErrTooFewVertices if n < 2.
func Path(layer string, n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if err := validateTarget(MethodPath, net, layer); err != nil {
			return err
		}
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		if err := addNodes(MethodPath, net, cfg, layer, 0, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(MethodPath, net, cfg, layer, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Package builder: internal helpers shared by constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/mlnet/core"
)

// Method tags for error context.
const (
	MethodCycle           = "Cycle"
	MethodPath            = "Path"
	MethodComplete        = "Complete"
	MethodDisjointCliques = "DisjointCliques"
	MethodRandomSparse    = "RandomSparse"
)

// Constructor minimums.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinCompleteNodes = 1
	MinCliqueCount   = 1
	MinRandomNodes   = 1
	MinProbability   = 0.0
	MaxProbability   = 1.0
)

// validateTarget rejects a nil network or an empty layer name.
func validateTarget(method string, n *core.Network, layer string) error {
	if n == nil {
		return fmt.Errorf("%s: nil network: %w", method, ErrConstructFailed)
	}
	if layer == "" {
		return fmt.Errorf("%s: empty layer name: %w", method, ErrConstructFailed)
	}

	return nil
}

// validateMin ensures got ≥ min.
func validateMin(method, what string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, what, got, min, ErrTooFewVertices)
	}

	return nil
}

// addNodes places actors idFn(from..to-1) in layer, ascending.
func addNodes(method string, n *core.Network, cfg builderConfig, layer string, from, to int) error {
	for i := from; i < to; i++ {
		id := cfg.idFn(i)
		if _, err := n.AddNode(id, layer); err != nil {
			return fmt.Errorf("%s: AddNode(%s@%s): %w", method, id, layer, err)
		}
	}

	return nil
}

// addEdge links actors i and j in layer with a weight drawn from cfg.
func addEdge(method string, n *core.Network, cfg builderConfig, layer string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weightFn(cfg.rng)
	if _, err := n.AddEdge(layer, u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s@%s, w=%g): %w", method, u, v, layer, w, err)
	}

	return nil
}

// addClique links every pair of actors in [from,to), i<j ascending.
func addClique(method string, n *core.Network, cfg builderConfig, layer string, from, to int) error {
	for i := from; i < to; i++ {
		for j := i + 1; j < to; j++ {
			if err := addEdge(method, n, cfg, layer, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

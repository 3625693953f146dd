// SPDX-License-Identifier: MIT
// Package: mlnet/builder
//
// api.go: public entry points.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mlnet/core"
)

// Constructor mutates n by adding one topology to one layer, configured by
// cfg. Implementations validate parameters first and return wrapped
// sentinels; they never panic.
type Constructor func(n *core.Network, cfg builderConfig) error

// BuildNetwork creates a network with nopts, resolves bopts once, and applies
// every constructor in order. Constructors share the resolved configuration,
// including its RNG stream.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "BuildNetwork: ".
//
// Complexity: O(len(bopts)) plus the sum of constructor costs.
func BuildNetwork(nopts []core.NetworkOption, bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	n := core.NewNetwork(nopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return n, nil
}

// Apply runs constructors against an existing network.
//
// Errors: as BuildNetwork, plus ErrConstructFailed for a nil network.
func Apply(n *core.Network, bopts []BuilderOption, cons ...Constructor) error {
	if n == nil {
		return fmt.Errorf("Apply: nil network: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package community: sentinel error set.
// Every public entry point returns one of these sentinels wrapped once with
// call-site context ("Method: detail: %w"); callers match with errors.Is.
// No partial results accompany an error.

package community

import "errors"

var (
	// ErrInvalidParameter reports γ ≤ 0, ω < 0, a non-finite resolution or
	// coupling, a nil network, or a malformed initial partition.
	ErrInvalidParameter = errors.New("community: invalid parameter")

	// ErrEmptyNetwork reports a network without a single node.
	ErrEmptyNetwork = errors.New("community: network has no nodes")

	// ErrInternalInvariant reports desynchronized optimizer bookkeeping or
	// inconsistent partition/matrix shapes during aggregation. The run is
	// aborted.
	ErrInternalInvariant = errors.New("community: internal invariant violated")
)

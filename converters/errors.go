package converters

import "errors"

var (
	// ErrNilInput is returned when a required network, graph or matrix is nil.
	ErrNilInput = errors.New("converters: nil input")

	// ErrSelfLoop is returned when a layer holds a self-loop, which
	// simple.WeightedUndirectedGraph cannot represent.
	ErrSelfLoop = errors.New("converters: self-loop not representable")

	// ErrLengthMismatch is returned when a partition does not cover the nodes.
	ErrLengthMismatch = errors.New("converters: partition length mismatch")
)

// Package builder provides deterministic multilayer network fixtures built
// with functional options. Every constructor targets one named layer, so a
// multilayer fixture is a sequence of constructors over shared actor IDs:
//
//	net, err := builder.BuildNetwork(nil,
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Cycle("friends", 6),
//	    builder.RandomSparse("coworkers", 6, 0.4),
//	)
//
// The package offers the following key components:
//
//   - Topologies (Constructor implementations):
//     – Cycle(layer, n):                ring C_n.
//     – Path(layer, n):                 path P_n.
//     – Complete(layer, n):             clique K_n.
//     – DisjointCliques(layer, k, size): k cliques of the given size.
//     – RandomSparse(layer, n, p):      Erdős–Rényi G(n,p), seeded.
//   - Actor-ID schemes (IDFn):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolNumberIDFn:  prefixed decimals ("v0","v1",…).
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn:   constant DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//
// Guarantees:
//
//   - Actor i of every constructor gets ID idFn(i), so the same index in two
//     layers names the same actor.
//   - Nodes are added in ascending index order before any edge; edges are
//     emitted in a documented stable order.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     runtime validation errors wrap the sentinels below.
//
// Errors:
//
//	ErrTooFewVertices      - size parameter below the constructor minimum.
//	ErrInvalidProbability  - p outside [0,1].
//	ErrNeedRandSource      - stochastic constructor without WithSeed/WithRand.
//	ErrConstructFailed     - nil network or nil constructor.
package builder

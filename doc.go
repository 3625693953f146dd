// Package mlnet is an in-memory toolkit for multilayer networks and their
// community structure, built around the generalized Louvain method.
//
// What is mlnet?
//
//	A thread-safe, deterministic library that brings together:
//		• Core primitives: actors present in named layers, weighted intra-layer edges
//		• Sparse matrices: CSR storage with a triplet builder
//		• Community detection: supra-modularity, local moves, aggregation, hierarchy
//		• Fixtures: cycles, cliques and seeded random layers for tests and demos
//		• Adapters: gonum graphs and matrices, CSV/JSON I/O, Prometheus metrics
//
// Packages:
//
//	core/        Network, Actor, Layer, Node, Edge & thread-safe primitives
//	matrix/      sparse CSR matrix and builder
//	bfs/         breadth-first search and connected components on matrix patterns
//	community/   multilayer generalized Louvain (BuildSupra, Optimize, Aggregate, Detect)
//	builder/     deterministic layer constructors
//	converters/  gonum graph/simple, graph/community and mat adapters
//	mlio/        edge-list reader, community CSV/JSON writers
//	metrics/     Prometheus community.Recorder
//	config/      YAML/.env/environment configuration for the CLI
//	cmd/glouvain  command-line front end
//
// Quick example:
//
//	net := core.NewNetwork()
//	net.AddEdge("friends", "ann", "bob", 1)
//	net.AddEdge("work", "ann", "bob", 1)
//	sets, err := community.GetMLCommunity(net, 1, 1)
//
// See examples/ for runnable programs.
package mlnet

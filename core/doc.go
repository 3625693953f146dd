// Package core provides a thread-safe in-memory multilayer network: actors
// that may be present in several named layers, with weighted undirected
// edges inside each layer.
//
// The network M = (A, L, V, E) is made of:
//
//   - Actors (A): identity-bearing entities, stable across layers.
//   - Layers (L): named subgraphs.
//   - Nodes (V ⊆ A×L): an actor's presence in one layer.
//   - Edges (E): undirected, non-negative weighted, always intra-layer.
//
// Inter-layer relations are not stored: algorithms that need them (see
// package community) synthesize coupling between the presences of the same
// actor.
//
// Why use core.Network?
//
//   - Deterministic iteration: Layers(), Actors(), Nodes(), Edges() and
//     Presences() return results in insertion order, so identical build
//     sequences give identical downstream results.
//   - Shared handles: *Actor and *Layer pointers are stable for the life of
//     the network and are safe to use as map keys; Node is a comparable value.
//   - Parallel edges accumulate: adding (u,v) twice in a layer sums weights.
//   - One sync.RWMutex guards the whole catalog; reads never block each other.
//
// Configuration Options (NetworkOption):
//
//	– WithLoops()
//	    Permits self-loops (actor linked to itself inside a layer);
//	    otherwise AddEdge(l, a, a, w) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Catalog lifecycle
//	AddLayer(name string) (*Layer, error)              // O(1)
//	AddActor(name string) (*Actor, error)              // O(1)
//	AddNode(actor, layer string) (Node, error)         // O(1)
//
//	// Edge lifecycle
//	AddEdge(layer, a1, a2 string, w float64) (string, error)   // O(1) amortized
//	SetEdgeWeight(layer, a1, a2 string, w float64) error       // O(1)
//	RemoveEdge(layer, a1, a2 string) error                     // O(deg)
//
//	// Read surface (consumed by community detection)
//	Layers() []*Layer; Actors() []*Actor
//	Nodes(layer) ([]Node, error); Edges(layer) ([]Edge, error)
//	Presences(actor) ([]Node, error); ActorOf(Node) (*Actor, error)
//
// Errors:
//
//	ErrEmptyName, ErrLayerNotFound, ErrActorNotFound, ErrNodeNotFound,
//	ErrEdgeNotFound, ErrBadWeight, ErrLoopNotAllowed.
package core

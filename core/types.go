// Package core defines the central Network, Actor, Layer, Node and Edge
// types, and provides thread-safe primitives for building and querying
// multilayer networks.
//
// This file declares the data types, NetworkOption, sentinel errors, and
// the NewNetwork constructor.
//
// Errors:
//
//	ErrEmptyName       - actor or layer name is the empty string.
//	ErrLayerNotFound   - requested layer does not exist.
//	ErrActorNotFound   - requested actor does not exist.
//	ErrNodeNotFound    - actor is not present in the requested layer.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrBadWeight       - negative, NaN or infinite edge weight.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core network operations.
var (
	// ErrEmptyName indicates that an actor or layer name is empty.
	ErrEmptyName = errors.New("core: name is empty")

	// ErrLayerNotFound indicates an operation referenced a non-existent layer.
	ErrLayerNotFound = errors.New("core: layer not found")

	// ErrActorNotFound indicates an operation referenced a non-existent actor.
	ErrActorNotFound = errors.New("core: actor not found")

	// ErrNodeNotFound indicates the actor has no presence in the given layer.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative or non-finite edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Actor is an identity-bearing entity that may be present in any number of
// layers. The pointer is the shared handle: it stays valid and unique for
// the life of its Network.
type Actor struct {
	// Name uniquely identifies this Actor within its Network.
	Name string

	// Metadata stores arbitrary user data. It is never read by algorithms.
	Metadata map[string]interface{}

	index int // insertion position, drives deterministic ordering
}

// Layer is one named subgraph of the multilayer network.
type Layer struct {
	// Name uniquely identifies this Layer within its Network.
	Name string

	index int
}

// Node is an actor's presence in one layer. Node is a comparable value and
// can be used as a map key.
type Node struct {
	Actor *Actor
	Layer *Layer
}

// String renders the node as "actor@layer".
func (n Node) String() string {
	if n.Actor == nil || n.Layer == nil {
		return "<nil>"
	}
	return n.Actor.Name + "@" + n.Layer.Name
}

// Edge is an undirected, weighted, intra-layer connection between two nodes.
// Both endpoints always share the same Layer.
type Edge struct {
	// ID uniquely identifies this edge in the Network ("e1", "e2", ...).
	ID string

	// From and To are the endpoints, in the order they were first added.
	From Node
	To   Node

	// Weight is the non-negative strength of the connection.
	Weight float64
}

// NetworkOption configures behavior of a Network before creation.
type NetworkOption func(n *Network)

// WithLoops permits self-loops (an actor linked to itself inside a layer).
func WithLoops() NetworkOption {
	return func(n *Network) { n.allowLoops = true }
}

// layerData holds the per-layer catalog: presences, edges and adjacency.
//
// adjacency[u][v] = edge ID, mirrored for u != v.
type layerData struct {
	layer     *Layer
	nodes     map[*Actor]struct{}
	nodeOrder []*Actor
	edges     map[string]*Edge
	edgeOrder []string
	adjacency map[*Actor]map[*Actor]string
}

// Network is the in-memory multilayer network.
//
// mu protects every field below it. edgeSeq backs unique Edge.ID generation.
type Network struct {
	mu sync.RWMutex

	allowLoops bool

	edgeSeq    uint64
	actors     map[string]*Actor
	actorOrder []*Actor
	layers     map[string]*layerData
	layerOrder []*layerData

	// presences[actor] lists the layers the actor is present in, insertion order.
	presences map[*Actor][]*Layer
}

// NewNetwork creates an empty Network. By default self-loops are rejected.
// Complexity: O(len(opts)).
func NewNetwork(opts ...NetworkOption) *Network {
	n := &Network{
		actors:    make(map[string]*Actor),
		layers:    make(map[string]*layerData),
		presences: make(map[*Actor][]*Layer),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// File: view.go
// Role: Read-only enumeration surface consumed by algorithms (community
//       detection reads the network exclusively through these methods).
// Determinism:
//   - Every enumeration follows insertion order.
// Concurrency:
//   - Read lock only; returned slices are fresh copies owned by the caller.

package core

// Index returns the actor's insertion position in its Network. Algorithms
// use it as a stable ordering key.
func (a *Actor) Index() int { return a.index }

// Index returns the layer's insertion position in its Network.
func (l *Layer) Index() int { return l.index }

// Layers returns all layers in insertion order. O(L).
func (n *Network) Layers() []*Layer {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Layer, len(n.layerOrder))
	for i, ld := range n.layerOrder {
		out[i] = ld.layer
	}

	return out
}

// Actors returns all actors in insertion order, including actors without
// any presence. O(A).
func (n *Network) Actors() []*Actor {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Actor, len(n.actorOrder))
	copy(out, n.actorOrder)

	return out
}

// Nodes returns the presences inside layer, in the order actors joined it.
//
// Errors:
//   - ErrLayerNotFound if the layer is missing.
//
// Complexity: O(V_layer).
func (n *Network) Nodes(layer string) ([]Node, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	ld, ok := n.layers[layer]
	if !ok {
		return nil, ErrLayerNotFound
	}
	out := make([]Node, len(ld.nodeOrder))
	for i, a := range ld.nodeOrder {
		out[i] = Node{Actor: a, Layer: ld.layer}
	}

	return out, nil
}

// Edges returns copies of the edges inside layer, in insertion order.
//
// Errors:
//   - ErrLayerNotFound if the layer is missing.
//
// Complexity: O(E_layer).
func (n *Network) Edges(layer string) ([]Edge, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	ld, ok := n.layers[layer]
	if !ok {
		return nil, ErrLayerNotFound
	}
	out := make([]Edge, len(ld.edgeOrder))
	for i, eid := range ld.edgeOrder {
		out[i] = *ld.edges[eid]
	}

	return out, nil
}

// Presences returns every node of the named actor, one per layer it is
// present in, in the order the actor joined those layers.
//
// Errors:
//   - ErrActorNotFound if the actor is missing.
//
// Complexity: O(L_actor).
func (n *Network) Presences(actor string) ([]Node, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	a, ok := n.actors[actor]
	if !ok {
		return nil, ErrActorNotFound
	}
	layers := n.presences[a]
	out := make([]Node, len(layers))
	for i, l := range layers {
		out[i] = Node{Actor: a, Layer: l}
	}

	return out, nil
}

// ActorOf maps a node back to its owning actor after checking that the node
// belongs to this network.
//
// Errors:
//   - ErrNodeNotFound if the node is zero-valued or not part of the network.
//
// Complexity: O(1).
func (n *Network) ActorOf(node Node) (*Actor, error) {
	if node.Actor == nil || node.Layer == nil {
		return nil, ErrNodeNotFound
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	ld, ok := n.layers[node.Layer.Name]
	if !ok || ld.layer != node.Layer {
		return nil, ErrNodeNotFound
	}
	if _, ok = ld.nodes[node.Actor]; !ok {
		return nil, ErrNodeNotFound
	}

	return node.Actor, nil
}

// NodeCount returns the total number of presences across all layers. O(L).
func (n *Network) NodeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	total := 0
	for _, ld := range n.layerOrder {
		total += len(ld.nodeOrder)
	}

	return total
}

// Stats is a point-in-time summary of a Network.
type Stats struct {
	Actors      int
	Layers      int
	Nodes       int
	Edges       int
	TotalWeight float64
}

// Stats returns counts and the summed edge weight across all layers.
// Complexity: O(L + E).
func (n *Network) Stats() Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()
	s := Stats{Actors: len(n.actorOrder), Layers: len(n.layerOrder)}
	for _, ld := range n.layerOrder {
		s.Nodes += len(ld.nodeOrder)
		s.Edges += len(ld.edgeOrder)
		for _, eid := range ld.edgeOrder {
			s.TotalWeight += ld.edges[eid].Weight
		}
	}

	return s
}

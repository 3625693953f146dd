// File: methods_catalog.go
// Role: Actor, layer and node lifecycle & lookups.
// Determinism:
//   - Actors(), Layers() and Nodes() follow insertion order.
// Concurrency:
//   - Mutations under mu write lock, lookups under mu read lock.

package core

// AddLayer registers a layer if missing (idempotent) and returns its handle.
//
// Errors:
//   - ErrEmptyName if name == "".
//
// Complexity: O(1).
func (n *Network) AddLayer(name string) (*Layer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.ensureLayer(name).layer, nil
}

// AddActor registers an actor if missing (idempotent) and returns its handle.
// A fresh actor has no presences until AddNode or AddEdge places it in a layer.
//
// Errors:
//   - ErrEmptyName if name == "".
//
// Complexity: O(1).
func (n *Network) AddActor(name string) (*Actor, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.ensureActor(name), nil
}

// AddNode places actor in layer, creating both if needed. Adding an existing
// presence is a no-op.
//
// Errors:
//   - ErrEmptyName if either name is empty.
//
// Complexity: O(1) amortized.
func (n *Network) AddNode(actor, layer string) (Node, error) {
	if actor == "" || layer == "" {
		return Node{}, ErrEmptyName
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.ensureNode(actor, layer), nil
}

// HasLayer reports whether a layer with the given name exists. O(1).
func (n *Network) HasLayer(name string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.layers[name]

	return ok
}

// HasActor reports whether an actor with the given name exists. O(1).
func (n *Network) HasActor(name string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.actors[name]

	return ok
}

// HasNode reports whether actor is present in layer. O(1).
func (n *Network) HasNode(actor, layer string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, err := n.lookupNode(actor, layer)

	return err == nil
}

// Actor returns the handle of the named actor.
//
// Errors:
//   - ErrActorNotFound if the actor is missing.
func (n *Network) Actor(name string) (*Actor, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	a, ok := n.actors[name]
	if !ok {
		return nil, ErrActorNotFound
	}

	return a, nil
}

// Layer returns the handle of the named layer.
//
// Errors:
//   - ErrLayerNotFound if the layer is missing.
func (n *Network) Layer(name string) (*Layer, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	ld, ok := n.layers[name]
	if !ok {
		return nil, ErrLayerNotFound
	}

	return ld.layer, nil
}

// ensureLayer returns the layer catalog, creating it if missing. Caller holds mu.
func (n *Network) ensureLayer(name string) *layerData {
	if ld, ok := n.layers[name]; ok {
		return ld
	}
	ld := &layerData{
		layer:     &Layer{Name: name, index: len(n.layerOrder)},
		nodes:     make(map[*Actor]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[*Actor]map[*Actor]string),
	}
	n.layers[name] = ld
	n.layerOrder = append(n.layerOrder, ld)

	return ld
}

// ensureActor returns the actor handle, creating it if missing. Caller holds mu.
func (n *Network) ensureActor(name string) *Actor {
	if a, ok := n.actors[name]; ok {
		return a
	}
	a := &Actor{Name: name, Metadata: make(map[string]interface{}), index: len(n.actorOrder)}
	n.actors[name] = a
	n.actorOrder = append(n.actorOrder, a)

	return a
}

// ensureNode places the actor in the layer. Caller holds mu.
func (n *Network) ensureNode(actor, layer string) Node {
	a := n.ensureActor(actor)
	ld := n.ensureLayer(layer)
	if _, ok := ld.nodes[a]; !ok {
		ld.nodes[a] = struct{}{}
		ld.nodeOrder = append(ld.nodeOrder, a)
		n.presences[a] = append(n.presences[a], ld.layer)
	}

	return Node{Actor: a, Layer: ld.layer}
}

// lookupNode resolves an existing presence without creating anything.
// Caller holds mu (read or write).
func (n *Network) lookupNode(actor, layer string) (*layerData, error) {
	ld, ok := n.layers[layer]
	if !ok {
		return nil, ErrLayerNotFound
	}
	a, ok := n.actors[actor]
	if !ok {
		return nil, ErrActorNotFound
	}
	if _, ok = ld.nodes[a]; !ok {
		return nil, ErrNodeNotFound
	}

	return ld, nil
}

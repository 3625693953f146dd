// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/SetEdgeWeight/RemoveEdge/HasEdge/
//       EdgeWeight, plus nextEdgeID().
// Determinism:
//   - Edges(layer) returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"math"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects a1 and a2 inside layer with weight w, creating the layer,
// actors and presences if needed. Adding an edge that already exists sums
// the weights and returns the existing edge ID.
//
// Steps:
//  1. Validate names, weight, loops.
//  2. Lock mu, ensure both presences.
//  3. Existing (a1,a2) ⇒ accumulate weight; else allocate ID and store.
//  4. Link adjacency in both directions (once for loops).
//
// Errors:
//   - ErrEmptyName, ErrBadWeight (w < 0, NaN, ±Inf), ErrLoopNotAllowed.
//
// Complexity: O(1) amortized.
func (n *Network) AddEdge(layer, a1, a2 string, w float64) (string, error) {
	if layer == "" || a1 == "" || a2 == "" {
		return "", ErrEmptyName
	}
	if !validWeight(w) {
		return "", ErrBadWeight
	}
	if a1 == a2 && !n.allowLoops {
		return "", ErrLoopNotAllowed
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	from := n.ensureNode(a1, layer)
	to := n.ensureNode(a2, layer)
	ld := n.layers[layer]

	if eid, ok := ld.adjacency[from.Actor][to.Actor]; ok {
		ld.edges[eid].Weight += w
		return eid, nil
	}

	eid := n.nextEdgeID()
	ld.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: w}
	ld.edgeOrder = append(ld.edgeOrder, eid)
	link(ld, from.Actor, to.Actor, eid)
	if from.Actor != to.Actor {
		link(ld, to.Actor, from.Actor, eid)
	}

	return eid, nil
}

// SetEdgeWeight overwrites the weight of an existing edge.
//
// Errors:
//   - ErrBadWeight, ErrLayerNotFound, ErrActorNotFound, ErrNodeNotFound,
//     ErrEdgeNotFound.
//
// Complexity: O(1).
func (n *Network) SetEdgeWeight(layer, a1, a2 string, w float64) error {
	if !validWeight(w) {
		return ErrBadWeight
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	e, err := n.lookupEdge(layer, a1, a2)
	if err != nil {
		return err
	}
	e.Weight = w

	return nil
}

// RemoveEdge deletes the edge between a1 and a2 in layer. Presences are kept.
//
// Errors: as SetEdgeWeight (without ErrBadWeight).
//
// Complexity: O(E_layer) for the ordered edge list compaction.
func (n *Network) RemoveEdge(layer, a1, a2 string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	e, err := n.lookupEdge(layer, a1, a2)
	if err != nil {
		return err
	}
	ld := n.layers[layer]
	delete(ld.edges, e.ID)
	delete(ld.adjacency[e.From.Actor], e.To.Actor)
	delete(ld.adjacency[e.To.Actor], e.From.Actor)
	for i, id := range ld.edgeOrder {
		if id == e.ID {
			ld.edgeOrder = append(ld.edgeOrder[:i], ld.edgeOrder[i+1:]...)
			break
		}
	}

	return nil
}

// HasEdge reports whether a1 and a2 are connected inside layer. O(1).
func (n *Network) HasEdge(layer, a1, a2 string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, err := n.lookupEdge(layer, a1, a2)

	return err == nil
}

// EdgeWeight returns the weight of the edge between a1 and a2 inside layer.
//
// Errors: as SetEdgeWeight (without ErrBadWeight).
func (n *Network) EdgeWeight(layer, a1, a2 string) (float64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	e, err := n.lookupEdge(layer, a1, a2)
	if err != nil {
		return 0, err
	}

	return e.Weight, nil
}

// lookupEdge resolves an existing edge. Caller holds mu.
func (n *Network) lookupEdge(layer, a1, a2 string) (*Edge, error) {
	ld, err := n.lookupNode(a1, layer)
	if err != nil {
		return nil, err
	}
	if _, err = n.lookupNode(a2, layer); err != nil {
		return nil, err
	}
	eid, ok := ld.adjacency[n.actors[a1]][n.actors[a2]]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return ld.edges[eid], nil
}

// link records u→v in the layer adjacency. Caller holds mu.
func link(ld *layerData, u, v *Actor, eid string) {
	inner, ok := ld.adjacency[u]
	if !ok {
		inner = make(map[*Actor]string)
		ld.adjacency[u] = inner
	}
	inner[v] = eid
}

// nextEdgeID returns "e<k>" for the next k. Caller holds mu.
func (n *Network) nextEdgeID() string {
	n.edgeSeq++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n.edgeSeq, 10)

	return string(buf)
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// SPDX-License-Identifier: MIT
// Package core_test verifies core.Network method-level contracts.
//
// Purpose:
//   - Lock in catalog lifecycle and deterministic enumeration order.
//   - Validate constraint enforcement (weights, loops, missing entities).

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlnet/core"
)

const (
	layerWork = "work"
	layerHome = "home"
	actorA    = "alice"
	actorB    = "bob"
	actorC    = "carol"
)

func TestNetwork_AddCatalog(t *testing.T) {
	n := core.NewNetwork()

	_, err := n.AddLayer("")
	require.ErrorIs(t, err, core.ErrEmptyName)
	_, err = n.AddActor("")
	require.ErrorIs(t, err, core.ErrEmptyName)
	_, err = n.AddNode(actorA, "")
	require.ErrorIs(t, err, core.ErrEmptyName)

	l1, err := n.AddLayer(layerWork)
	require.NoError(t, err)
	l2, err := n.AddLayer(layerWork)
	require.NoError(t, err)
	require.Same(t, l1, l2, "AddLayer must be idempotent")

	a, err := n.AddActor(actorA)
	require.NoError(t, err)
	require.Empty(t, mustPresences(t, n, actorA), "fresh actor has no presences")

	node, err := n.AddNode(actorA, layerHome)
	require.NoError(t, err)
	require.Same(t, a, node.Actor)
	require.Equal(t, "alice@home", node.String())
	require.True(t, n.HasLayer(layerHome), "AddNode creates missing layer")
	require.True(t, n.HasNode(actorA, layerHome))
	require.False(t, n.HasNode(actorA, layerWork))
	require.Equal(t, 1, n.NodeCount())
}

func TestNetwork_AddEdgeValidation(t *testing.T) {
	n := core.NewNetwork()

	_, err := n.AddEdge("", actorA, actorB, 1)
	require.ErrorIs(t, err, core.ErrEmptyName)
	_, err = n.AddEdge(layerWork, actorA, actorB, -1)
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = n.AddEdge(layerWork, actorA, actorB, math.NaN())
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = n.AddEdge(layerWork, actorA, actorB, math.Inf(1))
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = n.AddEdge(layerWork, actorA, actorA, 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	looped := core.NewNetwork(core.WithLoops())
	_, err = looped.AddEdge(layerWork, actorA, actorA, 2)
	require.NoError(t, err)
	w, err := looped.EdgeWeight(layerWork, actorA, actorA)
	require.NoError(t, err)
	require.Equal(t, 2.0, w)
}

func TestNetwork_ParallelEdgesAccumulate(t *testing.T) {
	n := core.NewNetwork()

	id1, err := n.AddEdge(layerWork, actorA, actorB, 1.5)
	require.NoError(t, err)
	id2, err := n.AddEdge(layerWork, actorB, actorA, 2)
	require.NoError(t, err)
	require.Equal(t, id1, id2, "mirror insert reuses the undirected edge")

	w, err := n.EdgeWeight(layerWork, actorA, actorB)
	require.NoError(t, err)
	require.Equal(t, 3.5, w)

	require.NoError(t, n.SetEdgeWeight(layerWork, actorB, actorA, 0.25))
	w, err = n.EdgeWeight(layerWork, actorA, actorB)
	require.NoError(t, err)
	require.Equal(t, 0.25, w)

	require.ErrorIs(t, n.SetEdgeWeight(layerWork, actorA, actorB, -2), core.ErrBadWeight)
}

func TestNetwork_RemoveEdge(t *testing.T) {
	n := core.NewNetwork()
	_, _ = n.AddEdge(layerWork, actorA, actorB, 1)
	_, _ = n.AddEdge(layerWork, actorB, actorC, 1)

	require.ErrorIs(t, n.RemoveEdge("nope", actorA, actorB), core.ErrLayerNotFound)
	require.ErrorIs(t, n.RemoveEdge(layerWork, "nobody", actorB), core.ErrActorNotFound)
	require.ErrorIs(t, n.RemoveEdge(layerWork, actorA, actorC), core.ErrEdgeNotFound)

	require.NoError(t, n.RemoveEdge(layerWork, actorB, actorA))
	require.False(t, n.HasEdge(layerWork, actorA, actorB))
	require.True(t, n.HasNode(actorA, layerWork), "presences survive edge removal")

	edges, err := n.Edges(layerWork)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, actorB, edges[0].From.Actor.Name)
	require.Equal(t, actorC, edges[0].To.Actor.Name)
}

func TestNetwork_EnumerationOrder(t *testing.T) {
	n := core.NewNetwork()
	_, _ = n.AddEdge(layerWork, actorC, actorA, 1)
	_, _ = n.AddEdge(layerHome, actorA, actorB, 2)
	_, _ = n.AddEdge(layerWork, actorB, actorC, 3)

	layers := n.Layers()
	require.Len(t, layers, 2)
	require.Equal(t, layerWork, layers[0].Name)
	require.Equal(t, layerHome, layers[1].Name)
	require.Equal(t, 1, layers[1].Index())

	actors := n.Actors()
	require.Equal(t, []string{actorC, actorA, actorB}, actorNames(actors))

	nodes, err := n.Nodes(layerWork)
	require.NoError(t, err)
	require.Equal(t, []string{"carol@work", "alice@work", "bob@work"}, nodeNames(nodes))

	edges, err := n.Edges(layerWork)
	require.NoError(t, err)
	require.Equal(t, "e1", edges[0].ID)
	require.Equal(t, "e3", edges[1].ID)

	pres := mustPresences(t, n, actorA)
	require.Equal(t, []string{"alice@work", "alice@home"}, nodeNames(pres))

	_, err = n.Nodes("missing")
	require.ErrorIs(t, err, core.ErrLayerNotFound)
	_, err = n.Presences("missing")
	require.ErrorIs(t, err, core.ErrActorNotFound)
}

func TestNetwork_ActorOf(t *testing.T) {
	n := core.NewNetwork()
	node, err := n.AddNode(actorA, layerWork)
	require.NoError(t, err)

	a, err := n.ActorOf(node)
	require.NoError(t, err)
	require.Equal(t, actorA, a.Name)

	_, err = n.ActorOf(core.Node{})
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	other := core.NewNetwork()
	foreign, _ := other.AddNode(actorA, layerWork)
	_, err = n.ActorOf(foreign)
	require.ErrorIs(t, err, core.ErrNodeNotFound, "nodes of another network are rejected")
}

func TestNetwork_Stats(t *testing.T) {
	n := core.NewNetwork()
	_, _ = n.AddEdge(layerWork, actorA, actorB, 1)
	_, _ = n.AddEdge(layerHome, actorA, actorB, 2.5)
	_, _ = n.AddActor(actorC)

	s := n.Stats()
	require.Equal(t, core.Stats{Actors: 3, Layers: 2, Nodes: 4, Edges: 2, TotalWeight: 3.5}, s)
}

func mustPresences(t *testing.T, n *core.Network, actor string) []core.Node {
	t.Helper()
	p, err := n.Presences(actor)
	require.NoError(t, err)
	return p
}

func actorNames(as []*core.Actor) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Name
	}
	return out
}

func nodeNames(ns []core.Node) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.String()
	}
	return out
}

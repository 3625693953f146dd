package converters

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mlnet/community"
	"github.com/katalvlaran/mlnet/core"
)

// LayerToGonum copies one layer into a weighted undirected gonum graph.
// Node k of the result is nodes[k]; absent edges weigh 0.
//
// Errors: ErrNilInput, ErrSelfLoop, and core lookup errors for an unknown
// layer.
func LayerToGonum(net *core.Network, layer string) (*simple.WeightedUndirectedGraph, []core.Node, error) {
	if net == nil {
		return nil, nil, fmt.Errorf("LayerToGonum: %w", ErrNilInput)
	}
	nodes, err := net.Nodes(layer)
	if err != nil {
		return nil, nil, fmt.Errorf("LayerToGonum(%s): %w", layer, err)
	}
	edges, err := net.Edges(layer)
	if err != nil {
		return nil, nil, fmt.Errorf("LayerToGonum(%s): %w", layer, err)
	}

	id := make(map[*core.Actor]int64, len(nodes))
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for k, nd := range nodes {
		id[nd.Actor] = int64(k)
		g.AddNode(simple.Node(k))
	}
	for _, e := range edges {
		if e.From.Actor == e.To.Actor {
			return nil, nil, fmt.Errorf("LayerToGonum(%s): %s: %w", layer, e.From, ErrSelfLoop)
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(id[e.From.Actor]), simple.Node(id[e.To.Actor]), e.Weight))
	}

	return g, nodes, nil
}

// AddGonumLayer adds every node and edge of g to layer of net. name maps a
// gonum node ID to an actor name. Weighted graphs keep their weights;
// others get weight 1. Nodes are added in ascending ID order.
func AddGonumLayer(net *core.Network, layer string, g graph.Undirected, name func(id int64) string) error {
	if net == nil || g == nil || name == nil {
		return fmt.Errorf("AddGonumLayer: %w", ErrNilInput)
	}
	weighted, _ := g.(graph.Weighted)

	nodes := graph.NodesOf(g.Nodes())
	slices.SortFunc(nodes, byID)
	for _, n := range nodes {
		if _, err := net.AddNode(name(n.ID()), layer); err != nil {
			return fmt.Errorf("AddGonumLayer(%s): %w", layer, err)
		}
	}
	for _, u := range nodes {
		adj := graph.NodesOf(g.From(u.ID()))
		slices.SortFunc(adj, byID)
		for _, v := range adj {
			if v.ID() < u.ID() {
				continue
			}
			w := 1.0
			if weighted != nil {
				w, _ = weighted.Weight(u.ID(), v.ID())
			}
			if _, err := net.AddEdge(layer, name(u.ID()), name(v.ID()), w); err != nil {
				return fmt.Errorf("AddGonumLayer(%s): %w", layer, err)
			}
		}
	}

	return nil
}

// PartitionToGonum groups simple.Node(k) by p[k], one slice per label in
// ascending label order. Labels must be dense.
func PartitionToGonum(p community.Partition) [][]graph.Node {
	members := p.Members()
	out := make([][]graph.Node, len(members))
	for c, m := range members {
		out[c] = make([]graph.Node, len(m))
		for k, i := range m {
			out[c][k] = simple.Node(i)
		}
	}

	return out
}

// LayerPartition extracts the labels of one layer's nodes from a full
// result, renumbered densely, in the node order LayerToGonum uses.
func LayerPartition(res *community.Result, nodes []core.Node) (community.Partition, error) {
	if res == nil {
		return nil, fmt.Errorf("LayerPartition: %w", ErrNilInput)
	}
	p := make(community.Partition, len(nodes))
	for k, nd := range nodes {
		c := res.NodeLabel(nd)
		if c < 0 {
			return nil, fmt.Errorf("LayerPartition: node %s: %w", nd, ErrLengthMismatch)
		}
		p[k] = c
	}

	return p.Renumber(), nil
}

func byID(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) }

package community

import (
	"sort"

	"github.com/katalvlaran/mlnet/core"
)

// Level records one optimize step of the hierarchy.
type Level struct {
	// Index is 0 for the original nodes, 1 for the first meta-network, ...
	Index int `json:"level"`

	// Nodes is the number of (meta-)nodes optimized at this level.
	Nodes int `json:"nodes"`

	// Communities is the number of communities found.
	Communities int `json:"num_communities"`

	Moves      int     `json:"num_moves"`
	Passes     int     `json:"passes"`
	Modularity float64 `json:"modularity"`
	RuntimeMS  int64   `json:"runtime_ms"`

	// Partition labels this level's nodes.
	Partition Partition `json:"partition"`

	// Mapping[c] lists the previous level's nodes merged into node c of this
	// level. Nil at level 0.
	Mapping [][]int `json:"mapping,omitempty"`
}

// ActorSet is one detected community seen from the actors' side.
type ActorSet struct {
	// ID is the dense community label.
	ID int `json:"id"`

	// Actors are ordered by insertion index in the network.
	Actors []*core.Actor `json:"-"`

	// Nodes are the member presences in supra-matrix index order.
	Nodes []core.Node `json:"-"`
}

// Names returns the actor names of the set.
func (a ActorSet) Names() []string {
	out := make([]string, len(a.Actors))
	for i, act := range a.Actors {
		out[i] = act.Name
	}

	return out
}

// Result is the outcome of Detect.
type Result struct {
	// Levels lists every optimize step, finest first.
	Levels []Level

	// Nodes maps supra-matrix indices to network nodes.
	Nodes []core.Node

	// Labels is the final community of each node, dense and numbered in
	// order of first appearance.
	Labels Partition

	// Communities holds one ActorSet per label, indexed by label.
	Communities []ActorSet

	// Modularity of Labels.
	Modularity float64

	// Components is the number of connected components of the supra-graph.
	// Moves never join components, so len(Communities) >= Components.
	Components int

	membership map[*core.Actor][]int
}

// Membership returns the labels of the communities containing actor, in
// ascending order. An actor whose presences disagree belongs to several.
func (r *Result) Membership(actor *core.Actor) []int {
	return append([]int(nil), r.membership[actor]...)
}

// NodeLabel returns the final label of node, or -1 if the node is unknown.
func (r *Result) NodeLabel(node core.Node) int {
	for i, nd := range r.Nodes {
		if nd == node {
			return r.Labels[i]
		}
	}

	return -1
}

// newResult groups the final node labels by actor.
func newResult(nodes []core.Node, labels Partition, levels []Level, q float64) *Result {
	k := 0
	for _, c := range labels {
		if c+1 > k {
			k = c + 1
		}
	}
	sets := make([]ActorSet, k)
	inSet := make([]map[*core.Actor]struct{}, k)
	for c := range sets {
		sets[c].ID = c
		inSet[c] = make(map[*core.Actor]struct{})
	}
	membership := make(map[*core.Actor][]int)
	for i, nd := range nodes {
		c := labels[i]
		sets[c].Nodes = append(sets[c].Nodes, nd)
		if _, ok := inSet[c][nd.Actor]; ok {
			continue
		}
		inSet[c][nd.Actor] = struct{}{}
		sets[c].Actors = append(sets[c].Actors, nd.Actor)
		membership[nd.Actor] = append(membership[nd.Actor], c)
	}
	for c := range sets {
		acts := sets[c].Actors
		sort.Slice(acts, func(x, y int) bool { return acts[x].Index() < acts[y].Index() })
	}
	for a, cs := range membership {
		sort.Ints(cs)
		membership[a] = cs
	}

	return &Result{
		Levels:      levels,
		Nodes:       nodes,
		Labels:      labels,
		Communities: sets,
		Modularity:  q,
		membership:  membership,
	}
}

// Package converters provides adapters between mlnet types and gonum:
//   - one layer of a core.Network  <->  gonum/graph/simple.WeightedUndirectedGraph
//   - a community.Partition        ->   [][]graph.Node (gonum/graph/community)
//   - a community.Supra            ->   dense modularity matrix (gonum/mat)
//
// Node IDs on the gonum side are the positions of the layer's nodes in
// core.Network.Nodes(layer) order, so a partition of that layer maps onto
// gonum communities without a lookup table.
package converters

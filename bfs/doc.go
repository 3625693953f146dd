// Package bfs provides breadth-first search over the pattern of a symmetric
// matrix.Sparse, treating every stored off-diagonal entry as an undirected
// edge between row and column indices.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start
//     index and returns a Result with visit Order, Depth and Parent.
//   - Components labels every vertex with its connected component; labels
//     are dense and numbered by smallest member.
//   - Hooks: OnVisit may abort with an error; FilterNeighbor may skip edges.
//   - MaxDepth limits exploration (d>0) or explicitly disables the limit (d==0).
//
// Why
//
//   - Louvain moves never join vertices of different components, so the
//     component count bounds the community count from below and is a cheap
//     sanity check on any partition.
//
// Determinism
//
//	Neighbors are taken from matrix rows in ascending column order, so the
//	visit sequence is fully reproducible.
//
// Complexity
//
//	O(V + nnz) time, O(V) extra memory.
package bfs

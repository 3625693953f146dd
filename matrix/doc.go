// Package matrix provides the sparse square matrix used by community
// detection: an immutable CSR (compressed sparse row) store built from
// (row, col, value) triplets.
//
// The matrix package provides:
//
//   - Builder: accumulates triplets (Add / AddSym), then Build() sorts them,
//     sums duplicates and drops exact zeros.
//   - Sparse: O(1) row access, O(log d) point lookup, plus reductions
//     (RowSum, Sum, Trace) and structural checks (IsSymmetric).
//   - FromDense / ToDense for small fixtures and debugging.
//
// Duplicates are summed in insertion order, so identical build sequences give
// bit-identical matrices.
//
// Sparse is read-only once built and safe for concurrent readers.
package matrix

// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"sort"
)

// Sparse is an immutable n×n matrix in compressed sparse row form.
//   - rowPtr has n+1 entries; row i occupies [rowPtr[i], rowPtr[i+1]).
//   - colIdx is strictly increasing inside each row.
//   - vals never holds an exact zero.
//   - eps is the structural tolerance inherited from the Builder.
type Sparse struct {
	n      int
	eps    float64
	rowPtr []int
	colIdx []int
	vals   []float64
}

// Dim returns the number of rows (== columns). O(1).
func (s *Sparse) Dim() int { return s.n }

// Nnz returns the number of stored entries. O(1).
func (s *Sparse) Nnz() int { return len(s.vals) }

// At returns the entry at (i,j), zero when not stored.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrOutOfRange if i or j is outside [0,n).
//
// Complexity: O(log d_i).
func (s *Sparse) At(i, j int) (float64, error) {
	if s == nil {
		return 0, sparseErrorf("At", i, j, ErrNilMatrix)
	}
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, sparseErrorf("At", i, j, ErrOutOfRange)
	}

	return s.at(i, j), nil
}

// at is At without validation. Caller guarantees bounds.
func (s *Sparse) at(i, j int) float64 {
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	k := lo + sort.SearchInts(s.colIdx[lo:hi], j)
	if k < hi && s.colIdx[k] == j {
		return s.vals[k]
	}

	return 0
}

// Row returns the column indices and values of row i. The slices alias
// internal storage and must not be modified. Out-of-range rows yield nil.
// Complexity: O(1).
func (s *Sparse) Row(i int) ([]int, []float64) {
	if i < 0 || i >= s.n {
		return nil, nil
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]

	return s.colIdx[lo:hi:hi], s.vals[lo:hi:hi]
}

// Diag returns the diagonal entry of row i (0 when out of range).
func (s *Sparse) Diag(i int) float64 {
	if i < 0 || i >= s.n {
		return 0
	}

	return s.at(i, i)
}

// RowSum returns Σ_j S[i][j]. O(d_i).
func (s *Sparse) RowSum(i int) float64 {
	_, vals := s.Row(i)
	var sum float64
	for _, v := range vals {
		sum += v
	}

	return sum
}

// Sum returns the sum of all stored entries, accumulated row by row. O(nnz).
func (s *Sparse) Sum() float64 {
	var sum float64
	for i := 0; i < s.n; i++ {
		sum += s.RowSum(i)
	}

	return sum
}

// Trace returns Σ_i S[i][i]. O(n log d).
func (s *Sparse) Trace() float64 {
	var tr float64
	for i := 0; i < s.n; i++ {
		tr += s.at(i, i)
	}

	return tr
}

// Do calls fn for every stored entry in row-major order.
func (s *Sparse) Do(fn func(i, j int, v float64)) {
	for i := 0; i < s.n; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			fn(i, s.colIdx[k], s.vals[k])
		}
	}
}

// Clone returns a deep copy. O(n + nnz).
func (s *Sparse) Clone() *Sparse {
	return &Sparse{
		n:      s.n,
		eps:    s.eps,
		rowPtr: append([]int(nil), s.rowPtr...),
		colIdx: append([]int(nil), s.colIdx...),
		vals:   append([]float64(nil), s.vals...),
	}
}

// IsSymmetric reports whether |S[i][j] − S[j][i]| ≤ eps for every stored
// entry. Complexity: O(nnz log d).
func (s *Sparse) IsSymmetric(eps float64) bool {
	return s.CheckSymmetric(eps) == nil
}

// CheckSymmetric is IsSymmetric returning the first violating coordinate.
//
// Errors:
//   - ErrAsymmetry wrapped with (i,j).
func (s *Sparse) CheckSymmetric(eps float64) error {
	for i := 0; i < s.n; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			j := s.colIdx[k]
			if math.Abs(s.vals[k]-s.at(j, i)) > eps {
				return sparseErrorf("CheckSymmetric", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// Validate runs CheckSymmetric with the epsilon configured on the Builder
// (DefaultEpsilon unless WithEpsilon was given).
func (s *Sparse) Validate() error {
	if s == nil {
		return sparseErrorf("Validate", 0, 0, ErrNilMatrix)
	}

	return s.CheckSymmetric(s.eps)
}

// ToDense expands the matrix into fresh row slices. O(n²) memory.
func (s *Sparse) ToDense() [][]float64 {
	out := make([][]float64, s.n)
	for i := range out {
		out[i] = make([]float64, s.n)
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			out[i][s.colIdx[k]] = s.vals[k]
		}
	}

	return out
}

// FromDense builds a Sparse from square row-major data, skipping zeros.
//
// Errors:
//   - ErrBadShape if rows is empty.
//   - ErrDimensionMismatch if any row length differs from len(rows).
//   - ErrNaNInf for non-finite entries unless WithNoValidateNaNInf is set.
func FromDense(rows [][]float64, opts ...Option) (*Sparse, error) {
	n := len(rows)
	b, err := NewBuilder(n, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, sparseErrorf("FromDense", i, len(row), ErrDimensionMismatch)
		}
		for j, v := range row {
			if v == 0 {
				continue
			}
			if err = b.Add(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return b.Build(), nil
}

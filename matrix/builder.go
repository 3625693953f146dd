// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"slices"
)

// Builder accumulates (row, col, value) triplets for an n×n Sparse.
// A Builder is not safe for concurrent use.
type Builder struct {
	n    int
	opts Options
	rows []int
	cols []int
	vals []float64
}

// NewBuilder prepares an empty n×n builder.
//
// Errors:
//   - ErrBadShape if n <= 0.
//
// Complexity: O(1).
func NewBuilder(n int, opts ...Option) (*Builder, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewBuilder(%d): %w", n, ErrBadShape)
	}

	return &Builder{n: n, opts: gatherOptions(opts...)}, nil
}

// Dim returns the target dimension.
func (b *Builder) Dim() int { return b.n }

// Len returns the number of pending triplets, duplicates included.
func (b *Builder) Len() int { return len(b.vals) }

// Grow reserves room for k more triplets.
func (b *Builder) Grow(k int) {
	b.rows = slices.Grow(b.rows, k)
	b.cols = slices.Grow(b.cols, k)
	b.vals = slices.Grow(b.vals, k)
}

// Add accumulates v at (i,j).
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrOutOfRange if i or j is outside [0,n).
//   - ErrNaNInf if v is not finite (unless validation is disabled).
//
// Complexity: O(1) amortized.
func (b *Builder) Add(i, j int, v float64) error {
	if b == nil {
		return fmt.Errorf("Builder.Add(%d,%d): %w", i, j, ErrNilMatrix)
	}
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return fmt.Errorf("Builder.Add(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if b.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return fmt.Errorf("Builder.Add(%d,%d): %w", i, j, ErrNaNInf)
	}
	b.rows = append(b.rows, i)
	b.cols = append(b.cols, j)
	b.vals = append(b.vals, v)

	return nil
}

// AddSym accumulates v at (i,j) and at (j,i). For i == j both land on the
// diagonal, which therefore grows by 2v.
//
// Errors: as Add.
func (b *Builder) AddSym(i, j int, v float64) error {
	if err := b.Add(i, j, v); err != nil {
		return err
	}

	return b.Add(j, i, v)
}

// Build freezes the triplets into a Sparse. The builder may be reused
// afterwards; it keeps its triplets.
//
// Steps:
//  1. Bucket triplets by row, preserving insertion order (counting sort).
//  2. Stable-sort each row bucket by column.
//  3. Sum duplicates in insertion order; drop exact zeros.
//
// Complexity: O(n + t log t) for t triplets.
func (b *Builder) Build() *Sparse {
	t := len(b.vals)

	// 1) counting sort by row
	start := make([]int, b.n+1)
	for _, r := range b.rows {
		start[r+1]++
	}
	for i := 0; i < b.n; i++ {
		start[i+1] += start[i]
	}
	order := make([]int, t)
	fill := append([]int(nil), start[:b.n]...)
	for k, r := range b.rows {
		order[fill[r]] = k
		fill[r]++
	}

	s := &Sparse{
		n:      b.n,
		eps:    b.opts.eps,
		rowPtr: make([]int, b.n+1),
		colIdx: make([]int, 0, t),
		vals:   make([]float64, 0, t),
	}
	for i := 0; i < b.n; i++ {
		bucket := order[start[i]:start[i+1]]
		// 2) stable by column
		slices.SortStableFunc(bucket, func(x, y int) int { return b.cols[x] - b.cols[y] })
		// 3) merge runs
		for k := 0; k < len(bucket); {
			col := b.cols[bucket[k]]
			var sum float64
			for ; k < len(bucket) && b.cols[bucket[k]] == col; k++ {
				sum += b.vals[bucket[k]]
			}
			if sum != 0 {
				s.colIdx = append(s.colIdx, col)
				s.vals = append(s.vals, sum)
			}
		}
		s.rowPtr[i+1] = len(s.vals)
	}

	return s
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlnet/matrix"
)

func mustBuilder(t *testing.T, n int, opts ...matrix.Option) *matrix.Builder {
	t.Helper()
	b, err := matrix.NewBuilder(n, opts...)
	require.NoError(t, err)
	return b
}

func TestNewBuilder_BadShape(t *testing.T) {
	_, err := matrix.NewBuilder(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewBuilder(-3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestBuilder_AddValidation(t *testing.T) {
	b := mustBuilder(t, 2)
	require.ErrorIs(t, b.Add(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, b.Add(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, b.Add(0, 1, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, b.AddSym(0, 1, math.Inf(-1)), matrix.ErrNaNInf)

	var nilB *matrix.Builder
	require.ErrorIs(t, nilB.Add(0, 0, 1), matrix.ErrNilMatrix)

	loose := mustBuilder(t, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, loose.Add(0, 1, math.Inf(1)))
	v, err := loose.Build().At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

func TestBuilder_MergeSortDropZeros(t *testing.T) {
	b := mustBuilder(t, 3)
	require.NoError(t, b.Add(1, 2, 1))
	require.NoError(t, b.Add(1, 0, 4))
	require.NoError(t, b.Add(1, 2, 2))
	require.NoError(t, b.Add(2, 2, 5))
	require.NoError(t, b.Add(2, 2, -5)) // cancels out
	require.Equal(t, 5, b.Len())

	s := b.Build()
	require.Equal(t, 3, s.Dim())
	require.Equal(t, 2, s.Nnz())

	cols, vals := s.Row(1)
	require.Equal(t, []int{0, 2}, cols)
	require.Equal(t, []float64{4, 3}, vals)

	cols, vals = s.Row(2)
	require.Empty(t, cols)
	require.Empty(t, vals)

	cols, vals = s.Row(7)
	require.Nil(t, cols)
	require.Nil(t, vals)
}

func TestBuilder_AddSymLoopDoubles(t *testing.T) {
	b := mustBuilder(t, 2)
	require.NoError(t, b.AddSym(0, 1, 1.5))
	require.NoError(t, b.AddSym(1, 1, 2))
	s := b.Build()

	require.Equal(t, [][]float64{{0, 1.5}, {1.5, 4}}, s.ToDense())
	require.Equal(t, 4.0, s.Diag(1))
	require.Equal(t, 0.0, s.Diag(0))
	require.Equal(t, 4.0, s.Trace())
	require.Equal(t, 7.0, s.Sum())
	require.Equal(t, 5.5, s.RowSum(1))
	require.True(t, s.IsSymmetric(0))
}

func TestSparse_At(t *testing.T) {
	s, err := matrix.FromDense([][]float64{
		{0, 2, 0},
		{2, 0, 1},
		{0, 1, 3},
	})
	require.NoError(t, err)
	require.Equal(t, 5, s.Nnz())

	v, err := s.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	v, err = s.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	_, err = s.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var nilS *matrix.Sparse
	_, err = nilS.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSparse_Symmetry(t *testing.T) {
	s, err := matrix.FromDense([][]float64{{0, 1}, {1.1, 0}})
	require.NoError(t, err)
	require.False(t, s.IsSymmetric(1e-3))
	require.True(t, s.IsSymmetric(0.2))
	require.ErrorIs(t, s.CheckSymmetric(1e-3), matrix.ErrAsymmetry)
	require.ErrorIs(t, s.Validate(), matrix.ErrAsymmetry)

	loose, err := matrix.FromDense([][]float64{{0, 1}, {1.1, 0}}, matrix.WithEpsilon(0.5))
	require.NoError(t, err)
	require.NoError(t, loose.Validate())
}

func TestSparse_CloneAndDo(t *testing.T) {
	s, err := matrix.FromDense([][]float64{{1, 0}, {3, 4}})
	require.NoError(t, err)
	c := s.Clone()
	require.Equal(t, s.ToDense(), c.ToDense())

	var seen [][3]float64
	c.Do(func(i, j int, v float64) { seen = append(seen, [3]float64{float64(i), float64(j), v}) })
	require.Equal(t, [][3]float64{{0, 0, 1}, {1, 0, 3}, {1, 1, 4}}, seen)
}

func TestFromDense_Errors(t *testing.T) {
	_, err := matrix.FromDense(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromDense([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromDense([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestWithEpsilon_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

func BenchmarkBuilder_Build(b *testing.B) {
	const n = 2000
	bld, _ := matrix.NewBuilder(n)
	for i := 0; i < n; i++ {
		for d := 1; d <= 8; d++ {
			_ = bld.AddSym(i, (i*7+d*31)%n, 1)
		}
	}
	var sink *matrix.Sparse
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = bld.Build()
	}
	_ = sink
}

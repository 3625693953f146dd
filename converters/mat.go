package converters

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mlnet/community"
)

// SupraToSymDense materializes the full modularity matrix B of s. Only use
// it for small networks: memory is O(N²).
func SupraToSymDense(s *community.Supra) (*mat.SymDense, error) {
	if s == nil {
		return nil, fmt.Errorf("SupraToSymDense: %w", ErrNilInput)
	}
	n := s.Dim()
	b := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, err := s.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("SupraToSymDense: %w", err)
			}
			b.SetSym(i, j, v)
		}
	}

	return b, nil
}

// Indicator returns the N×k community indicator matrix S of p, with
// S[i][p[i]] = 1. Tr(SᵀBS)/2μ equals the modularity of p.
func Indicator(p community.Partition) (*mat.Dense, error) {
	k := p.Count()
	if len(p) == 0 || k == 0 {
		return nil, fmt.Errorf("Indicator: %w", ErrLengthMismatch)
	}
	s := mat.NewDense(len(p), k, nil)
	for i, c := range p {
		if c < 0 || c >= k {
			return nil, fmt.Errorf("Indicator: label %d of node %d not dense: %w", c, i, ErrLengthMismatch)
		}
		s.Set(i, c, 1)
	}

	return s, nil
}

// DenseModularity computes Tr(SᵀBS)/2μ with gonum/mat. It is a reference
// for community.Modularity on small inputs.
func DenseModularity(s *community.Supra, p community.Partition) (float64, error) {
	if s == nil {
		return 0, fmt.Errorf("DenseModularity: %w", ErrNilInput)
	}
	if len(p) != s.Dim() {
		return 0, fmt.Errorf("DenseModularity: len=%d dim=%d: %w", len(p), s.Dim(), ErrLengthMismatch)
	}
	if s.TwoMu() == 0 {
		return 0, nil
	}
	b, err := SupraToSymDense(s)
	if err != nil {
		return 0, err
	}
	ind, err := Indicator(p)
	if err != nil {
		return 0, err
	}

	var bs, sbs mat.Dense
	bs.Mul(b, ind)
	sbs.Mul(ind.T(), &bs)

	return mat.Trace(&sbs) / s.TwoMu(), nil
}

package community

import "fmt"

// Modularity scores partition p against s:
//
//	Q = (1/2μ) · Σ_c [ in_c − Σ_ℓ scale_ℓ · K_c[ℓ]² ]
//
// where in_c sums adj over ordered pairs inside c (diagonal once), K_c[ℓ]
// is the degree mass of c in layer ℓ and 2μ is s.TwoMu(). A matrix with no
// weight scores 0.
//
// Errors:
//   - ErrInvalidParameter if p does not cover s or has labels outside [0,N).
//
// Complexity: O(nnz + N·L).
func Modularity(s *Supra, p Partition) (float64, error) {
	if s == nil {
		return 0, fmt.Errorf("Modularity: nil matrix: %w", ErrInvalidParameter)
	}
	n := s.Dim()
	if len(p) != n {
		return 0, fmt.Errorf("Modularity: partition covers %d nodes, want %d: %w", len(p), n, ErrInvalidParameter)
	}
	k := 0
	for i, c := range p {
		if c < 0 || c >= n {
			return 0, fmt.Errorf("Modularity: node %d has label %d: %w", i, c, ErrInvalidParameter)
		}
		if c+1 > k {
			k = c + 1
		}
	}

	return modularity(s, p, k), nil
}

// modularity is Modularity without validation; k bounds the labels.
func modularity(s *Supra, p Partition, k int) float64 {
	if s.twoMu == 0 {
		return 0
	}
	L := s.layers
	in := make([]float64, k)
	tot := make([]float64, k*L)
	for i := 0; i < s.Dim(); i++ {
		c := p[i]
		cols, vals := s.adj.Row(i)
		for x, j := range cols {
			if p[j] == c {
				in[c] += vals[x]
			}
		}
		mi := s.Mass(i)
		for l := 0; l < L; l++ {
			tot[c*L+l] += mi[l]
		}
	}

	var q float64
	for c := 0; c < k; c++ {
		term := in[c]
		for l, sc := range s.scale {
			if sc != 0 {
				K := tot[c*L+l]
				term -= sc * K * K
			}
		}
		q += term
	}

	return q / s.twoMu
}

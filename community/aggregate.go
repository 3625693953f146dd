// SPDX-License-Identifier: MIT

package community

import (
	"fmt"

	"github.com/katalvlaran/mlnet/matrix"
)

// Aggregate collapses every community of p into one meta-node.
//
//	adj'[c1][c2] = Σ_{p[i]=c1, p[j]=c2} adj[i][j]
//	mass'[c][ℓ]  = Σ_{p[i]=c} mass[i][ℓ]
//
// The diagonal of adj' gathers all intra-community weight, prior diagonals
// included. Layer scales and 2μ carry over unchanged, so the total weight of
// both the sparse part and the null model is preserved and the modularity of
// any partition of the meta-nodes equals that of its expansion.
//
// mapping[c] lists the members of meta-node c (indices into s) in ascending
// order.
//
// Errors:
//   - ErrInternalInvariant if p does not cover s, has a negative label, or
//     skips a label.
//
// Complexity: O(nnz·log d + N·L).
func Aggregate(s *Supra, p Partition) (*Supra, [][]int, error) {
	if s == nil {
		return nil, nil, fmt.Errorf("Aggregate: nil matrix: %w", ErrInvalidParameter)
	}
	n, L := s.Dim(), s.layers
	if len(p) != n {
		return nil, nil, fmt.Errorf("Aggregate: partition covers %d nodes, want %d: %w", len(p), n, ErrInternalInvariant)
	}
	k, err := p.dense()
	if err != nil {
		return nil, nil, fmt.Errorf("Aggregate: %v: %w", err, ErrInternalInvariant)
	}

	b, err := matrix.NewBuilder(k)
	if err != nil {
		return nil, nil, fmt.Errorf("Aggregate: %v: %w", err, ErrInternalInvariant)
	}
	b.Grow(s.adj.Nnz())
	mass := make([]float64, k*L)
	for i := 0; i < n; i++ {
		c := p[i]
		cols, vals := s.adj.Row(i)
		for x, j := range cols {
			// rows already hold both directions
			if err = b.Add(c, p[j], vals[x]); err != nil {
				return nil, nil, fmt.Errorf("Aggregate: %v: %w", err, ErrInternalInvariant)
			}
		}
		mi := s.Mass(i)
		for l := 0; l < L; l++ {
			mass[c*L+l] += mi[l]
		}
	}

	return &Supra{
		adj:    b.Build(),
		layers: L,
		mass:   mass,
		scale:  append([]float64(nil), s.scale...),
		twoMu:  s.twoMu,
		gamma:  s.gamma,
		omega:  s.omega,
	}, p.Members(), nil
}

// Metanetwork is Aggregate without the membership mapping.
//
// Errors: as Aggregate.
func Metanetwork(s *Supra, p Partition) (*Supra, error) {
	next, _, err := Aggregate(s, p)

	return next, err
}

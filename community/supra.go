// SPDX-License-Identifier: MIT

package community

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mlnet/core"
	"github.com/katalvlaran/mlnet/matrix"
)

// Network is the read-only view of a multilayer network consumed by the
// engine. *core.Network satisfies it. Enumerations must be deterministic.
type Network interface {
	Layers() []*core.Layer
	Actors() []*core.Actor
	Nodes(layer string) ([]core.Node, error)
	Edges(layer string) ([]core.Edge, error)
	Presences(actor string) ([]core.Node, error)
}

// Supra is the supra-modularity matrix B of one aggregation level.
//
// The sparse part adj = A + ωC is stored explicitly. The null model is kept
// factored: B[i][j] = adj[i][j] − Σ_ℓ scale[ℓ]·mass[i][ℓ]·mass[j][ℓ], with
// scale[ℓ] = γ/(2m_ℓ) (0 for a layer without weight).
//
// A Supra is never mutated after construction; aggregation returns a new one.
type Supra struct {
	adj    *matrix.Sparse
	layers int
	mass   []float64 // dim×layers, row-major
	scale  []float64 // per layer
	twoMu  float64   // Σ adj at level 0, carried through aggregation
	nodes  []core.Node
	gamma  float64
	omega  float64
}

// Dim returns the number of (meta-)nodes.
func (s *Supra) Dim() int { return s.adj.Dim() }

// Adjacency returns the sparse part A + ωC.
func (s *Supra) Adjacency() *matrix.Sparse { return s.adj }

// LayerCount returns the number of layers of the null model.
func (s *Supra) LayerCount() int { return s.layers }

// Mass returns the per-layer degree mass of node i. The slice aliases
// internal storage and must not be modified.
func (s *Supra) Mass(i int) []float64 {
	return s.mass[i*s.layers : (i+1)*s.layers : (i+1)*s.layers]
}

// Scale returns γ/(2m_ℓ) for layer ℓ.
func (s *Supra) Scale(layer int) float64 { return s.scale[layer] }

// TwoMu returns the total weight of the sparse part at level 0, used to
// normalize modularity.
func (s *Supra) TwoMu() float64 { return s.twoMu }

// Gamma returns the resolution the matrix was built with.
func (s *Supra) Gamma() float64 { return s.gamma }

// Omega returns the inter-layer coupling the matrix was built with.
func (s *Supra) Omega() float64 { return s.omega }

// Nodes returns the network node behind each index. Only level-0 matrices
// carry nodes; aggregated ones return nil.
func (s *Supra) Nodes() []core.Node { return s.nodes }

// At returns the full entry B[i][j] including the null model.
//
// Errors:
//   - matrix.ErrOutOfRange for bad indices.
//
// Complexity: O(log d_i + L).
func (s *Supra) At(i, j int) (float64, error) {
	a, err := s.adj.At(i, j)
	if err != nil {
		return 0, err
	}

	return a - s.null(i, j), nil
}

// null returns Σ_ℓ scale[ℓ]·mass[i][ℓ]·mass[j][ℓ].
func (s *Supra) null(i, j int) float64 {
	mi, mj := s.Mass(i), s.Mass(j)
	var sum float64
	for l, sc := range s.scale {
		if sc != 0 {
			sum += sc * mi[l] * mj[l]
		}
	}

	return sum
}

// BuildSupra builds the supra-modularity matrix of net at resolution gamma
// and inter-layer coupling omega.
//
// Node indices are layer-major: the nodes of the first layer (in Nodes()
// order) come first, then the second layer, and so on.
//
// Implementation:
//   - Stage 1: validate γ > 0 and ω ≥ 0 (both finite), index every node.
//   - Stage 2: per layer, each edge (u,v,w) adds w to adj[u][v] and adj[v][u]
//     (2w on the diagonal for a self-loop) and w to the mass of u and v in
//     that layer.
//   - Stage 3: couple every pair of presences of the same actor with ω.
//   - Stage 4: freeze, check symmetry, compute the null-model scales.
//
// Errors:
//   - ErrInvalidParameter for bad γ/ω or a nil network.
//   - ErrEmptyNetwork if the network has no node.
//   - ErrInternalInvariant if the network enumerations disagree.
//
// Complexity: O(N·L + E + P + nnz·log d), P = coupled presence pairs.
func BuildSupra(net Network, gamma, omega float64) (*Supra, error) {
	if net == nil {
		return nil, fmt.Errorf("BuildSupra: nil network: %w", ErrInvalidParameter)
	}
	if !(gamma > 0) || math.IsInf(gamma, 0) {
		return nil, fmt.Errorf("BuildSupra: gamma=%v: %w", gamma, ErrInvalidParameter)
	}
	if !(omega >= 0) || math.IsInf(omega, 0) {
		return nil, fmt.Errorf("BuildSupra: omega=%v: %w", omega, ErrInvalidParameter)
	}

	// Stage 1: index nodes layer-major.
	layers := net.Layers()
	L := len(layers)
	index := make(map[core.Node]int)
	var nodes []core.Node
	for _, l := range layers {
		ns, err := net.Nodes(l.Name)
		if err != nil {
			return nil, fmt.Errorf("BuildSupra: nodes of %q: %v: %w", l.Name, err, ErrInternalInvariant)
		}
		for _, nd := range ns {
			index[nd] = len(nodes)
			nodes = append(nodes, nd)
		}
	}
	n := len(nodes)
	if n == 0 {
		return nil, fmt.Errorf("BuildSupra: %w", ErrEmptyNetwork)
	}

	b, err := matrix.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("BuildSupra: %v: %w", err, ErrInternalInvariant)
	}
	mass := make([]float64, n*L)
	m := make([]float64, L)

	// Stage 2: intra-layer edges and degree mass.
	for l, layer := range layers {
		edges, err := net.Edges(layer.Name)
		if err != nil {
			return nil, fmt.Errorf("BuildSupra: edges of %q: %v: %w", layer.Name, err, ErrInternalInvariant)
		}
		for _, e := range edges {
			u, okU := index[e.From]
			v, okV := index[e.To]
			if !okU || !okV {
				return nil, fmt.Errorf("BuildSupra: edge %s has unindexed endpoint: %w", e.ID, ErrInternalInvariant)
			}
			if err = b.AddSym(u, v, e.Weight); err != nil {
				return nil, fmt.Errorf("BuildSupra: edge %s: %v: %w", e.ID, err, ErrInvalidParameter)
			}
			mass[u*L+l] += e.Weight
			mass[v*L+l] += e.Weight
			m[l] += e.Weight
		}
	}

	// Stage 3: all-to-all coupling among each actor's presences.
	if omega > 0 {
		for _, a := range net.Actors() {
			pres, err := net.Presences(a.Name)
			if err != nil {
				return nil, fmt.Errorf("BuildSupra: presences of %q: %v: %w", a.Name, err, ErrInternalInvariant)
			}
			for p := 0; p < len(pres); p++ {
				for q := p + 1; q < len(pres); q++ {
					if err = b.AddSym(index[pres[p]], index[pres[q]], omega); err != nil {
						return nil, fmt.Errorf("BuildSupra: coupling %q: %v: %w", a.Name, err, ErrInternalInvariant)
					}
				}
			}
		}
	}

	// Stage 4: freeze.
	adj := b.Build()
	if err = adj.Validate(); err != nil {
		return nil, fmt.Errorf("BuildSupra: %v: %w", err, ErrInternalInvariant)
	}
	scale := make([]float64, L)
	for l := range scale {
		if m[l] > 0 {
			scale[l] = gamma / (2 * m[l])
		}
	}

	return &Supra{
		adj:    adj,
		layers: L,
		mass:   mass,
		scale:  scale,
		twoMu:  adj.Sum(),
		nodes:  nodes,
		gamma:  gamma,
		omega:  omega,
	}, nil
}

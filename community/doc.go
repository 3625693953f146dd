// Package community detects communities in multilayer networks with a
// generalized Louvain method over the supra-modularity matrix
//
//	B[i][j] = A[i][j] + ω·C[i][j] − γ·Σ_ℓ k_i[ℓ]·k_j[ℓ] / (2m_ℓ)
//
// where i, j index nodes (actor presences in layers), A holds intra-layer
// edge weights, C couples the presences of the same actor in different
// layers, k_i[ℓ] is the strength of i in layer ℓ and m_ℓ the total weight of
// layer ℓ.
//
// Pipeline:
//
//	BuildSupra  → Optimize → Aggregate → Optimize → ... → converged
//
// Steps:
//
//   - BuildSupra builds B once. The sparse part (A + ωC) lives in a CSR
//     matrix; the null model stays factored as per-node, per-layer degree
//     mass plus a per-layer scale γ/(2m_ℓ), so storage is proportional to
//     edges plus coupled presence pairs.
//   - Optimize runs local-move passes: each node moves to the neighboring
//     community with the strictly largest positive modularity gain (ties go
//     to the lower community index) until a pass makes no move.
//   - Aggregate collapses communities into meta-nodes; the sparse part and
//     the degree mass are summed, so total weight is preserved.
//   - Detect drives the levels and composes them into node and actor
//     communities; GetMLCommunity returns only the actor sets.
//
// Determinism:
//
//   - Without a RandSource, nodes are visited in index order and every run
//     on the same network gives the same result.
//   - WithSeed / WithRand shuffle the visitation order once per pass; equal
//     seeds give equal results.
//   - WithParallelism evaluates conflict-free batches concurrently; commits
//     are applied sequentially in batch order, so results stay reproducible.
//
// Modularity is normalized by 2μ, the total weight of the sparse part.
//
// Errors:
//
//	ErrInvalidParameter  - bad γ/ω, nil network, malformed partition.
//	ErrEmptyNetwork      - no nodes.
//	ErrInternalInvariant - bookkeeping desync; the run is aborted.
package community

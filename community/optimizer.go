// SPDX-License-Identifier: MIT

package community

import (
	"context"
	"fmt"
	"math"
)

// Optimize runs local-move passes over s starting from init and returns the
// resulting partition, relabeled densely in order of first appearance.
//
// Each pass visits every node once (index order, or shuffled per pass when
// a RandSource is configured). Node i only considers the communities of its
// neighbors in the sparse part. Moving i from community a to c changes
// modularity by a positive multiple of
//
//	Δ = [w(i→c) − w(i→a∖i)] − Σ_ℓ scale_ℓ·k_i[ℓ]·(K_c[ℓ] − (K_a[ℓ] − k_i[ℓ]))
//
// i moves to the community with the strictly largest Δ above MinGain; ties
// go to the lower community label. Passes stop when one makes no move or
// after MaxPasses. Modularity never decreases.
//
// Errors:
//   - ErrInvalidParameter if init does not cover s with labels in [0,N).
//   - ErrInternalInvariant if the community bookkeeping desynchronizes.
//
// Complexity: O(passes · (nnz + N·L)).
func Optimize(s *Supra, init Partition, opts ...Option) (Partition, error) {
	cfg := gatherOptions(opts...)
	p, _, err := optimize(context.Background(), s, init, &cfg)

	return p, err
}

// passStats summarizes one Optimize call.
type passStats struct {
	passes int
	moves  int
}

// moveState is the incremental bookkeeping of a local-move run.
// Community slots range over [0,N); a slot may be empty.
type moveState struct {
	s       *Supra
	L       int
	label   []int
	size    []int
	mass    []float64 // slot×L, degree mass per community
	minGain float64
}

// scratch is the per-worker neighbor-weight accumulator.
type scratch struct {
	weight  []float64
	seen    []bool
	touched []int
}

func newScratch(n int) *scratch {
	return &scratch{weight: make([]float64, n), seen: make([]bool, n)}
}

func (sc *scratch) reset() {
	for _, c := range sc.touched {
		sc.weight[c] = 0
		sc.seen[c] = false
	}
	sc.touched = sc.touched[:0]
}

func optimize(ctx context.Context, s *Supra, init Partition, cfg *options) (Partition, passStats, error) {
	var st passStats
	if s == nil {
		return nil, st, fmt.Errorf("Optimize: nil matrix: %w", ErrInvalidParameter)
	}
	n := s.Dim()
	if err := init.validate(n); err != nil {
		return nil, st, fmt.Errorf("Optimize: %v: %w", err, ErrInvalidParameter)
	}

	ms := newMoveState(s, init, cfg.minGain)
	order := Singletons(n)
	var bt *batcher
	if cfg.parallelism > 1 {
		bt = newBatcher(ms, cfg.parallelism)
	}
	sc := newScratch(n)

	for st.passes < cfg.maxPasses {
		if err := ctx.Err(); err != nil {
			return nil, st, fmt.Errorf("Optimize: pass %d: %w", st.passes, err)
		}
		if cfg.shuffling() {
			shuffle(order, cfg.rnd)
		}

		var moves int
		var err error
		if bt != nil {
			moves, err = bt.pass(ctx, order)
			if err != nil {
				return nil, st, fmt.Errorf("Optimize: pass %d: %w", st.passes, err)
			}
		} else {
			moves = ms.pass(order, sc)
		}
		st.passes++
		st.moves += moves

		if err = ms.verify(); err != nil {
			return nil, st, fmt.Errorf("Optimize: pass %d: %v: %w", st.passes, err, ErrInternalInvariant)
		}
		cfg.logger.Debug().
			Int("pass", st.passes).
			Int("nodes", n).
			Int("moves", moves).
			Msg("community: local-move pass")
		if moves == 0 {
			break
		}
	}

	return Partition(ms.label).Renumber(), st, nil
}

func newMoveState(s *Supra, init Partition, minGain float64) *moveState {
	n, L := s.Dim(), s.layers
	ms := &moveState{
		s:       s,
		L:       L,
		label:   append([]int(nil), init...),
		size:    make([]int, n),
		mass:    make([]float64, n*L),
		minGain: minGain,
	}
	ms.recount(ms.size, ms.mass)

	return ms
}

// recount rebuilds sizes and masses from labels into the given buffers.
func (ms *moveState) recount(size []int, mass []float64) {
	for c := range size {
		size[c] = 0
	}
	for x := range mass {
		mass[x] = 0
	}
	for i, c := range ms.label {
		size[c]++
		mi := ms.s.Mass(i)
		for l := 0; l < ms.L; l++ {
			mass[c*ms.L+l] += mi[l]
		}
	}
}

// pass visits nodes in order, applying each best move immediately.
func (ms *moveState) pass(order []int, sc *scratch) int {
	moves := 0
	for _, i := range order {
		if c, ok := ms.bestMove(i, sc); ok {
			ms.apply(i, c)
			moves++
		}
	}

	return moves
}

// bestMove evaluates node i against its candidate communities without
// mutating shared state. It returns the target community and true when a
// move improves modularity by more than minGain.
func (ms *moveState) bestMove(i int, sc *scratch) (int, bool) {
	defer sc.reset()

	a := ms.label[i]
	cols, vals := ms.s.adj.Row(i)
	for x, j := range cols {
		if j == i {
			continue
		}
		c := ms.label[j]
		if !sc.seen[c] {
			sc.seen[c] = true
			sc.touched = append(sc.touched, c)
		}
		sc.weight[c] += vals[x]
	}

	mi := ms.s.Mass(i)
	stay := sc.weight[a] - ms.nullGain(mi, a, true)

	best, bestDelta := -1, ms.minGain
	for _, c := range sc.touched {
		if c == a {
			continue
		}
		delta := sc.weight[c] - ms.nullGain(mi, c, false) - stay
		if delta > bestDelta || (delta == bestDelta && best >= 0 && c < best) {
			best, bestDelta = c, delta
		}
	}

	return best, best >= 0
}

// nullGain returns Σ_ℓ scale_ℓ·k_i[ℓ]·K_c[ℓ], excluding i's own mass when
// i currently belongs to c.
func (ms *moveState) nullGain(mi []float64, c int, own bool) float64 {
	var sum float64
	for l, sc := range ms.s.scale {
		if sc == 0 {
			continue
		}
		K := ms.mass[c*ms.L+l]
		if own {
			K -= mi[l]
		}
		sum += sc * mi[l] * K
	}

	return sum
}

// apply moves node i into community c.
func (ms *moveState) apply(i, c int) {
	a := ms.label[i]
	ms.label[i] = c
	ms.size[a]--
	ms.size[c]++
	mi := ms.s.Mass(i)
	for l := 0; l < ms.L; l++ {
		ms.mass[a*ms.L+l] -= mi[l]
		ms.mass[c*ms.L+l] += mi[l]
	}
}

// verify recomputes sizes and masses from labels and compares them with the
// incremental bookkeeping. On success the recomputed masses replace the
// incremental ones, which removes accumulated rounding drift.
func (ms *moveState) verify() error {
	size := make([]int, len(ms.size))
	mass := make([]float64, len(ms.mass))
	ms.recount(size, mass)
	for c := range size {
		if size[c] != ms.size[c] {
			return fmt.Errorf("community %d size %d, recount %d", c, ms.size[c], size[c])
		}
	}
	for x := range mass {
		if math.Abs(mass[x]-ms.mass[x]) > 1e-9*(1+math.Abs(mass[x])) {
			return fmt.Errorf("community %d layer %d mass %g, recount %g", x/ms.L, x%ms.L, ms.mass[x], mass[x])
		}
	}
	ms.mass = mass

	return nil
}

// shuffle permutes order in place (Fisher–Yates).
func shuffle(order []int, r RandSource) {
	for i := len(order) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
}

// SPDX-License-Identifier: MIT

package community

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mlnet/bfs"
)

// driverState is the hierarchy state machine:
//
//	build → optimize → aggregate → optimize → ... → converged
type driverState int

const (
	stateBuild driverState = iota
	stateOptimize
	stateAggregate
	stateConverged
)

func (s driverState) String() string {
	switch s {
	case stateBuild:
		return "build"
	case stateOptimize:
		return "optimize"
	case stateAggregate:
		return "aggregate"
	case stateConverged:
		return "converged"
	default:
		return "unknown"
	}
}

// GetMLCommunity detects multilayer communities of net at resolution gamma
// and coupling omega and returns one actor set per final community, ordered
// by label. Every actor with at least one presence appears in at least one
// set; an actor whose presences end up apart appears in each of them.
//
// Errors: as Detect.
func GetMLCommunity(net Network, gamma, omega float64, opts ...Option) ([]ActorSet, error) {
	res, err := Detect(net, gamma, omega, opts...)
	if err != nil {
		return nil, err
	}

	return res.Communities, nil
}

// Detect is DetectContext with context.Background().
func Detect(net Network, gamma, omega float64, opts ...Option) (*Result, error) {
	return DetectContext(context.Background(), net, gamma, omega, opts...)
}

// DetectContext runs the full hierarchy on net:
//
//   - build:     B = BuildSupra(net, γ, ω), once.
//   - optimize:  local moves from singletons over the current (meta-)nodes.
//   - aggregate: collapse communities; continue while the number of
//     communities is below the number of nodes of the level and MaxLevels is
//     not reached.
//   - converged: compose level partitions finest→coarsest, relabel densely,
//     group by actor.
//
// With WithRestarts(n) and shuffled visitation the hierarchy runs n times
// over the same B; the highest final modularity wins, the earliest run on ties.
//
// The context is checked between passes and levels.
//
// Errors:
//   - ErrInvalidParameter, ErrEmptyNetwork from BuildSupra (no partial result).
//   - ErrInternalInvariant on bookkeeping desync.
//   - ctx.Err() wrapped, when canceled.
func DetectContext(ctx context.Context, net Network, gamma, omega float64, opts ...Option) (*Result, error) {
	cfg := gatherOptions(opts...)
	start := time.Now()

	res, err := detect(ctx, net, gamma, omega, &cfg)
	if err != nil {
		status := statusOf(err)
		cfg.logger.Warn().Err(err).Str("status", status).Msg("community: detection failed")
		if cfg.recorder != nil {
			cfg.recorder.ObserveRun(status, 0, 0, 0, time.Since(start))
		}
		return nil, err
	}

	cfg.logger.Info().
		Int("levels", len(res.Levels)).
		Int("nodes", len(res.Nodes)).
		Int("communities", len(res.Communities)).
		Float64("modularity", res.Modularity).
		Dur("elapsed", time.Since(start)).
		Msg("community: detection finished")
	if cfg.recorder != nil {
		cfg.recorder.ObserveRun(StatusOK, len(res.Levels), len(res.Communities), res.Modularity, time.Since(start))
	}

	return res, nil
}

func detect(ctx context.Context, net Network, gamma, omega float64, cfg *options) (*Result, error) {
	cfg.logger.Debug().Stringer("state", stateBuild).Float64("gamma", gamma).Float64("omega", omega).Msg("community: building supra matrix")
	sup, err := BuildSupra(net, gamma, omega)
	if err != nil {
		return nil, err
	}
	_, comps := bfs.Components(sup.adj)
	cfg.logger.Debug().Int("nodes", sup.Dim()).Int("nnz", sup.adj.Nnz()).Int("components", comps).Msg("community: supra matrix built")

	runs := 1
	if cfg.shuffling() && cfg.restarts > 1 {
		runs = cfg.restarts
	}

	var (
		bestLevels []Level
		bestLabels Partition
		bestQ      float64
	)
	for run := 0; run < runs; run++ {
		levels, labels, q, err := hierarchy(ctx, sup, cfg)
		if err != nil {
			return nil, err
		}
		if runs > 1 {
			cfg.logger.Debug().Int("run", run).Float64("modularity", q).Msg("community: restart finished")
		}
		if run == 0 || q > bestQ {
			bestLevels, bestLabels, bestQ = levels, labels, q
		}
	}

	res := newResult(sup.nodes, bestLabels, bestLevels, bestQ)
	res.Components = comps

	return res, nil
}

// hierarchy runs optimize/aggregate levels over sup until convergence and
// returns the levels, the composed node labels and their modularity.
func hierarchy(ctx context.Context, sup *Supra, cfg *options) ([]Level, Partition, float64, error) {
	var (
		levels  []Level
		cur     = sup
		part    Partition
		mapping [][]int
		q       float64
	)
	// composed[i] is the current meta-node of original node i.
	composed := Singletons(sup.Dim())

	state := stateOptimize
	for state != stateConverged {
		if err := ctx.Err(); err != nil {
			return nil, nil, 0, fmt.Errorf("Detect: level %d: %w", len(levels), err)
		}

		switch state {
		case stateOptimize:
			t0 := time.Now()
			var st passStats
			var err error
			part, st, err = optimize(ctx, cur, Singletons(cur.Dim()), cfg)
			if err != nil {
				return nil, nil, 0, fmt.Errorf("Detect: level %d: %w", len(levels), err)
			}
			q = modularity(cur, part, part.Count())
			for i, c := range composed {
				composed[i] = part[c]
			}

			lvl := Level{
				Index:       len(levels),
				Nodes:       cur.Dim(),
				Communities: part.Count(),
				Moves:       st.moves,
				Passes:      st.passes,
				Modularity:  q,
				RuntimeMS:   time.Since(t0).Milliseconds(),
				Partition:   part,
				Mapping:     mapping,
			}
			levels = append(levels, lvl)
			cfg.logger.Debug().
				Int("level", lvl.Index).
				Int("nodes", lvl.Nodes).
				Int("communities", lvl.Communities).
				Int("moves", lvl.Moves).
				Float64("modularity", lvl.Modularity).
				Msg("community: level optimized")
			if cfg.recorder != nil {
				cfg.recorder.ObserveLevel(lvl.Index, lvl.Nodes, lvl.Communities, lvl.Moves, lvl.Modularity)
			}

			if lvl.Communities >= cur.Dim() || len(levels) >= cfg.maxLevels {
				state = stateConverged
			} else {
				state = stateAggregate
			}

		case stateAggregate:
			next, m, err := Aggregate(cur, part)
			if err != nil {
				return nil, nil, 0, fmt.Errorf("Detect: level %d: %w", len(levels), err)
			}
			cur, mapping = next, m
			state = stateOptimize
		}
	}

	return levels, composed.Renumber(), q, nil
}

// statusOf maps an error to a Recorder status.
func statusOf(err error) string {
	switch {
	case errors.Is(err, ErrEmptyNetwork):
		return StatusEmpty
	case errors.Is(err, ErrInvalidParameter):
		return StatusInvalid
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCanceled
	default:
		return StatusInternal
	}
}

// SPDX-License-Identifier: MIT

package community

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// batcher runs a local-move pass as a sequence of conflict-free batches.
//
// A batch is a set of nodes whose candidate communities (own community plus
// neighbor communities) are pairwise disjoint. Evaluations inside a batch
// therefore read disjoint bookkeeping and cannot invalidate one another; all
// of them are evaluated concurrently, then committed sequentially in batch
// order. Nodes that conflict with an earlier member are deferred to the next
// batch, so every evaluation sees every previously committed move.
type batcher struct {
	ms      *moveState
	workers int
	scratch []*scratch
	claim   []int // community → stamp of the batch that claimed it
	stamp   int
	batch   []int
	next    []int
	target  []int
	move    []bool
}

func newBatcher(ms *moveState, workers int) *batcher {
	n := ms.s.Dim()
	b := &batcher{
		ms:      ms,
		workers: workers,
		scratch: make([]*scratch, workers),
		claim:   make([]int, n),
	}
	for w := range b.scratch {
		b.scratch[w] = newScratch(n)
	}

	return b
}

// pass visits every node of order once and returns the number of moves.
func (b *batcher) pass(ctx context.Context, order []int) (int, error) {
	pending := append([]int(nil), order...)
	moves := 0
	for len(pending) > 0 {
		b.stamp++
		b.batch, b.next = b.batch[:0], b.next[:0]
		for _, i := range pending {
			if b.tryClaim(i) {
				b.batch = append(b.batch, i)
			} else {
				b.next = append(b.next, i)
			}
		}

		if err := b.evaluate(ctx); err != nil {
			return moves, err
		}
		for k, i := range b.batch {
			if b.move[k] {
				b.ms.apply(i, b.target[k])
				moves++
			}
		}
		pending = append(pending[:0], b.next...)
	}

	return moves, nil
}

// tryClaim claims every candidate community of node i for the current batch
// unless one of them is already claimed.
func (b *batcher) tryClaim(i int) bool {
	label := b.ms.label
	cols, _ := b.ms.s.adj.Row(i)
	if b.claim[label[i]] == b.stamp {
		return false
	}
	for _, j := range cols {
		if b.claim[label[j]] == b.stamp {
			return false
		}
	}
	b.claim[label[i]] = b.stamp
	for _, j := range cols {
		b.claim[label[j]] = b.stamp
	}

	return true
}

// evaluate fills target/move for the current batch using up to b.workers
// goroutines, each with its own scratch.
func (b *batcher) evaluate(ctx context.Context) error {
	size := len(b.batch)
	if cap(b.target) < size {
		b.target = make([]int, size)
		b.move = make([]bool, size)
	}
	b.target, b.move = b.target[:size], b.move[:size]

	chunk := (size + b.workers - 1) / b.workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for w := 0; w < b.workers; w++ {
		lo := w * chunk
		if lo >= size {
			break
		}
		hi := min(lo+chunk, size)
		sc := b.scratch[w]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for k := lo; k < hi; k++ {
				b.target[k], b.move[k] = b.ms.bestMove(b.batch[k], sc)
			}
			return nil
		})
	}

	return g.Wait()
}

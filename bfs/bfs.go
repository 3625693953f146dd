package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mlnet/matrix"
)

// walker encapsulates mutable BFS state.
type walker struct {
	m     *matrix.Sparse
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on the pattern of m starting from start.
// Returns ErrMatrixNil, ErrStartOutOfRange, ErrOptionViolation, a context
// error or any OnVisit error.
func BFS(m *matrix.Sparse, start int, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMatrixNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := m.Dim()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		m:     m,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := range w.res.Depth {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[head]
		d := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		cols, _ := w.m.Row(v)
		for _, u := range cols {
			if u == v || w.res.Depth[u] >= 0 || !w.opts.FilterNeighbor(v, u) {
				continue
			}
			w.enqueue(u, d+1, v)
		}
	}

	return nil
}

// Components labels the connected components of the pattern of m. Labels
// are dense and ordered by each component's smallest vertex. Returns the
// labels and the component count; a nil matrix yields (nil, 0).
//
// Complexity: O(V + nnz).
func Components(m *matrix.Sparse) ([]int, int) {
	if m == nil {
		return nil, 0
	}
	n := m.Dim()
	label := make([]int, n)
	for v := range label {
		label[v] = -1
	}
	queue := make([]int, 0, n)
	k := 0
	for s := 0; s < n; s++ {
		if label[s] >= 0 {
			continue
		}
		label[s] = k
		queue = append(queue[:0], s)
		for head := 0; head < len(queue); head++ {
			cols, _ := m.Row(queue[head])
			for _, u := range cols {
				if label[u] < 0 {
					label[u] = k
					queue = append(queue, u)
				}
			}
		}
		k++
	}

	return label, k
}

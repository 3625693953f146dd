package community

import "fmt"

// Partition assigns a community label to every (meta-)node: p[i] is the
// label of node i. Labels produced by this package are dense, starting at 0.
type Partition []int

// Singletons returns the partition placing each of n nodes alone.
func Singletons(n int) Partition {
	p := make(Partition, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Count returns the number of distinct labels.
func (p Partition) Count() int {
	seen := make(map[int]struct{}, len(p))
	for _, c := range p {
		seen[c] = struct{}{}
	}

	return len(seen)
}

// Renumber returns a copy with labels relabeled 0,1,2,... in order of first
// appearance. Grouping is unchanged.
func (p Partition) Renumber() Partition {
	out := make(Partition, len(p))
	relabel := make(map[int]int, len(p))
	for i, c := range p {
		r, ok := relabel[c]
		if !ok {
			r = len(relabel)
			relabel[c] = r
		}
		out[i] = r
	}

	return out
}

// Members returns, for each label of a dense partition, its nodes in
// ascending order.
func (p Partition) Members() [][]int {
	k := 0
	for _, c := range p {
		if c+1 > k {
			k = c + 1
		}
	}
	out := make([][]int, k)
	for i, c := range p {
		out[c] = append(out[c], i)
	}

	return out
}

// Equal reports whether p and q have the same length and labels.
func (p Partition) Equal(q Partition) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// validate checks that p covers n nodes with labels in [0,n).
func (p Partition) validate(n int) error {
	if len(p) != n {
		return fmt.Errorf("partition covers %d nodes, want %d", len(p), n)
	}
	for i, c := range p {
		if c < 0 || c >= n {
			return fmt.Errorf("node %d has label %d outside [0,%d)", i, c, n)
		}
	}

	return nil
}

// dense checks that every label in [0,max] is used and returns max+1.
func (p Partition) dense() (int, error) {
	k := 0
	for i, c := range p {
		if c < 0 {
			return 0, fmt.Errorf("node %d has negative label %d", i, c)
		}
		if c+1 > k {
			k = c + 1
		}
	}
	used := make([]bool, k)
	for _, c := range p {
		used[c] = true
	}
	for c, ok := range used {
		if !ok {
			return 0, fmt.Errorf("label %d is unused", c)
		}
	}

	return k, nil
}

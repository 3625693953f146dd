// File: builder_impl_test.go
// Package builder_test verifies topology, counts, ordering, and default
// weights of every Constructor.
package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlnet/builder"
	"github.com/katalvlaran/mlnet/core"
)

// edgeKey identifies an edge by its endpoint names.
type edgeKey struct{ U, V string }

// layerEdges returns the edges of layer keyed by endpoints, in insertion order.
func layerEdges(t *testing.T, n *core.Network, layer string) ([]edgeKey, map[edgeKey]float64) {
	t.Helper()
	edges, err := n.Edges(layer)
	require.NoError(t, err)
	keys := make([]edgeKey, 0, len(edges))
	weights := make(map[edgeKey]float64, len(edges))
	for _, e := range edges {
		k := edgeKey{e.From.Actor.Name, e.To.Actor.Name}
		keys = append(keys, k)
		weights[k] = e.Weight
	}
	return keys, weights
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantNodes int
		wantEdges int
		first     edgeKey
		last      edgeKey
	}{
		{"Cycle(5)", builder.Cycle("L", 5), 5, 5, edgeKey{"0", "1"}, edgeKey{"4", "0"}},
		{"Path(4)", builder.Path("L", 4), 4, 3, edgeKey{"0", "1"}, edgeKey{"2", "3"}},
		{"Complete(4)", builder.Complete("L", 4), 4, 6, edgeKey{"0", "1"}, edgeKey{"2", "3"}},
		{"DisjointCliques(2,3)", builder.DisjointCliques("L", 2, 3), 6, 6, edgeKey{"0", "1"}, edgeKey{"4", "5"}},
		{"RandomSparse(p=1)", builder.RandomSparse("L", 4, 1), 4, 6, edgeKey{"0", "1"}, edgeKey{"2", "3"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			n, err := builder.BuildNetwork(nil, nil, tc.ctor)
			require.NoError(t, err)

			nodes, err := n.Nodes("L")
			require.NoError(t, err)
			require.Len(t, nodes, tc.wantNodes)
			for i, nd := range nodes {
				require.Equal(t, builder.DefaultIDFn(i), nd.Actor.Name, "nodes ascend by index")
			}

			keys, weights := layerEdges(t, n, "L")
			require.Len(t, keys, tc.wantEdges)
			require.Equal(t, tc.first, keys[0])
			require.Equal(t, tc.last, keys[len(keys)-1])
			for k, w := range weights {
				require.Equal(t, builder.DefaultEdgeWeight, w, "edge %v", k)
			}
		})
	}
}

func TestBuildNetwork_SharesActorsAcrossLayers(t *testing.T) {
	n, err := builder.BuildNetwork(nil, nil, builder.Cycle("A", 4), builder.Path("B", 3))
	require.NoError(t, err)

	require.Len(t, n.Actors(), 4)
	p, err := n.Presences("1")
	require.NoError(t, err)
	require.Len(t, p, 2)
	p, err = n.Presences("3")
	require.NoError(t, err)
	require.Len(t, p, 1)
}

func TestDisjointCliques_NoCrossEdges(t *testing.T) {
	n, err := builder.BuildNetwork(nil, nil, builder.DisjointCliques("L", 3, 4))
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		for j := i + 1; j < 12; j++ {
			u, v := builder.DefaultIDFn(i), builder.DefaultIDFn(j)
			require.Equal(t, i/4 == j/4, n.HasEdge("L", u, v), "pair %d,%d", i, j)
		}
	}
}

func TestRandomSparse(t *testing.T) {
	t.Run("isolated nodes are placed", func(t *testing.T) {
		n, err := builder.BuildNetwork(nil, nil, builder.RandomSparse("L", 7, 0))
		require.NoError(t, err)
		nodes, err := n.Nodes("L")
		require.NoError(t, err)
		require.Len(t, nodes, 7)
		keys, _ := layerEdges(t, n, "L")
		require.Empty(t, keys)
	})

	t.Run("seed is reproducible", func(t *testing.T) {
		opts := []builder.BuilderOption{builder.WithSeed(99)}
		a, err := builder.BuildNetwork(nil, opts, builder.RandomSparse("L", 30, 0.2))
		require.NoError(t, err)
		b, err := builder.BuildNetwork(nil, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(99)))},
			builder.RandomSparse("L", 30, 0.2))
		require.NoError(t, err)
		ka, _ := layerEdges(t, a, "L")
		kb, _ := layerEdges(t, b, "L")
		require.Equal(t, ka, kb)
		require.NotEmpty(t, ka)
	})
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"cycle too small", builder.Cycle("L", 2), nil, builder.ErrTooFewVertices},
		{"path too small", builder.Path("L", 1), nil, builder.ErrTooFewVertices},
		{"complete empty", builder.Complete("L", 0), nil, builder.ErrTooFewVertices},
		{"no cliques", builder.DisjointCliques("L", 0, 3), nil, builder.ErrTooFewVertices},
		{"empty cliques", builder.DisjointCliques("L", 2, 0), nil, builder.ErrTooFewVertices},
		{"random empty", builder.RandomSparse("L", 0, 0.5), nil, builder.ErrTooFewVertices},
		{"p above one", builder.RandomSparse("L", 3, 1.5), nil, builder.ErrInvalidProbability},
		{"p negative", builder.RandomSparse("L", 3, -0.1), nil, builder.ErrInvalidProbability},
		{"no rng", builder.RandomSparse("L", 3, 0.5), nil, builder.ErrNeedRandSource},
		{"empty layer", builder.Cycle("", 3), nil, builder.ErrConstructFailed},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := builder.BuildNetwork(nil, tc.opts, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			require.Nil(t, n)
		})
	}

	err := builder.Apply(nil, nil, builder.Cycle("L", 3))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildNetwork_PropagatesCoreErrors(t *testing.T) {
	_, err := builder.BuildNetwork(nil, []builder.BuilderOption{builder.WithWeightFn(func(*rand.Rand) float64 { return -1 })},
		builder.Path("L", 2))
	require.ErrorIs(t, err, core.ErrBadWeight)
	require.Contains(t, err.Error(), "BuildNetwork: Path: AddEdge(0-1@L")
}

func TestApply_ExtendsNetwork(t *testing.T) {
	n := core.NewNetwork()
	_, err := n.AddEdge("L", "x", "y", 2)
	require.NoError(t, err)

	require.NoError(t, builder.Apply(n, []builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Path("M", 3)))
	require.True(t, n.HasEdge("M", "v0", "v1"))
	require.True(t, n.HasEdge("L", "x", "y"))
	require.Len(t, n.Layers(), 2)
}

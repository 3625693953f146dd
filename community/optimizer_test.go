package community_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlnet/builder"
	"github.com/katalvlaran/mlnet/community"
)

func TestOptimize_RingSplitsIntoPairs(t *testing.T) {
	s := mustSupra(t, mustNetwork(t, builder.Cycle(layerA, 4)), 1, 0)

	p, err := community.Optimize(s, community.Singletons(4))
	require.NoError(t, err)
	require.Equal(t, community.Partition{0, 0, 1, 1}, p)
	require.InDelta(t, 0.0, mustModularity(t, s, p), 1e-12)
}

func TestOptimize_TwoTrianglesAnyOrder(t *testing.T) {
	s := mustSupra(t, mustNetwork(t, builder.DisjointCliques(layerA, 2, 3)), 1, 0)
	want := community.Partition{0, 0, 0, 1, 1, 1}

	p, err := community.Optimize(s, community.Singletons(6))
	require.NoError(t, err)
	require.Equal(t, want, p)

	for seed := int64(1); seed <= 25; seed++ {
		p, err = community.Optimize(s, community.Singletons(6), community.WithSeed(seed))
		require.NoError(t, err)
		require.Equal(t, []string{"0,1,2", "3,4,5"}, groups(p, strconv.Itoa), "seed %d", seed)
	}
}

func TestOptimize_DoesNotDecreaseModularity(t *testing.T) {
	net := mustNetwork(t,
		builder.RandomSparse(layerA, 30, 0.15),
		builder.RandomSparse(layerB, 30, 0.15),
	)
	s := mustSupra(t, net, 1, 0.5)
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 10; trial++ {
		init := make(community.Partition, s.Dim())
		for i := range init {
			init[i] = rng.Intn(5)
		}
		before := mustModularity(t, s, init)

		p, err := community.Optimize(s, init)
		require.NoError(t, err)
		require.GreaterOrEqual(t, mustModularity(t, s, p), before-1e-12)
	}
}

func TestOptimize_IdempotentOnLocalOptimum(t *testing.T) {
	net := mustNetwork(t, builder.RandomSparse(layerA, 40, 0.1), builder.RandomSparse(layerB, 40, 0.1))
	s := mustSupra(t, net, 1, 1)

	first, err := community.Optimize(s, community.Singletons(s.Dim()))
	require.NoError(t, err)
	second, err := community.Optimize(s, first, community.WithMaxPasses(1))
	require.NoError(t, err)
	require.Equal(t, first, second, "a locally optimal partition admits no move")
}

func TestOptimize_SeedIsReproducible(t *testing.T) {
	net := mustNetwork(t, builder.RandomSparse(layerA, 50, 0.08), builder.RandomSparse(layerB, 50, 0.08))
	s := mustSupra(t, net, 1, 0.3)

	a, err := community.Optimize(s, community.Singletons(s.Dim()), community.WithSeed(42))
	require.NoError(t, err)
	b, err := community.Optimize(s, community.Singletons(s.Dim()), community.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestOptimize_Parallel(t *testing.T) {
	s := mustSupra(t, mustNetwork(t, builder.DisjointCliques(layerA, 4, 5)), 1, 0)

	p, err := community.Optimize(s, community.Singletons(s.Dim()), community.WithParallelism(4))
	require.NoError(t, err)
	require.Equal(t, []string{
		"0,1,2,3,4", "10,11,12,13,14", "15,16,17,18,19", "5,6,7,8,9",
	}, groups(p, strconv.Itoa))

	net := mustNetwork(t, builder.RandomSparse(layerA, 60, 0.1), builder.RandomSparse(layerB, 60, 0.1))
	s = mustSupra(t, net, 1, 0.5)
	init := community.Singletons(s.Dim())
	seq, err := community.Optimize(s, init)
	require.NoError(t, err)
	par, err := community.Optimize(s, init, community.WithParallelism(3))
	require.NoError(t, err)
	require.Len(t, par, s.Dim())
	require.Greater(t, mustModularity(t, s, par), mustModularity(t, s, init))
	require.Greater(t, mustModularity(t, s, seq), mustModularity(t, s, init))

	again, err := community.Optimize(s, init, community.WithParallelism(3))
	require.NoError(t, err)
	require.Equal(t, par, again, "parallel runs are deterministic")
}

func TestOptimize_InvalidInit(t *testing.T) {
	s := mustSupra(t, mustNetwork(t, builder.Cycle(layerA, 4)), 1, 0)

	_, err := community.Optimize(s, community.Partition{0, 1})
	require.ErrorIs(t, err, community.ErrInvalidParameter)
	_, err = community.Optimize(s, community.Partition{0, 1, 2, 4})
	require.ErrorIs(t, err, community.ErrInvalidParameter)
	_, err = community.Optimize(s, community.Partition{0, -1, 2, 3})
	require.ErrorIs(t, err, community.ErrInvalidParameter)
	_, err = community.Optimize(nil, nil)
	require.ErrorIs(t, err, community.ErrInvalidParameter)
}

func TestOptimize_MaxPassesBoundsWork(t *testing.T) {
	s := mustSupra(t, mustNetwork(t, builder.Cycle(layerA, 4)), 1, 0)

	// one pass already reaches the pairs; the bound only stops the confirming pass
	p, err := community.Optimize(s, community.Singletons(4), community.WithMaxPasses(1))
	require.NoError(t, err)
	require.Equal(t, community.Partition{0, 0, 1, 1}, p)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { community.WithMaxPasses(0) })
	require.Panics(t, func() { community.WithMaxLevels(0) })
	require.Panics(t, func() { community.WithRestarts(0) })
	require.Panics(t, func() { community.WithParallelism(0) })
	require.Panics(t, func() { community.WithMinGain(-1) })
	require.Panics(t, func() { community.WithRand(nil) })
}

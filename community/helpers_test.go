package community_test

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mlnet/builder"
	"github.com/katalvlaran/mlnet/community"
	"github.com/katalvlaran/mlnet/core"
)

const (
	layerA = "A"
	layerB = "B"
)

// mustNetwork builds a network from constructors under a fixed seed.
func mustNetwork(t testing.TB, cons ...builder.Constructor) *core.Network {
	t.Helper()
	n, err := builder.BuildNetwork(nil, []builder.BuilderOption{builder.WithSeed(1)}, cons...)
	require.NoError(t, err)
	return n
}

// twoRings is two 4-cycles over actors 0..3 in layers A and B.
func twoRings(t testing.TB) *core.Network {
	return mustNetwork(t, builder.Cycle(layerA, 4), builder.Cycle(layerB, 4))
}

func mustSupra(t testing.TB, net community.Network, gamma, omega float64) *community.Supra {
	t.Helper()
	s, err := community.BuildSupra(net, gamma, omega)
	require.NoError(t, err)
	return s
}

func mustModularity(t testing.TB, s *community.Supra, p community.Partition) float64 {
	t.Helper()
	q, err := community.Modularity(s, p)
	require.NoError(t, err)
	return q
}

// setNames renders actor sets as sorted "a,b|c,d" strings for comparison.
func setNames(sets []community.ActorSet) []string {
	out := make([]string, len(sets))
	for i, s := range sets {
		out[i] = strings.Join(s.Names(), ",")
	}
	return out
}

// groups renders a partition as a canonical set of member lists, ignoring
// label values.
func groups(p community.Partition, name func(i int) string) []string {
	byLabel := map[int][]string{}
	for i, c := range p {
		byLabel[c] = append(byLabel[c], name(i))
	}
	out := make([]string, 0, len(byLabel))
	for _, members := range byLabel {
		sort.Strings(members)
		out = append(out, strings.Join(members, ","))
	}
	sort.Strings(out)
	return out
}

// expand maps a meta-level partition back onto the nodes of the level below.
func expand(lower community.Partition, upper community.Partition) community.Partition {
	out := make(community.Partition, len(lower))
	for i, c := range lower {
		out[i] = upper[c]
	}
	return out
}

// fakeRecorder captures observations.
type fakeRecorder struct {
	levels   []int
	statuses []string
}

func (f *fakeRecorder) ObserveLevel(level, _, _, _ int, _ float64) {
	f.levels = append(f.levels, level)
}

func (f *fakeRecorder) ObserveRun(status string, _, _ int, _ float64, _ time.Duration) {
	f.statuses = append(f.statuses, status)
}

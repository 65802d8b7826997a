package cuts_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphcuts/cuts"
	"github.com/katalvlaran/graphcuts/digraph"
)

type CutsSuite struct {
	suite.Suite
}

func diamond() *digraph.Graph {
	g := digraph.New(4)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		_, _ = g.AddEdge(e[0], e[1])
	}
	g.Freeze()
	return g
}

func sortedInts(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)
	return out
}

func sortedSetOfSets(ss [][]int) [][]int {
	out := make([][]int, len(ss))
	for i, s := range ss {
		out[i] = sortedInts(s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return out
}

// TestDiamondAllStCuts is spec scenario S3.
func (s *CutsSuite) TestDiamondAllStCuts() {
	g := diamond()
	res, err := cuts.AllStCuts(context.Background(), g, 0, 3)
	require.NoError(s.T(), err)

	wantPartitions := [][]int{{0}, {0, 1}, {0, 2}, {0, 1, 2}}
	require.Equal(s.T(), sortedSetOfSets(wantPartitions), sortedSetOfSets(res.Partitions))

	wantCuts := [][]int{{0, 1}, {0, 3}, {1, 2}, {2, 3}}
	require.Equal(s.T(), sortedSetOfSets(wantCuts), sortedSetOfSets(res.Cuts))
}

func (s *CutsSuite) TestUndirectedRejected() {
	g := digraph.NewUndirected(2)
	_, _ = g.AddEdge(0, 1)
	g.Freeze()

	_, err := cuts.AllStCuts(context.Background(), g, 0, 1)
	require.Error(s.T(), err)
}

func (s *CutsSuite) TestSourceEqualsTargetRejected() {
	g := diamond()
	_, err := cuts.AllStCuts(context.Background(), g, 0, 0)
	require.Error(s.T(), err)
}

// TestDiamondAllStMinCuts is spec scenario S4: the diamond's two
// vertex-disjoint length-2 paths mean every (s,t) cut (not just the
// extremal source-side and sink-side ones) saturates at the same
// capacity 2, so all four of S3's partitions are minimum cuts here too.
func (s *CutsSuite) TestDiamondAllStMinCuts() {
	g := diamond()
	capacity := []int64{1, 1, 1, 1}

	res, err := cuts.AllStMinCuts(context.Background(), g, 0, 3, capacity)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Value)

	wantCuts := [][]int{{0, 1}, {0, 3}, {1, 2}, {2, 3}}
	require.Equal(s.T(), sortedSetOfSets(wantCuts), sortedSetOfSets(res.Cuts))

	wantPartitions := [][]int{{0}, {0, 1}, {0, 2}, {0, 1, 2}}
	require.Equal(s.T(), sortedSetOfSets(wantPartitions), sortedSetOfSets(res.Partitions))
}

// TestBottleneckAllStMinCuts exercises a graph with a single, unique
// minimum cut: 0->1 and 2->3 have slack capacity, so only the bottleneck
// edge 1->2 can ever be saturated at the minimum flow value, and the
// enumeration must find exactly that one partition.
func (s *CutsSuite) TestBottleneckAllStMinCuts() {
	g := digraph.New(4)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 3)
	g.Freeze()
	capacity := []int64{5, 1, 5}

	res, err := cuts.AllStMinCuts(context.Background(), g, 0, 3, capacity)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), res.Value)

	require.Equal(s.T(), [][]int{{1}}, res.Cuts)
	require.Equal(s.T(), sortedSetOfSets([][]int{{0, 1}}), sortedSetOfSets(res.Partitions))
}

func (s *CutsSuite) TestMinCutsNonPositiveCapacityRejected() {
	g := diamond()
	_, err := cuts.AllStMinCuts(context.Background(), g, 0, 3, []int64{1, 0, 1, 1})
	require.Error(s.T(), err)
}

func (s *CutsSuite) TestMinCutsCapacityLengthMismatch() {
	g := diamond()
	_, err := cuts.AllStMinCuts(context.Background(), g, 0, 3, []int64{1, 1, 1})
	require.Error(s.T(), err)
}

func TestCutsSuite(t *testing.T) {
	suite.Run(t, new(CutsSuite))
}

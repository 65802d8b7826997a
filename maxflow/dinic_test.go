package maxflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphcuts/digraph"
	"github.com/katalvlaran/graphcuts/maxflow"
)

type DinicSuite struct {
	suite.Suite
}

// TestBottleneck is spec scenario S4's flow network: a diamond with a
// two-edge bottleneck forcing a max flow of 2.
func (s *DinicSuite) TestBottleneck() {
	g := digraph.New(4)
	edges := [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}
	for _, e := range edges {
		_, _ = g.AddEdge(e[0], e[1])
	}
	g.Freeze()

	capacity := []int64{1, 1, 5, 5}
	value, flow, err := maxflow.Dinic(g, 0, 3, capacity, maxflow.FlowOptions{})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), value)

	for e, c := range capacity {
		require.LessOrEqual(s.T(), flow[e], c)
		require.GreaterOrEqual(s.T(), flow[e], int64(0))
	}
	// Flow conservation at vertex 1 and 2 (single in, single out).
	require.Equal(s.T(), flow[0], flow[2])
	require.Equal(s.T(), flow[1], flow[3])
}

func (s *DinicSuite) TestMultiplePaths() {
	// Two vertex-disjoint paths of capacity 3 each from 0 to 3.
	g := digraph.New(4)
	edges := [][2]int{{0, 1}, {1, 3}, {0, 2}, {2, 3}}
	for _, e := range edges {
		_, _ = g.AddEdge(e[0], e[1])
	}
	g.Freeze()

	capacity := []int64{3, 3, 3, 3}
	value, _, err := maxflow.Dinic(g, 0, 3, capacity, maxflow.FlowOptions{})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), value)
}

func (s *DinicSuite) TestSourceEqualsSink() {
	g := digraph.New(2)
	_, _ = g.AddEdge(0, 1)
	g.Freeze()

	value, flow, err := maxflow.Dinic(g, 0, 0, []int64{4}, maxflow.FlowOptions{})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), value)
	require.Equal(s.T(), []int64{0}, flow)
}

func (s *DinicSuite) TestCapacityLengthMismatch() {
	g := digraph.New(2)
	_, _ = g.AddEdge(0, 1)
	g.Freeze()

	_, _, err := maxflow.Dinic(g, 0, 1, []int64{1, 2}, maxflow.FlowOptions{})
	require.Error(s.T(), err)
}

func (s *DinicSuite) TestSourceOutOfRange() {
	g := digraph.New(2)
	_, _ = g.AddEdge(0, 1)
	g.Freeze()

	_, _, err := maxflow.Dinic(g, 5, 1, []int64{1}, maxflow.FlowOptions{})
	require.Error(s.T(), err)
}

func (s *DinicSuite) TestContextCancelled() {
	g := digraph.New(2)
	_, _ = g.AddEdge(0, 1)
	g.Freeze()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := maxflow.Dinic(g, 0, 1, []int64{1}, maxflow.FlowOptions{Ctx: ctx})
	require.Error(s.T(), err)
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}

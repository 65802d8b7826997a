package xbfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphcuts/digraph"
	"github.com/katalvlaran/graphcuts/xbfs"
)

type BFSSuite struct {
	suite.Suite
}

func (s *BFSSuite) TestForward() {
	g := digraph.New(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 3}} {
		_, _ = g.AddEdge(e[0], e[1])
	}
	g.Freeze()

	res := xbfs.BFS(g, []int{0})
	require.True(s.T(), res.Visited[0])
	require.True(s.T(), res.Visited[1])
	require.True(s.T(), res.Visited[2])
	require.True(s.T(), res.Visited[3])
}

func (s *BFSSuite) TestRestrict() {
	g := digraph.New(3)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	g.Freeze()

	restrict := []bool{true, false, true}
	res := xbfs.BFS(g, []int{0}, xbfs.WithRestrict(restrict))
	require.True(s.T(), res.Visited[0])
	require.False(s.T(), res.Visited[1])
	require.False(s.T(), res.Visited[2])
}

func (s *BFSSuite) TestReverse() {
	g := digraph.New(3)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	g.Freeze()

	res := xbfs.BFS(g, []int{2}, xbfs.WithReverse())
	require.True(s.T(), res.Visited[2])
	require.True(s.T(), res.Visited[1])
	require.True(s.T(), res.Visited[0])
}

func TestBFSSuite(t *testing.T) {
	suite.Run(t, new(BFSSuite))
}

package scc_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphcuts/digraph"
	"github.com/katalvlaran/graphcuts/scc"
)

type SCCSuite struct {
	suite.Suite
}

// TestTwoCyclesBridged: {0,1,2} form a cycle, {3,4} form a cycle, with a
// single bridge edge 2->3 joining them. Expect exactly two components.
func (s *SCCSuite) TestTwoCyclesBridged() {
	g := digraph.New(5)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 3}} {
		_, _ = g.AddEdge(e[0], e[1])
	}
	g.Freeze()

	comp, numComponents := scc.Tarjan(g)
	require.Equal(s.T(), 2, numComponents)
	require.Equal(s.T(), comp[0], comp[1])
	require.Equal(s.T(), comp[1], comp[2])
	require.Equal(s.T(), comp[3], comp[4])
	require.NotEqual(s.T(), comp[0], comp[3])

	// Component ids follow reverse topological order: the {3,4} component
	// (a sink, reachable from the {0,1,2} component) gets a lower id.
	require.Less(s.T(), comp[3], comp[0])
}

func (s *SCCSuite) TestAllSingletons() {
	g := digraph.New(3)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	g.Freeze()

	comp, numComponents := scc.Tarjan(g)
	require.Equal(s.T(), 3, numComponents)
	require.NotEqual(s.T(), comp[0], comp[1])
	require.NotEqual(s.T(), comp[1], comp[2])
}

func (s *SCCSuite) TestContractDedupAndSelfLoop() {
	g := digraph.New(4)
	// Component A = {0,1}, component B = {2,3}; two parallel bridge edges
	// (0->2, 1->2) should collapse to one in the condensation, and the
	// internal cycle edges should vanish as self-loops.
	for _, e := range [][2]int{{0, 1}, {1, 0}, {2, 3}, {3, 2}, {0, 2}, {1, 2}} {
		_, _ = g.AddEdge(e[0], e[1])
	}
	g.Freeze()

	comp, numComponents := scc.Tarjan(g)
	require.Equal(s.T(), 2, numComponents)

	contracted, revmap := scc.Contract(g, comp, numComponents)
	require.Equal(s.T(), numComponents, contracted.N())
	require.Equal(s.T(), 1, contracted.M())

	total := 0
	for _, vs := range revmap {
		total += len(vs)
	}
	require.Equal(s.T(), 4, total)
}

func TestSCCSuite(t *testing.T) {
	suite.Run(t, new(SCCSuite))
}

package dominator_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphcuts/digraph"
	"github.com/katalvlaran/graphcuts/dominator"
)

type DominatorSuite struct {
	suite.Suite
}

// TestClassicLengauerTarjan is spec scenario S1.
func (s *DominatorSuite) TestClassicLengauerTarjan() {
	g := digraph.New(13)
	edges := [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 4}, {2, 1}, {2, 4}, {2, 5}, {3, 6}, {3, 7},
		{4, 12}, {5, 8}, {6, 9}, {7, 9}, {7, 10}, {8, 5}, {8, 11}, {9, 11},
		{10, 9}, {11, 0}, {11, 9}, {12, 8},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(s.T(), err)
	}
	g.Freeze()

	res, err := dominator.Build(g, 0, dominator.Out)
	require.NoError(s.T(), err)

	expected := []int{-1, 0, 0, 0, 0, 0, 3, 3, 0, 0, 7, 0, 0}
	require.Equal(s.T(), expected, res.Dom)
}

// TestUnreachableVertex is spec scenario S5.
func (s *DominatorSuite) TestUnreachableVertex() {
	g := digraph.New(3)
	_, err := g.AddEdge(0, 1)
	require.NoError(s.T(), err)
	g.Freeze()

	res, err := dominator.Build(g, 0, dominator.Out, dominator.WithLeftout())
	require.NoError(s.T(), err)

	require.Equal(s.T(), []int{-1, 0, -2}, res.Dom)
	require.Equal(s.T(), []int{2}, res.Leftout)
}

func (s *DominatorSuite) TestRootOutOfRange() {
	g := digraph.New(2)
	g.Freeze()
	_, err := dominator.Build(g, 5, dominator.Out)
	require.Error(s.T(), err)
}

func (s *DominatorSuite) TestTreeShape() {
	g := digraph.New(4)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		_, _ = g.AddEdge(e[0], e[1])
	}
	g.Freeze()

	res, err := dominator.Build(g, 0, dominator.Out, dominator.WithTree())
	require.NoError(s.T(), err)
	require.NotNil(s.T(), res.Tree)
	// 4 reachable vertices => 3 tree edges.
	require.Equal(s.T(), 3, res.Tree.M())
}

// TestAgainstNaiveReference fuzzes small random directed graphs and
// cross-checks dominator.Build against an O(nm) naive reference:
// dom(v) is the unique vertex on every root-to-v path whose removal
// disconnects v from root, computed by brute-force ancestor
// intersection.
func (s *DominatorSuite) TestAgainstNaiveReference() {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.IntN(49)
		g := digraph.New(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && rng.Float64() < 0.3 {
					_, _ = g.AddEdge(i, j)
				}
			}
		}
		g.Freeze()

		root := 0
		res, err := dominator.Build(g, root, dominator.Out)
		require.NoError(s.T(), err)

		want := naiveDominators(g, root)
		require.Equal(s.T(), want, res.Dom, "trial %d", trial)
	}
}

// naiveDominators computes immediate dominators by, for each reachable v,
// intersecting the set of all simple root-to-v paths and taking the
// closest common ancestor other than v itself.
func naiveDominators(g *digraph.Graph, root int) []int {
	n := g.N()
	reachableFrom := func(start int, without int) []bool {
		seen := make([]bool, n)
		if start == without {
			return seen
		}
		queue := []int{start}
		seen[start] = true
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, e := range g.OutEdges(u) {
				v := g.To(e)
				if v == without || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		return seen
	}

	baseReachable := reachableFrom(root, -1)

	dom := make([]int, n)
	for v := 0; v < n; v++ {
		if v == root {
			dom[v] = -1
			continue
		}
		if !baseReachable[v] {
			dom[v] = -2
			continue
		}
		// Among all vertices other than v, find those whose removal
		// disconnects root from v; the immediate dominator is the one
		// closest to v (i.e. not strictly dominated by any other
		// candidate).
		var dominators []int
		for cand := 0; cand < n; cand++ {
			if cand == v {
				continue
			}
			withoutReachable := reachableFrom(root, cand)
			if !withoutReachable[v] {
				dominators = append(dominators, cand)
			}
		}
		// The immediate dominator is the dominator not dominated by any
		// other dominator (closest to v along every path).
		idom := root
		for _, d := range dominators {
			if d == root {
				continue
			}
			// d is a strictly closer dominator than idom if idom
			// dominates d (every root-to-d path also passes through idom).
			withoutIdom := reachableFrom(root, idom)
			if !withoutIdom[d] {
				idom = d
			}
		}
		dom[v] = idom
	}

	return dom
}

func TestDominatorSuite(t *testing.T) {
	suite.Run(t, new(DominatorSuite))
}

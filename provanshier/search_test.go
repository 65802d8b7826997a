package provanshier_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphcuts/digraph"
	"github.com/katalvlaran/graphcuts/provanshier"
)

// stubPivot returns the first vertex of order that is in neither S nor T,
// and reports empty once every vertex of order is in S or T.
type stubPivot struct {
	order []int
}

func (p *stubPivot) Pivot(g *digraph.Graph, s provanshier.SVertices, t provanshier.TVertices, source, target int) (int, []int, bool, error) {
	for _, v := range p.order {
		if !s.IsElement(v) && !t.IsElement(v) {
			return v, []int{v}, true, nil
		}
	}
	return 0, nil, false, nil
}

type SearchSuite struct {
	suite.Suite
}

// TestBinaryTreeEnumeration checks that with a 1-candidate pivot order,
// Search visits exactly the 2 leaves of the left/right recursion tree
// and emits the non-trivial, non-full partitions among them.
func (s *SearchSuite) TestBinaryTreeEnumeration() {
	g := digraph.New(3)
	g.Freeze()

	pivot := &stubPivot{order: []int{1}}
	var emitted [][]int
	err := provanshier.Search(g, pivot, 0, 2, "test", func(partition []int) {
		emitted = append(emitted, append([]int(nil), partition...))
	})
	require.NoError(s.T(), err)

	// Left branch (1 -> T): S stays empty, size 0 -> not emitted.
	// Right branch (1 -> S): S = {1}, size 1 of n=3 -> emitted.
	require.Len(s.T(), emitted, 1)
	require.Equal(s.T(), []int{1}, emitted[0])
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

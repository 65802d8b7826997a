// SPDX-License-Identifier: MIT
package scc

import "github.com/katalvlaran/graphcuts/digraph"

// Contract builds the quotient (condensation) graph over comp, as
// produced by Tarjan: one vertex per component, one edge per distinct
// (comp[from], comp[to]) pair with comp[from] != comp[to] -- parallel
// edges between the same two components collapse to one, and self-loops
// within a component are dropped, per spec §4.9(c).
//
// revmap[c] lists, in ascending original-vertex order, every vertex of g
// that belongs to component c -- the inverse map façade step (g) needs
// to translate a contracted-graph cut back to original vertices.
func Contract(g *digraph.Graph, comp []int, numComponents int) (contracted *digraph.Graph, revmap [][]int) {
	revmap = make([][]int, numComponents)
	for v, c := range comp {
		revmap[c] = append(revmap[c], v)
	}

	contracted = digraph.New(numComponents)
	seen := make(map[[2]int]struct{})
	for v := 0; v < g.N(); v++ {
		cv := comp[v]
		for _, e := range g.OutEdges(v) {
			w := g.To(e)
			cw := comp[w]
			if cv == cw {
				continue
			}
			key := [2]int{cv, cw}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			_, _ = contracted.AddEdge(cv, cw)
		}
	}
	contracted.Freeze()

	return contracted, revmap
}

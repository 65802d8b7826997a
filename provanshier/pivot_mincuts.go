// SPDX-License-Identifier: MIT
// File: pivot_mincuts.go
// Role: CutPivot_MinCuts (C7): produces (v, I(S,v)) for enumerating every
// minimum (s,t) cut over the SCC-contracted reverse residual graph, per
// spec §4.8.
package provanshier

import (
	"github.com/katalvlaran/graphcuts/digraph"
	"github.com/katalvlaran/graphcuts/xbfs"
)

// MinCutsPivot implements Pivot for enumerating every minimum (s,t) cut
// over a graph g that has been SCC-contracted from a reverse residual
// graph and then reversed back (cuts.AllStMinCuts does both before
// calling Search): R's own edges run target-ward to source-ward, so
// comp(source) is one of R's sinks, never a root; reversing the
// condensation restores the orientation this pivot's in-degree-0
// selection and reverse-BFS assume -- comp(source) has in-degree 0 and
// seeds S, just as CutPivot_AllCuts seeds Γ(∅) with source. Active marks, per vertex of that contracted graph, whether it
// is incident to at least one positive-flow edge -- the candidates
// every minimum cut must be built from (spec §4.8, glossary "Active
// vertex").
type MinCutsPivot struct {
	Active []bool
}

func (p MinCutsPivot) Pivot(g *digraph.Graph, s SVertices, t TVertices, source, target int) (int, []int, bool, error) {
	n := g.N()
	if s.Size() == n {
		return 0, nil, false, nil
	}

	inS := make([]bool, n)
	for _, v := range s.AsVector() {
		inS[v] = true
	}

	// Step 2: induced subgraph Ḡ on K = V \ S.
	sbarMap := make([]int, n)
	invmap := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if inS[v] {
			sbarMap[v] = -1
			continue
		}
		sbarMap[v] = len(invmap)
		invmap = append(invmap, v)
	}
	k := len(invmap)

	// Step 3: in-degree in Ḡ, then conceptually remove every non-active
	// vertex by subtracting its out-edges from its successors' in-degree.
	succ := make([][]int, k)
	indeg := make([]int, k)
	for v := 0; v < n; v++ {
		if inS[v] {
			continue
		}
		vi := sbarMap[v]
		for _, e := range g.OutEdges(v) {
			w := g.To(e)
			if inS[w] {
				continue
			}
			wi := sbarMap[w]
			succ[vi] = append(succ[vi], wi)
			indeg[wi]++
		}
	}
	for idx := 0; idx < k; idx++ {
		if !p.Active[invmap[idx]] {
			for _, w := range succ[idx] {
				indeg[w]--
			}
		}
	}

	// Step 4: first minimal active vertex, in Ḡ index order, excluding T
	// and target.
	chosen := -1
	for idx := 0; idx < k; idx++ {
		vOrig := invmap[idx]
		if !p.Active[vOrig] || indeg[idx] != 0 {
			continue
		}
		if vOrig == target || t.IsElement(vOrig) {
			continue
		}
		chosen = idx
		break
	}
	if chosen == -1 {
		return 0, nil, false, nil
	}

	// Step 5: I(S,v) = vertices that can reach v in G restricted to K,
	// minus T.
	vOrig := invmap[chosen]
	restrict := make([]bool, n)
	for _, v := range invmap {
		restrict[v] = true
	}
	reached := xbfs.BFS(g, []int{vOrig}, xbfs.WithReverse(), xbfs.WithRestrict(restrict))

	isv := make([]int, 0, len(reached.Order))
	for _, u := range reached.Order {
		if t.IsElement(u) {
			continue
		}
		isv = append(isv, u)
	}

	return vOrig, isv, true, nil
}

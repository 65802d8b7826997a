// SPDX-License-Identifier: MIT
// File: pivot_allcuts.go
// Role: CutPivot_AllCuts (C6): produces (v, I(S,v)) for enumerating every
// (s,t) cut, per spec §4.7.
//
// Step 5's literal wording, "Compute I(S,v) − K in the original graph by
// BFS restricted to Nu(v), starting from all of Γ(S)", reads as a set
// difference but cannot be one: the BFS is seeded and restricted entirely
// within K, so "I(S,v) minus K" would always be empty and the acceptance
// test that follows would be vacuous. Read instead as naming an
// intermediate value -- "I(S,v)-within-K", i.e. the trial set reached by
// BFS(G, sources=Γ(S)∩Nu(v), restrict=Nu(v)) -- the hyphen is a label, not an
// operator. That reading makes the acceptance test meaningful (does
// growing toward v, from the current frontier, touch T or target?) and
// is what this file implements; the resolution is recorded in
// DESIGN.md.
package provanshier

import (
	"github.com/katalvlaran/graphcuts/digraph"
	"github.com/katalvlaran/graphcuts/dominator"
	"github.com/katalvlaran/graphcuts/xbfs"
	"github.com/katalvlaran/graphcuts/xdfs"
)

// AllCutsPivot implements Pivot for enumerating every (s,t) edge cut.
type AllCutsPivot struct{}

func (AllCutsPivot) Pivot(g *digraph.Graph, s SVertices, t TVertices, source, target int) (int, []int, bool, error) {
	n := g.N()

	inS := make([]bool, n)
	for _, v := range s.AsVector() {
		inS[v] = true
	}

	// Step 1: induced subgraph Ḡ on K = V \ S.
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

	induced := digraph.New(k)
	for v := 0; v < n; v++ {
		if inS[v] {
			continue
		}
		for _, e := range g.OutEdges(v) {
			w := g.To(e)
			if inS[w] {
				continue
			}
			_, _ = induced.AddEdge(sbarMap[v], sbarMap[w])
		}
	}
	induced.Freeze()

	// Step 2: reverse-oriented dominator tree of Ḡ rooted at target.
	rootIdx := sbarMap[target]
	domRes, err := dominator.Build(induced, rootIdx, dominator.In, dominator.WithLeftout())
	if err != nil {
		return 0, nil, false, err
	}

	leftoutOriginal := make([]bool, n)
	for _, idx := range domRes.Leftout {
		leftoutOriginal[invmap[idx]] = true
	}

	// Step 3: Γ(S), with leftout vertices removed.
	var gammaS []int
	if s.Size() == 0 {
		gammaS = []int{source}
	} else {
		seen := make([]bool, n)
		for _, u := range s.AsVector() {
			for _, e := range g.OutEdges(u) {
				w := g.To(e)
				if inS[w] || seen[w] {
					continue
				}
				seen[w] = true
				gammaS = append(gammaS, w)
			}
		}
	}
	filtered := make([]int, 0, len(gammaS))
	for _, v := range gammaS {
		if !leftoutOriginal[v] {
			filtered = append(filtered, v)
		}
	}
	gammaS = filtered

	if len(gammaS) == 0 {
		return 0, nil, false, nil
	}

	// Step 4: minimal elements of Γ(S) under dominance. domTree holds one
	// parent->child edge per reachable non-root vertex: the orientation
	// xdfs.DFS needs for a top-down walk. dominator.Result.Tree is not
	// reused here because Mode In's Tree points child->parent (the
	// accessor direction dominator.Build(..., In, ...) naturally
	// produces, see dominator.buildTree), the opposite of what a
	// descendant collection needs.
	domTree := digraph.New(k)
	for idx := 0; idx < k; idx++ {
		if idx == rootIdx {
			continue
		}
		p := domRes.Dom[idx]
		if p < 0 {
			continue // unreachable from root; not part of the tree walk
		}
		_, _ = domTree.AddEdge(p, idx)
	}
	domTree.Freeze()

	children := make([][]int, k)
	for idx := 0; idx < k; idx++ {
		for _, e := range domTree.OutEdges(idx) {
			children[idx] = append(children[idx], domTree.To(e))
		}
	}

	isGamma := make([]bool, k)
	for _, v := range gammaS {
		isGamma[sbarMap[v]] = true
	}

	// A Γ(S) vertex is minimal when no other Γ(S) vertex lies below it in
	// the dominator tree; each frame carries its nearest Γ(S) ancestor.
	minimal := make([]bool, k)
	type frame struct {
		idx      int
		gammaAnc int
	}
	stack := []frame{{rootIdx, -1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		gammaAnc := f.gammaAnc
		if isGamma[f.idx] {
			minimal[f.idx] = true
			if gammaAnc >= 0 {
				minimal[gammaAnc] = false
			}
			gammaAnc = f.idx
		}
		for _, c := range children[f.idx] {
			stack = append(stack, frame{c, gammaAnc})
		}
	}

	var m []int
	for idx := 0; idx < k; idx++ {
		if minimal[idx] {
			m = append(m, idx)
		}
	}

	// Step 5/6: try each minimal element until one's provisional frontier
	// avoids T and target.
	for _, idx := range m {
		nu := xdfs.DFS(domTree, idx).Order // Nu(v): the dominator-subtree rooted at idx
		nuOriginal := make([]bool, n)
		for _, d := range nu {
			nuOriginal[invmap[d]] = true
		}

		seeds := make([]int, 0, len(gammaS))
		for _, u := range gammaS {
			if nuOriginal[u] {
				seeds = append(seeds, u)
			}
		}
		trial := xbfs.BFS(g, seeds, xbfs.WithRestrict(nuOriginal))

		violates := false
		for u := 0; u < n; u++ {
			if !trial.Visited[u] {
				continue
			}
			if u == target || t.IsElement(u) {
				violates = true
				break
			}
		}
		if violates {
			continue
		}

		nuPlusLeftout := nuOriginal
		for v := 0; v < n; v++ {
			if leftoutOriginal[v] {
				nuPlusLeftout[v] = true
			}
		}

		vOrig := invmap[idx]
		final := xbfs.BFS(g, []int{vOrig}, xbfs.WithRestrict(nuPlusLeftout))

		return vOrig, append([]int(nil), final.Order...), true, nil
	}

	return 0, nil, false, nil
}

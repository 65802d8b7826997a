// SPDX-License-Identifier: MIT
// Package provanshier implements the generic Provan-Shier recursive
// binary search-tree enumerator of (s,t) cuts (component C8), plus the
// two pivot strategies that specialize it: CutPivot_AllCuts (C6, file
// pivot_allcuts.go) for enumerating every (s,t) cut, and CutPivot_MinCuts
// (C7, file pivot_mincuts.go) for enumerating every minimum (s,t) cut.
//
// The search engine itself (Search, in search.go) knows nothing about
// cuts, dominators, or flow -- it only knows how to grow S and T
// according to whatever (v, I(S,v)) a Pivot returns, which is exactly
// the separation spec §4.6 describes.
package provanshier

import "github.com/katalvlaran/graphcuts/digraph"

// Pivot computes (v, I(S,v)) at one recursion node, per spec §4.7/§4.8's
// contract. ok is false when I(S,v) is empty (the pivot contract's
// "undefined" case): the search then emits S as a candidate partition
// instead of recursing further.
type Pivot interface {
	Pivot(g *digraph.Graph, s SVertices, t TVertices, source, target int) (v int, isv []int, ok bool, err error)
}

// SVertices is the read-only view of the "S" state a Pivot needs:
// membership test and the current vertex set.
type SVertices interface {
	IsElement(v int) bool
	AsVector() []int
	Size() int
}

// TVertices is the read-only view of the "T" state a Pivot needs.
type TVertices interface {
	IsElement(v int) bool
}

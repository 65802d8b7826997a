// SPDX-License-Identifier: MIT
// Package cuts implements the AllStCuts / AllStMinCuts façades (C9):
// translating the vertex partitions provanshier.Search enumerates back
// into edge cuts of the original graph, per spec §4.9.
package cuts

// Result is the outcome of AllStCuts: every (s,t) edge cut and the
// source-side vertex partition that produced it, in matching order.
type Result struct {
	Cuts       [][]int // Cuts[i] = edge ids {e : from(e) in Partitions[i], to(e) not in Partitions[i]}
	Partitions [][]int
}

// MinCutResult is the outcome of AllStMinCuts: the minimum-cut value,
// plus every minimum (s,t) edge cut and the source-side vertex
// partition (expanded back to the original vertex set) that produced
// it.
type MinCutResult struct {
	Value      int64
	Cuts       [][]int
	Partitions [][]int
}

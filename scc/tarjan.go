// SPDX-License-Identifier: MIT
// Package scc computes strongly connected components and contracts a
// digraph.Graph into its condensation -- the collaborator
// cuts.AllStMinCuts needs to turn a reverse residual graph into the
// graph CutPivot_MinCuts enumerates over (spec §4.9 step (c)).
//
// Tarjan finds components with the same three-color, low-link DFS idiom
// lvlath/dfs uses for cycle detection, but iteratively (an explicit
// stack of frames) rather than recursively, so component size is not
// bounded by Go's goroutine stack.
package scc

import "github.com/katalvlaran/graphcuts/digraph"

// Tarjan returns, for a graph on n vertices, comp[v] = the id of v's
// strongly connected component in [0, numComponents), and the component
// count. Component ids are assigned in reverse topological order of the
// condensation, as Tarjan's algorithm naturally produces.
func Tarjan(g *digraph.Graph) (comp []int, numComponents int) {
	n := g.N()
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	comp = make([]int, n)
	for v := range index {
		index[v] = -1
		comp[v] = -1
	}

	var stack []int // Tarjan's component stack
	nextIndex := 0

	type frame struct {
		v       int
		edgeIdx int
	}

	for root := 0; root < n; root++ {
		if index[root] != -1 {
			continue
		}

		call := []frame{{v: root, edgeIdx: 0}}
		index[root] = nextIndex
		lowlink[root] = nextIndex
		nextIndex++
		stack = append(stack, root)
		onStack[root] = true

		for len(call) > 0 {
			top := &call[len(call)-1]
			edges := g.OutEdges(top.v)

			if top.edgeIdx < len(edges) {
				e := edges[top.edgeIdx]
				top.edgeIdx++
				w := g.To(e)

				switch {
				case index[w] == -1:
					index[w] = nextIndex
					lowlink[w] = nextIndex
					nextIndex++
					stack = append(stack, w)
					onStack[w] = true
					call = append(call, frame{v: w, edgeIdx: 0})
				case onStack[w]:
					if index[w] < lowlink[top.v] {
						lowlink[top.v] = index[w]
					}
				}
				continue
			}

			// Finished exploring top.v's out-edges.
			call = call[:len(call)-1]
			if len(call) > 0 {
				parent := &call[len(call)-1]
				if lowlink[top.v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[top.v]
				}
			}

			if lowlink[top.v] == index[top.v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = numComponents
					if w == top.v {
						break
					}
				}
				numComponents++
			}
		}
	}

	return comp, numComponents
}

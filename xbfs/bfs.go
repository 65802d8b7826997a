// SPDX-License-Identifier: MIT
// File: bfs.go
// Role: multi-source BFS restricted to a vertex subset, in either edge
// direction. Complexity O(n+m) per call.
package xbfs

import "github.com/katalvlaran/graphcuts/digraph"

// BFS explores g from every vertex in sources, restricted per opts, and
// returns which vertices were reached and the order they were reached
// in. Sources are marked visited unconditionally.
func BFS(g *digraph.Graph, sources []int, opts ...Option) *Result {
	o := buildOptions(opts)
	n := g.N()
	res := &Result{
		Visited: make([]bool, n),
		Order:   make([]int, 0, n),
	}

	queue := make([]int, 0, len(sources))
	for _, s := range sources {
		if res.Visited[s] {
			continue
		}
		res.Visited[s] = true
		res.Order = append(res.Order, s)
		queue = append(queue, s)
	}

	for head := 0; head < len(queue); head++ {
		u := queue[head]

		var edges []int
		if o.reverse {
			edges = g.InEdges(u)
		} else {
			edges = g.OutEdges(u)
		}

		for _, e := range edges {
			var v int
			if o.reverse {
				v = g.From(e)
			} else {
				v = g.To(e)
			}
			if res.Visited[v] {
				continue
			}
			if o.restrict != nil && !o.restrict[v] {
				continue
			}
			res.Visited[v] = true
			res.Order = append(res.Order, v)
			queue = append(queue, v)
		}
	}

	return res
}

// SPDX-License-Identifier: MIT
// Package xdfs provides depth-first search over a digraph.Graph,
// restricted to an optional vertex subset -- the DFS counterpart to
// xbfs, adapted from lvlath/dfs's recursive walker.
//
// provanshier's CutPivot_AllCuts uses it to collect Nu(v): the
// descendants of v in the dominator tree, by running DFS over a
// parent->child digraph.Graph built from dominator.Result.Dom (the
// orientation a top-down walk needs; dominator.Result.Tree points the
// other way for Mode In, see pivot_allcuts.go).
package xdfs

import "github.com/katalvlaran/graphcuts/digraph"

// Result is the outcome of a DFS call.
type Result struct {
	Visited []bool
	Order   []int // preorder
}

// Option configures a DFS call.
type Option func(*options)

type options struct {
	restrict []bool
}

// WithRestrict limits traversal to vertices v with allowed[v] == true.
func WithRestrict(allowed []bool) Option {
	return func(o *options) { o.restrict = allowed }
}

// DFS explores g from start, restricted per opts, using an explicit
// stack (no recursion) so descendant sets of arbitrary depth never risk
// a Go stack overflow.
func DFS(g *digraph.Graph, start int, opts ...Option) *Result {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	n := g.N()
	res := &Result{
		Visited: make([]bool, n),
		Order:   make([]int, 0, n),
	}

	stack := []int{start}
	res.Visited[start] = true

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Order = append(res.Order, u)

		for _, e := range g.OutEdges(u) {
			v := g.To(e)
			if res.Visited[v] {
				continue
			}
			if o.restrict != nil && !o.restrict[v] {
				continue
			}
			res.Visited[v] = true
			stack = append(stack, v)
		}
	}

	return res
}

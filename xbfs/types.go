// SPDX-License-Identifier: MIT
// Package xbfs provides breadth-first search over a digraph.Graph,
// restricted to an optional vertex subset and an optional traversal
// direction -- the "BFS with restricted-vertex support" collaborator
// spec.md treats as a contract-only dependency of CutPivot_AllCuts and
// CutPivot_MinCuts.
//
// It is adapted from lvlath/bfs's walker/Option shape, trading string
// vertex ids and FilterNeighbor hooks for integer ids and a fixed
// membership bitmap (the restriction a single BFS call needs), and
// adding a Reverse direction so the same implementation serves both the
// forward BFS CutPivot_AllCuts uses to grow I(S,v) and the reverse BFS
// CutPivot_MinCuts uses to find predecessors of v.
package xbfs

import "github.com/katalvlaran/graphcuts/digraph"

// Result is the outcome of a BFS call: which vertices were reached and
// in what order.
type Result struct {
	Visited []bool
	Order   []int
}

// Option configures a BFS call.
type Option func(*options)

type options struct {
	restrict []bool // nil means "no restriction, every vertex is allowed"
	reverse  bool
}

// WithRestrict limits traversal to vertices v with allowed[v] == true.
// Source vertices are always visited regardless of allowed; a caller
// that wants only allowed vertices as seeds filters sources itself
// (CutPivot_AllCuts's trial BFS seeds only the Γ(S) vertices in Nu(v)).
func WithRestrict(allowed []bool) Option {
	return func(o *options) { o.restrict = allowed }
}

// WithReverse walks in-edges instead of out-edges.
func WithReverse() Option {
	return func(o *options) { o.reverse = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

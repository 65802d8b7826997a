// SPDX-License-Identifier: MIT
// File: transforms.go
// Role: GraphTransforms (component C4 of the design): Even-Tarjan vertex
// splitting, residual graph construction, and reverse residual graph
// construction. These are the building-block transformations that feed
// maxflow, dominator, and provanshier.
package digraph

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphcuts/graphcutserr"
)

// InfinityCapacity returns the sentinel value Even-Tarjan uses in place of
// a true +Inf capacity: |V(G)| of the ORIGINAL (pre-reduction) graph. A
// saturating flow on the reduced graph can never exceed n (every unit of
// flow must cross a distinct inner edge, of which there are exactly n),
// so n is a safe upper bound for any downstream max-flow algorithm that
// compares capacities as ordinary integers rather than true infinities.
func InfinityCapacity(originalN int) int64 { return int64(originalN) }

// EvenTarjanReduction splits every vertex v of g into an "in" copy v and
// an "out" copy v+n, connected by a capacity-1 inner edge, and replaces
// every original edge (u,v) with two infinite-capacity edges u+n -> v and
// v+n -> u. The result has 2n vertices and 2m+n edges.
//
// withCapacity controls whether the parallel capacity vector is built;
// skip it when the caller only needs the shape of the reduced graph.
//
// Errors: graphcutserr.ErrOverflow if 2m+n would overflow an int.
func EvenTarjanReduction(g *Graph, withCapacity bool) (*Graph, []int64, error) {
	n, m := g.N(), g.M()

	// overflow check performed before any allocation, per spec §7.
	if m > (math.MaxInt-n)/2 {
		return nil, nil, errors.Wrapf(graphcutserr.ErrOverflow,
			"even-tarjan reduction: 2*%d+%d exceeds platform edge-count limit", m, n)
	}

	reduced := New(2 * n)
	var capacity []int64
	if withCapacity {
		capacity = make([]int64, 0, 2*m+n)
	}

	// Inner edges v -> v+n, capacity 1, ids [0,n).
	for v := 0; v < n; v++ {
		if _, err := reduced.AddEdge(v, v+n); err != nil {
			return nil, nil, errors.Wrap(err, "even-tarjan reduction: inner edge")
		}
		if withCapacity {
			capacity = append(capacity, 1)
		}
	}

	inf := InfinityCapacity(n)
	for e := 0; e < m; e++ {
		u, v := g.From(e), g.To(e)
		if _, err := reduced.AddEdge(u+n, v); err != nil {
			return nil, nil, errors.Wrap(err, "even-tarjan reduction: outer edge u+n->v")
		}
		if withCapacity {
			capacity = append(capacity, inf)
		}
		if _, err := reduced.AddEdge(v+n, u); err != nil {
			return nil, nil, errors.Wrap(err, "even-tarjan reduction: outer edge v+n->u")
		}
		if withCapacity {
			capacity = append(capacity, inf)
		}
	}

	reduced.Freeze()

	return reduced, capacity, nil
}

// ResidualGraph builds the forward residual graph of g under capacity c
// and flow f: one edge (from(e), to(e)) per original edge whose residual
// c(e)-f(e) is strictly positive, plus the parallel residual_capacity
// vector c(e)-f(e).
func ResidualGraph(g *Graph, capacity, flow []int64) (*Graph, []int64, error) {
	m := g.M()
	if len(capacity) != m || len(flow) != m {
		return nil, nil, errors.Wrapf(graphcutserr.ErrInvalidArgument,
			"residual graph: len(capacity)=%d len(flow)=%d, want %d", len(capacity), len(flow), m)
	}

	residual := New(g.N())
	residualCap := make([]int64, 0, m)
	for e := 0; e < m; e++ {
		if r := capacity[e] - flow[e]; r > 0 {
			if _, err := residual.AddEdge(g.From(e), g.To(e)); err != nil {
				return nil, nil, errors.Wrap(err, "residual graph")
			}
			residualCap = append(residualCap, r)
		}
	}
	residual.Freeze()

	return residual, residualCap, nil
}

// ReverseResidualGraph builds the graph used to certify minimum cuts: for
// each original edge e, include a forward arc (from(e),to(e)) when
// f(e) < c(e), and a reverse arc (to(e),from(e)) when f(e) > 0. Passing a
// nil capacity treats every edge as unit capacity (c(e)=1), matching the
// unweighted case.
//
// Per spec §9's first design note, "restricted" reverse-BFS over this
// graph (CutPivot_MinCuts) must use the induced vertex set K consistently
// -- that equivalence is resolved in DESIGN.md, not here.
func ReverseResidualGraph(g *Graph, capacity, flow []int64) (*Graph, error) {
	m := g.M()
	if len(flow) != m || (capacity != nil && len(capacity) != m) {
		return nil, errors.Wrapf(graphcutserr.ErrInvalidArgument,
			"reverse residual graph: len(flow)=%d len(capacity)=%d, want %d", len(flow), len(capacity), m)
	}

	reverse := New(g.N())
	for e := 0; e < m; e++ {
		c := int64(1)
		if capacity != nil {
			c = capacity[e]
		}
		from, to := g.From(e), g.To(e)
		if flow[e] < c {
			if _, err := reverse.AddEdge(from, to); err != nil {
				return nil, errors.Wrap(err, "reverse residual graph: forward arc")
			}
		}
		if flow[e] > 0 {
			if _, err := reverse.AddEdge(to, from); err != nil {
				return nil, errors.Wrap(err, "reverse residual graph: reverse arc")
			}
		}
	}
	reverse.Freeze()

	return reverse, nil
}

// Reverse returns a new graph on the same vertex set with every edge of
// g flipped (to(e), from(e)) in place of (from(e), to(e)). Edge ids are
// not preserved across the flip -- callers that need to map a reversed
// edge back to g's edge ids must keep their own side table.
//
// cuts.AllStMinCuts uses this to re-orient the SCC condensation of the
// reverse residual graph before handing it to CutPivot_MinCuts: strongly
// connected components are invariant under a full edge reversal, so
// scc.Tarjan/scc.Contract need not be re-run, but CutPivot_MinCuts's
// in-degree-0/reverse-BFS convention assumes comp(source) is a
// condensation root, which only holds once the graph is reversed back
// to the orientation flow actually moves in.
func Reverse(g *Graph) (*Graph, error) {
	reversed := New(g.N())
	for e := 0; e < g.M(); e++ {
		if _, err := reversed.AddEdge(g.To(e), g.From(e)); err != nil {
			return nil, errors.Wrap(err, "reverse graph")
		}
	}
	reversed.Freeze()

	return reversed, nil
}

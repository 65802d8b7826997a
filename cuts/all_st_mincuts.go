// SPDX-License-Identifier: MIT
package cuts

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphcuts/digraph"
	"github.com/katalvlaran/graphcuts/graphcutserr"
	"github.com/katalvlaran/graphcuts/maxflow"
	"github.com/katalvlaran/graphcuts/metrics"
	"github.com/katalvlaran/graphcuts/provanshier"
	"github.com/katalvlaran/graphcuts/scc"
	"github.com/katalvlaran/graphcuts/telemetry"
)

// AllStMinCuts enumerates every minimum (s,t) edge cut of g under
// capacity, following spec §4.9's eight-step driver:
//
//	(a) Maxflow(G,s,t,c) -> flow vector and value.
//	(b) Build the reverse residual graph R from (G,c,flow).
//	(c) SCC-contract R: compute strong components, remap vertices,
//	    contract, simplifying multi-edges and dropping self-loops.
//	(d) Mark the active set on the contracted graph: a contracted vertex
//	    is active iff it is the endpoint of an original edge carrying
//	    positive flow.
//	(e) new source = comp(s), new target = comp(t).
//	(f) Enumerate partitions of the contracted graph with CutPivot_MinCuts.
//	(g) Expand each contracted partition back to original vertices via
//	    the inverse component map ("revmap").
//	(h) Edge cuts are the subset of positive-flow original edges crossing
//	    the partition.
//
// Fails with graphcutserr.ErrUnimplemented on an undirected graph, with
// graphcutserr.ErrInvalidArgument when source/target are out-of-range,
// equal, or any capacity is non-positive. All preconditions are
// validated before any allocation, per spec §7.
func AllStMinCuts(ctx context.Context, g *digraph.Graph, source, target int, capacity []int64) (*MinCutResult, error) {
	n := g.N()
	if !g.Directed() {
		return nil, errors.Wrap(graphcutserr.ErrUnimplemented, "AllStMinCuts: undirected graph")
	}
	if source < 0 || source >= n || target < 0 || target >= n {
		return nil, errors.Wrapf(graphcutserr.ErrInvalidArgument,
			"AllStMinCuts: source=%d target=%d out of range [0,%d)", source, target, n)
	}
	if source == target {
		return nil, errors.Wrap(graphcutserr.ErrInvalidArgument, "AllStMinCuts: source equals target")
	}
	if len(capacity) != g.M() {
		return nil, errors.Wrapf(graphcutserr.ErrInvalidArgument,
			"AllStMinCuts: len(capacity)=%d != g.M()=%d", len(capacity), g.M())
	}
	for e, c := range capacity {
		if c <= 0 {
			return nil, errors.Wrapf(graphcutserr.ErrInvalidArgument,
				"AllStMinCuts: non-positive capacity %d on edge %d", c, e)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartAllStMinCuts(ctx, n, g.M(), source, target)
	defer span.End()

	// (a) Maxflow.
	value, flow, err := maxflow.Dinic(g, source, target, capacity, maxflow.FlowOptions{Ctx: ctx})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	metrics.MaxflowValue.Observe(float64(value))

	// (b) Reverse residual graph.
	reverse, err := digraph.ReverseResidualGraph(g, capacity, flow)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	// (c) SCC-contract R.
	comp, numComponents := scc.Tarjan(reverse)
	contracted, revmap := scc.Contract(reverse, comp, numComponents)

	// R's edges run target-ward to source-ward (it is built from positive
	// flow, which moves source-to-target), so in the condensation of R
	// itself comp(source) is a SINK, never a root. CutPivot_MinCuts's
	// in-degree-0 minimal-vertex search assumes a root to seed S from, so
	// feed it the reverse of the condensation instead; SCCs are the same
	// set either way, so comp/revmap/active computed from reverse all
	// still apply unchanged.
	pivotGraph, err := digraph.Reverse(contracted)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	// (d) Active set: contracted vertex is active iff it is the endpoint
	// of an original edge carrying positive flow.
	activeOriginal := make([]bool, n)
	for e := 0; e < g.M(); e++ {
		if flow[e] > 0 {
			activeOriginal[g.From(e)] = true
			activeOriginal[g.To(e)] = true
		}
	}
	active := make([]bool, numComponents)
	for c := 0; c < numComponents; c++ {
		for _, v := range revmap[c] {
			if activeOriginal[v] {
				active[c] = true
				break
			}
		}
	}

	// (e) New source/target.
	newSource, newTarget := comp[source], comp[target]

	// (f) Enumerate partitions of the contracted graph.
	result := &MinCutResult{Value: value}
	pivot := provanshier.MinCutsPivot{Active: active}
	searchErr := provanshier.Search(pivotGraph, pivot, newSource, newTarget, "min_cuts", func(contractedPartition []int) {
		// (g) Expand back to original vertices.
		var partition []int
		for _, c := range contractedPartition {
			partition = append(partition, revmap[c]...)
		}

		// (h) Edge cut: positive-flow original edges crossing the partition.
		inP := make([]bool, n)
		for _, v := range partition {
			inP[v] = true
		}
		var cut []int
		for e := 0; e < g.M(); e++ {
			if flow[e] > 0 && inP[g.From(e)] && !inP[g.To(e)] {
				cut = append(cut, e)
			}
		}

		result.Partitions = append(result.Partitions, partition)
		result.Cuts = append(result.Cuts, cut)
		metrics.CutsEmitted.WithLabelValues("min_cuts").Inc()
	})
	if searchErr != nil {
		telemetry.RecordError(span, searchErr)
		return nil, searchErr
	}

	return result, nil
}

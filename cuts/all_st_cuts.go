// SPDX-License-Identifier: MIT
package cuts

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphcuts/digraph"
	"github.com/katalvlaran/graphcuts/graphcutserr"
	"github.com/katalvlaran/graphcuts/metrics"
	"github.com/katalvlaran/graphcuts/provanshier"
	"github.com/katalvlaran/graphcuts/telemetry"
)

// AllStCuts enumerates every (s,t) edge cut of g: initializes empty S, T,
// drives provanshier.Search with CutPivot_AllCuts, and for each emitted
// source-side partition P computes the edge cut {e : from(e) in P,
// to(e) not in P}, per spec §4.9.
//
// Fails with graphcutserr.ErrUnimplemented on an undirected graph, and
// with graphcutserr.ErrInvalidArgument when source/target are
// out-of-range or equal. All preconditions are validated before any
// allocation, per spec §7.
func AllStCuts(ctx context.Context, g *digraph.Graph, source, target int) (*Result, error) {
	n := g.N()
	if !g.Directed() {
		return nil, errors.Wrap(graphcutserr.ErrUnimplemented, "AllStCuts: undirected graph")
	}
	if source < 0 || source >= n || target < 0 || target >= n {
		return nil, errors.Wrapf(graphcutserr.ErrInvalidArgument,
			"AllStCuts: source=%d target=%d out of range [0,%d)", source, target, n)
	}
	if source == target {
		return nil, errors.Wrap(graphcutserr.ErrInvalidArgument, "AllStCuts: source equals target")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartAllStCuts(ctx, n, g.M(), source, target)
	defer span.End()

	result := &Result{}
	err := provanshier.Search(g, provanshier.AllCutsPivot{}, source, target, "all_cuts", func(partition []int) {
		inP := make([]bool, n)
		for _, v := range partition {
			inP[v] = true
		}
		var cut []int
		for e := 0; e < g.M(); e++ {
			if inP[g.From(e)] && !inP[g.To(e)] {
				cut = append(cut, e)
			}
		}

		result.Partitions = append(result.Partitions, partition)
		result.Cuts = append(result.Cuts, cut)
		metrics.CutsEmitted.WithLabelValues("all_cuts").Inc()
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	return result, nil
}

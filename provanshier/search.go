// SPDX-License-Identifier: MIT
// File: search.go
// Role: ProvanShierSearch (C8): the generic recursive binary search-tree
// enumerator of (s,t) cuts described in spec §4.6. Termination is
// guaranteed by the pivot's contract -- each recursion strictly grows
// S union T toward saturation (spec §4.6, §4.7 step 5/6, §4.8 step 4/5).
package provanshier

import (
	"context"

	"github.com/katalvlaran/graphcuts/digraph"
	"github.com/katalvlaran/graphcuts/metrics"
	"github.com/katalvlaran/graphcuts/structures"
	"github.com/katalvlaran/graphcuts/telemetry"
)

// EmitFunc receives one candidate source-side partition, as a freshly
// copied slice of vertex ids (safe to retain).
type EmitFunc func(partition []int)

// Search enumerates (s,t) cuts over g via pivot, starting from S = T =
// empty, and calls emit once per candidate source-side partition.
// strategy labels the graphcuts_pivot_calls_total metric ("all_cuts" or
// "min_cuts") -- it identifies the caller, not the pivot's own logic.
//
// Per spec §5, Search is single-threaded and synchronous: it does not
// accept a context, and the pivot body is not interruptible mid-call. A
// caller that needs cancellation between emissions wraps emit itself
// (e.g. to check ctx.Err() and return early via a sentinel panic/recover,
// or simply stop using further results). Package cuts checks its context
// only before calling Search; its emit callbacks do not check it.
func Search(g *digraph.Graph, pivot Pivot, source, target int, strategy string, emit EmitFunc) error {
	n := g.N()

	_, span := telemetry.StartProvanShierSearch(context.Background(), n, g.M(), source, target)
	defer span.End()

	s := structures.NewBatchedMarkedQueue(n)
	t := structures.NewElementStack(n)

	err := search(g, pivot, s, t, source, target, n, strategy, emit)
	telemetry.RecordError(span, err)

	return err
}

func search(
	g *digraph.Graph,
	pivot Pivot,
	s *structures.BatchedMarkedQueue,
	t *structures.ElementStack,
	source, target, n int,
	strategy string,
	emit EmitFunc,
) error {
	metrics.PivotCalls.WithLabelValues(strategy).Inc()
	v, isv, ok, err := pivot.Pivot(g, s, t, source, target)
	if err != nil {
		return err
	}

	if !ok {
		if size := s.Size(); size > 0 && size < n {
			emit(append([]int(nil), s.AsVector()...))
		}
		return nil
	}

	// Left branch: leave v out of S, push it onto T instead.
	t.Push(v)
	if err := search(g, pivot, s, t, source, target, n, strategy, emit); err != nil {
		t.Pop()
		return err
	}
	t.Pop()

	// Right branch: adopt the whole pivot frontier I(S,v) into S.
	s.StartBatch()
	for _, u := range isv {
		if !s.IsElement(u) {
			s.Push(u)
		}
	}
	if err := search(g, pivot, s, t, source, target, n, strategy, emit); err != nil {
		s.PopBackBatch()
		return err
	}
	s.PopBackBatch()

	return nil
}

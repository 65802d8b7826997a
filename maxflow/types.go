// SPDX-License-Identifier: MIT
// Package maxflow computes maximum flow over a digraph.Graph via Dinic's
// algorithm (level graph + blocking flow), adapted from
// lvlath/flow/dinic.go to the 0-based integer vertex/edge model:
// capacity and flow are []int64 indexed by edge id instead of a nested
// map[string]map[string]float64.
package maxflow

import "context"

// FlowOptions configures Dinic, carried forward from the teacher's
// flow.FlowOptions:
//   - Epsilon: residual capacities <= Epsilon are treated as exhausted.
//     Kept as int64 here since capacities are integral; zero means "use
//     the default of 0" (exact integer comparison).
//   - Verbose: carried over from the teacher's options; Dinic does not
//     read it, and no caller in this module logs augmentations.
//   - LevelRebuildInterval: rebuild the level graph every N augmenting
//     paths found in the current phase; 0 disables early rebuilding
//     (rebuild only when the phase is exhausted).
type FlowOptions struct {
	Ctx                  context.Context
	Epsilon              int64
	Verbose              bool
	LevelRebuildInterval int
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

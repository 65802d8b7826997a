// SPDX-License-Identifier: MIT
package maxflow

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphcuts/digraph"
	"github.com/katalvlaran/graphcuts/graphcutserr"
)

// Dinic computes the maximum flow from source to sink in g under
// capacity (indexed by edge id, len(capacity) == g.M()), using Dinic's
// algorithm: repeated BFS level-graph construction followed by
// DFS-based blocking flow, exactly as lvlath/flow.Dinic does, but over
// []int64 capacity/flow vectors instead of a string-keyed capacity map.
//
// There is no separate residual graph type here: the residual network
// is represented implicitly by combining, at each vertex v, its forward
// edges (traversable while capacity[e]-flow[e] > Epsilon) with its
// in-edges traversed backwards (traversable while flow[e] > Epsilon,
// i.e. "unsending" flow already pushed along that edge) -- the same
// residual-capacity rule spec §3/§4.4 define for ResidualGraph, just
// evaluated on demand instead of materialized as its own graph.
//
// Returns the total flow value and a flow vector aligned with g's edge
// ids, suitable for digraph.ResidualGraph / digraph.ReverseResidualGraph.
func Dinic(g *digraph.Graph, source, sink int, capacity []int64, opts FlowOptions) (maxFlow int64, flow []int64, err error) {
	opts.normalize()
	ctx := opts.Ctx

	n := g.N()
	m := g.M()
	if len(capacity) != m {
		return 0, nil, errors.Wrapf(graphcutserr.ErrInvalidArgument,
			"Dinic: len(capacity)=%d != g.M()=%d", len(capacity), m)
	}
	if source < 0 || source >= n || sink < 0 || sink >= n {
		return 0, nil, errors.Wrapf(graphcutserr.ErrInvalidArgument,
			"Dinic: source/sink out of range [0,%d)", n)
	}

	flow = make([]int64, m)
	if source == sink {
		return 0, flow, nil
	}

	level := make([]int, n)
	iterOut := make([]int, n)
	iterIn := make([]int, n)

	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		if !buildLevelGraph(g, capacity, flow, source, sink, level, opts.Epsilon) {
			break
		}

		for v := range iterOut {
			iterOut[v] = 0
			iterIn[v] = 0
		}

		augmentCount := 0
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := dfsBlockingFlow(g, capacity, flow, level, iterOut, iterIn, source, sink, math.MaxInt64, opts.Epsilon)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, flow, nil
}

// buildLevelGraph runs BFS from source over residual arcs, filling level
// (unreachable vertices get -1), and reports whether sink was reached.
func buildLevelGraph(g *digraph.Graph, capacity, flow []int64, source, sink int, level []int, eps int64) bool {
	for v := range level {
		level[v] = -1
	}
	level[source] = 0
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]

		for _, e := range g.OutEdges(u) {
			if capacity[e]-flow[e] <= eps {
				continue
			}
			w := g.To(e)
			if level[w] < 0 {
				level[w] = level[u] + 1
				queue = append(queue, w)
			}
		}
		for _, e := range g.InEdges(u) {
			if flow[e] <= eps {
				continue
			}
			w := g.From(e)
			if level[w] < 0 {
				level[w] = level[u] + 1
				queue = append(queue, w)
			}
		}
	}

	return level[sink] >= 0
}

// dfsBlockingFlow pushes one augmenting path worth of flow (up to
// available) from u toward sink along the level graph, resuming each
// vertex's forward/backward arc scan from iterOut/iterIn (Dinic's
// current-arc optimization).
func dfsBlockingFlow(
	g *digraph.Graph,
	capacity, flow []int64,
	level []int,
	iterOut, iterIn []int,
	u, sink int,
	available int64,
	eps int64,
) int64 {
	if u == sink {
		return available
	}

	outEdges := g.OutEdges(u)
	for ; iterOut[u] < len(outEdges); iterOut[u]++ {
		e := outEdges[iterOut[u]]
		residual := capacity[e] - flow[e]
		if residual <= eps {
			continue
		}
		w := g.To(e)
		if level[w] != level[u]+1 {
			continue
		}
		send := available
		if residual < send {
			send = residual
		}
		pushed := dfsBlockingFlow(g, capacity, flow, level, iterOut, iterIn, w, sink, send, eps)
		if pushed > 0 {
			flow[e] += pushed
			return pushed
		}
	}

	inEdges := g.InEdges(u)
	for ; iterIn[u] < len(inEdges); iterIn[u]++ {
		e := inEdges[iterIn[u]]
		if flow[e] <= eps {
			continue
		}
		w := g.From(e)
		if level[w] != level[u]+1 {
			continue
		}
		send := available
		if flow[e] < send {
			send = flow[e]
		}
		pushed := dfsBlockingFlow(g, capacity, flow, level, iterOut, iterIn, w, sink, send, eps)
		if pushed > 0 {
			flow[e] -= pushed
			return pushed
		}
	}

	return 0
}

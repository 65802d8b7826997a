// SPDX-License-Identifier: MIT
// Package genutil generates random digraph.Graph fixtures for tests, the
// CLI, and property-fuzz checks. Adapted from lvlath/builder's
// RandomSparse constructor -- an Erdos-Renyi-like generator sampling
// each ordered pair independently with probability p -- but built
// directly over digraph.Graph's integer vertex ids instead of the
// builder.Constructor/core.Graph pipeline, and driven by math/rand/v2
// instead of a caller-supplied RNG interface.
package genutil

import (
	"math/rand/v2"

	"github.com/katalvlaran/graphcuts/digraph"
)

// RandomDirected samples a directed graph on n vertices (n >= 1),
// including each ordered pair (i,j), i != j, independently with
// probability p (0 <= p <= 1), using rng for the Bernoulli trials.
// Self-loops are never generated: spec's graph model has no use for
// them, and every downstream algorithm here (Even-Tarjan reduction,
// dominators, residual graphs) assumes a loop-free input.
func RandomDirected(n int, p float64, rng *rand.Rand) *digraph.Graph {
	g := digraph.New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < p {
				_, _ = g.AddEdge(i, j)
			}
		}
	}
	g.Freeze()

	return g
}

// RandomCapacity samples a positive integer capacity in [1,maxCap] for
// each of g's m edges, the form AllStMinCuts requires (spec §7:
// non-positive capacities are invalid).
func RandomCapacity(m int, maxCap int64, rng *rand.Rand) []int64 {
	capacity := make([]int64, m)
	for e := range capacity {
		capacity[e] = 1 + rng.Int64N(maxCap)
	}

	return capacity
}

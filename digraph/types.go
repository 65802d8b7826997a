// SPDX-License-Identifier: MIT
// Package digraph is the 0-based integer-indexed directed graph container
// underlying every algorithm in graphcuts: vertices are integers in [0,n),
// edges are integers in [0,m) with From(e)/To(e) accessors, matching the
// data model of the Even-Tarjan reduction, the Lengauer-Tarjan dominator
// tree, and the Provan-Shier cut enumerator.
//
// digraph plays the role lvlath/core.Graph plays for string-keyed graphs,
// but is laid out for the dense-integer model those algorithms require:
// edges are appended during a mutable build phase and compiled into CSR
// (compressed-sparse-row) adjacency by Freeze, after which the graph is
// read-only and safe for concurrent readers.
package digraph

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphcuts/graphcutserr"
)

// Graph is a directed graph on vertices [0,n) and edges [0,m).
//
// Construction happens under muBuild (mirroring lvlath/core.Graph's
// muVert/muEdgeAdj split): AddEdge may be called concurrently by an
// ingestion pipeline. Freeze compiles CSR adjacency once and clears the
// "dirty" flag; every algorithm in this module calls Freeze (idempotent)
// before it starts reading adjacency, so a frozen graph can be shared
// read-only across goroutines even though the algorithms above it run
// single-threaded per call (spec §5).
type Graph struct {
	muBuild sync.RWMutex

	n        int
	directed bool
	tails    []int // edge -> from
	heads    []int // edge -> to
	frozen   bool

	outStart []int // len n+1; outEdges[outStart[v]:outStart[v+1]] = out-edge ids of v
	outEdges []int
	inStart  []int
	inEdges  []int
}

// New returns an empty directed graph on n vertices (n >= 0). Every
// algorithm in this module requires a directed graph (spec §7's
// "unimplemented" failure mode exists for callers that hand it an
// undirected one); use NewUndirected to construct the rejected case.
func New(n int) *Graph {
	return &Graph{n: n, directed: true}
}

// NewUndirected returns an empty graph on n vertices marked undirected.
// The cuts façades reject such graphs with graphcutserr.ErrUnimplemented,
// and dominator.Build with graphcutserr.ErrInvalidArgument, before doing
// any work -- this
// constructor exists so callers (and tests) can exercise that
// precondition without a separate undirected container type.
func NewUndirected(n int) *Graph {
	return &Graph{n: n, directed: false}
}

// Directed reports whether this graph is directed.
func (g *Graph) Directed() bool {
	g.muBuild.RLock()
	defer g.muBuild.RUnlock()

	return g.directed
}

// N reports the number of vertices.
func (g *Graph) N() int {
	g.muBuild.RLock()
	defer g.muBuild.RUnlock()

	return g.n
}

// M reports the number of edges.
func (g *Graph) M() int {
	g.muBuild.RLock()
	defer g.muBuild.RUnlock()

	return len(g.tails)
}

// From returns the tail vertex of edge e.
func (g *Graph) From(e int) int { return g.tails[e] }

// To returns the head vertex of edge e.
func (g *Graph) To(e int) int { return g.heads[e] }

// AddEdge appends a new directed edge from -> to and returns its id.
// Valid for from, to in [0,n). Invalidates any previously compiled CSR
// adjacency; the caller must call Freeze again before traversal.
func (g *Graph) AddEdge(from, to int) (int, error) {
	g.muBuild.Lock()
	defer g.muBuild.Unlock()

	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return -1, errors.Wrapf(graphcutserr.ErrInvalidArgument,
			"AddEdge(%d,%d): endpoint out of range [0,%d)", from, to, g.n)
	}

	id := len(g.tails)
	g.tails = append(g.tails, from)
	g.heads = append(g.heads, to)
	g.frozen = false

	return id, nil
}

// Freeze compiles CSR adjacency from the current edge list. Idempotent:
// a second call on an unchanged graph is a cheap no-op check.
// Complexity: O(n+m).
func (g *Graph) Freeze() {
	g.muBuild.Lock()
	defer g.muBuild.Unlock()

	if g.frozen {
		return
	}

	m := len(g.tails)
	outDeg := make([]int, g.n+1)
	inDeg := make([]int, g.n+1)
	for e := 0; e < m; e++ {
		outDeg[g.tails[e]+1]++
		inDeg[g.heads[e]+1]++
	}
	for v := 0; v < g.n; v++ {
		outDeg[v+1] += outDeg[v]
		inDeg[v+1] += inDeg[v]
	}

	g.outStart = outDeg
	g.inStart = inDeg
	g.outEdges = make([]int, m)
	g.inEdges = make([]int, m)

	outCursor := append([]int(nil), outDeg[:g.n]...)
	inCursor := append([]int(nil), inDeg[:g.n]...)
	for e := 0; e < m; e++ {
		u, v := g.tails[e], g.heads[e]
		g.outEdges[outCursor[u]] = e
		outCursor[u]++
		g.inEdges[inCursor[v]] = e
		inCursor[v]++
	}

	g.frozen = true
}

// OutEdges returns the ids of edges leaving v. Freeze must have been
// called (it is called lazily here if the graph is dirty).
func (g *Graph) OutEdges(v int) []int {
	g.ensureFrozen()
	return g.outEdges[g.outStart[v]:g.outStart[v+1]]
}

// InEdges returns the ids of edges entering v.
func (g *Graph) InEdges(v int) []int {
	g.ensureFrozen()
	return g.inEdges[g.inStart[v]:g.inStart[v+1]]
}

func (g *Graph) ensureFrozen() {
	g.muBuild.RLock()
	frozen := g.frozen
	g.muBuild.RUnlock()
	if !frozen {
		g.Freeze()
	}
}

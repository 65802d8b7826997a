// SPDX-License-Identifier: MIT
// File: build.go
// Role: the Lengauer-Tarjan algorithm itself: DFS numbering, pruned
// predecessor lists, the semidominator pass driven by EVAL/COMPRESS/LINK
// over a structures.BucketForest, and the final fix-up pass.
//
// Indexing note: spec §3 describes semi[v]/vertex[k] as 1-based (0 means
// "unset") precisely so that 0 can serve as an unambiguous sentinel
// despite vertex ids themselves being 0-based; that is exactly what this
// file does. ancestor[v] (field anc) uses a plain -1 sentinel for "no
// LINK-forest ancestor" instead of spec's 0-based-vertex-plus-1 encoding,
// since Go vertex ids start at 0 and -1 is already an unambiguous,
// simpler sentinel -- same semantics, no translation needed. label[v]
// starts as the identity map v -> v.
package dominator

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphcuts/digraph"
	"github.com/katalvlaran/graphcuts/graphcutserr"
	"github.com/katalvlaran/graphcuts/metrics"
	"github.com/katalvlaran/graphcuts/structures"
	"github.com/katalvlaran/graphcuts/telemetry"
)

// Build computes the immediate-dominator map of g rooted at root, in the
// direction selected by mode. Build is synchronous and takes no context
// (spec §5: not interruptible mid-call); it still opens a tracing span
// and observes its own wall-clock latency, both closed before return.
func Build(g *digraph.Graph, root int, mode Mode, opts ...Option) (*Result, error) {
	n := g.N()

	modeName := "out"
	if mode == In {
		modeName = "in"
	}
	_, span := telemetry.StartDominatorBuild(context.Background(), n, g.M(), root, modeName)
	defer span.End()
	start := time.Now()
	defer func() { metrics.DominatorBuildSeconds.Observe(time.Since(start).Seconds()) }()

	if !g.Directed() {
		err := errors.Wrap(graphcutserr.ErrInvalidArgument, "dominator.Build: undirected graph")
		telemetry.RecordError(span, err)
		return nil, err
	}
	if root < 0 || root >= n {
		err := errors.Wrapf(graphcutserr.ErrInvalidArgument,
			"dominator.Build: root %d out of range [0,%d)", root, n)
		telemetry.RecordError(span, err)
		return nil, err
	}
	if mode != Out && mode != In {
		err := errors.Wrap(graphcutserr.ErrInvalidArgument, "dominator.Build: unrecognized mode")
		telemetry.RecordError(span, err)
		return nil, err
	}

	var o options
	for _, fn := range opts {
		fn(&o)
	}

	b := &builder{g: g, mode: mode, n: n}
	b.init()
	componentSize := b.dfs(root)
	b.buildPrunedPredecessors(componentSize)
	b.computeSemiAndIdom(componentSize)
	b.fixup(componentSize)

	b.dom[root] = RootSentinel

	res := &Result{Dom: b.dom}
	if o.emitLeftout {
		res.Leftout = b.leftout()
	}
	if o.emitTree {
		res.Tree = b.buildTree()
	}

	return res, nil
}

// builder holds the DominatorState scratch arrays for one Build call.
type builder struct {
	g    *digraph.Graph
	mode Mode
	n    int

	parent []int // DFS parent vertex id; UnreachableSentinel if unvisited
	semi   []int // preorder number, 1-based; 0 means unset
	vertex []int // vertex[k] = vertex at preorder k, 1..componentSize; vertex[0] unused
	label  []int // EVAL label: best semi-reachable ancestor
	anc    []int // LINK/EVAL forest parent; -1 means "no ancestor" (forest root)
	dom    []int // final immediate-dominator output

	bucket *structures.BucketForest
	preds  [][]int // pruned predecessor lists, indexed by vertex id
}

func (b *builder) init() {
	n := b.n
	b.parent = make([]int, n)
	b.semi = make([]int, n)
	b.vertex = make([]int, n+1)
	b.label = make([]int, n)
	b.anc = make([]int, n)
	b.dom = make([]int, n)
	for v := 0; v < n; v++ {
		b.parent[v] = UnreachableSentinel
		b.label[v] = v
		b.anc[v] = -1
		b.dom[v] = UnreachableSentinel
	}
}

// succEdges returns the ids of edges leaving v in the computation's
// forward direction.
func (b *builder) succEdges(v int) []int {
	if b.mode == Out {
		return b.g.OutEdges(v)
	}
	return b.g.InEdges(v)
}

// succVertex returns the far endpoint of edge e when walked in the
// computation's forward direction.
func (b *builder) succVertex(e int) int {
	if b.mode == Out {
		return b.g.To(e)
	}
	return b.g.From(e)
}

// predEdges returns the ids of edges entering v in the computation's
// forward direction (i.e. the reverse direction).
func (b *builder) predEdges(v int) []int {
	if b.mode == Out {
		return b.g.InEdges(v)
	}
	return b.g.OutEdges(v)
}

// predVertex returns the near endpoint of edge e when walked against the
// computation's forward direction.
func (b *builder) predVertex(e int) int {
	if b.mode == Out {
		return b.g.From(e)
	}
	return b.g.To(e)
}

// dfs numbers every vertex reachable from root in DFS preorder (1-based)
// using an explicit stack, and returns the reachable-component size.
func (b *builder) dfs(root int) int {
	type frame struct {
		v   int
		idx int
	}
	stack := make([]frame, 0, b.n)

	preorder := 0
	visit := func(v int) {
		preorder++
		b.semi[v] = preorder
		b.vertex[preorder] = v
	}

	visit(root)
	b.parent[root] = root // root has no true DFS parent; self-parent keeps "reachable ⟹ parent≥0"
	stack = append(stack, frame{v: root, idx: 0})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		edges := b.succEdges(top.v)
		advanced := false
		for top.idx < len(edges) {
			e := edges[top.idx]
			top.idx++
			w := b.succVertex(e)
			if b.semi[w] != 0 {
				continue
			}
			visit(w)
			b.parent[w] = top.v
			stack = append(stack, frame{v: w, idx: 0})
			advanced = true
			break
		}
		if !advanced && top.idx >= len(edges) {
			stack = stack[:len(stack)-1]
		}
	}

	return preorder
}

func (b *builder) reachable(v int) bool { return b.semi[v] != 0 }

// buildPrunedPredecessors fills b.preds with, for each reachable vertex,
// its reachable predecessors only (unreachable predecessors carry no
// semidominator information and are dropped).
func (b *builder) buildPrunedPredecessors(componentSize int) {
	b.preds = make([][]int, b.n)
	for i := 1; i <= componentSize; i++ {
		w := b.vertex[i]
		for _, e := range b.predEdges(w) {
			p := b.predVertex(e)
			if b.reachable(p) {
				b.preds[w] = append(b.preds[w], p)
			}
		}
	}
}

// computeSemiAndIdom runs steps 2-4 of spec §4.5: the semidominator pass
// and the implicit immediate-dominator computation via bucket draining.
// Reverse preorder excludes the root (preorder 1), whose semidominator is
// itself by definition.
func (b *builder) computeSemiAndIdom(componentSize int) {
	b.bucket = structures.NewBucketForest(b.n, b.n)

	for i := componentSize; i >= 2; i-- {
		w := b.vertex[i]

		for _, v := range b.preds[w] {
			u := b.eval(v)
			if b.semi[u] < b.semi[w] {
				b.semi[w] = b.semi[u]
			}
		}

		b.bucket.Insert(b.vertex[b.semi[w]], w)
		b.link(b.parent[w], w)

		p := b.parent[w]
		for !b.bucket.IsEmpty(p) {
			v := b.bucket.PopAny(p)
			u := b.eval(v)
			if b.semi[u] < b.semi[v] {
				b.dom[v] = u
			} else {
				b.dom[v] = p
			}
		}
	}
}

// fixup runs step 5 of spec §4.5: vertices whose provisional dom entry
// is not yet their true immediate dominator inherit their parent's.
func (b *builder) fixup(componentSize int) {
	for i := 2; i <= componentSize; i++ {
		w := b.vertex[i]
		if b.dom[w] != b.vertex[b.semi[w]] {
			b.dom[w] = b.dom[b.dom[w]]
		}
	}
}

// eval implements EVAL(v): the best semi-reachable ancestor of v along
// the LINK/EVAL forest.
func (b *builder) eval(v int) int {
	if b.anc[v] == -1 {
		return v
	}
	b.compress(v)
	return b.label[v]
}

// compress implements COMPRESS(v) iteratively: walk the ancestor chain
// collecting nodes that need path compression, then splice from the
// topmost down, propagating the minimum-semi label.
func (b *builder) compress(v int) {
	var path []int
	cur := v
	for b.anc[b.anc[cur]] != -1 {
		path = append(path, cur)
		cur = b.anc[cur]
	}
	for i := len(path) - 1; i >= 0; i-- {
		x := path[i]
		a := b.anc[x]
		if b.semi[b.label[a]] < b.semi[b.label[x]] {
			b.label[x] = b.label[a]
		}
		b.anc[x] = b.anc[a]
	}
}

// link implements LINK(v, w): the simple (unbalanced) variant, yielding
// the "slow" Lengauer-Tarjan with an alpha(m,n) factor rather than a true
// inverse-Ackermann bound, as spec §4.5 specifies.
func (b *builder) link(v, w int) {
	b.anc[w] = v
}

func (b *builder) leftout() []int {
	var out []int
	for v := 0; v < b.n; v++ {
		if !b.reachable(v) {
			out = append(out, v)
		}
	}
	return out
}

// buildTree materializes the dominator tree as a digraph.Graph: edge
// dom[v] -> v for Mode Out, v -> dom[v] for Mode In, for every v with a
// defined (non-sentinel) dominator.
func (b *builder) buildTree() *digraph.Graph {
	tree := digraph.New(b.n)
	for v := 0; v < b.n; v++ {
		if b.dom[v] < 0 {
			continue
		}
		if b.mode == Out {
			tree.AddEdge(b.dom[v], v) //nolint:errcheck // endpoints are always in range
		} else {
			tree.AddEdge(v, b.dom[v]) //nolint:errcheck // endpoints are always in range
		}
	}
	tree.Freeze()
	return tree
}

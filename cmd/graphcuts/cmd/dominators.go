// SPDX-License-Identifier: MIT
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphcuts/cmd/graphcuts/internal/edgelist"
	"github.com/katalvlaran/graphcuts/dominator"
)

var (
	domRoot int
	domMode string
)

var dominatorsCmd = &cobra.Command{
	Use:   "dominators [files...]",
	Short: "Compute the dominator tree of one or more edge-list files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDominators,
}

func init() {
	rootCmd.AddCommand(dominatorsCmd)
	dominatorsCmd.Flags().IntVar(&domRoot, "root", 0, "dominator tree root vertex")
	dominatorsCmd.Flags().StringVar(&domMode, "mode", "out", "direction: out or in")
}

type dominatorsOutput struct {
	File    string `json:"file"`
	Dom     []int  `json:"dom"`
	Leftout []int  `json:"leftout"`
}

func runDominators(cmd *cobra.Command, args []string) error {
	mode := dominator.Out
	switch domMode {
	case "out":
		mode = dominator.Out
	case "in":
		mode = dominator.In
	default:
		return fmt.Errorf("graphcuts: unknown --mode %q (want out or in)", domMode)
	}

	results := make([]dominatorsOutput, len(args))
	g, ctx := errgroup.WithContext(context.Background())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parsed, err := readEdgeListFile(path)
			if err != nil {
				return err
			}
			res, err := dominator.Build(parsed.G, domRoot, mode, dominator.WithLeftout())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = dominatorsOutput{File: path, Dom: res.Dom, Leftout: res.Leftout}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return printJSON(results)
}

func readEdgeListFile(path string) (*edgelist.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphcuts: opening %s: %w", path, err)
	}
	defer f.Close()

	return edgelist.Read(f)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SPDX-License-Identifier: MIT
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphcuts/cuts"
)

var (
	cutsSource int
	cutsTarget int
)

var cutsCmd = &cobra.Command{
	Use:   "cuts [files...]",
	Short: "Enumerate every (s,t) edge cut of one or more edge-list files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCuts,
}

func init() {
	rootCmd.AddCommand(cutsCmd)
	cutsCmd.Flags().IntVar(&cutsSource, "source", 0, "source vertex")
	cutsCmd.Flags().IntVar(&cutsTarget, "target", 1, "target vertex")
}

type cutsOutput struct {
	File       string  `json:"file"`
	Cuts       [][]int `json:"cuts"`
	Partitions [][]int `json:"partitions"`
}

func runCuts(cmd *cobra.Command, args []string) error {
	results := make([]cutsOutput, len(args))
	g, ctx := errgroup.WithContext(context.Background())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			parsed, err := readEdgeListFile(path)
			if err != nil {
				return err
			}
			res, err := cuts.AllStCuts(ctx, parsed.G, cutsSource, cutsTarget)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = cutsOutput{File: path, Cuts: res.Cuts, Partitions: res.Partitions}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return printJSON(results)
}

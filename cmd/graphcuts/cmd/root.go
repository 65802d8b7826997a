// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global flags, resolved from flags/env/config file by viper, the
	// way rootCmd's PersistentFlags feed perf-analysis's logger setup.
	cfgFile      string
	outputFormat string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "graphcuts",
	Short: "Enumerate dominator trees and (s,t) cuts over directed graphs",
	Long: `graphcuts is a demonstration CLI over the graphcuts library: it reads a
plain-text edge-list file and prints dominator trees, all (s,t) cuts, or all
minimum (s,t) cuts as JSON.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./graphcuts.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "json", "output format: json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
}

// initConfig resolves configuration from flags, environment (GRAPHCUTS_*),
// and an optional graphcuts.yaml, in viper's usual precedence order.
func initConfig(cmd *cobra.Command) error {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("graphcuts")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("GRAPHCUTS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return fmt.Errorf("graphcuts: reading config: %w", err)
		}
	}

	if v.IsSet("format") && !cmd.Flags().Changed("format") {
		outputFormat = v.GetString("format")
	}
	if v.IsSet("log_level") && !cmd.Flags().Changed("log-level") {
		logLevel = v.GetString("log_level")
	}

	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the callout-bridge CLI.
// Implements: prd004-rewrite, prd005-history (CLI surface).
// See docs/ARCHITECTURE § CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the callout-bridge CLI.
var rootCmd = &cobra.Command{
	Use:   "callout-bridge",
	Short: "Migrate Markdown admonition blocks to fenced directive containers",
	Long: `callout-bridge rewrites documentation trees that use indentation-scoped
admonition blocks (!!! note "Title") into explicitly fenced directive
containers (:::note[Title] ... :::), preserving nesting through fence length.

The rewrite subcommand performs the migration; history lists earlier runs
recorded in the local run-history database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./callout-bridge.yaml or ~/.config/callout-bridge/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("callout-bridge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "callout-bridge"))
		}
	}

	viper.SetEnvPrefix("CALLOUT_BRIDGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the negation-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/negation-engine/internal/catalog"
	"github.com/pdiddy/negation-engine/internal/generate"
	"github.com/pdiddy/negation-engine/internal/session"
	"github.com/pdiddy/negation-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE; debug level when --verbose.
var logger *zap.Logger

// rootCmd is the base command for the negation-engine CLI. Running it
// with no subcommand starts an interactive session.
var rootCmd = &cobra.Command{
	Use:   "negation-engine",
	Short: "Build aligned good/bad prompt lists from a list of items",
	Long: `negation-engine turns a list of items into two aligned prompt lists:
a "good" list cycling the original items, and a "bad" list that prefixes
each item with a negation modifier and pairs items with undesirable
style descriptors, trimmed to a character budget.

Run without arguments for an interactive session, or use the generate
subcommand for scripted one-shot output.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verboseEnabled(cmd) {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./negation-engine.yaml or ~/.config/negation-engine/config.yaml)")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed, 0 seeds from the clock")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("negation-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "negation-engine"))
		}
	}

	viper.SetEnvPrefix("NEGATION_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator(cmd)
	if err != nil {
		return err
	}

	s := session.New(os.Stdin, os.Stdout, gen, logger)
	return s.Run()
}

// newGenerator builds a round generator from the seed flag, falling
// back to the config file or NEGATION_ENGINE_SEED.
func newGenerator(cmd *cobra.Command) (*generate.Generator, error) {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = viper.GetInt64("seed")
	}
	return generate.New(types.GenerateConfig{Seed: seed}, catalog.Descriptors())
}

// verboseEnabled reports whether debug logging was requested via flag,
// config file, or environment.
func verboseEnabled(cmd *cobra.Command) bool {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		return true
	}
	return viper.GetBool("verbose")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/meur/blueprintlabs/internal/app"
	"github.com/meur/blueprintlabs/internal/config"
	"github.com/meur/blueprintlabs/internal/util"
	"github.com/spf13/cobra"
)

var (
	catalogSource string
	staticDir     string

	container *app.Container
)

var rootCmd = &cobra.Command{
	Use:   "blueprints",
	Short: "Browse the weapon blueprint catalog from the terminal",
	Long: `blueprints loads the weapon catalog and changelog once, then lets you
filter rows, list pools, resolve preview images and browse interactively.

Configuration is read from the environment and an optional .env file.`,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogSource, "source", "", "Catalog source: file, http or sqlite (overrides CATALOG_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&staticDir, "static", "", "Directory holding images/ (overrides STATIC_DIR)")

	rootCmd.AddCommand(rowsCmd)
	rootCmd.AddCommand(poolsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(changelogCmd)
	rootCmd.AddCommand(browseCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if catalogSource != "" {
		cfg.Catalog.Source = catalogSource
	}
	if staticDir != "" {
		cfg.Server.StaticDir = staticDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Keep stdout for command output.
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = "logs/blueprints.log"
	}
	logger, err := util.NewLogger(cfg.Logging.Level, logFile)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	container, err = app.Build(ctx, cfg, logger)
	return err
}

// teardown closes the store and flushes the log file
func teardown() {
	if container == nil {
		return
	}
	container.Close()
	if container.Logger != nil {
		_ = container.Logger.Sync()
	}
}

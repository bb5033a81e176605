// Package main provides the Quick Review CLI entry point.
package main

import (
	"fmt"
	"os"
	"time"

	"quickreview/internal/config"
	"quickreview/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string
	timeout    time.Duration

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "review",
		Short: "Quick Review - turn a place visit into share-ready reviews and posters",
		Long: `Quick Review by Samco Studio.

Fill in a place, a service type, a star rating and optional pros and cons;
get three review texts (short, medium, cinematic), a themed poster and
share links.

Run without arguments to start the interactive wizard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if workspace == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("resolve workspace: %w", err)
				}
				workspace = cwd
			}
			path := configPath
			if path == "" {
				path = config.DefaultPath(workspace)
			}

			var err error
			cfg, err = config.Load(path)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config %s: %w", path, err)
			}
			if err := logging.Initialize(workspace, cfg.Logging.ForLogger()); err != nil {
				return err
			}

			// The interactive wizard owns the terminal; it only logs to files.
			if cmd.Parent() == nil {
				logger = zap.NewNop()
				return nil
			}

			zc := zap.NewProductionConfig()
			if verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
			logging.CloseAll()
		},
		RunE: runInteractive,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: <workspace>/.quickreview/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPosterCmd())
	rootCmd.AddCommand(newShareCmd())
	rootCmd.AddCommand(newThemesCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

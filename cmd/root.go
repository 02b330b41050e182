package cmd

import (
	"fmt"
	"os"

	"github.com/mushroomsink/mushrooms/internal/catalog"
	"github.com/mushroomsink/mushrooms/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagVerbose bool
	flagPage    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mushrooms",
	Short: "Terminal directory of mushroom and mycelium companies",
	Long: `mushrooms browses a catalog of mushroom and mycelium companies, research
articles and industry reports with search, filters and sorting.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if flagVerbose {
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
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(flagPage)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&flagPage, "page", "", "start page (companies, research, reports)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mushrooms %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// loadDataset reads the config and the datasets it points at.
func loadDataset() (*config.Config, *catalog.Dataset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	ds, err := cfg.Dataset(log())
	if err != nil {
		return nil, nil, fmt.Errorf("loading dataset: %w", err)
	}
	return cfg, ds, nil
}

// log returns the command logger, or a no-op one when PersistentPreRunE
// has not run.
func log() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

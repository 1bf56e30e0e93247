package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/synapz/internal/config"
	"github.com/abhisek/synapz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "synapz",
	Short: "Adaptive session scheduler for concept learning",
	Long:  "Synapz builds spaced-repetition learning sessions sized to cognitive capacity, with synthesis checkpoints and sandbox exercises placed by usefulness feedback.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SYNAPZ_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides SYNAPZ_CONFIG env var)")

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SYNAPZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadConfig loads configuration using --config flag, then SYNAPZ_CONFIG,
// then the default XDG path. A missing file yields defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	p, _ := cmd.Flags().GetString("config")
	if p == "" {
		var err error
		if p, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return config.Load(p)
}

// newLogger builds the zap logger from config. Default is info to stderr.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			return nil, fmt.Errorf("logging.level: %w", err)
		}
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
	}
	return zc.Build()
}

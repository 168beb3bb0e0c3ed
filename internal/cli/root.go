// Package cli wires the calculator into the freight-emissions command line.
package cli

import (
	"fmt"

	"freight-emissions/internal/core/config"
	"freight-emissions/internal/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd creates the root command. Configuration is loaded from environment
// variables and an optional .env file in --config-dir before any subcommand runs.
func NewRootCmd(version string) *cobra.Command {
	var configDir string
	cfg := new(config.AppConfig)

	cmd := &cobra.Command{
		Use:           "freight-emissions",
		Short:         "Greenhouse-gas emissions of a freight shipment",
		Long:          "Computes road and air emissions of a new shipment and its share of container repositioning emissions using the NTMCalc web service.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(configDir)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			*cfg = *loaded

			if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			logger.Get().Debug("Configuration loaded",
				zap.String("environment", cfg.Environment),
				zap.String("log_level", cfg.LogLevel),
				zap.Bool("report_storage", cfg.Redis.URL != ""),
			)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding the .env file")
	cmd.AddCommand(NewCalculateCmd(cfg), NewServeCmd(cfg))

	return cmd
}

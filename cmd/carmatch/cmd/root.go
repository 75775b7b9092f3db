// Package cmd implements the CLI commands for the carmatch server.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/carmatch/internal/config"
	"github.com/donaldgifford/carmatch/pkg/logger"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "carmatch",
	Short: "Car search and matching service",
	Long: "An API-first service that ranks a car inventory against buyer criteria, " +
		"with user accounts, favorites, and reviews.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")

	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(openapiCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the env file and config, and builds the root logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	if err := config.LoadEnvFiles(envFile); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
}

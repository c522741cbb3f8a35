package main

import (
	"fmt"
	"os"

	"catalog/internal/config"
	"catalog/internal/infrastructure/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse a product catalog on the web or in the terminal",
	Long: `catalog fetches the product list once at startup and lets you search,
sort and page through it.

  serve  - web catalog with a JSON API
  browse - interactive terminal viewer`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd, browseCmd)
}

// loadConfig applies the persistent flags on top of the loaded config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, outputPaths ...string) (*zap.Logger, error) {
	l, err := logger.New(cfg.Log.Level, outputPaths...)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return l, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package cli implements the blackbox-ai-bridge commands.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Vovarama1992/blackbox-ai-bridge/internal/config"
)

var (
	logLevel  string
	logFormat string
)

// RootCmd is the top-level command. Without a subcommand it serves HTTP.
var RootCmd = &cobra.Command{
	Use:   "blackbox-ai-bridge",
	Short: "HTTP relay for a web chat AI backend and an image URL generator",
	Long: "Relays chat prompts (with --think/--web/--deep/--imagine flags) to the chat backend " +
		"and reshapes its marked-up reply into JSON. Configuration comes from the environment or .env.",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (default: $LOG_LEVEL or info)")
	RootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format text|json (default: $LOG_FORMAT or text)")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) *logrus.Logger {
	l := cfg.NewLogger()
	l.SetOutput(os.Stderr)
	return l
}

package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Vovarama1992/blackbox-ai-bridge/internal/server"
)

var (
	serveHost string
	servePort int
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP relay",
		RunE:  runServe,
	}

	cmd.Flags().StringVar(&serveHost, "host", "", "Bind host (default: $HOST)")
	cmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (default: $PORT or 8080)")

	RootCmd.AddCommand(cmd)
	RootCmd.RunE = runServe
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg, logger)
}

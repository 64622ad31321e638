package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vovarama1992/blackbox-ai-bridge/internal/ai"
	"github.com/Vovarama1992/blackbox-ai-bridge/internal/relay"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask [message...]",
		Short: "Relay one message and print the chat JSON",
		Long:  "Relays one message exactly like POST /api/chat. Quote flags so the shell passes them through: ask -- '--think why?'",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
	}

	RootCmd.AddCommand(cmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	svc := relay.NewService(ai.NewBlackboxClient(ai.ClientConfig{
		BaseURL:   cfg.ChatBaseURL,
		ChatPath:  cfg.ChatPath,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.UpstreamTimeout,
		Logger:    logger,
	}), logger)

	res, err := svc.Chat(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	b, _ := json.MarshalIndent(map[string]any{
		"success":   true,
		"prompt":    res.Prompt,
		"options":   res.Options,
		"response":  res.Response,
		"thinking":  res.Thinking,
		"webSearch": res.WebSearch,
		"raw":       res.Raw,
	}, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

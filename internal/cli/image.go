package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vovarama1992/blackbox-ai-bridge/internal/relay"
)

func init() {
	cmd := &cobra.Command{
		Use:   "image [prompt...]",
		Short: "Print an image generation URL",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runImage,
	}

	cmd.Flags().String("width", relay.DefaultImageWidth, "Image width")
	cmd.Flags().String("height", relay.DefaultImageHeight, "Image height")
	cmd.Flags().String("model", relay.DefaultImageModel, "Image model")
	cmd.Flags().String("nologo", relay.DefaultImageNoLogo, "Hide the provider logo")
	cmd.Flags().String("private", relay.DefaultImagePrivate, "Keep the image out of the public feed")
	cmd.Flags().String("enhance", relay.DefaultImageEnhance, "Let the provider enhance the prompt")
	cmd.Flags().String("seed", "", "Seed (random when not set)")

	RootCmd.AddCommand(cmd)
}

func runImage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Same parsing path as GET /api/generate-image.
	q := url.Values{}
	q.Set("prompt", strings.Join(args, " "))
	for _, name := range []string{"width", "height", "model", "nologo", "private", "enhance", "seed"} {
		if f := cmd.Flags().Lookup(name); f.Changed {
			q.Set(name, f.Value.String())
		}
	}

	prompt, params, err := relay.ParseImageQuery(q, relay.RandomSeed)
	if err != nil {
		return err
	}

	b, _ := json.MarshalIndent(relay.NewImageResult(cfg.ImageBaseURL, prompt, params), "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

package main

import (
	"os"

	"github.com/Vovarama1992/blackbox-ai-bridge/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

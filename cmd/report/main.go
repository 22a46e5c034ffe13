package main

import (
	"os"

	"github.com/Sensei3747/Market-Intelligence/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/marquee-labs/marquee-cli/internal/adapters/driving/cli"
	"github.com/marquee-labs/marquee-cli/internal/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

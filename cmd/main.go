package main

import (
	"bantamc/internal/cli"
	"bantamc/internal/compiler"
	"bantamc/internal/logger"
	"bantamc/pkg/color"
	"os"
)

// Main entry point for the Bantam Java compiler.
func main() {
	logger.Init(os.Stderr, os.Getenv("BANTAMC_DEBUG") != "", !color.IsColorEnabled())

	os.Exit(cli.Run(os.Args[1:], os.Stderr, compiler.DefaultFactory))
}

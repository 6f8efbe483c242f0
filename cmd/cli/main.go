// Package main is the entry point for the servicequote CLI.
package main

import (
	"os"

	"github.com/harleytans/reputigo-universal-calculator/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

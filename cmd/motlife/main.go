package main

import (
	"fmt"
	"os"

	"github.com/LdDl/mot-lifecycle/internal/cli"
)

func main() {
	rootCmd := cli.BuildCLI()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

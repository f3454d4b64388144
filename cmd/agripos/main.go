// Package main provides the agripos CLI, the command-line surface over
// the farm store.
// Implements: prd005-agripos-cli.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

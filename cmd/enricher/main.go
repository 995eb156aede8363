// Package main provides the enricher CLI, which adds geocoded location data to survey response
// data files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "enricher",
	Short:        "Survey response location enrichment",
	Long:         "Enricher geocodes the addresses of survey responses stored in JSON data files and writes latitude, longitude, state, timezone and formatted address back into each record.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main is the entry point for the SigLife API server
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "siglife-api",
	Short: "SigLife API Server",
	Long:  `SigLife API serves the career life-simulation game engine: sessions, stats, stage progression, life events and badge mint records.`,
}

func main() {
	// Missing .env is fine; flags and real env still apply.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

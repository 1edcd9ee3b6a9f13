// Package main provides the entry point for the Patch matchmaking server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "patch_server",
	Short: "Patch team matchmaking server",
	Long:  "Patch matches people into project teams: users onboard with a profile, post projects, and request an algorithmically assembled team with an AI-polished explanation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

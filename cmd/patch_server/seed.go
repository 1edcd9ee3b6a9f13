package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/patch-matchmaker/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users and projects into the database",
	Long:  "Creates the schema if needed and inserts the demo teammate pool and demo projects. Existing rows are left untouched, so re-running is safe.",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	database, err := db.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(cmd.Context()); err != nil {
		return err
	}
	if err := database.SeedDemoData(cmd.Context()); err != nil {
		return err
	}

	fmt.Println("Seeded demo users and projects")
	return nil
}

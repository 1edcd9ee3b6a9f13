package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/patch-matchmaker/internal/explain"
	"github.com/jonathan/patch-matchmaker/internal/observability"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Score a recommendation feed offline",
	Long:  "Deterministically scores every project in a JSON file for a user profile, producing the ranked recommendation feed.",
	RunE:  runRecommend,
}

var (
	recommendProfile  string
	recommendProjects string
	recommendOutput   string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to input UserProfile JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendProjects, "projects", "j", "", "Path to input projects JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output JSON file")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := recommendCmd.MarkFlagRequired("projects"); err != nil {
		panic(fmt.Sprintf("failed to mark projects flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	var profile types.UserProfile
	if err := loadJSONFile(recommendProfile, &profile); err != nil {
		return err
	}

	var projects []types.Project
	if err := loadJSONFile(recommendProjects, &projects); err != nil {
		return err
	}

	// Offline runs use the heuristic scorer only.
	recommender := explain.NewRecommender(nil, nil)
	recommendations := recommender.Recommend(cmd.Context(), &profile, projects)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(&profile)
	printer.PrintRecommendations(recommendations, projects)

	if recommendOutput == "" {
		return nil
	}
	return writeJSONFile(recommendOutput, recommendations)
}

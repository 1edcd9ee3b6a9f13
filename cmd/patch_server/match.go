package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/patch-matchmaker/internal/explain"
	"github.com/jonathan/patch-matchmaker/internal/matching"
	"github.com/jonathan/patch-matchmaker/internal/observability"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Run the matching engine offline",
	Long:  "Deterministically matches a user profile against a set of projects and candidate teammates from JSON files, producing the winning project, assembled team, and explanation.",
	RunE:  runMatch,
}

var (
	matchProfile    string
	matchProjects   string
	matchCandidates string
	matchPreferred  []string
	matchOutput     string
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfile, "profile", "p", "", "Path to input UserProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchProjects, "projects", "j", "", "Path to input projects JSON file (required)")
	matchCmd.Flags().StringVarP(&matchCandidates, "candidates", "c", "", "Path to input candidate profiles JSON file")
	matchCmd.Flags().StringSliceVar(&matchPreferred, "preferred", nil, "Project ids to boost")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file")

	if err := matchCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("projects"); err != nil {
		panic(fmt.Sprintf("failed to mark projects flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	var profile types.UserProfile
	if err := loadJSONFile(matchProfile, &profile); err != nil {
		return err
	}

	var projects []types.Project
	if err := loadJSONFile(matchProjects, &projects); err != nil {
		return err
	}

	var candidates []types.UserProfile
	if matchCandidates != "" {
		if err := loadJSONFile(matchCandidates, &candidates); err != nil {
			return err
		}
	}

	result, err := matching.Match(matching.MatchInput{
		User:         &profile,
		Projects:     projects,
		Candidates:   candidates,
		PreferredIDs: matchPreferred,
	})
	if err != nil {
		return err
	}

	// Offline runs use the heuristic explanation only.
	generator := explain.NewGenerator(nil, nil)
	explanation := generator.Explain(cmd.Context(), &profile, result)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(&profile)
	printer.PrintMatch(result, explanation.MatchReason, explanation.TeamDynamic)

	if matchOutput == "" {
		return nil
	}

	output := map[string]any{
		"project":     result.Best.Project,
		"teamMembers": result.Teammates,
		"matchScore":  result.Best.Score,
		"matchReason": explanation.MatchReason,
		"teamDynamic": explanation.TeamDynamic,
	}
	return writeJSONFile(matchOutput, output)
}

// loadJSONFile reads and unmarshals a JSON file into v.
func loadJSONFile(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// writeJSONFile marshals v with indentation and writes it to path,
// creating the output directory when needed.
func writeJSONFile(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/patch-matchmaker/internal/matching"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintProfile(&types.UserProfile{
		Name:       "Ada Lovelace",
		Role:       types.RoleSWE,
		Experience: types.ExperienceSenior,
		Industries: []types.Industry{types.IndustryFintech, types.IndustryAIML},
		WorkEthic:  types.WorkEthicAsync,
	})

	out := buf.String()
	for _, want := range []string{"USER PROFILE", "Ada Lovelace", "swe", "fintech, ai-ml"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintProfile_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got:\n%s", buf.String())
	}
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	result := &matching.MatchResult{
		Best: matching.ProjectScore{
			Project:       &types.Project{Title: "Budget Buddy"},
			Score:         85,
			RoleMatch:     true,
			IndustryMatch: true,
		},
		Teammates: []types.UserProfile{
			{Name: "Sam Designer", Role: types.RoleDesigner, Experience: types.ExperienceMid},
		},
	}
	printer.PrintMatch(result, "Good fit.", "Balanced team.")

	out := buf.String()
	for _, want := range []string{
		"MATCH RESULT",
		"Budget Buddy",
		"Score:   85",
		"role needed, industry",
		"Sam Designer",
		"Good fit.",
		"Balanced team.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintMatch_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatch(nil, "", "")
	printer.PrintMatch(&matching.MatchResult{}, "", "")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got:\n%s", buf.String())
	}
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	recommendations := []types.Recommendation{
		{ProjectID: "p-1", MatchScore: 90, Reason: "Strong role fit."},
		{ProjectID: "p-2", MatchScore: 70, Reason: "Industry overlap."},
	}
	projects := []types.Project{
		{ID: "p-1", Title: "Budget Buddy"},
		{ID: "p-2", Title: "Quest Forge"},
	}
	printer.PrintRecommendations(recommendations, projects)

	out := buf.String()
	for _, want := range []string{"RECOMMENDATIONS", "#1  Budget Buddy", "#2  Quest Forge", "Score: 90"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintRecommendations_Truncation(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	recommendations := make([]types.Recommendation, 7)
	for i := range recommendations {
		recommendations[i] = types.Recommendation{ProjectID: "p", MatchScore: 50, Reason: "r"}
	}
	printer.PrintRecommendations(recommendations, nil)

	if !strings.Contains(buf.String(), "... and 2 more") {
		t.Errorf("output missing truncation note:\n%s", buf.String())
	}
}

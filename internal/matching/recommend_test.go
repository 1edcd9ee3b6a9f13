package matching

import (
	"testing"

	"github.com/jonathan/patch-matchmaker/internal/types"
)

func TestRecommend_OwnProjectSentinel(t *testing.T) {
	user := sweProfile()
	projects := []types.Project{
		{ID: "mine", CreatedBy: "u-1", Industry: types.IndustryGaming,
			RolesNeeded: []types.RoleSlot{{Role: types.RolePM, Experience: types.ExperienceMid}}},
		{ID: "other", Industry: types.IndustryFintech,
			RolesNeeded: []types.RoleSlot{{Role: types.RoleSWE, Experience: types.ExperienceMid}}},
	}

	recommendations := Recommend(user, projects)

	if len(recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recommendations))
	}
	if recommendations[0].ProjectID != "mine" {
		t.Fatalf("own project must rank first, got %s", recommendations[0].ProjectID)
	}
	if recommendations[0].MatchScore != 100 {
		t.Errorf("own project score = %d, want sentinel 100", recommendations[0].MatchScore)
	}
	if recommendations[0].Reason != "You created this project." {
		t.Errorf("own project reason = %q", recommendations[0].Reason)
	}
	// The formula never reaches 100, so the sentinel stays unambiguous.
	if recommendations[1].MatchScore > 98 {
		t.Errorf("formula score = %d, must not exceed 98", recommendations[1].MatchScore)
	}
}

func TestRecommend_ReasonComposition(t *testing.T) {
	user := sweProfile()

	t.Run("two clauses joined with and", func(t *testing.T) {
		projects := []types.Project{
			{ID: "p", Industry: types.IndustryFintech,
				RolesNeeded: []types.RoleSlot{{Role: types.RoleSWE, Experience: types.ExperienceSenior}}},
		}

		recommendations := Recommend(user, projects)
		want := "This project needs a swe and aligns with your interest in fintech."
		if recommendations[0].Reason != want {
			t.Errorf("reason = %q, want %q", recommendations[0].Reason, want)
		}
	})

	t.Run("three clauses keep first two", func(t *testing.T) {
		projects := []types.Project{
			{ID: "p", Industry: types.IndustryFintech,
				RolesNeeded: []types.RoleSlot{{Role: types.RoleSWE, Experience: types.ExperienceMid}}},
		}

		recommendations := Recommend(user, projects)
		want := "This project needs a swe and your experience level is a perfect fit."
		if recommendations[0].Reason != want {
			t.Errorf("reason = %q, want %q", recommendations[0].Reason, want)
		}
	})

	t.Run("no clauses fall back to growth text", func(t *testing.T) {
		projects := []types.Project{
			{ID: "p", Industry: types.IndustryGaming,
				RolesNeeded: []types.RoleSlot{{Role: types.RolePM, Experience: types.ExperienceMid}}},
		}

		recommendations := Recommend(user, projects)
		if recommendations[0].Reason != genericGrowthReason {
			t.Errorf("reason = %q, want generic growth reason", recommendations[0].Reason)
		}
	})
}

func TestRecommend_CoversEveryProjectOnce(t *testing.T) {
	user := sweProfile()
	projects := []types.Project{
		{ID: "a", Industry: types.IndustryGaming},
		{ID: "b", Industry: types.IndustryFintech},
		{ID: "c", Industry: types.IndustryEdtech},
	}

	recommendations := Recommend(user, projects)

	if len(recommendations) != len(projects) {
		t.Fatalf("expected %d entries, got %d", len(projects), len(recommendations))
	}
	seen := map[string]bool{}
	for _, rec := range recommendations {
		if seen[rec.ProjectID] {
			t.Errorf("duplicate entry for %s", rec.ProjectID)
		}
		seen[rec.ProjectID] = true
	}
	for _, project := range projects {
		if !seen[project.ID] {
			t.Errorf("missing entry for %s", project.ID)
		}
	}
}

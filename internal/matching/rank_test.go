package matching

import (
	"testing"

	"github.com/jonathan/patch-matchmaker/internal/types"
)

func TestRankProjects_DescendingStable(t *testing.T) {
	user := sweProfile()
	projects := []types.Project{
		{ID: "low-1", Industry: types.IndustryGaming,
			RolesNeeded: []types.RoleSlot{{Role: types.RolePM, Experience: types.ExperienceMid}}},
		{ID: "high", Industry: types.IndustryFintech,
			RolesNeeded: []types.RoleSlot{{Role: types.RoleSWE, Experience: types.ExperienceMid}}},
		{ID: "low-2", Industry: types.IndustryGaming,
			RolesNeeded: []types.RoleSlot{{Role: types.RolePM, Experience: types.ExperienceMid}}},
	}

	ranked := RankProjects(user, projects, nil)

	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked projects, got %d", len(ranked))
	}
	if ranked[0].Project.ID != "high" {
		t.Errorf("ranked[0] = %s, want high", ranked[0].Project.ID)
	}
	// Equal scores keep input order.
	if ranked[1].Project.ID != "low-1" || ranked[2].Project.ID != "low-2" {
		t.Errorf("tie order = %s, %s; want low-1, low-2", ranked[1].Project.ID, ranked[2].Project.ID)
	}
}

func TestBestProject_PreferredWins(t *testing.T) {
	user := sweProfile()
	projects := []types.Project{
		{ID: "organic", Industry: types.IndustryFintech,
			RolesNeeded: []types.RoleSlot{{Role: types.RoleSWE, Experience: types.ExperienceMid}}},
		{ID: "chosen", Industry: types.IndustryGaming,
			RolesNeeded: []types.RoleSlot{{Role: types.RolePM, Experience: types.ExperienceMid}}},
	}

	// organic scores 98 clamped; chosen scores 50+40=90. Preference does
	// not beat a clamped full match.
	best, err := BestProject(user, projects, []string{"chosen"})
	if err != nil {
		t.Fatalf("BestProject() error = %v", err)
	}
	if best.Project.ID != "organic" {
		t.Errorf("best = %s, want organic", best.Project.ID)
	}

	// Without the organic full match the boost dominates.
	best, err = BestProject(user, projects[1:], []string{"chosen"})
	if err != nil {
		t.Fatalf("BestProject() error = %v", err)
	}
	if best.Project.ID != "chosen" || !best.Preferred {
		t.Errorf("best = %s (preferred=%v), want chosen with boost", best.Project.ID, best.Preferred)
	}
}

func TestBestProject_NoProjects(t *testing.T) {
	user := sweProfile()

	_, err := BestProject(user, nil, nil)
	if err != ErrNoProjects {
		t.Errorf("BestProject() error = %v, want ErrNoProjects", err)
	}
}

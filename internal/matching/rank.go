package matching

import (
	"errors"
	"sort"

	"github.com/jonathan/patch-matchmaker/internal/types"
)

// ErrNoProjects is returned when there is nothing to rank. This is a
// terminal condition for the match flow: the caller should present "no
// matches" rather than retry.
var ErrNoProjects = errors.New("no projects available")

// RankProjects scores every project for the user and returns them in
// descending score order. Equal scores keep their input order.
func RankProjects(user *types.UserProfile, projects []types.Project, preferredIDs []string) []ProjectScore {
	scored := make([]ProjectScore, 0, len(projects))
	for i := range projects {
		scored = append(scored, ScoreUserForProject(user, &projects[i], preferredIDs))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// BestProject picks the highest-scoring project for the user.
func BestProject(user *types.UserProfile, projects []types.Project, preferredIDs []string) (ProjectScore, error) {
	if len(projects) == 0 {
		return ProjectScore{}, ErrNoProjects
	}
	ranked := RankProjects(user, projects, preferredIDs)
	return ranked[0], nil
}

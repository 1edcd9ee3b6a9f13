package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/patch-matchmaker/internal/types"
)

const genericGrowthReason = "This project could be a great way to expand your skills."

// ownProjectReason is attached to the sentinel entry for projects the
// user created; the scoring formula itself never produces it.
const ownProjectReason = "You created this project."

// Recommend scores every project for the user with the feed formula and
// returns one entry per project, sorted descending by score with stable
// ties. Projects created by the user report the sentinel score 100.
func Recommend(user *types.UserProfile, projects []types.Project) []types.Recommendation {
	recommendations := make([]types.Recommendation, 0, len(projects))
	for i := range projects {
		project := &projects[i]

		if project.CreatedBy != "" && project.CreatedBy == user.ID {
			recommendations = append(recommendations, types.Recommendation{
				ProjectID:  project.ID,
				Reason:     ownProjectReason,
				MatchScore: ownProjectSentinel,
			})
			continue
		}

		score, reasons := ScoreProjectForFeed(user, project)
		recommendations = append(recommendations, types.Recommendation{
			ProjectID:  project.ID,
			Reason:     composeFeedReason(reasons),
			MatchScore: score,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})
	return recommendations
}

// composeFeedReason builds the feed reason text from up to the first two
// qualifying clauses.
func composeFeedReason(reasons []string) string {
	if len(reasons) == 0 {
		return genericGrowthReason
	}
	if len(reasons) > 2 {
		reasons = reasons[:2]
	}
	return "This project " + strings.Join(reasons, " and ") + "."
}

package matching

import (
	"sort"

	"github.com/jonathan/patch-matchmaker/internal/types"
)

// DesiredTeammateCount is the number of teammates to select beyond the
// requesting user: max(2, min(3, teamSize-1)). The floor of 2 applies
// even to a 2-person project; this reproduces the source behavior.
func DesiredTeammateCount(teamSize int) int {
	count := teamSize - 1
	if count > 3 {
		count = 3
	}
	if count < 2 {
		count = 2
	}
	return count
}

// AssembleTeam selects teammates for the requester's chosen project.
// Candidates are scored with the candidate formula and taken top-down
// with stable ties. When a seed project comes up short, the shortfall is
// backfilled from the synthetic placeholder pool in pool order, skipping
// ids already selected. Projects with a real owner are never backfilled;
// the result may then be smaller than desired.
func AssembleTeam(requester *types.UserProfile, project *types.Project, candidates []types.UserProfile) []types.UserProfile {
	type scoredCandidate struct {
		profile types.UserProfile
		score   int
	}

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == requester.ID {
			continue
		}
		scored = append(scored, scoredCandidate{
			profile: candidate,
			score:   ScoreCandidateForTeam(requester, &candidate, project),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	desired := DesiredTeammateCount(project.TeamSize)
	selected := make([]types.UserProfile, 0, desired)
	for _, sc := range scored {
		if len(selected) == desired {
			break
		}
		selected = append(selected, sc.profile)
	}

	if len(selected) < desired && project.IsSeed() {
		selected = backfillPlaceholders(selected, requester.ID, desired)
	}

	return selected
}

// backfillPlaceholders tops up the selection from the placeholder pool,
// excluding the requester and anyone already selected.
func backfillPlaceholders(selected []types.UserProfile, requesterID string, desired int) []types.UserProfile {
	taken := make(map[string]bool, len(selected)+1)
	taken[requesterID] = true
	for _, member := range selected {
		taken[member.ID] = true
	}

	for _, placeholder := range placeholderTeammates {
		if len(selected) == desired {
			break
		}
		if taken[placeholder.ID] {
			continue
		}
		selected = append(selected, placeholder)
		taken[placeholder.ID] = true
	}
	return selected
}

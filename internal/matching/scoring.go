// Package matching implements the rule-based matchmaking engine: scoring
// primitives, project ranking, team assembly, and the dashboard
// recommendation feed. All functions are pure over explicit inputs; both
// the match and recommendation call sites share one set of primitives so
// the rule sets cannot drift apart.
package matching

import (
	"strings"

	"github.com/jonathan/patch-matchmaker/internal/types"
)

// Bonuses for the project-for-user formula. Each is independently
// triggerable; the final score is clamped so the formula never reports a
// perfect 100 (that value is reserved as the own-project sentinel).
const (
	projectBaseScore    = 50
	roleNeededBonus     = 25
	exactFitBonus       = 10
	industryBonus       = 15
	preferredBonus      = 40
	maxProjectScore     = 98
	ownProjectSentinel  = 100
	minRecommendScore   = 40
	recommendRoleBonus  = 20
	tagAffinityPerMatch = 3
)

// Bonuses for the candidate-for-team formula. Unbounded above; used only
// for relative ordering.
const (
	roleDiversityBonus   = 10
	projectNeedsBonus    = 15
	candidateIndustryHit = 10
	workEthicBonus       = 5
)

// ProjectScore records how a project scored for a user, with the signals
// that contributed. The signals feed reason generation; the record itself
// is transient and never persisted.
type ProjectScore struct {
	Project       *types.Project
	Score         int
	RoleMatch     bool
	ExactFit      bool
	IndustryMatch bool
	Preferred     bool
}

// ScoreUserForProject computes the match-path affinity between a user and
// a project. preferredIDs is the optional explicit-intent boost: projects
// listed there score +40 before the clamp.
func ScoreUserForProject(user *types.UserProfile, project *types.Project, preferredIDs []string) ProjectScore {
	result := ProjectScore{Project: project, Score: projectBaseScore}

	if project.NeedsRole(user.Role) {
		result.RoleMatch = true
		result.Score += roleNeededBonus
	}
	if project.NeedsExactly(user.Role, user.Experience) {
		result.ExactFit = true
		result.Score += exactFitBonus
	}
	if user.HasIndustry(project.Industry) {
		result.IndustryMatch = true
		result.Score += industryBonus
	}
	for _, id := range preferredIDs {
		if id == project.ID {
			result.Preferred = true
			result.Score += preferredBonus
			break
		}
	}

	if result.Score > maxProjectScore {
		result.Score = maxProjectScore
	}
	return result
}

// ScoreCandidateForTeam computes the teammate affinity of a candidate for
// the requesting user's chosen project. Higher is better; ties keep input
// order.
func ScoreCandidateForTeam(requester, candidate *types.UserProfile, project *types.Project) int {
	score := 0

	// Reward role diversity over duplication.
	if candidate.Role != requester.Role {
		score += roleDiversityBonus
	}
	if project.NeedsRole(candidate.Role) {
		score += projectNeedsBonus
	}
	if candidate.HasIndustry(project.Industry) {
		score += candidateIndustryHit
	}
	if candidate.WorkEthic == requester.WorkEthic {
		score += workEthicBonus
	}

	return score
}

// roleTagVocabulary is the fixed per-role tag vocabulary for the
// recommendation formula's tag-affinity bonus.
var roleTagVocabulary = map[types.Role][]string{
	types.RoleSWE:      {"React", "TypeScript", "Next.js", "Node.js", "Python"},
	types.RoleDesigner: {"UX Research", "Figma", "Design Systems"},
	types.RolePM:       {"Agile", "Strategy", "Product"},
}

// ScoreProjectForFeed computes the dashboard-feed affinity between a user
// and a project, along with the qualifying reason clauses in priority
// order. The score is clamped to [40, 98].
func ScoreProjectForFeed(user *types.UserProfile, project *types.Project) (int, []string) {
	score := projectBaseScore
	var reasons []string

	if project.NeedsRole(user.Role) {
		score += recommendRoleBonus
		reasons = append(reasons, "needs a "+string(user.Role))
	}
	if project.NeedsExactly(user.Role, user.Experience) {
		score += exactFitBonus
		reasons = append(reasons, "your experience level is a perfect fit")
	}
	if user.HasIndustry(project.Industry) {
		score += industryBonus
		reasons = append(reasons, "aligns with your interest in "+string(project.Industry))
	}

	score += tagAffinityPerMatch * tagOverlap(project.Tags, roleTagVocabulary[user.Role])

	if score > maxProjectScore {
		score = maxProjectScore
	}
	if score < minRecommendScore {
		score = minRecommendScore
	}
	return score, reasons
}

// tagOverlap counts project tags that case-insensitively contain any
// vocabulary term as a substring.
func tagOverlap(tags, vocabulary []string) int {
	count := 0
	for _, tag := range tags {
		tagLower := strings.ToLower(tag)
		for _, term := range vocabulary {
			if strings.Contains(tagLower, strings.ToLower(term)) {
				count++
				break
			}
		}
	}
	return count
}

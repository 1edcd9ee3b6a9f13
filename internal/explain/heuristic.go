// Package explain produces the natural-language reason attached to a
// match. The deterministic heuristic path is always computed first; an
// optional AI path can replace it, bounded by a read-through cache and a
// fail-safe fallback to the heuristic result.
package explain

import (
	"strings"

	"github.com/jonathan/patch-matchmaker/internal/matching"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

// Explanation is the reason pair attached to a created team.
type Explanation struct {
	MatchReason string `json:"matchReason"`
	TeamDynamic string `json:"teamDynamic"`
}

const (
	teamDynamicBoilerplate = "This team brings together diverse skill sets and complementary working styles for productive collaboration."
	secondClauseFallback   = "The team composition will provide excellent collaboration dynamics."
	growthClause           = "this project offers great growth opportunities for you"
)

// Heuristic builds the deterministic explanation from the scoring
// signals. Qualifying clauses are collected in fixed priority order and
// the final reason uses at most the first two.
func Heuristic(user *types.UserProfile, best matching.ProjectScore) Explanation {
	var clauses []string
	if best.RoleMatch {
		clauses = append(clauses, "your "+string(user.Role)+" skills are exactly what this project needs")
	}
	if best.IndustryMatch {
		clauses = append(clauses, "the "+string(best.Project.Industry)+" focus matches your interests")
	}
	if best.Preferred {
		clauses = append(clauses, "you explicitly preferred this project")
	}
	if len(clauses) == 0 {
		clauses = append(clauses, growthClause)
	}

	reason := capitalize(clauses[0]) + ". "
	if len(clauses) > 1 {
		reason += capitalize(clauses[1]) + "."
	} else {
		reason += secondClauseFallback
	}

	return Explanation{
		MatchReason: reason,
		TeamDynamic: teamDynamicBoilerplate,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package matching

import "github.com/jonathan/patch-matchmaker/internal/types"

// MatchInput bundles everything the engine needs for one match request.
// The caller filters Projects beforehand (e.g. excludes projects the
// user already has an active team for).
type MatchInput struct {
	User         *types.UserProfile
	Projects     []types.Project
	Candidates   []types.UserProfile
	PreferredIDs []string
}

// MatchResult is the engine's outcome: the winning project with its
// score and signals, plus the selected teammates (requester excluded).
type MatchResult struct {
	Best      ProjectScore
	Teammates []types.UserProfile
}

// Match runs the full pipeline: rank projects, pick the winner, assemble
// its team. Returns ErrNoProjects when the input project list is empty.
func Match(input MatchInput) (*MatchResult, error) {
	best, err := BestProject(input.User, input.Projects, input.PreferredIDs)
	if err != nil {
		return nil, err
	}

	teammates := AssembleTeam(input.User, best.Project, input.Candidates)
	return &MatchResult{Best: best, Teammates: teammates}, nil
}

package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/patch-matchmaker/internal/cache"
	"github.com/jonathan/patch-matchmaker/internal/llm"
	"github.com/jonathan/patch-matchmaker/internal/matching"
	"github.com/jonathan/patch-matchmaker/internal/prompts"
	"github.com/jonathan/patch-matchmaker/internal/schemas"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

// recommendTTL bounds how long an AI-generated recommendation list is
// reused for the same (user, project set) pair.
const recommendTTL = 5 * time.Minute

// Recommender produces the dashboard recommendation feed. The heuristic
// list is always computed first as the guaranteed fallback; an AI result
// replaces it wholesale only when it covers every input project with
// well-formed scores.
type Recommender struct {
	client  llm.Client
	cache   *cache.TTLCache[[]types.Recommendation]
	timeout time.Duration
}

// NewRecommender creates a Recommender. client may be nil for the pure
// heuristic path; clock may be nil to use wall time.
func NewRecommender(client llm.Client, clock cache.Clock) *Recommender {
	return &Recommender{
		client:  client,
		cache:   cache.New[[]types.Recommendation](recommendTTL, clock),
		timeout: aiCallTimeout,
	}
}

// Recommend returns one recommendation per input project, sorted
// descending by score.
func (r *Recommender) Recommend(ctx context.Context, user *types.UserProfile, projects []types.Project) []types.Recommendation {
	heuristic := matching.Recommend(user, projects)
	if r.client == nil || len(projects) == 0 {
		return heuristic
	}

	key := recommendCacheKey(user.ID, projects)
	if cached, ok := r.cache.Get(key); ok {
		return cached
	}

	enhanced, err := r.generate(ctx, user, projects)
	if err != nil {
		log.Printf("recommendations: falling back to heuristic: %v", err)
		return heuristic
	}

	r.cache.Set(key, enhanced)
	return enhanced
}

func (r *Recommender) generate(ctx context.Context, user *types.UserProfile, projects []types.Project) ([]types.Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}
	projectsJSON, err := json.Marshal(projects)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal projects: %w", err)
	}

	template := prompts.MustGet("matching.json", "recommend-projects")
	prompt := prompts.Format(template, map[string]string{
		"User":     string(userJSON),
		"Projects": string(projectsJSON),
	})

	resp, err := r.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	resp = llm.CleanJSONBlock(resp)
	if err := schemas.Validate(schemas.ProjectRecommendations, resp); err != nil {
		return nil, err
	}

	var recommendations []types.Recommendation
	if err := json.Unmarshal([]byte(resp), &recommendations); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if err := checkCoverage(recommendations, projects); err != nil {
		return nil, err
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})
	return recommendations, nil
}

// checkCoverage verifies the AI list contains exactly one entry per input
// project id; anything else discards the AI result entirely.
func checkCoverage(recommendations []types.Recommendation, projects []types.Project) error {
	if len(recommendations) != len(projects) {
		return fmt.Errorf("expected %d recommendations, got %d", len(projects), len(recommendations))
	}

	seen := make(map[string]bool, len(recommendations))
	for _, rec := range recommendations {
		if seen[rec.ProjectID] {
			return fmt.Errorf("duplicate recommendation for project %s", rec.ProjectID)
		}
		seen[rec.ProjectID] = true
	}
	for _, project := range projects {
		if !seen[project.ID] {
			return fmt.Errorf("missing recommendation for project %s", project.ID)
		}
	}
	return nil
}

// recommendCacheKey derives a stable key from the user and the project
// id set, independent of input order.
func recommendCacheKey(userID string, projects []types.Project) string {
	ids := make([]string, 0, len(projects))
	for _, project := range projects {
		ids = append(ids, project.ID)
	}
	sort.Strings(ids)
	return userID + "|" + strings.Join(ids, ",")
}

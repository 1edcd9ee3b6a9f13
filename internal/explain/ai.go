package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonathan/patch-matchmaker/internal/cache"
	"github.com/jonathan/patch-matchmaker/internal/llm"
	"github.com/jonathan/patch-matchmaker/internal/matching"
	"github.com/jonathan/patch-matchmaker/internal/prompts"
	"github.com/jonathan/patch-matchmaker/internal/schemas"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

const (
	// matchReasonTTL bounds how long an AI-generated explanation is reused
	// for the same (user, project) pair.
	matchReasonTTL = 10 * time.Minute
	// aiCallTimeout bounds the external call; a timeout falls back to the
	// heuristic result like any other failure.
	aiCallTimeout = 8 * time.Second
)

// Generator produces match explanations. With a nil client it is purely
// heuristic; with a client it overlays AI-generated text, caching
// successes and falling back to the heuristic on any failure.
type Generator struct {
	client  llm.Client
	cache   *cache.TTLCache[Explanation]
	timeout time.Duration
}

// NewGenerator creates a Generator. client may be nil for the pure
// heuristic path; clock may be nil to use wall time.
func NewGenerator(client llm.Client, clock cache.Clock) *Generator {
	return &Generator{
		client:  client,
		cache:   cache.New[Explanation](matchReasonTTL, clock),
		timeout: aiCallTimeout,
	}
}

// Explain returns the explanation for a match result. The heuristic
// result is always computed first; the AI path can only replace it on a
// fully validated response. Cache hits skip the external call entirely.
func (g *Generator) Explain(ctx context.Context, user *types.UserProfile, result *matching.MatchResult) Explanation {
	heuristic := Heuristic(user, result.Best)
	if g.client == nil {
		return heuristic
	}

	key := user.ID + "|" + result.Best.Project.ID
	if cached, ok := g.cache.Get(key); ok {
		return cached
	}

	enhanced, err := g.generate(ctx, user, result)
	if err != nil {
		log.Printf("match explanation: falling back to heuristic: %v", err)
		return heuristic
	}

	g.cache.Set(key, enhanced)
	return enhanced
}

func (g *Generator) generate(ctx context.Context, user *types.UserProfile, result *matching.MatchResult) (Explanation, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt, err := buildExplainPrompt(user, result)
	if err != nil {
		return Explanation{}, err
	}

	resp, err := g.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return Explanation{}, fmt.Errorf("generation failed: %w", err)
	}

	resp = llm.CleanJSONBlock(resp)
	if err := schemas.Validate(schemas.MatchExplanation, resp); err != nil {
		return Explanation{}, err
	}

	var explanation Explanation
	if err := json.Unmarshal([]byte(resp), &explanation); err != nil {
		return Explanation{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return explanation, nil
}

// buildExplainPrompt constructs the prompt with compact JSON descriptions
// of the user, project, and team.
func buildExplainPrompt(user *types.UserProfile, result *matching.MatchResult) (string, error) {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to marshal user: %w", err)
	}
	projectJSON, err := json.Marshal(result.Best.Project)
	if err != nil {
		return "", fmt.Errorf("failed to marshal project: %w", err)
	}
	teamJSON, err := json.Marshal(result.Teammates)
	if err != nil {
		return "", fmt.Errorf("failed to marshal team: %w", err)
	}

	var signals []string
	if result.Best.RoleMatch {
		signals = append(signals, "project needs the user's role")
	}
	if result.Best.ExactFit {
		signals = append(signals, "exact role and experience fit")
	}
	if result.Best.IndustryMatch {
		signals = append(signals, "industry interest overlap")
	}
	if result.Best.Preferred {
		signals = append(signals, "user explicitly preferred this project")
	}
	if len(signals) == 0 {
		signals = append(signals, "general growth opportunity")
	}

	template := prompts.MustGet("matching.json", "match-explanation")
	return prompts.Format(template, map[string]string{
		"User":    string(userJSON),
		"Project": string(projectJSON),
		"Team":    string(teamJSON),
		"Signals": strings.Join(signals, ", "),
	}), nil
}

package explain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/patch-matchmaker/internal/llm"
	"github.com/jonathan/patch-matchmaker/internal/matching"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

// fakeLLM returns canned responses and counts calls.
type fakeLLM struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLM) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeLLM) Close() error { return nil }

func testMatchResult() *matching.MatchResult {
	return &matching.MatchResult{
		Best: matching.ProjectScore{
			Project: &types.Project{
				ID:       "p-1",
				Title:    "Fintech Thing",
				Industry: types.IndustryFintech,
			},
			Score:     85,
			RoleMatch: true,
		},
	}
}

func TestGenerator_NilClientUsesHeuristic(t *testing.T) {
	generator := NewGenerator(nil, nil)
	got := generator.Explain(context.Background(), testProfile(), testMatchResult())

	assert.Contains(t, got.MatchReason, "swe skills")
	assert.Equal(t, teamDynamicBoilerplate, got.TeamDynamic)
}

func TestGenerator_AIResponseReplacesHeuristic(t *testing.T) {
	client := &fakeLLM{response: `{"matchReason": "AI reason", "teamDynamic": "AI dynamic"}`}
	generator := NewGenerator(client, nil)

	got := generator.Explain(context.Background(), testProfile(), testMatchResult())

	assert.Equal(t, "AI reason", got.MatchReason)
	assert.Equal(t, "AI dynamic", got.TeamDynamic)
}

func TestGenerator_FencedResponseAccepted(t *testing.T) {
	client := &fakeLLM{response: "```json\n{\"matchReason\": \"AI reason\", \"teamDynamic\": \"AI dynamic\"}\n```"}
	generator := NewGenerator(client, nil)

	got := generator.Explain(context.Background(), testProfile(), testMatchResult())
	assert.Equal(t, "AI reason", got.MatchReason)
}

func TestGenerator_SecondCallHitsCache(t *testing.T) {
	client := &fakeLLM{response: `{"matchReason": "AI reason", "teamDynamic": "AI dynamic"}`}
	generator := NewGenerator(client, nil)

	first := generator.Explain(context.Background(), testProfile(), testMatchResult())
	second := generator.Explain(context.Background(), testProfile(), testMatchResult())

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.calls)
}

func TestGenerator_FallbackCases(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeLLM
	}{
		{
			name:   "transport error",
			client: &fakeLLM{err: errors.New("boom")},
		},
		{
			name:   "non-JSON chatter",
			client: &fakeLLM{response: "here you go: {\"matchReason\": \"x\"}"},
		},
		{
			name:   "schema violation",
			client: &fakeLLM{response: `{"matchReason": "only one field"}`},
		},
		{
			name:   "empty strings",
			client: &fakeLLM{response: `{"matchReason": "", "teamDynamic": ""}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := NewGenerator(tt.client, nil)
			got := generator.Explain(context.Background(), testProfile(), testMatchResult())

			require.Equal(t, 1, tt.client.calls)
			assert.Contains(t, got.MatchReason, "swe skills")
			assert.Equal(t, teamDynamicBoilerplate, got.TeamDynamic)
		})
	}
}

func TestGenerator_FailureNotCached(t *testing.T) {
	client := &fakeLLM{err: errors.New("boom")}
	generator := NewGenerator(client, nil)

	generator.Explain(context.Background(), testProfile(), testMatchResult())
	generator.Explain(context.Background(), testProfile(), testMatchResult())

	assert.Equal(t, 2, client.calls)
}

package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/patch-matchmaker/internal/types"
)

func TestRecommendResponse_Shape(t *testing.T) {
	resp := RecommendResponse{
		Recommendations: []types.Recommendation{
			{ProjectID: "p-1", Reason: "Strong role fit.", MatchScore: 90},
		},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string][]types.Recommendation
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Contains(t, decoded, "recommendations")
	assert.Equal(t, "p-1", decoded["recommendations"][0].ProjectID)
}

func TestRecommendResponse_EmptyFeedIsArray(t *testing.T) {
	data, err := json.Marshal(RecommendResponse{Recommendations: []types.Recommendation{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"recommendations": []}`, string(data))
}

package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/patch-matchmaker/internal/matching"
	"github.com/jonathan/patch-matchmaker/internal/server/middleware"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

// MatchRequest is the optional body for a match request.
type MatchRequest struct {
	PreferredProjectIDs []string `json:"preferredProjectIds"`
}

// MatchResponse is the outcome of a match request.
type MatchResponse struct {
	Project     *types.Project      `json:"project"`
	TeamMembers []types.UserProfile `json:"teamMembers"`
	MatchScore  int                 `json:"matchScore"`
	MatchReason string              `json:"matchReason"`
	TeamDynamic string              `json:"teamDynamic"`
}

// handleMatch runs the matching engine for the authenticated user.
// Projects the user already has an active team for are excluded.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.userService.Profile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// The body is optional; an empty one means no preferences.
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	projects, err := s.db.ListProjects(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}

	active, err := s.db.ActiveProjectIDsForUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list teams")
		return
	}

	eligible := make([]types.Project, 0, len(projects))
	for _, project := range projects {
		if active[project.ID] {
			continue
		}
		eligible = append(eligible, project)
	}

	candidates, err := s.db.ListOnboardedProfiles(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	result, err := matching.Match(matching.MatchInput{
		User:         profile,
		Projects:     eligible,
		Candidates:   candidates,
		PreferredIDs: req.PreferredProjectIDs,
	})
	if err == matching.ErrNoProjects {
		s.errorResponse(w, http.StatusNotFound, "No projects available")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Matching failed")
		return
	}

	explanation := s.explainer.Explain(r.Context(), profile, result)

	s.jsonResponse(w, http.StatusOK, MatchResponse{
		Project:     result.Best.Project,
		TeamMembers: result.Teammates,
		MatchScore:  result.Best.Score,
		MatchReason: explanation.MatchReason,
		TeamDynamic: explanation.TeamDynamic,
	})
}

// RecommendResponse wraps the ranked feed.
type RecommendResponse struct {
	Recommendations []types.Recommendation `json:"recommendations"`
}

// handleRecommend returns the ranked recommendation feed for the
// authenticated user, one entry per open project.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.userService.Profile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	projects, err := s.db.ListProjects(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}

	recommendations := s.recommender.Recommend(r.Context(), profile, projects)
	if recommendations == nil {
		recommendations = []types.Recommendation{}
	}
	s.jsonResponse(w, http.StatusOK, RecommendResponse{Recommendations: recommendations})
}

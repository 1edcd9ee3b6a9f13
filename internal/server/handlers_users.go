package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/patch-matchmaker/internal/server/middleware"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

// handleListUsers returns all onboarded profiles.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.db.ListOnboardedProfiles(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list users")
		return
	}
	if profiles == nil {
		profiles = []types.UserProfile{}
	}
	s.jsonResponse(w, http.StatusOK, profiles)
}

// handleGetUser returns another user's onboarded profile.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	profile, err := s.userService.Profile(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateUser replaces a user's profile. Users may only edit their
// own.
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if r.PathValue("id") != userID {
		s.errorResponse(w, http.StatusForbidden, "Cannot edit another user's profile")
		return
	}
	s.handleSaveProfile(w, r)
}

// handleGetMe returns the authenticated user's profile.
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
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
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleSaveProfile creates or replaces the authenticated user's
// matching profile.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.userService.Onboard(r.Context(), userID, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

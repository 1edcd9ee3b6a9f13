package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/patch-matchmaker/internal/matching"
	"github.com/jonathan/patch-matchmaker/internal/server/middleware"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

// CreateTeamRequest accepts a match outcome to persist as a team. The
// authenticated caller becomes the first member.
type CreateTeamRequest struct {
	ProjectID   string   `json:"projectId"`
	MemberIDs   []string `json:"memberIds"`
	MatchScore  int      `json:"matchScore"`
	MatchReason string   `json:"matchReason"`
}

// handleListTeams returns all teams, newest first.
func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.db.ListTeams(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list teams")
		return
	}
	if teams == nil {
		teams = []types.Team{}
	}
	s.jsonResponse(w, http.StatusOK, teams)
}

// handleGetTeam returns a single team.
func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	team, err := s.db.GetTeam(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get team")
		return
	}
	if team == nil {
		notFound := &ErrTeamNotFound{TeamID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, team)
}

// handleCreateTeam persists a match outcome. The project is snapshotted
// into the team row, and member ids are resolved to profiles; unknown
// ids fall back to the synthetic teammate pool.
func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
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

	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProjectID == "" {
		s.errorResponse(w, http.StatusBadRequest, "projectId is required")
		return
	}

	project, err := s.db.GetProject(r.Context(), req.ProjectID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get project")
		return
	}
	if project == nil {
		notFound := &ErrProjectNotFound{ProjectID: req.ProjectID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	members := []types.UserProfile{*profile}
	for _, memberID := range req.MemberIDs {
		if memberID == userID {
			continue
		}
		member, err := s.resolveMember(r, memberID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		members = append(members, *member)
	}

	team := &types.Team{
		ProjectID:   project.ID,
		Project:     *project,
		Members:     members,
		MatchScore:  req.MatchScore,
		MatchReason: req.MatchReason,
	}
	if err := s.db.CreateTeam(r.Context(), team); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create team")
		return
	}
	s.jsonResponse(w, http.StatusCreated, team)
}

// resolveMember looks a member id up among onboarded users, then in the
// synthetic teammate pool.
func (s *Server) resolveMember(r *http.Request, memberID string) (*types.UserProfile, error) {
	user, err := s.db.GetUser(r.Context(), memberID)
	if err != nil {
		return nil, err
	}
	if user != nil && user.Onboarded {
		return user.Profile()
	}

	for _, placeholder := range matching.PlaceholderTeammates() {
		if placeholder.ID == memberID {
			return &placeholder, nil
		}
	}
	return nil, &ErrUserNotFound{UserID: memberID}
}

// handleCompleteTeam marks a team terminal and deletes its project so
// it can no longer be matched into. Only a member may complete a team.
// The two writes are best-effort; a failed delete leaves the project
// behind but the team stays completed.
func (s *Server) handleCompleteTeam(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	team, err := s.db.GetTeam(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get team")
		return
	}
	if team == nil {
		notFound := &ErrTeamNotFound{TeamID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	if !team.HasMember(userID) {
		forbidden := &ErrNotTeamMember{TeamID: id, UserID: userID}
		s.errorResponse(w, HTTPStatus(forbidden), forbidden.Error())
		return
	}
	if team.IsCompleted() {
		conflict := &ErrTeamCompleted{TeamID: id}
		s.errorResponse(w, HTTPStatus(conflict), conflict.Error())
		return
	}

	completed, err := s.db.CompleteTeam(r.Context(), id, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to complete team")
		return
	}
	if completed == nil {
		conflict := &ErrTeamCompleted{TeamID: id}
		s.errorResponse(w, HTTPStatus(conflict), conflict.Error())
		return
	}

	if err := s.db.DeleteProject(r.Context(), completed.ProjectID); err != nil {
		log.Printf("completed team %s but failed to delete project %s: %v",
			completed.ID, completed.ProjectID, err)
	}

	s.jsonResponse(w, http.StatusOK, completed)
}

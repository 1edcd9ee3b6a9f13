package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/patch-matchmaker/internal/server/middleware"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

// handleListProjects returns all open projects, newest first.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.db.ListProjects(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list projects")
		return
	}
	if projects == nil {
		projects = []types.Project{}
	}
	s.jsonResponse(w, http.StatusOK, projects)
}

// handleGetProject returns a single project.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	project, err := s.db.GetProject(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get project")
		return
	}
	if project == nil {
		notFound := &ErrProjectNotFound{ProjectID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, project)
}

// handleDeleteProject removes a project. Only its creator may delete
// it; seed projects have no creator and cannot be deleted this way.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	project, err := s.db.GetProject(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get project")
		return
	}
	if project == nil {
		notFound := &ErrProjectNotFound{ProjectID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	if project.CreatedBy != userID {
		s.errorResponse(w, http.StatusForbidden, "Only the project creator can delete it")
		return
	}

	if err := s.db.DeleteProject(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"deleted": true})
}

// handleCreateProject posts a new project owned by the caller. The
// caller must have completed onboarding so the posting carries a name.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
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

	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	project, err := req.Project()
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	project.CreatedBy = userID
	project.CreatedByName = profile.Name

	if err := s.db.CreateProject(r.Context(), project); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create project")
		return
	}
	s.jsonResponse(w, http.StatusCreated, project)
}

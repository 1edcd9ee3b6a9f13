package server

import (
	"net/http"
)

// handleSeed loads the demo users and projects. Safe to call more than
// once; existing rows are kept.
func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	if err := s.db.SeedDemoData(r.Context()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to seed demo data")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "seeded"})
}

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/patch-matchmaker/internal/chatbot"
	"github.com/jonathan/patch-matchmaker/internal/server/middleware"
)

// ChatRequest is a message sent to a team's assistant bot.
type ChatRequest struct {
	Message string `json:"message"`
}

// handleTeamChat streams the assistant's reply over SSE, word by word
// so clients can render a typing effect. Only team members may chat.
func (s *Server) handleTeamChat(w http.ResponseWriter, r *http.Request) {
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

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.errorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := chatbot.Reply(req.Message)

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	messageID := fmt.Sprintf("msg-%d", time.Now().UnixMilli())
	if err := sse.WriteData(map[string]string{"type": "start", "messageId": messageID}); err != nil {
		return
	}

	words := strings.Split(reply, " ")
	for i, word := range words {
		chunk := word
		if i > 0 {
			chunk = " " + word
		}
		if err := sse.WriteData(map[string]string{"type": "text-delta", "delta": chunk}); err != nil {
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-time.After(30 * time.Millisecond):
		}
	}

	sse.WriteData(map[string]string{"type": "finish", "finishReason": "stop"}) //nolint:errcheck
}

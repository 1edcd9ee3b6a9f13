package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.com"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"not team member", &ErrNotTeamMember{TeamID: "t-1", UserID: "u-1"}, http.StatusForbidden},
		{"user not found", &ErrUserNotFound{UserID: "u-1"}, http.StatusNotFound},
		{"project not found", &ErrProjectNotFound{ProjectID: "p-1"}, http.StatusNotFound},
		{"team not found", &ErrTeamNotFound{TeamID: "t-1"}, http.StatusNotFound},
		{"team completed", &ErrTeamCompleted{TeamID: "t-1"}, http.StatusConflict},
		{"not onboarded", &ErrNotOnboarded{UserID: "u-1"}, http.StatusBadRequest},
		{"validation", &ErrValidation{Field: "role", Message: "unknown"}, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())
	assert.Contains(t, (&ErrNotTeamMember{TeamID: "t-1", UserID: "u-1"}).Error(), "t-1")
	assert.Contains(t, (&ErrValidation{Field: "role", Message: "unknown"}).Error(), "role")
}

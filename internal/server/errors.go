package server

import (
	"fmt"
	"net/http"
)

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates the user was not found.
type ErrUserNotFound struct {
	UserID string
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrNotOnboarded indicates the user has no matching profile yet.
type ErrNotOnboarded struct {
	UserID string
}

func (e *ErrNotOnboarded) Error() string {
	return fmt.Sprintf("user has not completed onboarding: %s", e.UserID)
}

// ErrProjectNotFound indicates the project was not found.
type ErrProjectNotFound struct {
	ProjectID string
}

func (e *ErrProjectNotFound) Error() string {
	return fmt.Sprintf("project not found: %s", e.ProjectID)
}

// ErrTeamNotFound indicates the team was not found.
type ErrTeamNotFound struct {
	TeamID string
}

func (e *ErrTeamNotFound) Error() string {
	return fmt.Sprintf("team not found: %s", e.TeamID)
}

// ErrTeamCompleted indicates the team is already terminal.
type ErrTeamCompleted struct {
	TeamID string
}

func (e *ErrTeamCompleted) Error() string {
	return fmt.Sprintf("team already completed: %s", e.TeamID)
}

// ErrNotTeamMember indicates the caller does not belong to the team.
type ErrNotTeamMember struct {
	TeamID string
	UserID string
}

func (e *ErrNotTeamMember) Error() string {
	return fmt.Sprintf("user %s is not a member of team %s", e.UserID, e.TeamID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrNotTeamMember:
		return http.StatusForbidden
	case *ErrUserNotFound, *ErrProjectNotFound, *ErrTeamNotFound:
		return http.StatusNotFound
	case *ErrTeamCompleted:
		return http.StatusConflict
	case *ErrNotOnboarded, *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

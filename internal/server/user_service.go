package server

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/patch-matchmaker/internal/config"
	"github.com/jonathan/patch-matchmaker/internal/db"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

// DBClient is the subset of db.DB the user service needs. Tests supply
// an in-memory implementation.
type DBClient interface {
	CreateUser(ctx context.Context, email, name, passwordHash string) (string, error)
	GetUser(ctx context.Context, id string) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	SaveProfile(ctx context.Context, id string, profile *types.UserProfile) error
}

// UserService provides account registration, login, and onboarding.
type UserService struct {
	db             DBClient
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a UserService with the given dependencies.
func NewUserService(db DBClient, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new account with password authentication.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*db.User, error) {
	existing, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.db.CreateUser(ctx, req.Email, req.Name, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}
	return user, nil
}

// Login authenticates a user. Not-found and wrong-password cases return
// the same error so login failures leak nothing about accounts.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*db.User, error) {
	user, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, &ErrInvalidCredentials{}
	}
	return user, nil
}

// Onboard stores the matching profile for an account and marks it
// onboarded. Re-onboarding overwrites the previous profile.
func (s *UserService) Onboard(ctx context.Context, userID string, req *types.OnboardRequest) (*types.UserProfile, error) {
	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}

	profile, err := req.Profile()
	if err != nil {
		return nil, &ErrValidation{Field: "profile", Message: err.Error()}
	}
	profile.ID = userID
	profile.Onboarded = true
	profile.Avatar = initials(profile.Name)

	if err := s.db.SaveProfile(ctx, userID, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}

// initials derives a display avatar from the first letters of up to two
// name words. Empty names yield an empty avatar.
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		out = append(out, unicode.ToUpper(runes[0]))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// Profile returns the onboarded profile for a user.
func (s *UserService) Profile(ctx context.Context, userID string) (*types.UserProfile, error) {
	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	if !user.Onboarded {
		return nil, &ErrNotOnboarded{UserID: userID}
	}

	profile, err := user.Profile()
	if err != nil {
		return nil, fmt.Errorf("stored profile is invalid: %w", err)
	}
	return profile, nil
}

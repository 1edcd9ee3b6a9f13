package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/patch-matchmaker/internal/config"
	"github.com/jonathan/patch-matchmaker/internal/db"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

// fakeDB is an in-memory DBClient for service tests.
type fakeDB struct {
	users  map[string]*db.User
	nextID int
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: make(map[string]*db.User)}
}

func (f *fakeDB) CreateUser(_ context.Context, email, name, passwordHash string) (string, error) {
	f.nextID++
	id := fmt.Sprintf("user-%d", f.nextID)
	f.users[id] = &db.User{
		ID:           id,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}
	return id, nil
}

func (f *fakeDB) GetUser(_ context.Context, id string) (*db.User, error) {
	return f.users[id], nil
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) SaveProfile(_ context.Context, id string, profile *types.UserProfile) error {
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("no such user: %s", id)
	}
	u.Name = profile.Name
	u.Role = string(profile.Role)
	u.Experience = string(profile.Experience)
	u.Industries = nil
	for _, ind := range profile.Industries {
		u.Industries = append(u.Industries, string(ind))
	}
	u.WorkEthic = string(profile.WorkEthic)
	u.Avatar = profile.Avatar
	u.Onboarded = true
	return nil
}

func testUserService() (*UserService, *fakeDB) {
	fake := newFakeDB()
	return NewUserService(fake, &config.PasswordConfig{BcryptCost: 10}), fake
}

func registerRequest() *types.RegisterRequest {
	return &types.RegisterRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
		Name:     "Ada Lovelace",
	}
}

func onboardRequest() *types.OnboardRequest {
	return &types.OnboardRequest{
		Name:       "Ada Lovelace",
		Role:       "swe",
		Experience: "senior",
		Industries: []string{"fintech"},
		WorkEthic:  "async",
	}
}

func TestUserService_Register(t *testing.T) {
	service, fake := testUserService()

	user, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "correct horse", user.PasswordHash, "password must be hashed")
	assert.False(t, user.Onboarded)
	assert.Len(t, fake.users, 1)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	service, _ := testUserService()

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), registerRequest())
	var dupErr *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "ada@example.com", dupErr.Email)
}

func TestUserService_Login(t *testing.T) {
	service, _ := testUserService()
	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	user, err := service.Login(context.Background(), &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestUserService_LoginFailures(t *testing.T) {
	service, _ := testUserService()
	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *types.LoginRequest
	}{
		{"unknown email", &types.LoginRequest{Email: "nobody@example.com", Password: "correct horse"}},
		{"wrong password", &types.LoginRequest{Email: "ada@example.com", Password: "wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tt.req)
			var credErr *ErrInvalidCredentials
			assert.ErrorAs(t, err, &credErr, "failure modes must be indistinguishable")
		})
	}
}

func TestUserService_Onboard(t *testing.T) {
	service, fake := testUserService()
	user, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	profile, err := service.Onboard(context.Background(), user.ID, onboardRequest())
	require.NoError(t, err)

	assert.Equal(t, user.ID, profile.ID)
	assert.True(t, profile.Onboarded)
	assert.Equal(t, "AL", profile.Avatar)
	assert.True(t, fake.users[user.ID].Onboarded)
}

func TestUserService_OnboardUnknownUser(t *testing.T) {
	service, _ := testUserService()

	_, err := service.Onboard(context.Background(), "user-99", onboardRequest())
	var notFound *ErrUserNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestUserService_OnboardInvalidEnum(t *testing.T) {
	service, _ := testUserService()
	user, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	req := onboardRequest()
	req.Role = "manager"
	_, err = service.Onboard(context.Background(), user.ID, req)
	var valErr *ErrValidation
	assert.ErrorAs(t, err, &valErr)
}

func TestUserService_ProfileRequiresOnboarding(t *testing.T) {
	service, _ := testUserService()
	user, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Profile(context.Background(), user.ID)
	var notOnboarded *ErrNotOnboarded
	require.ErrorAs(t, err, &notOnboarded)

	_, err = service.Onboard(context.Background(), user.ID, onboardRequest())
	require.NoError(t, err)

	profile, err := service.Profile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, types.RoleSWE, profile.Role)
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "AL"},
		{"grace brewster murray hopper", "GB"},
		{"Prince", "P"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, initials(tt.name), "initials(%q)", tt.name)
	}
}

package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

const userColumns = `id, email, name, password_hash, role, experience, industries, work_ethic, avatar, onboarded, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Experience,
		&u.Industries, &u.WorkEthic, &u.Avatar, &u.Onboarded, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// CreateUser creates an account with a password hash and no profile yet.
func (db *DB) CreateUser(ctx context.Context, email, name, passwordHash string) (string, error) {
	id := uuid.NewString()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, industries, onboarded)
		 VALUES ($1, $2, $3, $4, '[]', false)`,
		id, email, name, passwordHash,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves a user by id. Returns nil when not found.
func (db *DB) GetUser(ctx context.Context, id string) (*User, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email. Returns nil when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// SaveProfile stores the matching attributes from onboarding or a
// profile edit and marks the user onboarded.
func (db *DB) SaveProfile(ctx context.Context, id string, profile *types.UserProfile) error {
	industries := make(StringArray, 0, len(profile.Industries))
	for _, industry := range profile.Industries {
		industries = append(industries, string(industry))
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE users
		 SET name = $1, role = $2, experience = $3, industries = $4,
		     work_ethic = $5, avatar = $6, onboarded = true, updated_at = NOW()
		 WHERE id = $7`,
		profile.Name, string(profile.Role), string(profile.Experience), industries,
		string(profile.WorkEthic), profile.Avatar, id,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}

// ListOnboardedProfiles returns the profiles of all onboarded users.
// Rows with invalid enum values are skipped rather than scored wrongly.
func (db *DB) ListOnboardedProfiles(ctx context.Context) ([]types.UserProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE onboarded = true ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var profiles []types.UserProfile
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Experience,
			&u.Industries, &u.WorkEthic, &u.Avatar, &u.Onboarded, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		profile, err := u.Profile()
		if err != nil {
			continue
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}

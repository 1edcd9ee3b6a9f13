package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

const teamColumns = `id, project_id, project, members, match_score, match_reason, created_at, completed_at, completed_by`

func scanTeam(row pgx.Row) (*types.Team, error) {
	var t types.Team
	var project ProjectSnapshot
	var members MemberList
	var completedBy *string

	err := row.Scan(&t.ID, &t.ProjectID, &project, &members, &t.MatchScore,
		&t.MatchReason, &t.CreatedAt, &t.CompletedAt, &completedBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	t.Project = types.Project(project)
	t.Members = members
	if completedBy != nil {
		t.CompletedBy = *completedBy
	}
	return &t, nil
}

// CreateTeam persists a match result as a team, snapshotting the project.
func (db *DB) CreateTeam(ctx context.Context, team *types.Team) error {
	team.ID = uuid.NewString()

	err := db.pool.QueryRow(ctx,
		`INSERT INTO teams (id, project_id, project, members, match_score, match_reason)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		team.ID, team.ProjectID, ProjectSnapshot(team.Project), MemberList(team.Members),
		team.MatchScore, team.MatchReason,
	).Scan(&team.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

// GetTeam retrieves a team by id. Returns nil when not found.
func (db *DB) GetTeam(ctx context.Context, id string) (*types.Team, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
	t, err := scanTeam(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return t, nil
}

// ListTeams returns all teams, newest first.
func (db *DB) ListTeams(ctx context.Context) ([]types.Team, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+teamColumns+` FROM teams ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []types.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, *t)
	}
	return teams, rows.Err()
}

// CompleteTeam marks a team terminal. Returns the updated team, or nil
// when the team does not exist. Completing an already-completed team is
// rejected.
func (db *DB) CompleteTeam(ctx context.Context, id, completedBy string) (*types.Team, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE teams
		 SET completed_at = NOW(), completed_by = $1
		 WHERE id = $2 AND completed_at IS NULL
		 RETURNING `+teamColumns,
		completedBy, id,
	)
	t, err := scanTeam(row)
	if err != nil {
		return nil, fmt.Errorf("failed to complete team: %w", err)
	}
	return t, nil
}

// ActiveProjectIDsForUser returns ids of projects the user already has a
// non-completed team for. The match flow filters these out.
func (db *DB) ActiveProjectIDsForUser(ctx context.Context, userID string) (map[string]bool, error) {
	teams, err := db.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	active := make(map[string]bool)
	for i := range teams {
		team := &teams[i]
		if team.IsCompleted() {
			continue
		}
		if team.HasMember(userID) {
			active[team.ProjectID] = true
		}
	}
	return active, nil
}

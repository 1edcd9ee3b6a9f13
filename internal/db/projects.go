package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

const projectColumns = `id, title, description, industry, created_by, created_by_name, roles_needed, team_size, tags, created_at`

func scanProject(row pgx.Row) (*types.Project, error) {
	var p types.Project
	var createdBy, createdByName *string
	var industry string
	var slots RoleSlotList
	var tags StringArray

	err := row.Scan(&p.ID, &p.Title, &p.Description, &industry, &createdBy, &createdByName,
		&slots, &p.TeamSize, &tags, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	p.Industry = types.Industry(industry)
	if createdBy != nil {
		p.CreatedBy = *createdBy
	}
	if createdByName != nil {
		p.CreatedByName = *createdByName
	}
	p.RolesNeeded = slots
	p.Tags = tags
	return &p, nil
}

// CreateProject persists a project, assigning its id and creation time.
func (db *DB) CreateProject(ctx context.Context, project *types.Project) error {
	project.ID = uuid.NewString()

	var createdBy *string
	if project.CreatedBy != "" {
		createdBy = &project.CreatedBy
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO projects (id, title, description, industry, created_by, created_by_name, roles_needed, team_size, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at`,
		project.ID, project.Title, project.Description, string(project.Industry),
		createdBy, project.CreatedByName, RoleSlotList(project.RolesNeeded),
		project.TeamSize, StringArray(project.Tags),
	).Scan(&project.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetProject retrieves a project by id. Returns nil when not found.
func (db *DB) GetProject(ctx context.Context, id string) (*types.Project, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects returns all projects, newest first.
func (db *DB) ListProjects(ctx context.Context) ([]types.Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// DeleteProject removes a project so it can no longer be matched into.
func (db *DB) DeleteProject(ctx context.Context, id string) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/patch-matchmaker/internal/matching"
	"github.com/jonathan/patch-matchmaker/internal/types"
)

// seedProjects are the demo projects inserted by SeedDemoData. They
// carry no created_by so they stay eligible for placeholder backfill.
var seedProjects = []types.Project{
	{
		ID:            "proj-1",
		Title:         "AI-Powered Personal Finance Dashboard",
		Description:   "Build a smart dashboard that uses machine learning to track spending, predict budgets, and provide personalized savings advice.",
		Industry:      types.IndustryFintech,
		CreatedByName: "Sam Rivera",
		RolesNeeded: []types.RoleSlot{
			{Role: types.RoleSWE, Experience: types.ExperienceMid},
			{Role: types.RoleDesigner, Experience: types.ExperienceMid},
		},
		TeamSize:  4,
		Tags:      []string{"React", "Python", "ML", "Finance"},
		CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:            "proj-2",
		Title:         "Mental Health Check-in App",
		Description:   "Create a mobile-first app that helps users track their mental well-being through daily check-ins, journaling, and AI-generated insights.",
		Industry:      types.IndustryHealthtech,
		CreatedByName: "Dana Nguyen",
		RolesNeeded: []types.RoleSlot{
			{Role: types.RoleSWE, Experience: types.ExperienceJunior},
			{Role: types.RoleDesigner, Experience: types.ExperienceSenior},
		},
		TeamSize:  3,
		Tags:      []string{"React Native", "Node.js", "UX Research"},
		CreatedAt: time.Date(2026, 1, 20, 14, 0, 0, 0, time.UTC),
	},
	{
		ID:            "proj-3",
		Title:         "Sustainable Marketplace Platform",
		Description:   "An ecommerce platform connecting consumers with eco-friendly brands, featuring carbon footprint tracking for every purchase.",
		Industry:      types.IndustrySustainability,
		CreatedByName: "Alex Johnson",
		RolesNeeded: []types.RoleSlot{
			{Role: types.RoleSWE, Experience: types.ExperienceSenior},
			{Role: types.RolePM, Experience: types.ExperienceMid},
			{Role: types.RoleDesigner, Experience: types.ExperienceMid},
		},
		TeamSize:  5,
		Tags:      []string{"Next.js", "Stripe", "Sustainability"},
		CreatedAt: time.Date(2026, 1, 25, 9, 0, 0, 0, time.UTC),
	},
	{
		ID:            "proj-4",
		Title:         "Interactive Coding Tutor for Kids",
		Description:   "A gamified education platform that teaches children programming fundamentals through interactive puzzles and AI-guided lessons.",
		Industry:      types.IndustryEdtech,
		CreatedByName: "Lena Park",
		RolesNeeded: []types.RoleSlot{
			{Role: types.RoleDesigner, Experience: types.ExperienceJunior},
			{Role: types.RoleSWE, Experience: types.ExperienceMid},
		},
		TeamSize:  3,
		Tags:      []string{"TypeScript", "Gamification", "Education"},
		CreatedAt: time.Date(2026, 2, 1, 11, 0, 0, 0, time.UTC),
	},
	{
		ID:            "proj-5",
		Title:         "Social Fitness Challenge App",
		Description:   "A social platform where friends can create and compete in fitness challenges, track progress, and cheer each other on.",
		Industry:      types.IndustrySocial,
		CreatedByName: "Tyler Wang",
		RolesNeeded: []types.RoleSlot{
			{Role: types.RoleSWE, Experience: types.ExperienceMid},
			{Role: types.RolePM, Experience: types.ExperienceJunior},
		},
		TeamSize:  4,
		Tags:      []string{"React", "Firebase", "Social", "Health"},
		CreatedAt: time.Date(2026, 2, 3, 16, 0, 0, 0, time.UTC),
	},
	{
		ID:            "proj-6",
		Title:         "AI Content Moderation Tool",
		Description:   "Build an AI-driven content moderation system that can detect harmful content across text, images, and video in real-time.",
		Industry:      types.IndustryAIML,
		CreatedByName: "Kai Peters",
		RolesNeeded: []types.RoleSlot{
			{Role: types.RoleSWE, Experience: types.ExperienceSenior},
			{Role: types.RoleDesigner, Experience: types.ExperienceMid},
		},
		TeamSize:  3,
		Tags:      []string{"Python", "TensorFlow", "NLP", "Computer Vision"},
		CreatedAt: time.Date(2026, 2, 5, 8, 0, 0, 0, time.UTC),
	},
}

// SeedDemoData inserts the demo teammate pool and demo projects.
// Existing rows are left untouched, so re-seeding is safe.
func (db *DB) SeedDemoData(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(4)

	for _, profile := range matching.PlaceholderTeammates() {
		group.Go(func() error {
			return db.upsertSeedUser(groupCtx, profile)
		})
	}
	if err := group.Wait(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	for _, project := range seedProjects {
		if err := db.insertSeedProject(ctx, project); err != nil {
			return fmt.Errorf("failed to seed project %s: %w", project.ID, err)
		}
	}
	return nil
}

func (db *DB) upsertSeedUser(ctx context.Context, profile types.UserProfile) error {
	industries := make(StringArray, 0, len(profile.Industries))
	for _, industry := range profile.Industries {
		industries = append(industries, string(industry))
	}
	email := seedEmail(profile.Name)

	_, err := db.pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, experience, industries, work_ethic, avatar, onboarded)
		 VALUES ($1, $2, $3, '', $4, $5, $6, $7, $8, true)
		 ON CONFLICT (id) DO NOTHING`,
		profile.ID, email, profile.Name, string(profile.Role), string(profile.Experience),
		industries, string(profile.WorkEthic), profile.Avatar,
	)
	return err
}

func (db *DB) insertSeedProject(ctx context.Context, project types.Project) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO projects (id, title, description, industry, created_by, created_by_name, roles_needed, team_size, tags, created_at)
		 VALUES ($1, $2, $3, $4, NULL, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO NOTHING`,
		project.ID, project.Title, project.Description, string(project.Industry),
		project.CreatedByName, RoleSlotList(project.RolesNeeded),
		project.TeamSize, StringArray(project.Tags), project.CreatedAt,
	)
	return err
}

func seedEmail(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@demo.patch.dev"
}

package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RoleSlot is one opening on a project: a role plus the experience level
// the creator wants for it. Duplicates are allowed and meaningful.
type RoleSlot struct {
	Role       Role            `json:"role"`
	Experience ExperienceLevel `json:"experience"`
}

// Project is a posted collaboration opportunity.
type Project struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Industry      Industry   `json:"industry"`
	CreatedBy     string     `json:"createdBy"` // empty for seed/demo projects
	CreatedByName string     `json:"createdByName,omitempty"`
	RolesNeeded   []RoleSlot `json:"rolesNeeded"`
	TeamSize      int        `json:"teamSize"`
	Tags          []string   `json:"tags"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// IsSeed reports whether the project is a demo posting with no real owner.
// Only seed projects are eligible for synthetic teammate backfill.
func (p *Project) IsSeed() bool {
	return p.CreatedBy == ""
}

// NeedsRole reports whether any open slot asks for the given role.
func (p *Project) NeedsRole(role Role) bool {
	for _, slot := range p.RolesNeeded {
		if slot.Role == role {
			return true
		}
	}
	return false
}

// NeedsExactly reports whether any open slot asks for the given role at
// the given experience level.
func (p *Project) NeedsExactly(role Role, experience ExperienceLevel) bool {
	for _, slot := range p.RolesNeeded {
		if slot.Role == role && slot.Experience == experience {
			return true
		}
	}
	return false
}

// RoleSlotRequest is the wire form of a role slot before enum validation.
type RoleSlotRequest struct {
	Role       string `json:"role" validate:"required"`
	Experience string `json:"experience" validate:"required"`
}

// CreateProjectRequest is the payload for posting a new project.
type CreateProjectRequest struct {
	Title       string            `json:"title" validate:"required,min=3"`
	Description string            `json:"description" validate:"required,min=10"`
	Industry    string            `json:"industry" validate:"required"`
	RolesNeeded []RoleSlotRequest `json:"rolesNeeded" validate:"required,min=1,dive"`
	TeamSize    int               `json:"teamSize" validate:"required,min=2,max=8"`
	Tags        []string          `json:"tags"`
}

// Validate validates the CreateProjectRequest using the validator.
func (r *CreateProjectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Project validates the enum fields and builds a project. The caller
// assigns identity, ownership, and creation time.
func (r *CreateProjectRequest) Project() (*Project, error) {
	industry, err := ParseIndustry(r.Industry)
	if err != nil {
		return nil, err
	}

	slots := make([]RoleSlot, 0, len(r.RolesNeeded))
	for _, raw := range r.RolesNeeded {
		role, err := ParseRole(raw.Role)
		if err != nil {
			return nil, err
		}
		experience, err := ParseExperienceLevel(raw.Experience)
		if err != nil {
			return nil, err
		}
		slots = append(slots, RoleSlot{Role: role, Experience: experience})
	}

	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Project{
		Title:       r.Title,
		Description: r.Description,
		Industry:    industry,
		RolesNeeded: slots,
		TeamSize:    r.TeamSize,
		Tags:        tags,
	}, nil
}

package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/jonathan/patch-matchmaker/internal/types"
)

// User is a stored account plus its (possibly not yet onboarded)
// matching profile.
type User struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	Name         string            `json:"name"`
	PasswordHash string            `json:"-"`
	Role         string            `json:"role,omitempty"`
	Experience   string            `json:"experience,omitempty"`
	Industries   StringArray       `json:"industries"`
	WorkEthic    string            `json:"workEthic,omitempty"`
	Avatar       string            `json:"avatar,omitempty"`
	Onboarded    bool              `json:"onboarded"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Profile converts the stored row to a domain profile, normalizing the
// experience label. Returns an error for rows predating enum validation.
func (u *User) Profile() (*types.UserProfile, error) {
	role, err := types.ParseRole(u.Role)
	if err != nil {
		return nil, err
	}
	experience, err := types.ParseExperienceLevel(u.Experience)
	if err != nil {
		return nil, err
	}
	industries, err := types.ParseIndustries(u.Industries)
	if err != nil {
		return nil, err
	}
	workEthic, err := types.ParseWorkEthic(u.WorkEthic)
	if err != nil {
		return nil, err
	}

	return &types.UserProfile{
		ID:         u.ID,
		Name:       u.Name,
		Role:       role,
		Experience: experience,
		Industries: industries,
		WorkEthic:  workEthic,
		Avatar:     u.Avatar,
		Onboarded:  u.Onboarded,
	}, nil
}

// StringArray handles JSONB string arrays.
type StringArray []string

// Scan implements the Scanner interface for StringArray.
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// RoleSlotList handles the JSONB roles_needed column.
type RoleSlotList []types.RoleSlot

// Scan implements the Scanner interface for RoleSlotList.
func (l *RoleSlotList) Scan(src interface{}) error {
	if src == nil {
		*l = []types.RoleSlot{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, l)
}

// Value implements the Valuer interface for RoleSlotList.
func (l RoleSlotList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// MemberList handles the JSONB team members column.
type MemberList []types.UserProfile

// Scan implements the Scanner interface for MemberList.
func (l *MemberList) Scan(src interface{}) error {
	if src == nil {
		*l = []types.UserProfile{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, l)
}

// Value implements the Valuer interface for MemberList.
func (l MemberList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// ProjectSnapshot handles the JSONB denormalized project column on teams.
type ProjectSnapshot types.Project

// Scan implements the Scanner interface for ProjectSnapshot.
func (p *ProjectSnapshot) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, p)
}

// Value implements the Valuer interface for ProjectSnapshot.
func (p ProjectSnapshot) Value() (driver.Value, error) {
	return json.Marshal(p)
}

package types

// UserProfile is an onboarded user's identity plus matching attributes.
// Identity is immutable; attributes are editable only by the owner.
type UserProfile struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Role       Role            `json:"role"`
	Experience ExperienceLevel `json:"experience"`
	Industries []Industry      `json:"industries"`
	WorkEthic  WorkEthic       `json:"workEthic"`
	Avatar     string          `json:"avatar,omitempty"`
	Onboarded  bool            `json:"onboarded"`
}

// HasIndustry reports whether the profile lists the given industry.
func (u *UserProfile) HasIndustry(industry Industry) bool {
	for _, ind := range u.Industries {
		if ind == industry {
			return true
		}
	}
	return false
}

// OnboardRequest is the payload for creating or replacing a profile.
type OnboardRequest struct {
	Name       string   `json:"name" validate:"required,min=1"`
	Role       string   `json:"role" validate:"required"`
	Experience string   `json:"experience" validate:"required"`
	Industries []string `json:"industries" validate:"required,min=1"`
	WorkEthic  string   `json:"workEthic" validate:"required"`
}

// Profile validates the request against the closed enums and builds the
// matching attributes of a profile. The caller assigns identity.
func (r *OnboardRequest) Profile() (*UserProfile, error) {
	role, err := ParseRole(r.Role)
	if err != nil {
		return nil, err
	}
	experience, err := ParseExperienceLevel(r.Experience)
	if err != nil {
		return nil, err
	}
	industries, err := ParseIndustries(r.Industries)
	if err != nil {
		return nil, err
	}
	workEthic, err := ParseWorkEthic(r.WorkEthic)
	if err != nil {
		return nil, err
	}

	return &UserProfile{
		Name:       r.Name,
		Role:       role,
		Experience: experience,
		Industries: industries,
		WorkEthic:  workEthic,
		Onboarded:  true,
	}, nil
}

package matching

import "github.com/jonathan/patch-matchmaker/internal/types"

// placeholderTeammates is the fixed pool of synthetic profiles used to
// backfill undersized teams on seed projects. Pool order is meaningful:
// backfill consumes it front to back.
var placeholderTeammates = []types.UserProfile{
	{
		ID:         "user-1",
		Name:       "Alex Johnson",
		Role:       types.RoleSWE,
		Experience: types.ExperienceSenior,
		Industries: []types.Industry{types.IndustryAIML, types.IndustryFintech},
		WorkEthic:  types.WorkEthicCollaborative,
		Avatar:     "AJ",
		Onboarded:  true,
	},
	{
		ID:         "user-2",
		Name:       "Maya Kim",
		Role:       types.RoleDesigner,
		Experience: types.ExperienceMid,
		Industries: []types.Industry{types.IndustryHealthtech, types.IndustrySocial},
		WorkEthic:  types.WorkEthicFlexible,
		Avatar:     "MK",
		Onboarded:  true,
	},
	{
		ID:         "user-3",
		Name:       "Sam Rivera",
		Role:       types.RolePM,
		Experience: types.ExperienceSenior,
		Industries: []types.Industry{types.IndustryEcommerce, types.IndustryFintech},
		WorkEthic:  types.WorkEthicStructured,
		Avatar:     "SR",
		Onboarded:  true,
	},
	{
		ID:         "user-4",
		Name:       "Lena Park",
		Role:       types.RoleSWE,
		Experience: types.ExperienceJunior,
		Industries: []types.Industry{types.IndustryEdtech, types.IndustryAIML},
		WorkEthic:  types.WorkEthicAsync,
		Avatar:     "LP",
		Onboarded:  true,
	},
	{
		ID:         "user-5",
		Name:       "Tyler Wang",
		Role:       types.RoleDesigner,
		Experience: types.ExperienceSenior,
		Industries: []types.Industry{types.IndustryGaming, types.IndustrySocial},
		WorkEthic:  types.WorkEthicCollaborative,
		Avatar:     "TW",
		Onboarded:  true,
	},
	{
		ID:         "user-6",
		Name:       "Dana Nguyen",
		Role:       types.RolePM,
		Experience: types.ExperienceMid,
		Industries: []types.Industry{types.IndustrySustainability, types.IndustryHealthtech},
		WorkEthic:  types.WorkEthicFlexible,
		Avatar:     "DN",
		Onboarded:  true,
	},
	{
		ID:         "user-7",
		Name:       "Kai Peters",
		Role:       types.RoleSWE,
		Experience: types.ExperienceMid,
		Industries: []types.Industry{types.IndustryFintech, types.IndustryEcommerce},
		WorkEthic:  types.WorkEthicStructured,
		Avatar:     "KP",
		Onboarded:  true,
	},
	{
		ID:         "user-8",
		Name:       "Rosa Garcia",
		Role:       types.RoleDesigner,
		Experience: types.ExperienceJunior,
		Industries: []types.Industry{types.IndustryEdtech, types.IndustrySustainability},
		WorkEthic:  types.WorkEthicAsync,
		Avatar:     "RG",
		Onboarded:  true,
	},
}

// PlaceholderTeammates returns a copy of the synthetic teammate pool.
func PlaceholderTeammates() []types.UserProfile {
	pool := make([]types.UserProfile, len(placeholderTeammates))
	copy(pool, placeholderTeammates)
	return pool
}

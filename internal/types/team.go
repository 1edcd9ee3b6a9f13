package types

import "time"

// Team is the realized result of a successful match. The project is
// snapshotted at creation time; later edits to the live project do not
// propagate. Once CompletedAt is set the team is terminal.
type Team struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"projectId"`
	Project     Project       `json:"project"`
	Members     []UserProfile `json:"members"` // first member is the requesting user
	MatchScore  int           `json:"matchScore"`
	MatchReason string        `json:"matchReason"`
	CreatedAt   time.Time     `json:"createdAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
	CompletedBy string        `json:"completedBy,omitempty"`
}

// IsCompleted reports whether the team has been marked terminal.
func (t *Team) IsCompleted() bool {
	return t.CompletedAt != nil
}

// HasMember reports whether the given user is on the team.
func (t *Team) HasMember(userID string) bool {
	for _, m := range t.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// Recommendation is one dashboard-feed entry: how well a project fits a
// user, with a short reason.
type Recommendation struct {
	ProjectID  string `json:"projectId"`
	Reason     string `json:"reason"`
	MatchScore int    `json:"matchScore"`
}

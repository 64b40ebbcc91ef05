package models

// Actor is the resolved capability of a user for the current request: a plain
// user, a coach, a facility owner, or an administrator. It is computed once
// per request and passed explicitly instead of being re-derived by probing
// collections at each permission check.
type Actor struct {
	UserID     string    `json:"userId"`
	Role       ActorRole `json:"role"`
	CoachID    string    `json:"coachId,omitempty"`    // Set when Role == RoleCoach
	FacilityID string    `json:"facilityId,omitempty"` // Set when Role == RoleFacility
}

// IsAdmin reports whether the actor has administrator rights.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

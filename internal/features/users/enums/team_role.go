package users_enums

type TeamRole string

const (
	TeamRoleOwner  TeamRole = "TEAM_OWNER"
	TeamRoleAdmin  TeamRole = "TEAM_ADMIN"
	TeamRoleMember TeamRole = "TEAM_MEMBER"
)

// IsValid validates the TeamRole
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleOwner, TeamRoleAdmin, TeamRoleMember:
		return true
	default:
		return false
	}
}

func (r TeamRole) IsAssignable() bool {
	return r.IsValid() && r != TeamRoleOwner
}

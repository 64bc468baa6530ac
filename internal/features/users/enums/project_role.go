package users_enums

type ProjectRole string

const (
	ProjectRoleOwner   ProjectRole = "PROJECT_OWNER"
	ProjectRoleAdmin   ProjectRole = "PROJECT_ADMIN"
	ProjectRoleManager ProjectRole = "PROJECT_MANAGER"
	ProjectRoleMember  ProjectRole = "PROJECT_MEMBER"
)

// IsValid validates the ProjectRole
func (r ProjectRole) IsValid() bool {
	switch r {
	case ProjectRoleOwner, ProjectRoleAdmin, ProjectRoleManager, ProjectRoleMember:
		return true
	default:
		return false
	}
}

// IsAssignable reports whether the role may be granted through an
// invitation or role change. Ownership moves only via transfer.
func (r ProjectRole) IsAssignable() bool {
	return r.IsValid() && r != ProjectRoleOwner
}

// Package memberships_permissions decides whether an actor may perform
// an action on a project or team. It is a pure function over data the
// caller has already loaded, so the policy stays auditable and
// testable without touching workflow code.
package memberships_permissions

import (
	users_enums "taskhub-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

type Action string

const (
	ActionInviteMember   Action = "invite_member"
	ActionRemoveMember   Action = "remove_member"
	ActionChangeRole     Action = "change_role"
	ActionViewMembers    Action = "view_members"
	ActionManageSettings Action = "manage_settings"
)

type Decision struct {
	Allowed bool
	Reason  string
}

func allowed() Decision {
	return Decision{Allowed: true}
}

func denied(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// ProjectActorMembership is the actor's membership row, if any.
type ProjectActorMembership struct {
	Role   users_enums.ProjectRole
	Status users_enums.MembershipStatus
}

type ProjectEvaluation struct {
	ActorID    uuid.UUID
	OwnerID    uuid.UUID
	Membership *ProjectActorMembership
	// TargetRole is the affected member's role, set for remove_member
	// and change_role.
	TargetRole *users_enums.ProjectRole
	Action     Action
}

// EvaluateProject applies the project policy table. Rules run in
// order, first match wins:
//   - the owner is allowed everything, regardless of target role;
//   - no accepted membership means denial, never a low-privilege
//     fallback;
//   - admins manage membership and settings but cannot demote or
//     remove other admins or the owner;
//   - any accepted member may view members.
func EvaluateProject(eval ProjectEvaluation) Decision {
	if eval.ActorID == eval.OwnerID {
		return allowed()
	}

	if eval.Membership == nil ||
		eval.Membership.Status != users_enums.MembershipStatusAccepted {
		return denied("not a member")
	}

	switch eval.Action {
	case ActionInviteMember, ActionManageSettings:
		if eval.Membership.Role == users_enums.ProjectRoleAdmin {
			return allowed()
		}
		return denied("requires admin role")

	case ActionRemoveMember, ActionChangeRole:
		if eval.Membership.Role != users_enums.ProjectRoleAdmin {
			return denied("requires admin role")
		}
		if eval.TargetRole != nil &&
			(*eval.TargetRole == users_enums.ProjectRoleAdmin ||
				*eval.TargetRole == users_enums.ProjectRoleOwner) {
			return denied("admins cannot manage other admins or the owner")
		}
		return allowed()

	case ActionViewMembers:
		return allowed()

	default:
		return denied("unrecognized action")
	}
}

type TeamActorMembership struct {
	Role users_enums.TeamRole
}

type TeamEvaluation struct {
	ActorID    uuid.UUID
	OwnerID    uuid.UUID
	Membership *TeamActorMembership
	TargetRole *users_enums.TeamRole
	Action     Action
}

// EvaluateTeam applies the team policy table. Teams are simpler than
// projects: memberships have no pending state, and both the owner and
// admin roles may manage assignment.
func EvaluateTeam(eval TeamEvaluation) Decision {
	if eval.ActorID == eval.OwnerID {
		return allowed()
	}

	if eval.Membership == nil {
		return denied("not a member")
	}

	switch eval.Action {
	case ActionInviteMember, ActionManageSettings:
		if eval.Membership.Role == users_enums.TeamRoleOwner ||
			eval.Membership.Role == users_enums.TeamRoleAdmin {
			return allowed()
		}
		return denied("requires admin role")

	case ActionRemoveMember, ActionChangeRole:
		if eval.Membership.Role != users_enums.TeamRoleAdmin &&
			eval.Membership.Role != users_enums.TeamRoleOwner {
			return denied("requires admin role")
		}
		if eval.Membership.Role == users_enums.TeamRoleAdmin &&
			eval.TargetRole != nil &&
			(*eval.TargetRole == users_enums.TeamRoleAdmin ||
				*eval.TargetRole == users_enums.TeamRoleOwner) {
			return denied("admins cannot manage other admins or the owner")
		}
		return allowed()

	case ActionViewMembers:
		return allowed()

	default:
		return denied("unrecognized action")
	}
}

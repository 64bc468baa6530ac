package memberships_permissions

import (
	"testing"

	users_enums "taskhub-backend/internal/features/users/enums"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func projectMembership(
	role users_enums.ProjectRole,
	status users_enums.MembershipStatus,
) *ProjectActorMembership {
	return &ProjectActorMembership{Role: role, Status: status}
}

func projectRolePtr(role users_enums.ProjectRole) *users_enums.ProjectRole {
	return &role
}

func teamRolePtr(role users_enums.TeamRole) *users_enums.TeamRole {
	return &role
}

func Test_EvaluateProject_PolicyTable(t *testing.T) {
	ownerID := uuid.New()
	actorID := uuid.New()

	tests := []struct {
		name           string
		actorID        uuid.UUID
		membership     *ProjectActorMembership
		targetRole     *users_enums.ProjectRole
		action         Action
		expectAllowed  bool
		expectedReason string
	}{
		{
			name:          "owner allowed everything without membership row",
			actorID:       ownerID,
			membership:    nil,
			action:        ActionManageSettings,
			expectAllowed: true,
		},
		{
			name:          "owner may remove another admin",
			actorID:       ownerID,
			membership:    nil,
			targetRole:    projectRolePtr(users_enums.ProjectRoleAdmin),
			action:        ActionRemoveMember,
			expectAllowed: true,
		},
		{
			name:           "no membership denies view",
			actorID:        actorID,
			membership:     nil,
			action:         ActionViewMembers,
			expectAllowed:  false,
			expectedReason: "not a member",
		},
		{
			name:    "pending membership denies view",
			actorID: actorID,
			membership: projectMembership(
				users_enums.ProjectRoleMember,
				users_enums.MembershipStatusPending,
			),
			action:         ActionViewMembers,
			expectAllowed:  false,
			expectedReason: "not a member",
		},
		{
			name:    "pending admin denies invite",
			actorID: actorID,
			membership: projectMembership(
				users_enums.ProjectRoleAdmin,
				users_enums.MembershipStatusPending,
			),
			action:         ActionInviteMember,
			expectAllowed:  false,
			expectedReason: "not a member",
		},
		{
			name:    "accepted member may view members",
			actorID: actorID,
			membership: projectMembership(
				users_enums.ProjectRoleMember,
				users_enums.MembershipStatusAccepted,
			),
			action:        ActionViewMembers,
			expectAllowed: true,
		},
		{
			name:    "accepted member cannot invite",
			actorID: actorID,
			membership: projectMembership(
				users_enums.ProjectRoleMember,
				users_enums.MembershipStatusAccepted,
			),
			action:         ActionInviteMember,
			expectAllowed:  false,
			expectedReason: "requires admin role",
		},
		{
			name:    "manager cannot manage settings",
			actorID: actorID,
			membership: projectMembership(
				users_enums.ProjectRoleManager,
				users_enums.MembershipStatusAccepted,
			),
			action:         ActionManageSettings,
			expectAllowed:  false,
			expectedReason: "requires admin role",
		},
		{
			name:    "admin may invite",
			actorID: actorID,
			membership: projectMembership(
				users_enums.ProjectRoleAdmin,
				users_enums.MembershipStatusAccepted,
			),
			action:        ActionInviteMember,
			expectAllowed: true,
		},
		{
			name:    "admin may remove a regular member",
			actorID: actorID,
			membership: projectMembership(
				users_enums.ProjectRoleAdmin,
				users_enums.MembershipStatusAccepted,
			),
			targetRole:    projectRolePtr(users_enums.ProjectRoleMember),
			action:        ActionRemoveMember,
			expectAllowed: true,
		},
		{
			name:    "admin cannot remove another admin",
			actorID: actorID,
			membership: projectMembership(
				users_enums.ProjectRoleAdmin,
				users_enums.MembershipStatusAccepted,
			),
			targetRole:     projectRolePtr(users_enums.ProjectRoleAdmin),
			action:         ActionRemoveMember,
			expectAllowed:  false,
			expectedReason: "admins cannot manage other admins or the owner",
		},
		{
			name:    "admin cannot change the owner's role",
			actorID: actorID,
			membership: projectMembership(
				users_enums.ProjectRoleAdmin,
				users_enums.MembershipStatusAccepted,
			),
			targetRole:     projectRolePtr(users_enums.ProjectRoleOwner),
			action:         ActionChangeRole,
			expectAllowed:  false,
			expectedReason: "admins cannot manage other admins or the owner",
		},
		{
			name:    "admin may change a manager's role",
			actorID: actorID,
			membership: projectMembership(
				users_enums.ProjectRoleAdmin,
				users_enums.MembershipStatusAccepted,
			),
			targetRole:    projectRolePtr(users_enums.ProjectRoleManager),
			action:        ActionChangeRole,
			expectAllowed: true,
		},
		{
			name:    "unrecognized action is denied",
			actorID: actorID,
			membership: projectMembership(
				users_enums.ProjectRoleAdmin,
				users_enums.MembershipStatusAccepted,
			),
			action:         Action("drop_tables"),
			expectAllowed:  false,
			expectedReason: "unrecognized action",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := EvaluateProject(ProjectEvaluation{
				ActorID:    tt.actorID,
				OwnerID:    ownerID,
				Membership: tt.membership,
				TargetRole: tt.targetRole,
				Action:     tt.action,
			})

			assert.Equal(t, tt.expectAllowed, decision.Allowed)
			if !tt.expectAllowed {
				assert.Equal(t, tt.expectedReason, decision.Reason)
			}
		})
	}
}

func Test_EvaluateTeam_PolicyTable(t *testing.T) {
	ownerID := uuid.New()
	actorID := uuid.New()

	tests := []struct {
		name           string
		actorID        uuid.UUID
		membership     *TeamActorMembership
		targetRole     *users_enums.TeamRole
		action         Action
		expectAllowed  bool
		expectedReason string
	}{
		{
			name:          "team owner allowed everything",
			actorID:       ownerID,
			membership:    nil,
			action:        ActionManageSettings,
			expectAllowed: true,
		},
		{
			name:           "non-member denied view",
			actorID:        actorID,
			membership:     nil,
			action:         ActionViewMembers,
			expectAllowed:  false,
			expectedReason: "not a member",
		},
		{
			name:          "member may view members",
			actorID:       actorID,
			membership:    &TeamActorMembership{Role: users_enums.TeamRoleMember},
			action:        ActionViewMembers,
			expectAllowed: true,
		},
		{
			name:           "member cannot assign",
			actorID:        actorID,
			membership:     &TeamActorMembership{Role: users_enums.TeamRoleMember},
			action:         ActionInviteMember,
			expectAllowed:  false,
			expectedReason: "requires admin role",
		},
		{
			name:          "admin may assign",
			actorID:       actorID,
			membership:    &TeamActorMembership{Role: users_enums.TeamRoleAdmin},
			action:        ActionInviteMember,
			expectAllowed: true,
		},
		{
			name:           "admin cannot remove another admin",
			actorID:        actorID,
			membership:     &TeamActorMembership{Role: users_enums.TeamRoleAdmin},
			targetRole:     teamRolePtr(users_enums.TeamRoleAdmin),
			action:         ActionRemoveMember,
			expectAllowed:  false,
			expectedReason: "admins cannot manage other admins or the owner",
		},
		{
			name:          "owner-role member may remove an admin",
			actorID:       actorID,
			membership:    &TeamActorMembership{Role: users_enums.TeamRoleOwner},
			targetRole:    teamRolePtr(users_enums.TeamRoleAdmin),
			action:        ActionRemoveMember,
			expectAllowed: true,
		},
		{
			name:          "admin may change a regular member's role",
			actorID:       actorID,
			membership:    &TeamActorMembership{Role: users_enums.TeamRoleAdmin},
			targetRole:    teamRolePtr(users_enums.TeamRoleMember),
			action:        ActionChangeRole,
			expectAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := EvaluateTeam(TeamEvaluation{
				ActorID:    tt.actorID,
				OwnerID:    ownerID,
				Membership: tt.membership,
				TargetRole: tt.targetRole,
				Action:     tt.action,
			})

			assert.Equal(t, tt.expectAllowed, decision.Allowed)
			if !tt.expectAllowed {
				assert.Equal(t, tt.expectedReason, decision.Reason)
			}
		})
	}
}

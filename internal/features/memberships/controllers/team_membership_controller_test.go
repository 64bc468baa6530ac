package memberships_controllers

import (
	"net/http"
	"testing"

	memberships_dto "taskhub-backend/internal/features/memberships/dto"
	projects_controllers "taskhub-backend/internal/features/projects/controllers"
	projects_testing "taskhub-backend/internal/features/projects/testing"
	users_dto "taskhub-backend/internal/features/users/dto"
	users_enums "taskhub-backend/internal/features/users/enums"
	users_testing "taskhub-backend/internal/features/users/testing"
	test_utils "taskhub-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTeamTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(
		projects_controllers.GetProjectController(),
		GetMembershipController(),
		GetTeamMembershipController(),
	)
}

func assignTeamMember(
	t *testing.T,
	router *gin.Engine,
	teamID uuid.UUID,
	member *users_dto.SignInResponseDTO,
	role users_enums.TeamRole,
	actorToken string,
	expectedStatusCode int,
) {
	t.Helper()

	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/teams/"+teamID.String()+"/members",
		"Bearer "+actorToken,
		memberships_dto.AssignTeamMemberRequestDTO{
			UserID: member.UserID,
			Role:   role,
		},
	)

	require.Equal(t, expectedStatusCode, w.Code, "unexpected status, body: %s", w.Body.String())
}

func Test_AssignTeamMember_RequiresAcceptedProjectMembership(t *testing.T) {
	router := createTeamTestRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("team-assign-project", owner, router)
	team := projects_testing.CreateTestTeam(project.ID, "backend", owner.Token, router)

	// Not a project member at all.
	outsider := users_testing.CreateTestUser()
	assignTeamMember(
		t, router, team.ID, outsider, users_enums.TeamRoleMember,
		owner.Token, http.StatusNotFound,
	)

	// Invited but still pending.
	pending := users_testing.CreateTestUser()
	projects_testing.InviteMemberToProject(
		project.ID, pending.Email, users_enums.ProjectRoleMember, owner.Token, router,
	)
	assignTeamMember(
		t, router, team.ID, pending, users_enums.TeamRoleMember,
		owner.Token, http.StatusNotFound,
	)

	// Accepted project member can be assigned.
	projects_testing.RespondToInvitation(project.ID, true, pending.Token, router)
	assignTeamMember(
		t, router, team.ID, pending, users_enums.TeamRoleMember,
		owner.Token, http.StatusOK,
	)
}

func Test_AssignTeamMember_Duplicate_ReturnsConflict(t *testing.T) {
	router := createTeamTestRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("team-assign-dup", owner, router)
	team := projects_testing.CreateTestTeam(project.ID, "backend", owner.Token, router)

	member := users_testing.CreateTestUser()
	projects_testing.AddAcceptedMember(
		project.ID, member, users_enums.ProjectRoleMember, owner.Token, router,
	)

	assignTeamMember(
		t, router, team.ID, member, users_enums.TeamRoleMember,
		owner.Token, http.StatusOK,
	)
	assignTeamMember(
		t, router, team.ID, member, users_enums.TeamRoleAdmin,
		owner.Token, http.StatusConflict,
	)
}

func Test_AssignTeamMember_OwnerRole_ReturnsBadRequest(t *testing.T) {
	router := createTeamTestRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("team-assign-owner-role", owner, router)
	team := projects_testing.CreateTestTeam(project.ID, "backend", owner.Token, router)

	member := users_testing.CreateTestUser()
	projects_testing.AddAcceptedMember(
		project.ID, member, users_enums.ProjectRoleMember, owner.Token, router,
	)

	assignTeamMember(
		t, router, team.ID, member, users_enums.TeamRoleOwner,
		owner.Token, http.StatusBadRequest,
	)
}

func Test_AssignTeamMember_PermissionsEnforced(t *testing.T) {
	router := createTeamTestRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("team-assign-perms", owner, router)
	team := projects_testing.CreateTestTeam(project.ID, "backend", owner.Token, router)

	teamAdmin := users_testing.CreateTestUser()
	teamMember := users_testing.CreateTestUser()
	candidate := users_testing.CreateTestUser()

	for _, u := range []*users_dto.SignInResponseDTO{teamAdmin, teamMember, candidate} {
		projects_testing.AddAcceptedMember(
			project.ID, u, users_enums.ProjectRoleMember, owner.Token, router,
		)
	}

	assignTeamMember(
		t, router, team.ID, teamAdmin, users_enums.TeamRoleAdmin,
		owner.Token, http.StatusOK,
	)
	assignTeamMember(
		t, router, team.ID, teamMember, users_enums.TeamRoleMember,
		owner.Token, http.StatusOK,
	)

	// A regular team member cannot assign.
	assignTeamMember(
		t, router, team.ID, candidate, users_enums.TeamRoleMember,
		teamMember.Token, http.StatusForbidden,
	)

	// A team admin can.
	assignTeamMember(
		t, router, team.ID, candidate, users_enums.TeamRoleMember,
		teamAdmin.Token, http.StatusOK,
	)
}

func Test_RemoveTeamMember_AdminRestrictions(t *testing.T) {
	router := createTeamTestRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("team-remove-rules", owner, router)
	team := projects_testing.CreateTestTeam(project.ID, "backend", owner.Token, router)

	admin := users_testing.CreateTestUser()
	otherAdmin := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	for _, u := range []*users_dto.SignInResponseDTO{admin, otherAdmin, member} {
		projects_testing.AddAcceptedMember(
			project.ID, u, users_enums.ProjectRoleMember, owner.Token, router,
		)
	}

	assignTeamMember(
		t, router, team.ID, admin, users_enums.TeamRoleAdmin, owner.Token, http.StatusOK,
	)
	assignTeamMember(
		t, router, team.ID, otherAdmin, users_enums.TeamRoleAdmin, owner.Token, http.StatusOK,
	)
	assignTeamMember(
		t, router, team.ID, member, users_enums.TeamRoleMember, owner.Token, http.StatusOK,
	)

	// An admin cannot remove a peer admin.
	w := test_utils.MakeAPIRequest(
		router,
		"DELETE",
		"/api/v1/teams/"+team.ID.String()+"/members/"+otherAdmin.UserID.String(),
		"Bearer "+admin.Token,
		nil,
	)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// An admin can remove a regular member.
	w = test_utils.MakeAPIRequest(
		router,
		"DELETE",
		"/api/v1/teams/"+team.ID.String()+"/members/"+member.UserID.String(),
		"Bearer "+admin.Token,
		nil,
	)
	assert.Equal(t, http.StatusOK, w.Code)

	// The team owner can remove an admin.
	w = test_utils.MakeAPIRequest(
		router,
		"DELETE",
		"/api/v1/teams/"+team.ID.String()+"/members/"+otherAdmin.UserID.String(),
		"Bearer "+owner.Token,
		nil,
	)
	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_RemoveProjectMember_RevokesTeamMemberships(t *testing.T) {
	router := createTeamTestRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("team-revoke-on-removal", owner, router)
	team := projects_testing.CreateTestTeam(project.ID, "backend", owner.Token, router)

	member := users_testing.CreateTestUser()
	projects_testing.AddAcceptedMember(
		project.ID, member, users_enums.ProjectRoleMember, owner.Token, router,
	)
	assignTeamMember(
		t, router, team.ID, member, users_enums.TeamRoleAdmin, owner.Token, http.StatusOK,
	)

	w := test_utils.MakeAPIRequest(
		router,
		"DELETE",
		"/api/v1/projects/"+project.ID.String()+"/members/"+member.UserID.String(),
		"Bearer "+owner.Token,
		nil,
	)
	require.Equal(t, http.StatusOK, w.Code)

	// The team rows went with the project membership: the removed user
	// keeps no team access, admin role or not.
	w = test_utils.MakeAPIRequest(
		router,
		"GET",
		"/api/v1/teams/"+team.ID.String()+"/members",
		"Bearer "+member.Token,
		nil,
	)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var response memberships_dto.GetTeamMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/teams/"+team.ID.String()+"/members",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	for _, m := range response.Members {
		assert.NotEqual(t, member.UserID, m.UserID)
	}
}

func Test_ChangeTeamMemberRole_Succeeds(t *testing.T) {
	router := createTeamTestRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("team-change-role", owner, router)
	team := projects_testing.CreateTestTeam(project.ID, "backend", owner.Token, router)

	member := users_testing.CreateTestUser()
	projects_testing.AddAcceptedMember(
		project.ID, member, users_enums.ProjectRoleMember, owner.Token, router,
	)
	assignTeamMember(
		t, router, team.ID, member, users_enums.TeamRoleMember, owner.Token, http.StatusOK,
	)

	w := test_utils.MakeAPIRequest(
		router,
		"PUT",
		"/api/v1/teams/"+team.ID.String()+"/members/"+member.UserID.String()+"/role",
		"Bearer "+owner.Token,
		memberships_dto.ChangeTeamMemberRoleRequestDTO{Role: users_enums.TeamRoleAdmin},
	)
	require.Equal(t, http.StatusOK, w.Code)

	var response memberships_dto.GetTeamMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/teams/"+team.ID.String()+"/members",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	for _, m := range response.Members {
		if m.UserID == member.UserID {
			assert.Equal(t, users_enums.TeamRoleAdmin, m.Role)
		}
	}
}

func Test_GetTeamMembers_NonMember_Forbidden(t *testing.T) {
	router := createTeamTestRouter()
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("team-view-perms", owner, router)
	team := projects_testing.CreateTestTeam(project.ID, "backend", owner.Token, router)

	outsider := users_testing.CreateTestUser()

	w := test_utils.MakeAPIRequest(
		router,
		"GET",
		"/api/v1/teams/"+team.ID.String()+"/members",
		"Bearer "+outsider.Token,
		nil,
	)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_GetTeamMembers_UnknownTeam_ReturnsNotFound(t *testing.T) {
	router := createTeamTestRouter()
	user := users_testing.CreateTestUser()

	w := test_utils.MakeAPIRequest(
		router,
		"GET",
		"/api/v1/teams/"+uuid.NewString()+"/members",
		"Bearer "+user.Token,
		nil,
	)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

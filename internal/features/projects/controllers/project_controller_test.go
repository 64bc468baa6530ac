package projects_controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"taskhub-backend/internal/features/activities"
	memberships_controllers "taskhub-backend/internal/features/memberships/controllers"
	memberships_dto "taskhub-backend/internal/features/memberships/dto"
	memberships_repositories "taskhub-backend/internal/features/memberships/repositories"
	projects_dto "taskhub-backend/internal/features/projects/dto"
	projects_repositories "taskhub-backend/internal/features/projects/repositories"
	projects_testing "taskhub-backend/internal/features/projects/testing"
	users_enums "taskhub-backend/internal/features/users/enums"
	users_testing "taskhub-backend/internal/features/users/testing"
	test_utils "taskhub-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProjectTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(
		GetProjectController(),
		memberships_controllers.GetMembershipController(),
	)
}

func Test_CreateProject_OwnerGetsAcceptedMembership(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()

	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects",
		"Bearer "+owner.Token,
		projects_dto.CreateProjectRequestDTO{Name: "my project"},
	)
	require.Equal(t, http.StatusOK, w.Code)

	var project projects_dto.ProjectResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	assert.Equal(t, owner.UserID, project.OwnerID)
	require.NotNil(t, project.UserRole)
	assert.Equal(t, users_enums.ProjectRoleOwner, *project.UserRole)

	// The owner appears in the member list immediately, accepted.
	var members map[string]any
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/members",
		"Bearer "+owner.Token,
		http.StatusOK,
		&members,
	)
}

func Test_CreateProject_EmptyName_ReturnsBadRequest(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()

	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects",
		"Bearer "+owner.Token,
		projects_dto.CreateProjectRequestDTO{Name: ""},
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_ListProjects_OnlyAcceptedMemberships(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	user := users_testing.CreateTestUser()

	accepted := projects_testing.CreateTestProject("accepted-project", owner, router)
	pendingProject := projects_testing.CreateTestProject("pending-project", owner, router)

	projects_testing.AddAcceptedMember(
		accepted.ID, user, users_enums.ProjectRoleMember, owner.Token, router,
	)
	projects_testing.InviteMemberToProject(
		pendingProject.ID, user.Email, users_enums.ProjectRoleMember, owner.Token, router,
	)

	var response projects_dto.ListProjectsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Projects, 1)
	assert.Equal(t, accepted.ID, response.Projects[0].ID)
}

func Test_GetProject_NonMember_Forbidden(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("private-project", owner, router)

	w := test_utils.MakeAPIRequest(
		router,
		"GET",
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+outsider.Token,
		nil,
	)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_DeleteProject_OwnerOnly(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	admin := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("delete-me", owner, router)
	projects_testing.AddAcceptedMember(
		project.ID, admin, users_enums.ProjectRoleAdmin, owner.Token, router,
	)

	w := test_utils.MakeAPIRequest(
		router,
		"DELETE",
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+admin.Token,
		nil,
	)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = test_utils.MakeAPIRequest(
		router,
		"DELETE",
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+owner.Token,
		nil,
	)
	assert.Equal(t, http.StatusOK, w.Code)

	w = test_utils.MakeAPIRequest(
		router,
		"GET",
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+owner.Token,
		nil,
	)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_DeleteProject_CascadesDependents(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetProjectController(),
		memberships_controllers.GetMembershipController(),
		memberships_controllers.GetTeamMembershipController(),
	)
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("cascade-project", owner, router)
	team := projects_testing.CreateTestTeam(project.ID, "backend", owner.Token, router)
	projects_testing.AddAcceptedMember(
		project.ID, member, users_enums.ProjectRoleMember, owner.Token, router,
	)

	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/teams/"+team.ID.String()+"/members",
		"Bearer "+owner.Token,
		memberships_dto.AssignTeamMemberRequestDTO{
			UserID: member.UserID,
			Role:   users_enums.TeamRoleMember,
		},
	)
	require.Equal(t, http.StatusOK, w.Code)

	w = test_utils.MakeAPIRequest(
		router,
		"DELETE",
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+owner.Token,
		nil,
	)
	require.Equal(t, http.StatusOK, w.Code)

	// Teams, memberships and activities go with the project.
	teams, err := projects_repositories.GetTeamRepository().GetTeamsByProjectID(project.ID)
	require.NoError(t, err)
	assert.Empty(t, teams)

	membership, err := memberships_repositories.GetMembershipRepository().
		GetMembership(project.ID, member.UserID)
	require.NoError(t, err)
	assert.Nil(t, membership)

	teamMembership, err := memberships_repositories.GetTeamMembershipRepository().
		GetMembership(team.ID, member.UserID)
	require.NoError(t, err)
	assert.Nil(t, teamMembership)

	feed, err := activities.GetActivityService().
		GetProjectActivities(project.ID, &activities.GetActivitiesRequest{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, feed.Total)
}

func Test_CreateTeam_RequiresAdminOrOwner(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	admin := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("team-project", owner, router)
	projects_testing.AddAcceptedMember(
		project.ID, admin, users_enums.ProjectRoleAdmin, owner.Token, router,
	)
	projects_testing.AddAcceptedMember(
		project.ID, member, users_enums.ProjectRoleMember, owner.Token, router,
	)

	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects/"+project.ID.String()+"/teams",
		"Bearer "+member.Token,
		projects_dto.CreateTeamRequestDTO{Name: "forbidden team"},
	)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects/"+project.ID.String()+"/teams",
		"Bearer "+admin.Token,
		projects_dto.CreateTeamRequestDTO{Name: "platform"},
	)
	require.Equal(t, http.StatusOK, w.Code)

	var team projects_dto.TeamResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	assert.Equal(t, project.ID, team.ProjectID)
	assert.Equal(t, admin.UserID, team.OwnerID)

	var response projects_dto.ListTeamsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/teams",
		"Bearer "+member.Token,
		http.StatusOK,
		&response,
	)
	require.Len(t, response.Teams, 1)
	assert.Equal(t, "platform", response.Teams[0].Name)
}

func Test_GetActivities_RecordsProjectEvents(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("activity-project", owner, router)
	projects_testing.AddAcceptedMember(
		project.ID, member, users_enums.ProjectRoleMember, owner.Token, router,
	)

	var response activities.GetActivitiesResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/activities",
		"Bearer "+member.Token,
		http.StatusOK,
		&response,
	)

	// project_created, member_invited, member_joined
	require.GreaterOrEqual(t, len(response.Activities), 3)

	types := make(map[string]bool)
	for _, a := range response.Activities {
		types[string(a.Type)] = true
	}

	assert.True(t, types[string(activities.ActivityTypeProjectCreated)])
	assert.True(t, types[string(activities.ActivityTypeMemberInvited)])
	assert.True(t, types[string(activities.ActivityTypeMemberJoined)])
}

func Test_GetActivities_NonMember_Forbidden(t *testing.T) {
	router := createProjectTestRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("activity-private", owner, router)

	w := test_utils.MakeAPIRequest(
		router,
		"GET",
		"/api/v1/projects/"+project.ID.String()+"/activities",
		"Bearer "+outsider.Token,
		nil,
	)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_GetProject_InvalidID_ReturnsBadRequest(t *testing.T) {
	router := createProjectTestRouter()
	user := users_testing.CreateTestUser()

	w := test_utils.MakeAPIRequest(
		router,
		"GET",
		"/api/v1/projects/not-a-uuid",
		"Bearer "+user.Token,
		nil,
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_DeleteProject_Unknown_ReturnsNotFound(t *testing.T) {
	router := createProjectTestRouter()
	user := users_testing.CreateTestUser()

	w := test_utils.MakeAPIRequest(
		router,
		"DELETE",
		"/api/v1/projects/"+uuid.NewString(),
		"Bearer "+user.Token,
		nil,
	)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

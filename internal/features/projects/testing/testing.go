package projects_testing

import (
	"encoding/json"
	"fmt"
	"net/http"

	memberships_dto "taskhub-backend/internal/features/memberships/dto"
	projects_dto "taskhub-backend/internal/features/projects/dto"
	users_dto "taskhub-backend/internal/features/users/dto"
	users_enums "taskhub-backend/internal/features/users/enums"
	users_middleware "taskhub-backend/internal/features/users/middleware"
	users_services "taskhub-backend/internal/features/users/services"
	test_utils "taskhub-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		controller.RegisterRoutes(protected)
	}

	return router
}

func CreateTestProject(
	name string,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
) *projects_dto.ProjectResponseDTO {
	request := projects_dto.CreateProjectRequestDTO{Name: name}
	w := test_utils.MakeAPIRequest(router, "POST", "/api/v1/projects", "Bearer "+owner.Token, request)

	if w.Code != http.StatusOK {
		panic(fmt.Sprintf(
			"Failed to create project. Status: %d, Body: %s",
			w.Code,
			w.Body.String(),
		))
	}

	var response projects_dto.ProjectResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}

func CreateTestTeam(
	projectID uuid.UUID,
	name string,
	ownerToken string,
	router *gin.Engine,
) *projects_dto.TeamResponseDTO {
	request := projects_dto.CreateTeamRequestDTO{Name: name}
	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects/"+projectID.String()+"/teams",
		"Bearer "+ownerToken,
		request,
	)

	if w.Code != http.StatusOK {
		panic("Failed to create team via API: " + w.Body.String())
	}

	var response projects_dto.TeamResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}

func InviteMemberToProject(
	projectID uuid.UUID,
	email string,
	role users_enums.ProjectRole,
	inviterToken string,
	router *gin.Engine,
) *memberships_dto.MembershipResponseDTO {
	request := memberships_dto.InviteMemberRequestDTO{
		Email: email,
		Role:  role,
	}

	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects/"+projectID.String()+"/members",
		"Bearer "+inviterToken,
		request,
	)

	if w.Code != http.StatusOK {
		panic("Failed to invite member to project via API: " + w.Body.String())
	}

	var response memberships_dto.MembershipResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}

func RespondToInvitation(
	projectID uuid.UUID,
	accept bool,
	memberToken string,
	router *gin.Engine,
) {
	request := memberships_dto.RespondToInvitationRequestDTO{Accept: &accept}

	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects/"+projectID.String()+"/members/respond",
		"Bearer "+memberToken,
		request,
	)

	if w.Code != http.StatusOK {
		panic("Failed to respond to invitation via API: " + w.Body.String())
	}
}

// AddAcceptedMember invites a user and accepts on their behalf.
func AddAcceptedMember(
	projectID uuid.UUID,
	member *users_dto.SignInResponseDTO,
	role users_enums.ProjectRole,
	inviterToken string,
	router *gin.Engine,
) {
	InviteMemberToProject(projectID, member.Email, role, inviterToken, router)
	RespondToInvitation(projectID, true, member.Token, router)
}

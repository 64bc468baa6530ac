package memberships_controllers

import (
	"errors"
	"net/http"

	"taskhub-backend/internal/features/memberships"
	memberships_dto "taskhub-backend/internal/features/memberships/dto"
	memberships_services "taskhub-backend/internal/features/memberships/services"
	users_middleware "taskhub-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamMembershipController struct {
	teamMembershipService *memberships_services.TeamMembershipService
}

func (c *TeamMembershipController) RegisterRoutes(router *gin.RouterGroup) {
	memberRoutes := router.Group("/teams/:id/members")

	memberRoutes.GET("", c.ListMembers)
	memberRoutes.POST("", c.AssignMember)
	memberRoutes.PUT("/:userId/role", c.ChangeMemberRole)
	memberRoutes.DELETE("/:userId", c.RemoveMember)
}

// ListMembers
// @Summary List team members
// @Tags team-membership
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} memberships_dto.GetTeamMembersResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/members [get]
func (c *TeamMembershipController) ListMembers(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	response, err := c.teamMembershipService.GetMembers(teamID, user)
	if err != nil {
		respondMembershipError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AssignMember
// @Summary Assign a project member to the team
// @Description The target user must already be an accepted member of the team's project.
// @Tags team-membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param request body memberships_dto.AssignTeamMemberRequestDTO true "Assignment data"
// @Success 200 {object} memberships_dto.TeamMembershipResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams/{id}/members [post]
func (c *TeamMembershipController) AssignMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	var request memberships_dto.AssignTeamMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.teamMembershipService.AssignMember(teamID, &request, user)
	if err != nil {
		respondMembershipError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ChangeMemberRole
// @Summary Change a team member's role
// @Tags team-membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param userId path string true "User ID"
// @Param request body memberships_dto.ChangeTeamMemberRoleRequestDTO true "Role change data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/members/{userId}/role [put]
func (c *TeamMembershipController) ChangeMemberRole(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	targetUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var request memberships_dto.ChangeTeamMemberRoleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.teamMembershipService.ChangeMemberRole(
		teamID, targetUserID, &request, user,
	); err != nil {
		respondMembershipError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member role changed successfully"})
}

// RemoveMember
// @Summary Remove a member from the team
// @Tags team-membership
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams/{id}/members/{userId} [delete]
func (c *TeamMembershipController) RemoveMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	targetUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := c.teamMembershipService.RemoveMember(teamID, targetUserID, user); err != nil {
		respondMembershipError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

// respondMembershipError maps membership errors to HTTP statuses.
func respondMembershipError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, memberships.ErrUnauthorized):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, memberships.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, memberships.ErrAlreadyMember):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, memberships.ErrSelfRemoval):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, memberships.ErrInvalidRole):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

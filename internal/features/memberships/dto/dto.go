package memberships_dto

import (
	"time"

	users_enums "taskhub-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

// Project membership DTOs
type InviteMemberRequestDTO struct {
	Email string                  `json:"email" binding:"required,email"`
	Role  users_enums.ProjectRole `json:"role"  binding:"required"`
}

type MembershipResponseDTO struct {
	ID        uuid.UUID                    `json:"id"`
	ProjectID uuid.UUID                    `json:"projectId"`
	UserID    uuid.UUID                    `json:"userId"`
	Role      users_enums.ProjectRole      `json:"role"`
	Status    users_enums.MembershipStatus `json:"status"`
	CreatedAt time.Time                    `json:"createdAt"`
}

type RespondToInvitationRequestDTO struct {
	Accept *bool `json:"accept" binding:"required"`
}

type ChangeMemberRoleRequestDTO struct {
	Role users_enums.ProjectRole `json:"role" binding:"required"`
}

type ProjectMemberResponseDTO struct {
	ID        uuid.UUID                    `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID                    `json:"userId"    gorm:"column:user_id"`
	Email     string                       `json:"email"     gorm:"column:email"`
	Name      string                       `json:"name"      gorm:"column:name"`
	Role      users_enums.ProjectRole      `json:"role"      gorm:"column:role"`
	Status    users_enums.MembershipStatus `json:"status"    gorm:"column:status"`
	CreatedAt time.Time                    `json:"createdAt" gorm:"column:created_at"`
}

type GetProjectMembersResponseDTO struct {
	Members []ProjectMemberResponseDTO `json:"members"`
}

// Team membership DTOs
type AssignTeamMemberRequestDTO struct {
	UserID uuid.UUID            `json:"userId" binding:"required"`
	Role   users_enums.TeamRole `json:"role"   binding:"required"`
}

type TeamMembershipResponseDTO struct {
	ID        uuid.UUID            `json:"id"`
	TeamID    uuid.UUID            `json:"teamId"`
	UserID    uuid.UUID            `json:"userId"`
	Role      users_enums.TeamRole `json:"role"`
	CreatedAt time.Time            `json:"createdAt"`
}

type ChangeTeamMemberRoleRequestDTO struct {
	Role users_enums.TeamRole `json:"role" binding:"required"`
}

type TeamMemberResponseDTO struct {
	ID        uuid.UUID            `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID            `json:"userId"    gorm:"column:user_id"`
	Email     string               `json:"email"     gorm:"column:email"`
	Name      string               `json:"name"      gorm:"column:name"`
	Role      users_enums.TeamRole `json:"role"      gorm:"column:role"`
	CreatedAt time.Time            `json:"createdAt" gorm:"column:created_at"`
}

type GetTeamMembersResponseDTO struct {
	Members []TeamMemberResponseDTO `json:"members"`
}

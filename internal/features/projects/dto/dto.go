package projects_dto

import (
	"time"

	users_enums "taskhub-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

type CreateProjectRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type ProjectResponseDTO struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	OwnerID   uuid.UUID `json:"ownerId"   gorm:"column:owner_id"`
	Name      string    `json:"name"      gorm:"column:name"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`

	// Actor's role in this project (populated when listing for a user)
	UserRole *users_enums.ProjectRole `json:"userRole,omitempty" gorm:"column:user_role"`
}

type ListProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}

type CreateTeamRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type TeamResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"projectId"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListTeamsResponseDTO struct {
	Teams []TeamResponseDTO `json:"teams"`
}

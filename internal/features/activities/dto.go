package activities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GetActivitiesRequest struct {
	Limit      int        `form:"limit"      json:"limit"`
	Offset     int        `form:"offset"     json:"offset"`
	BeforeDate *time.Time `form:"beforeDate" json:"beforeDate"`
}

type GetActivitiesResponse struct {
	Activities []*ActivityDTO `json:"activities"`
	Total      int64          `json:"total"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

type ActivityDTO struct {
	ID        uuid.UUID         `json:"id"        gorm:"column:id"`
	ProjectID uuid.UUID         `json:"projectId" gorm:"column:project_id"`
	UserID    uuid.UUID         `json:"userId"    gorm:"column:user_id"`
	TaskID    *uuid.UUID        `json:"taskId"    gorm:"column:task_id"`
	Type      ActivityType      `json:"type"      gorm:"column:type"`
	Message   string            `json:"message"   gorm:"column:message"`
	Metadata  datatypes.JSONMap `json:"metadata"  gorm:"column:metadata"`
	CreatedAt time.Time         `json:"createdAt" gorm:"column:created_at"`
	UserEmail *string           `json:"userEmail" gorm:"column:user_email"`
	UserName  *string           `json:"userName"  gorm:"column:user_name"`
}

package projects_models

import (
	"time"

	"github.com/google/uuid"
)

// Team is scoped to exactly one project.
type Team struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	ProjectID uuid.UUID `json:"projectId" gorm:"column:project_id;not null;type:uuid;index"`
	OwnerID   uuid.UUID `json:"ownerId"   gorm:"column:owner_id;not null;type:uuid"`
	Name      string    `json:"name"      gorm:"column:name;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Team) TableName() string {
	return "teams"
}

package projects_models

import (
	"time"

	"taskhub-backend/internal/storage"

	"github.com/google/uuid"
)

func init() {
	storage.RegisterModels(&Project{}, &Team{})
}

// Project owner is an implicit admin-equivalent even without an
// explicit membership row.
type Project struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	OwnerID   uuid.UUID `json:"ownerId"   gorm:"column:owner_id;not null;type:uuid;index"`
	Name      string    `json:"name"      gorm:"column:name;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Project) TableName() string {
	return "projects"
}

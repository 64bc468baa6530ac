package memberships_models

import (
	"time"

	users_enums "taskhub-backend/internal/features/users/enums"
	"taskhub-backend/internal/storage"

	"github.com/google/uuid"
)

func init() {
	storage.RegisterModels(&ProjectMembership{}, &TeamMembership{})
}

// ProjectMembership binds one user to one project. The uniqueness
// constraint on (project_id, user_id) is the synchronization point for
// concurrent invitations: exactly one insert wins, the loser sees a
// unique-violation error.
type ProjectMembership struct {
	ID        uuid.UUID                    `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	ProjectID uuid.UUID                    `json:"projectId" gorm:"column:project_id;not null;type:uuid;uniqueIndex:idx_project_memberships_project_user"`
	UserID    uuid.UUID                    `json:"userId"    gorm:"column:user_id;not null;type:uuid;uniqueIndex:idx_project_memberships_project_user"`
	Role      users_enums.ProjectRole      `json:"role"      gorm:"column:role;not null;type:varchar(50)"`
	Status    users_enums.MembershipStatus `json:"status"    gorm:"column:status;not null;type:varchar(50)"`
	CreatedAt time.Time                    `json:"createdAt" gorm:"column:created_at"`
}

func (ProjectMembership) TableName() string {
	return "project_memberships"
}

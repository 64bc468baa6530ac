package memberships_models

import (
	"time"

	users_enums "taskhub-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

// TeamMembership has no pending state: team assignment is direct, and
// the user must already hold an accepted project membership.
type TeamMembership struct {
	ID        uuid.UUID            `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	TeamID    uuid.UUID            `json:"teamId"    gorm:"column:team_id;not null;type:uuid;uniqueIndex:idx_team_memberships_team_user"`
	UserID    uuid.UUID            `json:"userId"    gorm:"column:user_id;not null;type:uuid;uniqueIndex:idx_team_memberships_team_user"`
	Role      users_enums.TeamRole `json:"role"      gorm:"column:role;not null;type:varchar(50)"`
	CreatedAt time.Time            `json:"createdAt" gorm:"column:created_at"`
}

func (TeamMembership) TableName() string {
	return "team_memberships"
}

package activities

import (
	"time"

	"taskhub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func init() {
	storage.RegisterModels(&Activity{})
}

type ActivityType string

const (
	ActivityTypeProjectCreated ActivityType = "PROJECT_CREATED"
	ActivityTypeTeamCreated    ActivityType = "TEAM_CREATED"
	ActivityTypeMemberInvited  ActivityType = "MEMBER_INVITED"
	ActivityTypeMemberJoined   ActivityType = "MEMBER_JOINED"
	ActivityTypeInviteDeclined ActivityType = "INVITE_DECLINED"
	ActivityTypeMemberRemoved  ActivityType = "MEMBER_REMOVED"
	ActivityTypeRoleChanged    ActivityType = "ROLE_CHANGED"
	ActivityTypeMemberAssigned ActivityType = "MEMBER_ASSIGNED"
	ActivityTypeTaskUpdate     ActivityType = "TASK_UPDATE"
)

// Activity is an append-only audit entry. Nothing in the system
// updates or deletes a row once it is written.
type Activity struct {
	ID        uuid.UUID         `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	ProjectID uuid.UUID         `json:"projectId" gorm:"column:project_id;not null;type:uuid;index"`
	UserID    uuid.UUID         `json:"userId"    gorm:"column:user_id;not null;type:uuid"`
	TaskID    *uuid.UUID        `json:"taskId"    gorm:"column:task_id;type:uuid"`
	Type      ActivityType      `json:"type"      gorm:"column:type;not null;type:varchar(50)"`
	Message   string            `json:"message"   gorm:"column:message;not null"`
	Metadata  datatypes.JSONMap `json:"metadata"  gorm:"column:metadata;type:jsonb"`
	CreatedAt time.Time         `json:"createdAt" gorm:"column:created_at"`
}

func (Activity) TableName() string {
	return "activities"
}

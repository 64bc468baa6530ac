package notifications

import (
	"time"

	"taskhub-backend/internal/storage"

	"github.com/google/uuid"
)

func init() {
	storage.RegisterModels(&Notification{})
}

type NotificationType string

const (
	NotificationTypeProjectInvite  NotificationType = "PROJECT_INVITE"
	NotificationTypeTeamInvitation NotificationType = "TEAM_INVITATION"
	NotificationTypeMemberRemoved  NotificationType = "MEMBER_REMOVED"
	NotificationTypeRoleChanged    NotificationType = "ROLE_CHANGED"
	NotificationTypeTaskUpdate     NotificationType = "TASK_UPDATE"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeProjectInvite,
		NotificationTypeTeamInvitation,
		NotificationTypeMemberRemoved,
		NotificationTypeRoleChanged,
		NotificationTypeTaskUpdate:
		return true
	default:
		return false
	}
}

// Notification is owned exclusively by its recipient: only the
// recipient may mark it read or delete it.
type Notification struct {
	ID        uuid.UUID        `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	UserID    uuid.UUID        `json:"userId"    gorm:"column:user_id;not null;type:uuid;index"`
	Type      NotificationType `json:"type"      gorm:"column:type;not null;type:varchar(50)"`
	Message   string           `json:"message"   gorm:"column:message;not null"`
	RelatedID uuid.UUID        `json:"-"         gorm:"column:related_id;type:uuid;index"`
	IsRead    bool             `json:"read"      gorm:"column:is_read;not null;default:false"`
	CreatedAt time.Time        `json:"createdAt" gorm:"column:created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

package notifications

import (
	"time"

	"github.com/google/uuid"
)

// NotificationResponseDTO resolves the polymorphic related id into a
// typed reference so callers never have to guess what the id points at.
type NotificationResponseDTO struct {
	ID        uuid.UUID        `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`

	ProjectID *uuid.UUID `json:"projectId,omitempty"`
	TeamID    *uuid.UUID `json:"teamId,omitempty"`
	TaskID    *uuid.UUID `json:"taskId,omitempty"`
}

type ListNotificationsResponseDTO struct {
	Notifications []NotificationResponseDTO `json:"notifications"`
}

func (n *Notification) ToResponseDTO() NotificationResponseDTO {
	dto := NotificationResponseDTO{
		ID:        n.ID,
		Type:      n.Type,
		Message:   n.Message,
		Read:      n.IsRead,
		CreatedAt: n.CreatedAt,
	}

	relatedID := n.RelatedID

	switch n.Type {
	case NotificationTypeProjectInvite, NotificationTypeMemberRemoved, NotificationTypeRoleChanged:
		dto.ProjectID = &relatedID
	case NotificationTypeTeamInvitation:
		dto.TeamID = &relatedID
	case NotificationTypeTaskUpdate:
		dto.TaskID = &relatedID
	}

	return dto
}

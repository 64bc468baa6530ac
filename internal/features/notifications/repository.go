package notifications

import (
	"errors"
	"time"

	"taskhub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository struct{}

func (r *NotificationRepository) Create(notification *Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}

	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(notification).Error
}

func (r *NotificationRepository) GetByID(notificationID uuid.UUID) (*Notification, error) {
	var notification Notification

	if err := storage.GetDb().Where("id = ?", notificationID).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &notification, nil
}

func (r *NotificationRepository) GetByUserID(userID uuid.UUID) ([]*Notification, error) {
	var userNotifications []*Notification

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&userNotifications).Error

	return userNotifications, err
}

func (r *NotificationRepository) MarkRead(notificationID uuid.UUID) error {
	return storage.GetDb().
		Model(&Notification{}).
		Where("id = ?", notificationID).
		Update("is_read", true).Error
}

func (r *NotificationRepository) MarkAllRead(userID uuid.UUID) error {
	return storage.GetDb().
		Model(&Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error
}

// MarkRelatedRead resolves outstanding notifications of the given types
// for one recipient and related entity, so stale action buttons
// disappear once the invitation is answered.
func (r *NotificationRepository) MarkRelatedRead(
	userID, relatedID uuid.UUID,
	types ...NotificationType,
) error {
	return storage.GetDb().
		Model(&Notification{}).
		Where("user_id = ? AND related_id = ? AND type IN ? AND is_read = false",
			userID, relatedID, types).
		Update("is_read", true).Error
}

func (r *NotificationRepository) Delete(notificationID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", notificationID).
		Delete(&Notification{}).Error
}

package notifications

import (
	"fmt"
	"log/slog"

	users_models "taskhub-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type NotificationService struct {
	repository *NotificationRepository
	listeners  []NotificationListener
	logger     *slog.Logger
}

// AddListener registers a realtime subscriber for notification inserts.
func (s *NotificationService) AddListener(listener NotificationListener) {
	s.listeners = append(s.listeners, listener)
}

// Notify inserts a notification for a single recipient. Delivery is
// best-effort: a failure here is logged and must never fail the
// business operation that triggered it.
func (s *NotificationService) Notify(
	userID uuid.UUID,
	notificationType NotificationType,
	message string,
	relatedID uuid.UUID,
) *Notification {
	notification := &Notification{
		UserID:    userID,
		Type:      notificationType,
		Message:   message,
		RelatedID: relatedID,
	}

	if err := s.repository.Create(notification); err != nil {
		s.logger.Error(
			"failed to create notification",
			"error", err,
			"userId", userID,
			"type", notificationType,
		)
		return nil
	}

	s.publishToListeners(notification)

	return notification
}

// ResolveRelated marks outstanding notifications of the given types as
// read for one recipient and related entity. Best-effort.
func (s *NotificationService) ResolveRelated(
	userID, relatedID uuid.UUID,
	types ...NotificationType,
) {
	if err := s.repository.MarkRelatedRead(userID, relatedID, types...); err != nil {
		s.logger.Error(
			"failed to resolve related notifications",
			"error", err,
			"userId", userID,
			"relatedId", relatedID,
		)
	}
}

func (s *NotificationService) ListNotifications(
	user *users_models.User,
) (*ListNotificationsResponseDTO, error) {
	userNotifications, err := s.repository.GetByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notificationDTOs := make([]NotificationResponseDTO, len(userNotifications))
	for i, notification := range userNotifications {
		notificationDTOs[i] = notification.ToResponseDTO()
	}

	return &ListNotificationsResponseDTO{Notifications: notificationDTOs}, nil
}

func (s *NotificationService) MarkRead(
	notificationID uuid.UUID,
	user *users_models.User,
) error {
	notification, err := s.repository.GetByID(notificationID)
	if err != nil {
		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification == nil {
		return ErrNotFound
	}

	if notification.UserID != user.ID {
		return ErrForbidden
	}

	return s.repository.MarkRead(notificationID)
}

func (s *NotificationService) MarkAllRead(user *users_models.User) error {
	return s.repository.MarkAllRead(user.ID)
}

func (s *NotificationService) Delete(
	notificationID uuid.UUID,
	user *users_models.User,
) error {
	notification, err := s.repository.GetByID(notificationID)
	if err != nil {
		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification == nil {
		return ErrNotFound
	}

	if notification.UserID != user.ID {
		return ErrForbidden
	}

	return s.repository.Delete(notificationID)
}

func (s *NotificationService) publishToListeners(notification *Notification) {
	for _, listener := range s.listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("panic in notification listener", "error", r)
				}
			}()

			listener.OnNotificationCreated(notification)
		}()
	}
}

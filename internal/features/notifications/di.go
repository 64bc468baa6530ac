package notifications

import (
	"taskhub-backend/internal/util/logger"
)

var notificationRepository = &NotificationRepository{}

var notificationService = &NotificationService{
	notificationRepository,
	nil,
	logger.GetLogger(),
}

var notificationController = &NotificationController{
	notificationService,
}

func GetNotificationService() *NotificationService {
	return notificationService
}

func GetNotificationController() *NotificationController {
	return notificationController
}

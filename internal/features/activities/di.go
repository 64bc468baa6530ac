package activities

import (
	"taskhub-backend/internal/util/logger"
)

var activityRepository = &ActivityRepository{}

var activityService = &ActivityService{
	activityRepository,
	logger.GetLogger(),
}

func GetActivityService() *ActivityService {
	return activityService
}

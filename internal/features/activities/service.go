package activities

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type ActivityService struct {
	repository *ActivityRepository
	logger     *slog.Logger
}

// Record appends an audit entry. Append-only and best-effort: a failed
// write is surfaced to operational logging but never blocks the
// business operation that caused it.
func (s *ActivityService) Record(
	projectID uuid.UUID,
	actorID uuid.UUID,
	taskID *uuid.UUID,
	activityType ActivityType,
	message string,
	metadata map[string]any,
) {
	activity := &Activity{
		ProjectID: projectID,
		UserID:    actorID,
		TaskID:    taskID,
		Type:      activityType,
		Message:   message,
		Metadata:  metadata,
	}

	if err := s.repository.Create(activity); err != nil {
		s.logger.Error(
			"failed to record activity",
			"error", err,
			"projectId", projectID,
			"type", activityType,
		)
	}
}

func (s *ActivityService) GetProjectActivities(
	projectID uuid.UUID,
	request *GetActivitiesRequest,
) (*GetActivitiesResponse, error) {
	if request.Limit <= 0 || request.Limit > 100 {
		request.Limit = 50
	}
	if request.Offset < 0 {
		request.Offset = 0
	}

	projectActivities, total, err := s.repository.GetProjectActivities(projectID, request)
	if err != nil {
		return nil, fmt.Errorf("failed to get project activities: %w", err)
	}

	return &GetActivitiesResponse{
		Activities: projectActivities,
		Total:      total,
		Limit:      request.Limit,
		Offset:     request.Offset,
	}, nil
}

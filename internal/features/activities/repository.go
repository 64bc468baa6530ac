package activities

import (
	"time"

	"taskhub-backend/internal/storage"

	"github.com/google/uuid"
)

type ActivityRepository struct{}

func (r *ActivityRepository) Create(activity *Activity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}

	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(activity).Error
}

func (r *ActivityRepository) GetProjectActivities(
	projectID uuid.UUID,
	request *GetActivitiesRequest,
) ([]*ActivityDTO, int64, error) {
	var total int64

	countQuery := storage.GetDb().
		Model(&Activity{}).
		Where("project_id = ?", projectID)

	if request.BeforeDate != nil {
		countQuery = countQuery.Where("created_at < ?", *request.BeforeDate)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projectActivities []*ActivityDTO

	dataQuery := storage.GetDb().
		Table("activities a").
		Select("a.id, a.project_id, a.user_id, a.task_id, a.type, a.message, a.metadata, "+
			"a.created_at, u.email as user_email, u.name as user_name").
		Joins("LEFT JOIN users u ON a.user_id = u.id").
		Where("a.project_id = ?", projectID).
		Order("a.created_at DESC").
		Limit(request.Limit).
		Offset(request.Offset)

	if request.BeforeDate != nil {
		dataQuery = dataQuery.Where("a.created_at < ?", *request.BeforeDate)
	}

	if err := dataQuery.Scan(&projectActivities).Error; err != nil {
		return nil, 0, err
	}

	return projectActivities, total, nil
}

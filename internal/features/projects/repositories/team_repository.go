package projects_repositories

import (
	"errors"
	"time"

	projects_models "taskhub-backend/internal/features/projects/models"
	"taskhub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamRepository struct{}

func (r *TeamRepository) CreateTeam(team *projects_models.Team) error {
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}

	if team.CreatedAt.IsZero() {
		team.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(team).Error
}

func (r *TeamRepository) GetTeamByID(teamID uuid.UUID) (*projects_models.Team, error) {
	var team projects_models.Team

	if err := storage.GetDb().Where("id = ?", teamID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &team, nil
}

func (r *TeamRepository) GetTeamsByProjectID(
	projectID uuid.UUID,
) ([]*projects_models.Team, error) {
	var teams []*projects_models.Team

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("name ASC").
		Find(&teams).Error

	return teams, err
}

package projects_repositories

import (
	"errors"
	"time"

	projects_dto "taskhub-backend/internal/features/projects/dto"
	projects_models "taskhub-backend/internal/features/projects/models"
	users_enums "taskhub-backend/internal/features/users/enums"
	"taskhub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(project *projects_models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}

	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(
	projectID uuid.UUID,
) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) GetProjectsByUserID(
	userID uuid.UUID,
) ([]projects_dto.ProjectResponseDTO, error) {
	results := make([]projects_dto.ProjectResponseDTO, 0)

	err := storage.GetDb().
		Table("projects p").
		Select("p.id, p.owner_id, p.name, p.created_at, pm.role as user_role").
		Joins("JOIN project_memberships pm ON p.id = pm.project_id").
		Where("pm.user_id = ? AND pm.status = ?", userID, users_enums.MembershipStatusAccepted).
		Order("p.name ASC").
		Scan(&results).Error

	return results, err
}

// DeleteProject removes the project together with its teams,
// memberships and activity log, so nothing dangles after the delete.
func (r *ProjectRepository) DeleteProject(projectID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM team_memberships WHERE team_id IN "+
				"(SELECT id FROM teams WHERE project_id = ?)",
			projectID,
		).Error; err != nil {
			return err
		}

		if err := tx.Exec(
			"DELETE FROM teams WHERE project_id = ?", projectID,
		).Error; err != nil {
			return err
		}

		if err := tx.Exec(
			"DELETE FROM project_memberships WHERE project_id = ?", projectID,
		).Error; err != nil {
			return err
		}

		if err := tx.Exec(
			"DELETE FROM activities WHERE project_id = ?", projectID,
		).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", projectID).
			Delete(&projects_models.Project{}).Error
	})
}

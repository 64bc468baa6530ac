package memberships_repositories

import (
	"errors"
	"time"

	memberships_dto "taskhub-backend/internal/features/memberships/dto"
	memberships_models "taskhub-backend/internal/features/memberships/models"
	users_enums "taskhub-backend/internal/features/users/enums"
	"taskhub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMembershipRepository struct {
	db *gorm.DB
}

// WithTx returns a repository bound to tx, so the permission read and
// the mutation it guards share one transaction.
func (r *TeamMembershipRepository) WithTx(tx *gorm.DB) *TeamMembershipRepository {
	return &TeamMembershipRepository{db: tx}
}

func (r *TeamMembershipRepository) conn() *gorm.DB {
	if r.db != nil {
		return r.db
	}

	return storage.GetDb()
}

func (r *TeamMembershipRepository) CreateMembership(
	membership *memberships_models.TeamMembership,
) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return r.conn().Create(membership).Error
}

func (r *TeamMembershipRepository) GetMembership(
	teamID, userID uuid.UUID,
) (*memberships_models.TeamMembership, error) {
	var membership memberships_models.TeamMembership

	err := r.conn().
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

func (r *TeamMembershipRepository) GetTeamMembers(
	teamID uuid.UUID,
) ([]memberships_dto.TeamMemberResponseDTO, error) {
	var members []memberships_dto.TeamMemberResponseDTO

	err := r.conn().
		Table("team_memberships tm").
		Select("tm.id, tm.user_id, u.email, u.name, tm.role, tm.created_at").
		Joins("JOIN users u ON tm.user_id = u.id").
		Where("tm.team_id = ?", teamID).
		Order("tm.created_at ASC").
		Scan(&members).Error

	return members, err
}

func (r *TeamMembershipRepository) UpdateMemberRole(
	teamID, userID uuid.UUID,
	role users_enums.TeamRole,
) error {
	return r.conn().
		Model(&memberships_models.TeamMembership{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Update("role", role).Error
}

// RemoveMember returns false when no row existed.
func (r *TeamMembershipRepository) RemoveMember(teamID, userID uuid.UUID) (bool, error) {
	result := r.conn().
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&memberships_models.TeamMembership{})

	return result.RowsAffected > 0, result.Error
}

// RemoveProjectMemberships deletes the user's rows in every team of the
// project. Team memberships must not outlive the project membership
// they depend on.
func (r *TeamMembershipRepository) RemoveProjectMemberships(
	projectID, userID uuid.UUID,
) error {
	return r.conn().Exec(
		"DELETE FROM team_memberships WHERE user_id = ? "+
			"AND team_id IN (SELECT id FROM teams WHERE project_id = ?)",
		userID, projectID,
	).Error
}

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

type MembershipRepository struct {
	db *gorm.DB
}

// WithTx returns a repository bound to tx, so the permission read and
// the mutation it guards share one transaction.
func (r *MembershipRepository) WithTx(tx *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: tx}
}

func (r *MembershipRepository) conn() *gorm.DB {
	if r.db != nil {
		return r.db
	}

	return storage.GetDb()
}

func (r *MembershipRepository) CreateMembership(
	membership *memberships_models.ProjectMembership,
) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return r.conn().Create(membership).Error
}

func (r *MembershipRepository) GetMembership(
	projectID, userID uuid.UUID,
) (*memberships_models.ProjectMembership, error) {
	var membership memberships_models.ProjectMembership

	err := r.conn().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) GetProjectMembers(
	projectID uuid.UUID,
) ([]memberships_dto.ProjectMemberResponseDTO, error) {
	var members []memberships_dto.ProjectMemberResponseDTO

	err := r.conn().
		Table("project_memberships pm").
		Select("pm.id, pm.user_id, u.email, u.name, pm.role, pm.status, pm.created_at").
		Joins("JOIN users u ON pm.user_id = u.id").
		Where("pm.project_id = ?", projectID).
		Order("pm.created_at ASC").
		Scan(&members).Error

	return members, err
}

// AcceptPending flips a pending membership to accepted in one
// statement, so the precondition check and the mutation cannot race.
// Returns false when no pending row existed.
func (r *MembershipRepository) AcceptPending(projectID, userID uuid.UUID) (bool, error) {
	result := r.conn().
		Model(&memberships_models.ProjectMembership{}).
		Where("project_id = ? AND user_id = ? AND status = ?",
			projectID, userID, users_enums.MembershipStatusPending).
		Update("status", users_enums.MembershipStatusAccepted)

	return result.RowsAffected > 0, result.Error
}

// DeletePending removes a pending membership (a declined invitation).
// Returns false when no pending row existed.
func (r *MembershipRepository) DeletePending(projectID, userID uuid.UUID) (bool, error) {
	result := r.conn().
		Where("project_id = ? AND user_id = ? AND status = ?",
			projectID, userID, users_enums.MembershipStatusPending).
		Delete(&memberships_models.ProjectMembership{})

	return result.RowsAffected > 0, result.Error
}

func (r *MembershipRepository) UpdateMemberRole(
	projectID, userID uuid.UUID,
	role users_enums.ProjectRole,
) error {
	return r.conn().
		Model(&memberships_models.ProjectMembership{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Update("role", role).Error
}

// RemoveMember deletes the membership row regardless of status.
// Returns false when no row existed.
func (r *MembershipRepository) RemoveMember(projectID, userID uuid.UUID) (bool, error) {
	result := r.conn().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&memberships_models.ProjectMembership{})

	return result.RowsAffected > 0, result.Error
}

package memberships_services

import (
	"fmt"

	"taskhub-backend/internal/features/activities"
	"taskhub-backend/internal/features/memberships"
	memberships_dto "taskhub-backend/internal/features/memberships/dto"
	memberships_models "taskhub-backend/internal/features/memberships/models"
	memberships_permissions "taskhub-backend/internal/features/memberships/permissions"
	memberships_repositories "taskhub-backend/internal/features/memberships/repositories"
	"taskhub-backend/internal/features/notifications"
	projects_models "taskhub-backend/internal/features/projects/models"
	projects_repositories "taskhub-backend/internal/features/projects/repositories"
	users_enums "taskhub-backend/internal/features/users/enums"
	users_models "taskhub-backend/internal/features/users/models"
	users_services "taskhub-backend/internal/features/users/services"
	"taskhub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationService drives the project membership state machine:
//
//	(none) --invite()--> pending --accept()--> accepted
//	           pending --decline()/remove()--> (deleted)
//	           accepted --remove()--> (deleted)
//	           accepted --changeRole()--> accepted
//
// Every operation takes the acting user as an explicit argument and
// runs its permission check and the store mutation in one transaction.
// Notifications and activity entries happen after commit and are
// best-effort.
type InvitationService struct {
	membershipRepository     *memberships_repositories.MembershipRepository
	teamMembershipRepository *memberships_repositories.TeamMembershipRepository
	projectRepository        *projects_repositories.ProjectRepository
	userService              *users_services.UserService
	notificationService      *notifications.NotificationService
	activityService          *activities.ActivityService
}

func (s *InvitationService) InviteMember(
	projectID uuid.UUID,
	request *memberships_dto.InviteMemberRequestDTO,
	actor *users_models.User,
) (*memberships_dto.MembershipResponseDTO, error) {
	if !request.Role.IsAssignable() {
		return nil, memberships.ErrInvalidRole
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, memberships.ErrNotFound
	}

	var (
		targetUser *users_models.User
		membership *memberships_models.ProjectMembership
	)

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		repo := s.membershipRepository.WithTx(tx)

		if err := s.evaluateProjectAction(
			repo, project, actor, memberships_permissions.ActionInviteMember, nil,
		); err != nil {
			return err
		}

		// This system requires pre-existing accounts: the invited email
		// must already resolve to a user.
		targetUser, err = s.userService.GetUserByEmail(request.Email)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if targetUser == nil {
			return memberships.ErrNotFound
		}

		membership = &memberships_models.ProjectMembership{
			ProjectID: projectID,
			UserID:    targetUser.ID,
			Role:      request.Role,
			Status:    users_enums.MembershipStatusPending,
		}

		if err := repo.CreateMembership(membership); err != nil {
			if storage.IsUniqueViolation(err) {
				return memberships.ErrAlreadyMember
			}

			return fmt.Errorf("failed to create membership: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notificationService.Notify(
		targetUser.ID,
		notifications.NotificationTypeProjectInvite,
		fmt.Sprintf("%s invited you to join project %q", actor.Name, project.Name),
		projectID,
	)

	s.activityService.Record(
		projectID,
		actor.ID,
		nil,
		activities.ActivityTypeMemberInvited,
		fmt.Sprintf("%s invited to project as %s", targetUser.Email, request.Role),
		map[string]any{"email": targetUser.Email, "role": string(request.Role)},
	)

	return &memberships_dto.MembershipResponseDTO{
		ID:        membership.ID,
		ProjectID: membership.ProjectID,
		UserID:    membership.UserID,
		Role:      membership.Role,
		Status:    membership.Status,
		CreatedAt: membership.CreatedAt,
	}, nil
}

// RespondToInvitation accepts or declines the actor's own pending
// invitation. Only the invitee may respond; this is an identity check,
// not a role check, so no permission evaluation happens here.
func (s *InvitationService) RespondToInvitation(
	projectID uuid.UUID,
	accept bool,
	actor *users_models.User,
) error {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return memberships.ErrNotFound
	}

	membership, err := s.membershipRepository.GetMembership(projectID, actor.ID)
	if err != nil {
		return fmt.Errorf("failed to get membership: %w", err)
	}
	if membership == nil {
		return memberships.ErrNotFound
	}

	if membership.Status == users_enums.MembershipStatusAccepted {
		if accept {
			// Responding again after acceptance is a no-op success and
			// must not re-fire the joined event.
			s.notificationService.ResolveRelated(
				actor.ID, projectID, notifications.NotificationTypeProjectInvite,
			)
			return nil
		}

		return memberships.ErrNotFound
	}

	if accept {
		accepted, err := s.membershipRepository.AcceptPending(projectID, actor.ID)
		if err != nil {
			return fmt.Errorf("failed to accept invitation: %w", err)
		}

		s.notificationService.ResolveRelated(
			actor.ID, projectID, notifications.NotificationTypeProjectInvite,
		)

		if accepted {
			s.activityService.Record(
				projectID,
				actor.ID,
				nil,
				activities.ActivityTypeMemberJoined,
				fmt.Sprintf("%s joined the project", actor.Name),
				map[string]any{"email": actor.Email},
			)
		}

		return nil
	}

	declined, err := s.membershipRepository.DeletePending(projectID, actor.ID)
	if err != nil {
		return fmt.Errorf("failed to decline invitation: %w", err)
	}

	s.notificationService.ResolveRelated(
		actor.ID, projectID, notifications.NotificationTypeProjectInvite,
	)

	if declined {
		s.activityService.Record(
			projectID,
			actor.ID,
			nil,
			activities.ActivityTypeInviteDeclined,
			fmt.Sprintf("%s declined the invitation", actor.Name),
			map[string]any{"email": actor.Email},
		)
	}

	return nil
}

func (s *InvitationService) RemoveMember(
	projectID uuid.UUID,
	targetUserID uuid.UUID,
	actor *users_models.User,
) error {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return memberships.ErrNotFound
	}

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		repo := s.membershipRepository.WithTx(tx)

		targetMembership, err := repo.GetMembership(projectID, targetUserID)
		if err != nil {
			return fmt.Errorf("failed to get membership: %w", err)
		}
		if targetMembership == nil {
			return memberships.ErrNotFound
		}

		if err := s.evaluateProjectAction(
			repo, project, actor,
			memberships_permissions.ActionRemoveMember, &targetMembership.Role,
		); err != nil {
			return err
		}

		// The sole owner cannot orphan the project by removing themselves.
		if actor.ID == targetUserID && actor.ID == project.OwnerID {
			return memberships.ErrSelfRemoval
		}

		removed, err := repo.RemoveMember(projectID, targetUserID)
		if err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}
		if !removed {
			return memberships.ErrNotFound
		}

		// The project membership is gone, so the user's memberships in
		// the project's teams go with it.
		if err := s.teamMembershipRepository.WithTx(tx).
			RemoveProjectMemberships(projectID, targetUserID); err != nil {
			return fmt.Errorf("failed to remove team memberships: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if targetUserID != actor.ID {
		s.notificationService.Notify(
			targetUserID,
			notifications.NotificationTypeMemberRemoved,
			fmt.Sprintf("You were removed from project %q", project.Name),
			projectID,
		)
	}

	s.activityService.Record(
		projectID,
		actor.ID,
		nil,
		activities.ActivityTypeMemberRemoved,
		fmt.Sprintf("Member removed from project: %s", targetUserID),
		map[string]any{"removedUserId": targetUserID.String()},
	)

	return nil
}

func (s *InvitationService) ChangeMemberRole(
	projectID uuid.UUID,
	targetUserID uuid.UUID,
	request *memberships_dto.ChangeMemberRoleRequestDTO,
	actor *users_models.User,
) error {
	if !request.Role.IsAssignable() {
		return memberships.ErrInvalidRole
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return memberships.ErrNotFound
	}

	var oldRole users_enums.ProjectRole

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		repo := s.membershipRepository.WithTx(tx)

		targetMembership, err := repo.GetMembership(projectID, targetUserID)
		if err != nil {
			return fmt.Errorf("failed to get membership: %w", err)
		}
		if targetMembership == nil {
			return memberships.ErrNotFound
		}

		if err := s.evaluateProjectAction(
			repo, project, actor,
			memberships_permissions.ActionChangeRole, &targetMembership.Role,
		); err != nil {
			return err
		}

		oldRole = targetMembership.Role
		if oldRole == request.Role {
			// Idempotent: assigning the current role changes nothing and
			// emits nothing.
			return nil
		}

		if err := repo.UpdateMemberRole(projectID, targetUserID, request.Role); err != nil {
			return fmt.Errorf("failed to update member role: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if oldRole == request.Role {
		return nil
	}

	s.notificationService.Notify(
		targetUserID,
		notifications.NotificationTypeRoleChanged,
		fmt.Sprintf("Your role in project %q is now %s", project.Name, request.Role),
		projectID,
	)

	s.activityService.Record(
		projectID,
		actor.ID,
		nil,
		activities.ActivityTypeRoleChanged,
		fmt.Sprintf("Member role changed from %s to %s", oldRole, request.Role),
		map[string]any{
			"userId":  targetUserID.String(),
			"oldRole": string(oldRole),
			"newRole": string(request.Role),
		},
	)

	return nil
}

func (s *InvitationService) GetMembers(
	projectID uuid.UUID,
	actor *users_models.User,
) (*memberships_dto.GetProjectMembersResponseDTO, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, memberships.ErrNotFound
	}

	if err := s.evaluateProjectAction(
		s.membershipRepository, project, actor,
		memberships_permissions.ActionViewMembers, nil,
	); err != nil {
		return nil, err
	}

	members, err := s.membershipRepository.GetProjectMembers(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	return &memberships_dto.GetProjectMembersResponseDTO{Members: members}, nil
}

func (s *InvitationService) evaluateProjectAction(
	repo *memberships_repositories.MembershipRepository,
	project *projects_models.Project,
	actor *users_models.User,
	action memberships_permissions.Action,
	targetRole *users_enums.ProjectRole,
) error {
	actorMembership, err := repo.GetMembership(project.ID, actor.ID)
	if err != nil {
		return fmt.Errorf("failed to get actor membership: %w", err)
	}

	var evalMembership *memberships_permissions.ProjectActorMembership
	if actorMembership != nil {
		evalMembership = &memberships_permissions.ProjectActorMembership{
			Role:   actorMembership.Role,
			Status: actorMembership.Status,
		}
	}

	decision := memberships_permissions.EvaluateProject(memberships_permissions.ProjectEvaluation{
		ActorID:    actor.ID,
		OwnerID:    project.OwnerID,
		Membership: evalMembership,
		TargetRole: targetRole,
		Action:     action,
	})

	if !decision.Allowed {
		return fmt.Errorf("%w: %s", memberships.ErrUnauthorized, decision.Reason)
	}

	return nil
}

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

// TeamMembershipService handles direct team assignment. Unlike project
// invitations there is no pending state: the target must already be an
// accepted member of the team's project.
type TeamMembershipService struct {
	teamMembershipRepository *memberships_repositories.TeamMembershipRepository
	membershipRepository     *memberships_repositories.MembershipRepository
	teamRepository           *projects_repositories.TeamRepository
	userService              *users_services.UserService
	notificationService      *notifications.NotificationService
	activityService          *activities.ActivityService
}

func (s *TeamMembershipService) AssignMember(
	teamID uuid.UUID,
	request *memberships_dto.AssignTeamMemberRequestDTO,
	actor *users_models.User,
) (*memberships_dto.TeamMembershipResponseDTO, error) {
	if !request.Role.IsAssignable() {
		return nil, memberships.ErrInvalidRole
	}

	team, err := s.teamRepository.GetTeamByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if team == nil {
		return nil, memberships.ErrNotFound
	}

	var (
		targetUser *users_models.User
		membership *memberships_models.TeamMembership
	)

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		repo := s.teamMembershipRepository.WithTx(tx)

		if err := s.evaluateTeamAction(
			repo, team, actor, memberships_permissions.ActionInviteMember, nil,
		); err != nil {
			return err
		}

		targetUser, err = s.userService.GetUserByID(request.UserID)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if targetUser == nil {
			return memberships.ErrNotFound
		}

		projectMembership, err := s.membershipRepository.WithTx(tx).GetMembership(
			team.ProjectID, targetUser.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to get project membership: %w", err)
		}
		if projectMembership == nil ||
			projectMembership.Status != users_enums.MembershipStatusAccepted {
			return fmt.Errorf(
				"%w: user is not an accepted project member", memberships.ErrNotFound,
			)
		}

		membership = &memberships_models.TeamMembership{
			TeamID: teamID,
			UserID: targetUser.ID,
			Role:   request.Role,
		}

		if err := repo.CreateMembership(membership); err != nil {
			if storage.IsUniqueViolation(err) {
				return memberships.ErrAlreadyMember
			}

			return fmt.Errorf("failed to create team membership: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notificationService.Notify(
		targetUser.ID,
		notifications.NotificationTypeTeamInvitation,
		fmt.Sprintf("%s added you to team %q", actor.Name, team.Name),
		teamID,
	)

	s.activityService.Record(
		team.ProjectID,
		actor.ID,
		nil,
		activities.ActivityTypeMemberAssigned,
		fmt.Sprintf("%s assigned to team %q as %s", targetUser.Email, team.Name, request.Role),
		map[string]any{
			"teamId": teamID.String(),
			"email":  targetUser.Email,
			"role":   string(request.Role),
		},
	)

	return &memberships_dto.TeamMembershipResponseDTO{
		ID:        membership.ID,
		TeamID:    membership.TeamID,
		UserID:    membership.UserID,
		Role:      membership.Role,
		CreatedAt: membership.CreatedAt,
	}, nil
}

func (s *TeamMembershipService) RemoveMember(
	teamID uuid.UUID,
	targetUserID uuid.UUID,
	actor *users_models.User,
) error {
	team, err := s.teamRepository.GetTeamByID(teamID)
	if err != nil {
		return fmt.Errorf("failed to get team: %w", err)
	}
	if team == nil {
		return memberships.ErrNotFound
	}

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		repo := s.teamMembershipRepository.WithTx(tx)

		targetMembership, err := repo.GetMembership(teamID, targetUserID)
		if err != nil {
			return fmt.Errorf("failed to get team membership: %w", err)
		}
		if targetMembership == nil {
			return memberships.ErrNotFound
		}

		if err := s.evaluateTeamAction(
			repo, team, actor,
			memberships_permissions.ActionRemoveMember, &targetMembership.Role,
		); err != nil {
			return err
		}

		if actor.ID == targetUserID && actor.ID == team.OwnerID {
			return memberships.ErrSelfRemoval
		}

		removed, err := repo.RemoveMember(teamID, targetUserID)
		if err != nil {
			return fmt.Errorf("failed to remove team member: %w", err)
		}
		if !removed {
			return memberships.ErrNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.activityService.Record(
		team.ProjectID,
		actor.ID,
		nil,
		activities.ActivityTypeMemberRemoved,
		fmt.Sprintf("Member removed from team %q", team.Name),
		map[string]any{"teamId": teamID.String(), "removedUserId": targetUserID.String()},
	)

	return nil
}

func (s *TeamMembershipService) ChangeMemberRole(
	teamID uuid.UUID,
	targetUserID uuid.UUID,
	request *memberships_dto.ChangeTeamMemberRoleRequestDTO,
	actor *users_models.User,
) error {
	if !request.Role.IsAssignable() {
		return memberships.ErrInvalidRole
	}

	team, err := s.teamRepository.GetTeamByID(teamID)
	if err != nil {
		return fmt.Errorf("failed to get team: %w", err)
	}
	if team == nil {
		return memberships.ErrNotFound
	}

	var oldRole users_enums.TeamRole

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		repo := s.teamMembershipRepository.WithTx(tx)

		targetMembership, err := repo.GetMembership(teamID, targetUserID)
		if err != nil {
			return fmt.Errorf("failed to get team membership: %w", err)
		}
		if targetMembership == nil {
			return memberships.ErrNotFound
		}

		if err := s.evaluateTeamAction(
			repo, team, actor,
			memberships_permissions.ActionChangeRole, &targetMembership.Role,
		); err != nil {
			return err
		}

		oldRole = targetMembership.Role
		if oldRole == request.Role {
			return nil
		}

		if err := repo.UpdateMemberRole(teamID, targetUserID, request.Role); err != nil {
			return fmt.Errorf("failed to update team member role: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if oldRole == request.Role {
		return nil
	}

	s.activityService.Record(
		team.ProjectID,
		actor.ID,
		nil,
		activities.ActivityTypeRoleChanged,
		fmt.Sprintf("Team member role changed from %s to %s", oldRole, request.Role),
		map[string]any{
			"teamId":  teamID.String(),
			"userId":  targetUserID.String(),
			"oldRole": string(oldRole),
			"newRole": string(request.Role),
		},
	)

	return nil
}

func (s *TeamMembershipService) GetMembers(
	teamID uuid.UUID,
	actor *users_models.User,
) (*memberships_dto.GetTeamMembersResponseDTO, error) {
	team, err := s.teamRepository.GetTeamByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if team == nil {
		return nil, memberships.ErrNotFound
	}

	if err := s.evaluateTeamAction(
		s.teamMembershipRepository, team, actor,
		memberships_permissions.ActionViewMembers, nil,
	); err != nil {
		return nil, err
	}

	members, err := s.teamMembershipRepository.GetTeamMembers(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	return &memberships_dto.GetTeamMembersResponseDTO{Members: members}, nil
}

func (s *TeamMembershipService) evaluateTeamAction(
	repo *memberships_repositories.TeamMembershipRepository,
	team *projects_models.Team,
	actor *users_models.User,
	action memberships_permissions.Action,
	targetRole *users_enums.TeamRole,
) error {
	actorMembership, err := repo.GetMembership(team.ID, actor.ID)
	if err != nil {
		return fmt.Errorf("failed to get actor team membership: %w", err)
	}

	var evalMembership *memberships_permissions.TeamActorMembership
	if actorMembership != nil {
		evalMembership = &memberships_permissions.TeamActorMembership{
			Role: actorMembership.Role,
		}
	}

	decision := memberships_permissions.EvaluateTeam(memberships_permissions.TeamEvaluation{
		ActorID:    actor.ID,
		OwnerID:    team.OwnerID,
		Membership: evalMembership,
		TargetRole: targetRole,
		Action:     action,
	})

	if !decision.Allowed {
		return fmt.Errorf("%w: %s", memberships.ErrUnauthorized, decision.Reason)
	}

	return nil
}

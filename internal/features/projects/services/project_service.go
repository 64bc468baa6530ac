package projects_services

import (
	"fmt"
	"time"

	"taskhub-backend/internal/features/activities"
	"taskhub-backend/internal/features/memberships"
	memberships_models "taskhub-backend/internal/features/memberships/models"
	memberships_permissions "taskhub-backend/internal/features/memberships/permissions"
	memberships_repositories "taskhub-backend/internal/features/memberships/repositories"
	projects_dto "taskhub-backend/internal/features/projects/dto"
	projects_models "taskhub-backend/internal/features/projects/models"
	projects_repositories "taskhub-backend/internal/features/projects/repositories"
	users_enums "taskhub-backend/internal/features/users/enums"
	users_models "taskhub-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type ProjectService struct {
	projectRepository    *projects_repositories.ProjectRepository
	membershipRepository *memberships_repositories.MembershipRepository
	activityService      *activities.ActivityService
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	project := &projects_models.Project{
		ID:        uuid.New(),
		OwnerID:   creator.ID,
		Name:      request.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	// Owner auto-membership, accepted immediately.
	membership := &memberships_models.ProjectMembership{
		ProjectID: project.ID,
		UserID:    creator.ID,
		Role:      users_enums.ProjectRoleOwner,
		Status:    users_enums.MembershipStatusAccepted,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}

	s.activityService.Record(
		project.ID,
		creator.ID,
		nil,
		activities.ActivityTypeProjectCreated,
		fmt.Sprintf("Project created: %s", project.Name),
		map[string]any{"name": project.Name},
	)

	ownerRole := users_enums.ProjectRoleOwner
	return &projects_dto.ProjectResponseDTO{
		ID:        project.ID,
		OwnerID:   project.OwnerID,
		Name:      project.Name,
		CreatedAt: project.CreatedAt,
		UserRole:  &ownerRole,
	}, nil
}

func (s *ProjectService) GetProject(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, memberships.ErrNotFound
	}

	if err := s.evaluateProjectAction(
		project, user, memberships_permissions.ActionViewMembers,
	); err != nil {
		return nil, err
	}

	var userRole *users_enums.ProjectRole
	membership, err := s.membershipRepository.GetMembership(projectID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if membership != nil && membership.Status == users_enums.MembershipStatusAccepted {
		userRole = &membership.Role
	} else if project.OwnerID == user.ID {
		ownerRole := users_enums.ProjectRoleOwner
		userRole = &ownerRole
	}

	return &projects_dto.ProjectResponseDTO{
		ID:        project.ID,
		OwnerID:   project.OwnerID,
		Name:      project.Name,
		CreatedAt: project.CreatedAt,
		UserRole:  userRole,
	}, nil
}

func (s *ProjectService) GetUserProjects(
	user *users_models.User,
) (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.projectRepository.GetProjectsByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user projects: %w", err)
	}

	return &projects_dto.ListProjectsResponseDTO{Projects: projects}, nil
}

func (s *ProjectService) DeleteProject(
	projectID uuid.UUID,
	user *users_models.User,
) error {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return memberships.ErrNotFound
	}

	if project.OwnerID != user.ID {
		return fmt.Errorf("%w: only the owner can delete a project", memberships.ErrUnauthorized)
	}

	if err := s.projectRepository.DeleteProject(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// GetProjectActivities exposes the project's audit trail to any user
// allowed to view the project.
func (s *ProjectService) GetProjectActivities(
	projectID uuid.UUID,
	user *users_models.User,
	request *activities.GetActivitiesRequest,
) (*activities.GetActivitiesResponse, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, memberships.ErrNotFound
	}

	if err := s.evaluateProjectAction(
		project, user, memberships_permissions.ActionViewMembers,
	); err != nil {
		return nil, err
	}

	return s.activityService.GetProjectActivities(projectID, request)
}

func (s *ProjectService) evaluateProjectAction(
	project *projects_models.Project,
	user *users_models.User,
	action memberships_permissions.Action,
) error {
	membership, err := s.membershipRepository.GetMembership(project.ID, user.ID)
	if err != nil {
		return fmt.Errorf("failed to get membership: %w", err)
	}

	var evalMembership *memberships_permissions.ProjectActorMembership
	if membership != nil {
		evalMembership = &memberships_permissions.ProjectActorMembership{
			Role:   membership.Role,
			Status: membership.Status,
		}
	}

	decision := memberships_permissions.EvaluateProject(memberships_permissions.ProjectEvaluation{
		ActorID:    user.ID,
		OwnerID:    project.OwnerID,
		Membership: evalMembership,
		Action:     action,
	})

	if !decision.Allowed {
		return fmt.Errorf("%w: %s", memberships.ErrUnauthorized, decision.Reason)
	}

	return nil
}

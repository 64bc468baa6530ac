package projects_services

import (
	"fmt"

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

type TeamService struct {
	teamRepository           *projects_repositories.TeamRepository
	projectService           *ProjectService
	teamMembershipRepository *memberships_repositories.TeamMembershipRepository
	activityService          *activities.ActivityService
}

// CreateTeam requires manage_settings on the parent project. The
// creator becomes the team owner, with an owner membership row.
func (s *TeamService) CreateTeam(
	projectID uuid.UUID,
	request *projects_dto.CreateTeamRequestDTO,
	creator *users_models.User,
) (*projects_dto.TeamResponseDTO, error) {
	project, err := s.projectService.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, memberships.ErrNotFound
	}

	if err := s.projectService.evaluateProjectAction(
		project, creator, memberships_permissions.ActionManageSettings,
	); err != nil {
		return nil, err
	}

	team := &projects_models.Team{
		ID:        uuid.New(),
		ProjectID: projectID,
		OwnerID:   creator.ID,
		Name:      request.Name,
	}

	if err := s.teamRepository.CreateTeam(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	membership := &memberships_models.TeamMembership{
		TeamID: team.ID,
		UserID: creator.ID,
		Role:   users_enums.TeamRoleOwner,
	}

	if err := s.teamMembershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to create team owner membership: %w", err)
	}

	s.activityService.Record(
		projectID,
		creator.ID,
		nil,
		activities.ActivityTypeTeamCreated,
		fmt.Sprintf("Team created: %s", team.Name),
		map[string]any{"teamId": team.ID.String(), "name": team.Name},
	)

	return &projects_dto.TeamResponseDTO{
		ID:        team.ID,
		ProjectID: team.ProjectID,
		OwnerID:   team.OwnerID,
		Name:      team.Name,
		CreatedAt: team.CreatedAt,
	}, nil
}

func (s *TeamService) GetProjectTeams(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.ListTeamsResponseDTO, error) {
	project, err := s.projectService.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, memberships.ErrNotFound
	}

	if err := s.projectService.evaluateProjectAction(
		project, user, memberships_permissions.ActionViewMembers,
	); err != nil {
		return nil, err
	}

	teams, err := s.teamRepository.GetTeamsByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project teams: %w", err)
	}

	teamDTOs := make([]projects_dto.TeamResponseDTO, len(teams))
	for i, team := range teams {
		teamDTOs[i] = projects_dto.TeamResponseDTO{
			ID:        team.ID,
			ProjectID: team.ProjectID,
			OwnerID:   team.OwnerID,
			Name:      team.Name,
			CreatedAt: team.CreatedAt,
		}
	}

	return &projects_dto.ListTeamsResponseDTO{Teams: teamDTOs}, nil
}

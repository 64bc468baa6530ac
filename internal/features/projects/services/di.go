package projects_services

import (
	"taskhub-backend/internal/features/activities"
	memberships_repositories "taskhub-backend/internal/features/memberships/repositories"
	projects_repositories "taskhub-backend/internal/features/projects/repositories"
)

var projectService = &ProjectService{
	projects_repositories.GetProjectRepository(),
	memberships_repositories.GetMembershipRepository(),
	activities.GetActivityService(),
}

var teamService = &TeamService{
	projects_repositories.GetTeamRepository(),
	projectService,
	memberships_repositories.GetTeamMembershipRepository(),
	activities.GetActivityService(),
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetTeamService() *TeamService {
	return teamService
}

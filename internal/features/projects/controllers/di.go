package projects_controllers

import (
	projects_services "taskhub-backend/internal/features/projects/services"
)

var projectController = &ProjectController{
	projects_services.GetProjectService(),
	projects_services.GetTeamService(),
}

func GetProjectController() *ProjectController {
	return projectController
}

package projects_repositories

var projectRepository = &ProjectRepository{}
var teamRepository = &TeamRepository{}

func GetProjectRepository() *ProjectRepository {
	return projectRepository
}

func GetTeamRepository() *TeamRepository {
	return teamRepository
}

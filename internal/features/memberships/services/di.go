package memberships_services

import (
	"taskhub-backend/internal/features/activities"
	memberships_repositories "taskhub-backend/internal/features/memberships/repositories"
	"taskhub-backend/internal/features/notifications"
	projects_repositories "taskhub-backend/internal/features/projects/repositories"
	users_services "taskhub-backend/internal/features/users/services"
)

var invitationService = &InvitationService{
	memberships_repositories.GetMembershipRepository(),
	memberships_repositories.GetTeamMembershipRepository(),
	projects_repositories.GetProjectRepository(),
	users_services.GetUserService(),
	notifications.GetNotificationService(),
	activities.GetActivityService(),
}

var teamMembershipService = &TeamMembershipService{
	memberships_repositories.GetTeamMembershipRepository(),
	memberships_repositories.GetMembershipRepository(),
	projects_repositories.GetTeamRepository(),
	users_services.GetUserService(),
	notifications.GetNotificationService(),
	activities.GetActivityService(),
}

func GetInvitationService() *InvitationService {
	return invitationService
}

func GetTeamMembershipService() *TeamMembershipService {
	return teamMembershipService
}

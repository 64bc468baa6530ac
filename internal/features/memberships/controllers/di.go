package memberships_controllers

import (
	memberships_services "taskhub-backend/internal/features/memberships/services"
)

var membershipController = &MembershipController{
	memberships_services.GetInvitationService(),
}

var teamMembershipController = &TeamMembershipController{
	memberships_services.GetTeamMembershipService(),
}

func GetMembershipController() *MembershipController {
	return membershipController
}

func GetTeamMembershipController() *TeamMembershipController {
	return teamMembershipController
}

package memberships_repositories

var membershipRepository = &MembershipRepository{}
var teamMembershipRepository = &TeamMembershipRepository{}

func GetMembershipRepository() *MembershipRepository {
	return membershipRepository
}

func GetTeamMembershipRepository() *TeamMembershipRepository {
	return teamMembershipRepository
}

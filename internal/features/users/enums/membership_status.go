package users_enums

type MembershipStatus string

const (
	MembershipStatusPending  MembershipStatus = "PENDING"
	MembershipStatusAccepted MembershipStatus = "ACCEPTED"
)

func (s MembershipStatus) IsValid() bool {
	switch s {
	case MembershipStatusPending, MembershipStatusAccepted:
		return true
	default:
		return false
	}
}

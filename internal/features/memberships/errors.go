// Package memberships holds the error kinds shared by the membership
// workflow and the entity services built on top of it.
package memberships

import "errors"

var (
	// ErrUnauthorized covers both a missing identity and an identity
	// the permission table denies. Surfaced verbatim, never retried.
	ErrUnauthorized = errors.New("insufficient permissions")

	// ErrNotFound marks a referenced user, project, team or membership
	// that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyMember is the typed form of the uniqueness conflict on
	// invite: the caller can act on it, unlike a generic store error.
	ErrAlreadyMember = errors.New("user is already a member")

	// ErrSelfRemoval guards the sole owner from orphaning the entity;
	// ownership must be transferred first.
	ErrSelfRemoval = errors.New("owner cannot remove themselves, transfer ownership first")

	// ErrInvalidRole rejects role values outside the enumerated set,
	// checked before any store call.
	ErrInvalidRole = errors.New("invalid role")
)

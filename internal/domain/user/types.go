package user

import "sportfields/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid role")

type Role string

const (
	RoleAthlete Role = "athlete"
	RoleOwner   Role = "owner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAthlete, RoleOwner:
		return true
	default:
		return false
	}
}

// Statut is the numeric role code the SPA stores after login:
// athletes get 0, field owners get 2.
func (r Role) Statut() int {
	if r == RoleOwner {
		return 2
	}
	return 0
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

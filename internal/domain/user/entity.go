package user

import (
	"strings"

	"sportfields/internal/pkg/errs"
)

var (
	ErrInvalidEmail = errs.New("invalid email address")
	ErrEmptyName    = errs.New("name cannot be empty")
)

// User is an account about to be registered. Existing accounts are
// read back as credentials or profile views, never as entities.
type User struct {
	username        string
	firstName       string
	lastName        string
	email           Email
	passwordHash    string
	role            Role
	favouriteSports string
}

// NewUser builds a user to be registered. The username is the local
// part of the email address, matching how accounts were always created.
func NewUser(email Email, firstName, lastName, passwordHash string, role Role) (*User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		username:     email.LocalPart(),
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func (u *User) Username() string        { return u.username }
func (u *User) FirstName() string       { return u.firstName }
func (u *User) LastName() string        { return u.lastName }
func (u *User) Email() Email            { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() Role              { return u.role }
func (u *User) FavouriteSports() string { return u.favouriteSports }

func (u *User) IsOwner() bool { return u.role == RoleOwner }

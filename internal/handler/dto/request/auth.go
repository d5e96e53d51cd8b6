package request

import (
	"sportfields/internal/domain/user"
	"sportfields/internal/usecase/commands"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	FirstName string `json:"nume" binding:"required"`
	LastName  string `json:"prenume" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"parola" binding:"required,min=8"`
	// 0 registers an athlete, 2 a field owner. Matches the numeric
	// role code the SPA stores after login.
	Statut int `json:"statut"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	role := user.RoleAthlete
	if r.Statut == 2 {
		role = user.RoleOwner
	}
	return commands.RegisterInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Role:      role.String(),
	}
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ConfirmPasswordResetRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateFavouriteSportsRequest struct {
	FavouriteSports string `json:"sporturi_preferate"`
}

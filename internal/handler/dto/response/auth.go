package response

import "sportfields/internal/usecase/queries"

type LoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username"`
	Statut   int    `json:"statut"`
	Token    string `json:"token"`
}

type RegisterResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username"`
}

type UserProfile struct {
	Username        string `json:"username"`
	FirstName       string `json:"nume"`
	LastName        string `json:"prenume"`
	Email           string `json:"email"`
	FavouriteSports string `json:"sporturi_preferate"`
}

type UserProfileResponse struct {
	Success bool        `json:"success"`
	User    UserProfile `json:"user"`
}

type StatutResponse struct {
	Success bool `json:"success"`
	Statut  int  `json:"statut"`
}

func NewUserProfile(view *queries.UserView) UserProfile {
	return UserProfile{
		Username:        view.Username,
		FirstName:       view.FirstName,
		LastName:        view.LastName,
		Email:           view.Email,
		FavouriteSports: view.FavouriteSports,
	}
}

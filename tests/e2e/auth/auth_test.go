//go:build e2e

package auth_test

import (
	"encoding/json"
	"net/http"
	"testing"

	reqdto "sportfields/internal/handler/dto/request"
	resdto "sportfields/internal/handler/dto/response"
	"sportfields/tests/common/authtest"
	"sportfields/tests/common/dbtest"
	"sportfields/tests/common/httptest"
	"sportfields/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegister() {
	s.Run("register derives username from the email local part", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/register", reqdto.RegisterRequest{
			FirstName: "Popescu",
			LastName:  "Ion",
			Email:     "ion.popescu@gmail.com",
			Password:  "parola123",
			Statut:    0,
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response resdto.RegisterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, "ion.popescu", response.Username)
		require.Equal(t, "Registration successful!", response.Message)
	})

	s.Run("second account on the same email is rejected", func() {
		t := s.T()
		authtest.RegisterUser(t, s.Router, "ion.popescu@gmail.com", 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/register", reqdto.RegisterRequest{
			FirstName: "Popescu",
			LastName:  "Alt",
			Email:     "ion.popescu@gmail.com",
			Password:  "parola123",
			Statut:    0,
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "An account with this email already exists.")
	})

	s.Run("short password is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/register", reqdto.RegisterRequest{
			FirstName: "Popescu",
			LastName:  "Ion",
			Email:     "ion.popescu@gmail.com",
			Password:  "scurt",
			Statut:    0,
		}, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{"valid credentials", "ion.popescu@gmail.com", dbtest.TestPassword, http.StatusOK},
		{"unknown user", "nobody@gmail.com", dbtest.TestPassword, http.StatusUnauthorized},
		{"wrong password", "ion.popescu@gmail.com", "gresita123", http.StatusUnauthorized},
		{"empty email", "", dbtest.TestPassword, http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			dbtest.CreateTestUser(t, s.DB, "ion.popescu@gmail.com", "athlete")

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/login",
				reqdto.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var response resdto.LoginResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				require.NotEmpty(t, response.Token)
				require.Equal(t, "ion.popescu", response.Username)
				require.Equal(t, 0, response.Statut)
			}
		})
	}
}

func (s *authSuite) TestStatut() {
	s.Run("owner maps to statut 2", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "gheorghe.ionescu@gmail.com", "owner")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/get-statut/gheorghe.ionescu", nil, "")

		var response resdto.StatutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
		require.Equal(t, 2, response.Statut)
	})

	s.Run("unknown user yields 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/get-statut/ghost", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User not found.")
	})
}

func (s *authSuite) TestUpdateFavouriteSports() {
	s.Run("caller updates their own profile", func() {
		t := s.T()
		username, token := authtest.RegisterAndLogin(t, s.Router, "ion.popescu@gmail.com", 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/update-favourite-sports/"+username,
			reqdto.UpdateFavouriteSportsRequest{FavouriteSports: "fotbal, tenis"}, token)

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
		require.Equal(t, "Favourite sports successfully changed!", response.Message)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/get-user-profile/"+username, nil, "")
		var profile resdto.UserProfileResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &profile)
		require.Equal(t, "fotbal, tenis", profile.User.FavouriteSports)
	})

	s.Run("editing somebody else's profile is forbidden", func() {
		t := s.T()
		_, token := authtest.RegisterAndLogin(t, s.Router, "ion.popescu@gmail.com", 0)
		authtest.RegisterUser(t, s.Router, "maria.enache@gmail.com", 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/update-favourite-sports/maria.enache",
			reqdto.UpdateFavouriteSportsRequest{FavouriteSports: "volei"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "You can only edit your own profile.")
	})

	s.Run("missing token is unauthorized", func() {
		t := s.T()
		username := authtest.RegisterUser(t, s.Router, "ion.popescu@gmail.com", 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/update-favourite-sports/"+username,
			reqdto.UpdateFavouriteSportsRequest{FavouriteSports: "volei"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

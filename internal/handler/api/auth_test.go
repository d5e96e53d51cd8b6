//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"sportfields/internal/handler/api"
	resdto "sportfields/internal/handler/dto/response"
	"sportfields/internal/usecase/commands"
	"sportfields/internal/usecase/queries"
	"sportfields/tests/common/httptest"
	commandsmock "sportfields/tests/mock/commands"
	queriesmock "sportfields/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/login", s.handler.Login)
	s.router.POST("/register", s.handler.Register)
	s.router.GET("/get-user-profile/:username", s.handler.GetProfile)
	s.router.GET("/get-statut/:username", s.handler.GetStatut)
	s.router.PUT("/update-favourite-sports/:username", func(c *gin.Context) {
		// Simulate the auth middleware for the profile-edit route.
		c.Set("username", "ion.popescu")
		s.handler.UpdateFavouriteSports(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/login"
	reqBody := map[string]any{"email": "ion.popescu@gmail.com", "password": "parola123"}

	s.Run("success: returns token, username and statut", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), "ion.popescu@gmail.com", "parola123").
			Return(&commands.LoginResult{Token: "test-jwt", Username: "ion.popescu", Statut: 0}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("Login successful!", response.Message)
		s.Equal("ion.popescu", response.Username)
		s.Equal("test-jwt", response.Token)
		s.Equal(0, response.Statut)
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials. Please try again.")
	})

	s.Run("error: 400 on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "ion.popescu@gmail.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/register"
	reqBody := map[string]any{
		"nume":    "Popescu",
		"prenume": "Ion",
		"email":   "ion.popescu@gmail.com",
		"parola":  "parola123",
		"statut":  0,
	}

	s.Run("success: returns derived username", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return("ion.popescu", nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Registration successful!", response.Message)
		s.Equal("ion.popescu", response.Username)
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return("", commands.ErrEmailTaken).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "An account with this email already exists.")
	})

	s.Run("error: 400 on short password", func() {
		short := map[string]any{
			"nume":    "Popescu",
			"prenume": "Ion",
			"email":   "ion.popescu@gmail.com",
			"parola":  "scurt",
			"statut":  0,
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, short, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestGetStatut() {
	s.Run("success: owner maps to statut 2", func() {
		s.mockQueries.EXPECT().
			GetByUsername(gomock.Any(), "owner.user").
			Return(&queries.UserView{Username: "owner.user", Role: "owner"}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/get-statut/owner.user", nil, "")

		var response resdto.StatutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Statut)
	})

	s.Run("error: 404 for an unknown user", func() {
		s.mockQueries.EXPECT().
			GetByUsername(gomock.Any(), "ghost").
			Return(nil, queries.ErrUserNotFound).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/get-statut/ghost", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found.")
	})
}

func (s *AuthHandlerTestSuite) TestUpdateFavouriteSports() {
	s.Run("success: caller edits their own profile", func() {
		s.mockCommands.EXPECT().
			SaveFavouriteSports(gomock.Any(), "ion.popescu", "fotbal, tenis").
			Return(nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/update-favourite-sports/ion.popescu",
			map[string]any{"sporturi_preferate": "fotbal, tenis"}, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Favourite sports successfully changed!", response.Message)
	})

	s.Run("error: 403 when editing another profile", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/update-favourite-sports/alt.user",
			map[string]any{"sporturi_preferate": "fotbal"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You can only edit your own profile.")
	})
}

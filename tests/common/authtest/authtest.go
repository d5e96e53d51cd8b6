//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	reqdto "sportfields/internal/handler/dto/request"
	resdto "sportfields/internal/handler/dto/response"
	"sportfields/tests/common/dbtest"
	"sportfields/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// RegisterUser creates an account through the API and returns the
// username the server derived from the email.
func RegisterUser(t *testing.T, router *gin.Engine, email string, statut int) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/register", reqdto.RegisterRequest{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  dbtest.TestPassword,
		Statut:    statut,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response resdto.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Username)

	return response.Username
}

// LoginUser logs in and returns the bearer token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response resdto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token, "Login response carries no token")

	return response.Token
}

// RegisterAndLogin registers a fresh account and returns its username
// and bearer token.
func RegisterAndLogin(t *testing.T, router *gin.Engine, email string, statut int) (string, string) {
	t.Helper()

	username := RegisterUser(t, router, email, statut)
	token := LoginUser(t, router, email, dbtest.TestPassword)
	return username, token
}

package api

import (
	"errors"
	"net/http"

	"sportfields/internal/domain/user"
	reqdto "sportfields/internal/handler/dto/request"
	resdto "sportfields/internal/handler/dto/response"
	"sportfields/internal/handler/httperr"
	"sportfields/internal/handler/middleware"
	"sportfields/internal/usecase/commands"
	"sportfields/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
	}
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials. Please try again.")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error connecting to the database")
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		Success:  true,
		Message:  "Login successful!",
		Username: result.Username,
		Statut:   result.Statut,
		Token:    result.Token,
	})
}

// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 200 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	username, err := h.authCommands.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "An account with this email already exists.")
		case errors.Is(err, user.ErrInvalidEmail), errors.Is(err, user.ErrEmptyName):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred. Please try again.")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RegisterResponse{
		Success:  true,
		Message:  "Registration successful!",
		Username: username,
	})
}

// @Summary Get user profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} resdto.UserProfileResponse
// @Failure 404 {object} httperr.Response
// @Router /get-user-profile/{username} [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	view, err := h.userQueries.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error retrieving user profile")
		return
	}

	c.JSON(http.StatusOK, resdto.UserProfileResponse{
		Success: true,
		User:    resdto.NewUserProfile(view),
	})
}

// @Summary Get numeric role code for a user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} resdto.StatutResponse
// @Failure 404 {object} httperr.Response
// @Router /get-statut/{username} [get]
func (h *AuthHandler) GetStatut(c *gin.Context) {
	view, err := h.userQueries.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found.")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred.")
		return
	}

	c.JSON(http.StatusOK, resdto.StatutResponse{
		Success: true,
		Statut:  user.Role(view.Role).Statut(),
	})
}

// @Summary Request a password reset mail
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResetPasswordRequest true "Reset request"
// @Success 200 {object} resdto.MessageResponse
// @Router /reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.authCommands.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send email.")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Reset link sent to email."))
}

// @Summary Set a new password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmPasswordResetRequest true "Confirm request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /confirm-password-reset [post]
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req reqdto.ConfirmPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	err := h.authCommands.ResetPassword(c.Request.Context(), req.Token, req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrResetTokenInvalid) || errors.Is(err, commands.ErrResetTokenExpired) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired token.")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error updating password.")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Password updated successfully!"))
}

// @Summary Update the caller's favourite sports
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body reqdto.UpdateFavouriteSportsRequest true "Update request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Router /update-favourite-sports/{username} [put]
func (h *AuthHandler) UpdateFavouriteSports(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok || username != c.Param("username") {
		httperr.AbortWithError(c, http.StatusForbidden, errForbidden, "You can only edit your own profile.")
		return
	}

	var req reqdto.UpdateFavouriteSportsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.authCommands.SaveFavouriteSports(c.Request.Context(), username, req.FavouriteSports); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "An error occurred. Please try again.")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Favourite sports successfully changed!"))
}

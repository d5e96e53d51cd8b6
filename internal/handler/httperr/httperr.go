package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the failure envelope the SPA expects: success is always
// false here, message is what gets shown to the user.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Success: false, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

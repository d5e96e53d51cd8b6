package middleware

import (
	"log/slog"
	"net/http"

	"sportfields/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors attached by httperr.AbortWithError into the
// {success, message} envelope the SPA reads, for handlers that aborted
// without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		// Most recent public error wins.
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}

// CustomRecovery converts panics into a 500 envelope instead of gin's
// default plain-text response.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic", "error", r, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"success": false, "message": "Internal server error"})
			}
		}()
		c.Next()
	}
}

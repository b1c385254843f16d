package middleware

import (
	"errors"
	"net/http"

	"skills-api/internal/delivery/http/response"
	"skills-api/pkg/apperror"
	"skills-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error as {error}.
// Store failures keep their original message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		code := http.StatusInternalServerError
		message := err.Error()

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			code = appErr.Code
			message = appErr.Message
		}

		if code >= http.StatusInternalServerError {
			requestID, _ := c.Get(RequestIDKey)
			logger.Log.Error("request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"request_id", requestID,
				"error", err,
			)
		}

		response.Error(c, code, message)
	}
}

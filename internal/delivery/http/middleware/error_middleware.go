package middleware

import (
	"errors"
	"net/http"

	"talentai-backend/internal/delivery/http/response"
	"talentai-backend/pkg/apperror"
	"talentai-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors appended via c.Error into JSON responses. AppError
// carries its own status code and client-safe message; anything else is logged
// server-side and surfaced as a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Fail(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
		response.Fail(c, http.StatusInternalServerError,
			"An unexpected error occurred. Please try again later.")
	}
}

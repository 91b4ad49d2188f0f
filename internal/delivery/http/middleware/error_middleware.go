package middleware

import (
	"errors"
	"net/http"

	"go-workerconnect-backend/internal/delivery/http/response"
	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/pkg/apperror"
	"go-workerconnect-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		switch {
		case errors.As(err, &appErr):
			response.Error(c, appErr.Code, appErr.Message, nil)
		case errors.Is(err, domain.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, err.Error(), nil)
		case errors.Is(err, domain.ErrPasswordMismatch):
			// Validation failure: surfaced as a distinct message, the form
			// state on the caller's side is preserved.
			response.Error(c, http.StatusUnprocessableEntity, "Please ensure both passwords match.", nil)
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, err.Error(), nil)
		default:
			// Never expose internal error details to clients. Log the actual
			// error server-side and send a generic message.
			logger.Log.Error("Internal server error", "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandomoreu/mercadillo/internal/apperror"
	"github.com/nandomoreu/mercadillo/internal/handler/http/dto"
)

// ErrorHandler normalizes any failure into the uniform response shape. Typed
// errors carry their own status classification; anything unclassified becomes
// a generic server error so internals never leak.
func ErrorHandler(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		message := appErr.Message
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrPermission):
			status = http.StatusForbidden
		default:
			// integrity and transient failures stay server-side
			message = "internal server error"
		}
		c.JSON(status, dto.ErrorResponse{Message: message, Details: appErr.Details})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindJSON binds the JSON body and reports a malformed payload as a client error.
func BindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request payload"})
		return err
	}
	return nil
}

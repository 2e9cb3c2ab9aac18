package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kolbe-be/internal/models"
	"kolbe-be/internal/service"
)

// authErrorStatus maps a flow error kind to its HTTP status and wire code.
func authErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, service.ErrDuplicateInFlight):
		return http.StatusTooManyRequests, "DUPLICATE_REQUEST"
	case errors.Is(err, service.ErrEmailExists):
		return http.StatusConflict, "EMAIL_EXISTS"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS"
	default:
		return http.StatusInternalServerError, "SERVER_ERROR"
	}
}

// abortWithAuthError writes the structured error body. Only service.Error
// messages reach the client; anything else gets a generic text.
func abortWithAuthError(c *gin.Context, err error) {
	status, code := authErrorStatus(err)

	message := "Server error, please try again"
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: code, Message: message})
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: code, Message: message})
}

func badRequestBody(c *gin.Context, err error) {
	_ = c.Error(err)
	abortWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
}

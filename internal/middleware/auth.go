package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kolbe-be/internal/entities"
	"kolbe-be/internal/jwt"
	"kolbe-be/internal/models"
	"kolbe-be/internal/repository"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// UserLookup resolves the account a token was issued for.
type UserLookup interface {
	FindByID(ctx context.Context, id int64) (*entities.User, error)
}

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and
// exposes the token's user in the gin context. When users is non-nil the
// account must still exist.
func AuthMiddleware(jwtService *jwt.JWTService, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "UNAUTHORIZED",
				Message: "Authorization header required",
			})
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "UNAUTHORIZED",
				Message: "Invalid or expired token",
			})
			return
		}

		email := claims.Email
		if users != nil {
			user, err := users.FindByID(c.Request.Context(), claims.UserID)
			if errors.Is(err, repository.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "UNAUTHORIZED",
					Message: "Invalid or expired token",
				})
				return
			}
			if err != nil {
				_ = c.Error(err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
					Error:   "SERVER_ERROR",
					Message: "Server error, please try again",
				})
				return
			}
			email = user.Email
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, email)
		c.Next()
	}
}

// UserID returns the authenticated user set by AuthMiddleware.
func UserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kolbe-be/internal/models"
	"kolbe-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles POST /api/v1/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	result, err := ac.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.RegisterResponse{
		Success: true,
		Message: "User created successfully",
		UserID:  result.UserID,
	})
}

// Login handles POST /api/v1/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	result, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithAuthError(c, err)
		return
	}

	resp := models.LoginResponse{
		Message: "Login successful",
		UserID:  result.UserID,
		Email:   result.Email,
		Token:   result.Token,
	}
	if result.Token != "" {
		expiresAt := result.ExpiresAt.UTC()
		resp.ExpiresAt = &expiresAt
	}

	c.JSON(http.StatusOK, resp)
}

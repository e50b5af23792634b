package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/service"
	apperrors "github.com/chocolog/chocolog-backend/internal/errors"
	"github.com/chocolog/chocolog-backend/internal/middleware"
	"github.com/chocolog/chocolog-backend/pkg/redis"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
	jwtExpiry   time.Duration
}

func NewAuthController(authService service.AuthService, jwtExpiry time.Duration) *AuthController {
	return &AuthController{
		authService: authService,
		jwtExpiry:   jwtExpiry,
	}
}

// Register handles POST /auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	user, tokens, err := ctrl.authService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.RespondConflict(c, apperrors.UserExists, "email is already in use")
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
		"tokens":  tokens,
	})
}

// Login handles POST /auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	user, tokens, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondUnauthorized(c, "invalid email or password")
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Logout handles POST /auth/logout. The presented token is blacklisted
// until its natural expiry so it cannot be replayed.
func (ctrl *AuthController) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token == "" {
		apperrors.RespondUnauthorized(c, "")
		return
	}

	if redis.GetClient() != nil {
		if err := redis.BlacklistToken(c.Request.Context(), token, ctrl.jwtExpiry); err != nil {
			apperrors.RespondInternalError(c, "")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetMe handles GET /auth/me
func (ctrl *AuthController) GetMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.RespondNotFound(c, "user not found")
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateMe handles PUT /auth/me
func (ctrl *AuthController) UpdateMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	user, err := ctrl.authService.UpdateProfile(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			apperrors.RespondNotFound(c, "user not found")
		case errors.Is(err, service.ErrEmailAlreadyExists):
			apperrors.RespondConflict(c, apperrors.UserExists, "email is already in use")
		default:
			apperrors.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

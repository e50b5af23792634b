package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/service"
	apperrors "github.com/chocolog/chocolog-backend/internal/errors"
	"github.com/chocolog/chocolog-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UserController serves the admin user-management view. Every route is
// behind RequireRole(ADMIN).
type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers handles GET /admin/users
func (ctrl *UserController) ListUsers(c *gin.Context) {
	var query model.UserListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	users, total, err := ctrl.userService.GetUsers(&query)
	if err != nil {
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      users,
		"total":     total,
		"page":      query.Page,
		"page_size": query.PageSize,
	})
}

// UpdateUserRole handles PUT /admin/users/:id/role
func (ctrl *UserController) UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid user id")
		return
	}

	callerID, _ := middleware.GetUserID(c)

	var req model.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	user, err := ctrl.userService.UpdateUserRole(uint(id), req.Role, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			apperrors.RespondNotFound(c, "user not found")
		case errors.Is(err, service.ErrSelfDemotion):
			apperrors.RespondForbidden(c, err.Error())
		default:
			apperrors.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser handles DELETE /admin/users/:id
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid user id")
		return
	}

	callerID, _ := middleware.GetUserID(c)

	if err := ctrl.userService.DeleteUser(uint(id), callerID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			apperrors.RespondNotFound(c, "user not found")
		case errors.Is(err, service.ErrSelfDemotion):
			apperrors.RespondForbidden(c, err.Error())
		default:
			apperrors.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ExportUsers handles GET /admin/users/export, streaming an xlsx workbook
func (ctrl *UserController) ExportUsers(c *gin.Context) {
	f, err := ctrl.userService.ExportUsers()
	if err != nil {
		apperrors.RespondInternalError(c, "")
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", service.ExportFilename()))

	if err := f.Write(c.Writer); err != nil {
		// Headers already sent; nothing useful left to tell the client
		c.Abort()
	}
}

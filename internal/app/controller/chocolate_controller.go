package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/service"
	apperrors "github.com/chocolog/chocolog-backend/internal/errors"
	"github.com/chocolog/chocolog-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ChocolateController struct {
	chocolateService service.ChocolateService
}

func NewChocolateController(chocolateService service.ChocolateService) *ChocolateController {
	return &ChocolateController{chocolateService: chocolateService}
}

// ListChocolates handles GET /chocolates
func (ctrl *ChocolateController) ListChocolates(c *gin.Context) {
	var query model.ChocolateListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	chocolates, total, err := ctrl.chocolateService.GetChocolates(&query)
	if err != nil {
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      chocolates,
		"total":     total,
		"page":      query.Page,
		"page_size": query.PageSize,
	})
}

// GetChocolate handles GET /chocolates/:id
func (ctrl *ChocolateController) GetChocolate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid chocolate id")
		return
	}

	chocolate, err := ctrl.chocolateService.GetChocolate(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrChocolateNotFound) {
			apperrors.RespondNotFound(c, "chocolate not found")
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"chocolate": chocolate})
}

// CreateChocolate handles POST /chocolates
func (ctrl *ChocolateController) CreateChocolate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}

	var req model.CreateChocolateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	chocolate, err := ctrl.chocolateService.CreateChocolate(&req, userID)
	if err != nil {
		if errors.Is(err, service.ErrBrandNotFound) {
			apperrors.RespondNotFound(c, "brand not found")
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"chocolate": chocolate})
}

// UpdateChocolate handles PUT /chocolates/:id
func (ctrl *ChocolateController) UpdateChocolate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}
	userRole, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid chocolate id")
		return
	}

	var req model.UpdateChocolateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	chocolate, err := ctrl.chocolateService.UpdateChocolate(uint(id), &req, userID, userRole)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChocolateNotFound):
			apperrors.RespondNotFound(c, "chocolate not found")
		case errors.Is(err, service.ErrBrandNotFound):
			apperrors.RespondNotFound(c, "brand not found")
		case errors.Is(err, service.ErrForbidden):
			apperrors.RespondForbidden(c, "")
		default:
			apperrors.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"chocolate": chocolate})
}

// DeleteChocolate handles DELETE /chocolates/:id
func (ctrl *ChocolateController) DeleteChocolate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}
	userRole, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid chocolate id")
		return
	}

	if err := ctrl.chocolateService.DeleteChocolate(uint(id), userID, userRole); err != nil {
		switch {
		case errors.Is(err, service.ErrChocolateNotFound):
			apperrors.RespondNotFound(c, "chocolate not found")
		case errors.Is(err, service.ErrForbidden):
			apperrors.RespondForbidden(c, "")
		default:
			apperrors.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chocolate deleted successfully"})
}

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

type BrandController struct {
	brandService service.BrandService
}

func NewBrandController(brandService service.BrandService) *BrandController {
	return &BrandController{brandService: brandService}
}

// ListBrands handles GET /brands
func (ctrl *BrandController) ListBrands(c *gin.Context) {
	var query model.BrandListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	brands, total, err := ctrl.brandService.GetBrands(&query)
	if err != nil {
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      brands,
		"total":     total,
		"page":      query.Page,
		"page_size": query.PageSize,
	})
}

// GetBrand handles GET /brands/:id
func (ctrl *BrandController) GetBrand(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid brand id")
		return
	}

	brand, err := ctrl.brandService.GetBrand(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrBrandNotFound) {
			apperrors.RespondNotFound(c, "brand not found")
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"brand": brand})
}

// CreateBrand handles POST /brands
func (ctrl *BrandController) CreateBrand(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}

	var req model.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	brand, err := ctrl.brandService.CreateBrand(&req, userID)
	if err != nil {
		if errors.Is(err, service.ErrBrandNameTaken) {
			apperrors.RespondConflict(c, apperrors.BrandExists, "a brand with this name already exists")
			return
		}
		info := apperrors.ParseStorageError(err)
		if info.Code == apperrors.BrandExists {
			apperrors.RespondConflict(c, info.Code, info.Message)
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"brand": brand})
}

// UpdateBrand handles PUT /brands/:id
func (ctrl *BrandController) UpdateBrand(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}
	userRole, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid brand id")
		return
	}

	var req model.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	brand, err := ctrl.brandService.UpdateBrand(uint(id), &req, userID, userRole)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBrandNotFound):
			apperrors.RespondNotFound(c, "brand not found")
		case errors.Is(err, service.ErrForbidden):
			apperrors.RespondForbidden(c, "")
		case errors.Is(err, service.ErrBrandNameTaken):
			apperrors.RespondConflict(c, apperrors.BrandExists, "a brand with this name already exists")
		default:
			apperrors.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"brand": brand})
}

// DeleteBrand handles DELETE /brands/:id
func (ctrl *BrandController) DeleteBrand(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}
	userRole, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid brand id")
		return
	}

	if err := ctrl.brandService.DeleteBrand(uint(id), userID, userRole); err != nil {
		switch {
		case errors.Is(err, service.ErrBrandNotFound):
			apperrors.RespondNotFound(c, "brand not found")
		case errors.Is(err, service.ErrForbidden):
			apperrors.RespondForbidden(c, "")
		default:
			apperrors.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
}

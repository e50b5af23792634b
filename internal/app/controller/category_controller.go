package controller

import (
	"net/http"

	"github.com/chocolog/chocolog-backend/internal/app/service"
	apperrors "github.com/chocolog/chocolog-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// ListCategories handles GET /categories
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	categories, err := ctrl.categoryService.GetCategories()
	if err != nil {
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/service"
	apperrors "github.com/chocolog/chocolog-backend/internal/errors"
	"github.com/chocolog/chocolog-backend/internal/middleware"
	"github.com/chocolog/chocolog-backend/internal/websocket"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewService service.ReviewService
	hub           *websocket.Hub
}

func NewReviewController(reviewService service.ReviewService, hub *websocket.Hub) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		hub:           hub,
	}
}

// ListChocolateReviews handles GET /chocolates/:id/reviews
func (ctrl *ReviewController) ListChocolateReviews(c *gin.Context) {
	chocolateID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid chocolate id")
		return
	}

	var query model.ReviewListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	reviews, total, err := ctrl.reviewService.GetChocolateReviews(uint(chocolateID), &query)
	if err != nil {
		if errors.Is(err, service.ErrChocolateNotFound) {
			apperrors.RespondNotFound(c, "chocolate not found")
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      reviews,
		"total":     total,
		"page":      query.Page,
		"page_size": query.PageSize,
	})
}

// ListMyReviews handles GET /users/me/reviews
func (ctrl *ReviewController) ListMyReviews(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}

	var query model.ReviewListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	reviews, total, err := ctrl.reviewService.GetUserReviews(userID, &query)
	if err != nil {
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      reviews,
		"total":     total,
		"page":      query.Page,
		"page_size": query.PageSize,
	})
}

// GetReview handles GET /reviews/:id
func (ctrl *ReviewController) GetReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid review id")
		return
	}

	review, err := ctrl.reviewService.GetReview(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.RespondNotFound(c, "review not found")
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

// CreateReview handles POST /reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	review, err := ctrl.reviewService.CreateReview(&req, userID)
	if err != nil {
		if errors.Is(err, service.ErrChocolateNotFound) {
			apperrors.RespondNotFound(c, "chocolate not found")
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	if ctrl.hub != nil {
		ctrl.hub.Publish(websocket.ActivityEvent{
			Type:        "review_created",
			UserID:      userID,
			ChocolateID: review.ChocolateID,
			ReviewID:    review.ID,
		})
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// UpdateReview handles PUT /reviews/:id
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}
	userRole, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid review id")
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	review, err := ctrl.reviewService.UpdateReview(uint(id), &req, userID, userRole)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			apperrors.RespondNotFound(c, "review not found")
		case errors.Is(err, service.ErrForbidden):
			apperrors.RespondForbidden(c, "")
		default:
			apperrors.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

// DeleteReview handles DELETE /reviews/:id
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}
	userRole, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid review id")
		return
	}

	if err := ctrl.reviewService.DeleteReview(uint(id), userID, userRole); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			apperrors.RespondNotFound(c, "review not found")
		case errors.Is(err, service.ErrForbidden):
			apperrors.RespondForbidden(c, "")
		default:
			apperrors.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

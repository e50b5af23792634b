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

type CommentController struct {
	commentService service.CommentService
	hub            *websocket.Hub
}

func NewCommentController(commentService service.CommentService, hub *websocket.Hub) *CommentController {
	return &CommentController{
		commentService: commentService,
		hub:            hub,
	}
}

// ListReviewComments handles GET /reviews/:id/comments
func (ctrl *CommentController) ListReviewComments(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid review id")
		return
	}

	comments, err := ctrl.commentService.GetReviewComments(uint(reviewID))
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.RespondNotFound(c, "review not found")
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /comments
func (ctrl *CommentController) CreateComment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	comment, err := ctrl.commentService.CreateComment(&req, userID)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.RespondNotFound(c, "review not found")
			return
		}
		apperrors.RespondInternalError(c, "")
		return
	}

	if ctrl.hub != nil {
		ctrl.hub.Publish(websocket.ActivityEvent{
			Type:     "comment_created",
			UserID:   userID,
			ReviewID: comment.ReviewID,
		})
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// UpdateComment handles PUT /comments/:id
func (ctrl *CommentController) UpdateComment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}
	userRole, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid comment id")
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondInvalidInput(c, err.Error())
		return
	}

	comment, err := ctrl.commentService.UpdateComment(uint(id), &req, userID, userRole)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			apperrors.RespondNotFound(c, "comment not found")
		case errors.Is(err, service.ErrForbidden):
			apperrors.RespondForbidden(c, "")
		default:
			apperrors.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /comments/:id
func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}
	userRole, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.RespondInvalidInput(c, "invalid comment id")
		return
	}

	if err := ctrl.commentService.DeleteComment(uint(id), userID, userRole); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			apperrors.RespondNotFound(c, "comment not found")
		case errors.Is(err, service.ErrForbidden):
			apperrors.RespondForbidden(c, "")
		default:
			apperrors.RespondInternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

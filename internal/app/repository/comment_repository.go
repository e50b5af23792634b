package repository

import (
	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	FindByID(id uint) (*model.Comment, error)
	ListByReview(reviewID uint) ([]model.Comment, error)
	Update(comment *model.Comment) error
	Delete(id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		logger.Error("Failed to create comment in database", err, map[string]interface{}{
			"review_id": comment.ReviewID,
			"user_id":   comment.UserID,
		})
		return err
	}
	return nil
}

func (r *commentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByReview(reviewID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Where("review_id = ?", reviewID).
		Preload("User").
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Update(comment *model.Comment) error {
	if err := r.db.Save(comment).Error; err != nil {
		logger.Error("Failed to update comment in database", err, map[string]interface{}{
			"comment_id": comment.ID,
		})
		return err
	}
	return nil
}

func (r *commentRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Comment{}, id).Error; err != nil {
		logger.Error("Failed to delete comment from database", err, map[string]interface{}{
			"comment_id": id,
		})
		return err
	}
	return nil
}

package repository

import (
	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByID(id uint) (*model.Review, error)
	FindByIDWithRelations(id uint) (*model.Review, error)
	ListByChocolate(chocolateID uint, query *model.ReviewListQuery) ([]model.Review, int64, error)
	ListByUser(userID uint, query *model.ReviewListQuery) ([]model.Review, int64, error)
	Update(review *model.Review) error
	Delete(id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		logger.Error("Failed to create review in database", err, map[string]interface{}{
			"chocolate_id": review.ChocolateID,
			"user_id":      review.UserID,
		})
		return err
	}

	logger.Debug("Review created in database", map[string]interface{}{
		"review_id":    review.ID,
		"chocolate_id": review.ChocolateID,
	})
	return nil
}

func (r *reviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByIDWithRelations(id uint) (*model.Review, error) {
	var review model.Review
	err := r.db.Preload("Chocolate").
		Preload("Chocolate.Brand").
		Preload("Place").
		Preload("Comments").
		First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByChocolate(chocolateID uint, query *model.ReviewListQuery) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	tx := r.db.Model(&model.Review{}).Where("chocolate_id = ?", chocolateID)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.PageSize
	err := tx.Preload("Place").
		Order("created_at DESC").
		Limit(query.PageSize).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewRepository) ListByUser(userID uint, query *model.ReviewListQuery) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	tx := r.db.Model(&model.Review{}).Where("user_id = ?", userID)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.PageSize
	err := tx.Preload("Chocolate").
		Order("created_at DESC").
		Limit(query.PageSize).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewRepository) Update(review *model.Review) error {
	if err := r.db.Save(review).Error; err != nil {
		logger.Error("Failed to update review in database", err, map[string]interface{}{
			"review_id": review.ID,
		})
		return err
	}
	return nil
}

func (r *reviewRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Review{}, id).Error; err != nil {
		logger.Error("Failed to delete review from database", err, map[string]interface{}{
			"review_id": id,
		})
		return err
	}
	return nil
}

package repository

import (
	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"gorm.io/gorm"
)

type ChocolateRepository interface {
	Create(chocolate *model.Chocolate) error
	FindByID(id uint) (*model.Chocolate, error)
	FindByIDWithRelations(id uint) (*model.Chocolate, error)
	List(query *model.ChocolateListQuery) ([]model.Chocolate, int64, error)
	Update(chocolate *model.Chocolate) error
	Delete(id uint) error
}

type chocolateRepository struct {
	db *gorm.DB
}

func NewChocolateRepository(db *gorm.DB) ChocolateRepository {
	return &chocolateRepository{db: db}
}

func (r *chocolateRepository) Create(chocolate *model.Chocolate) error {
	if err := r.db.Create(chocolate).Error; err != nil {
		logger.Error("Failed to create chocolate in database", err, map[string]interface{}{
			"name":     chocolate.Name,
			"brand_id": chocolate.BrandID,
		})
		return err
	}

	logger.Debug("Chocolate created in database", map[string]interface{}{
		"chocolate_id": chocolate.ID,
		"name":         chocolate.Name,
	})
	return nil
}

func (r *chocolateRepository) FindByID(id uint) (*model.Chocolate, error) {
	var chocolate model.Chocolate
	if err := r.db.First(&chocolate, id).Error; err != nil {
		return nil, err
	}
	return &chocolate, nil
}

func (r *chocolateRepository) FindByIDWithRelations(id uint) (*model.Chocolate, error) {
	var chocolate model.Chocolate
	err := r.db.Preload("Brand").
		Preload("Category").
		First(&chocolate, id).Error
	if err != nil {
		return nil, err
	}
	return &chocolate, nil
}

func (r *chocolateRepository) List(query *model.ChocolateListQuery) ([]model.Chocolate, int64, error) {
	var chocolates []model.Chocolate
	var total int64

	tx := r.db.Model(&model.Chocolate{})
	if query.BrandID != nil {
		tx = tx.Where("brand_id = ?", *query.BrandID)
	}
	if query.CategoryID != nil {
		tx = tx.Where("category_id = ?", *query.CategoryID)
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	if query.Search != "" {
		tx = tx.Where("name LIKE ?", "%"+query.Search+"%")
	}

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.PageSize
	err := tx.Preload("Brand").
		Order("created_at DESC").
		Limit(query.PageSize).
		Offset(offset).
		Find(&chocolates).Error
	if err != nil {
		return nil, 0, err
	}

	return chocolates, total, nil
}

func (r *chocolateRepository) Update(chocolate *model.Chocolate) error {
	if err := r.db.Save(chocolate).Error; err != nil {
		logger.Error("Failed to update chocolate in database", err, map[string]interface{}{
			"chocolate_id": chocolate.ID,
		})
		return err
	}
	return nil
}

func (r *chocolateRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Chocolate{}, id).Error; err != nil {
		logger.Error("Failed to delete chocolate from database", err, map[string]interface{}{
			"chocolate_id": id,
		})
		return err
	}
	return nil
}

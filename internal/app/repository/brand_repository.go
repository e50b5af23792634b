package repository

import (
	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"gorm.io/gorm"
)

type BrandRepository interface {
	Create(brand *model.Brand) error
	FindByID(id uint) (*model.Brand, error)
	FindByName(name string) (*model.Brand, error)
	List(query *model.BrandListQuery) ([]model.Brand, int64, error)
	Update(brand *model.Brand) error
	Delete(id uint) error
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(brand *model.Brand) error {
	if err := r.db.Create(brand).Error; err != nil {
		logger.Error("Failed to create brand in database", err, map[string]interface{}{
			"name": brand.Name,
		})
		return err
	}

	logger.Debug("Brand created in database", map[string]interface{}{
		"brand_id": brand.ID,
		"name":     brand.Name,
	})
	return nil
}

func (r *brandRepository) FindByID(id uint) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) FindByName(name string) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.Where("name = ?", name).First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) List(query *model.BrandListQuery) ([]model.Brand, int64, error) {
	var brands []model.Brand
	var total int64

	tx := r.db.Model(&model.Brand{})
	if query.Search != "" {
		tx = tx.Where("name LIKE ?", "%"+query.Search+"%")
	}

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.PageSize
	err := tx.Order("name ASC").
		Limit(query.PageSize).
		Offset(offset).
		Find(&brands).Error
	if err != nil {
		return nil, 0, err
	}

	return brands, total, nil
}

func (r *brandRepository) Update(brand *model.Brand) error {
	if err := r.db.Save(brand).Error; err != nil {
		logger.Error("Failed to update brand in database", err, map[string]interface{}{
			"brand_id": brand.ID,
		})
		return err
	}
	return nil
}

func (r *brandRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Brand{}, id).Error; err != nil {
		logger.Error("Failed to delete brand from database", err, map[string]interface{}{
			"brand_id": id,
		})
		return err
	}
	return nil
}

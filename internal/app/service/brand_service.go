package service

import (
	"errors"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/repository"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrBrandNotFound  = errors.New("brand not found")
	ErrBrandNameTaken = errors.New("brand name already exists")
)

type BrandService interface {
	CreateBrand(req *model.CreateBrandRequest, userID uint) (*model.Brand, error)
	GetBrand(id uint) (*model.Brand, error)
	GetBrands(query *model.BrandListQuery) ([]model.Brand, int64, error)
	UpdateBrand(id uint, req *model.UpdateBrandRequest, userID uint, userRole model.UserRole) (*model.Brand, error)
	DeleteBrand(id uint, userID uint, userRole model.UserRole) error
}

type brandService struct {
	repo repository.BrandRepository
}

func NewBrandService(repo repository.BrandRepository) BrandService {
	return &brandService{repo: repo}
}

// CreateBrand persists a new brand owned by the caller. The name is
// pre-checked for uniqueness so the common duplicate case gets a friendly
// error; the unique index on brands.name remains the final arbiter if two
// creations race past the pre-check.
func (s *brandService) CreateBrand(req *model.CreateBrandRequest, userID uint) (*model.Brand, error) {
	existing, err := s.repo.FindByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing brand", err, map[string]interface{}{
			"name": req.Name,
		})
		return nil, err
	}
	if existing != nil {
		logger.Warn("Brand creation failed: name already exists", map[string]interface{}{
			"name": req.Name,
		})
		return nil, ErrBrandNameTaken
	}

	brand := &model.Brand{
		Name:      req.Name,
		Country:   req.Country,
		ImagePath: req.ImagePath,
		UserID:    userID,
	}

	if err := s.repo.Create(brand); err != nil {
		return nil, err
	}

	logger.Info("Brand created", map[string]interface{}{
		"brand_id": brand.ID,
		"name":     brand.Name,
		"user_id":  userID,
	})

	return brand, nil
}

func (s *brandService) GetBrand(id uint) (*model.Brand, error) {
	brand, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}

func (s *brandService) GetBrands(query *model.BrandListQuery) ([]model.Brand, int64, error) {
	return s.repo.List(query)
}

func (s *brandService) UpdateBrand(id uint, req *model.UpdateBrandRequest, userID uint, userRole model.UserRole) (*model.Brand, error) {
	brand, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}

	if err := authorizeMutation(brand.UserID, userID, userRole); err != nil {
		logger.Warn("Brand update denied", map[string]interface{}{
			"brand_id": id,
			"owner_id": brand.UserID,
			"user_id":  userID,
		})
		return nil, err
	}

	if req.Name != nil && *req.Name != brand.Name {
		existing, err := s.repo.FindByName(*req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrBrandNameTaken
		}
		brand.Name = *req.Name
	}
	if req.Country != nil {
		brand.Country = req.Country
	}
	if req.ImagePath != nil {
		brand.ImagePath = req.ImagePath
	}

	if err := s.repo.Update(brand); err != nil {
		return nil, err
	}

	return brand, nil
}

func (s *brandService) DeleteBrand(id uint, userID uint, userRole model.UserRole) error {
	brand, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBrandNotFound
		}
		return err
	}

	if err := authorizeMutation(brand.UserID, userID, userRole); err != nil {
		logger.Warn("Brand delete denied", map[string]interface{}{
			"brand_id": id,
			"owner_id": brand.UserID,
			"user_id":  userID,
		})
		return err
	}

	return s.repo.Delete(id)
}

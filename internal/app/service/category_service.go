package service

import (
	"errors"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/repository"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryService exposes the fixed category list seeded at migration time.
type CategoryService interface {
	GetCategories() ([]model.Category, error)
	GetCategory(id uint) (*model.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetCategories() ([]model.Category, error) {
	return s.repo.List()
}

func (s *categoryService) GetCategory(id uint) (*model.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

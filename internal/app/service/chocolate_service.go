package service

import (
	"errors"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/repository"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrChocolateNotFound = errors.New("chocolate not found")

type ChocolateService interface {
	CreateChocolate(req *model.CreateChocolateRequest, userID uint) (*model.Chocolate, error)
	GetChocolate(id uint) (*model.Chocolate, error)
	GetChocolates(query *model.ChocolateListQuery) ([]model.Chocolate, int64, error)
	UpdateChocolate(id uint, req *model.UpdateChocolateRequest, userID uint, userRole model.UserRole) (*model.Chocolate, error)
	DeleteChocolate(id uint, userID uint, userRole model.UserRole) error
}

type chocolateService struct {
	repo      repository.ChocolateRepository
	brandRepo repository.BrandRepository
}

func NewChocolateService(repo repository.ChocolateRepository, brandRepo repository.BrandRepository) ChocolateService {
	return &chocolateService{
		repo:      repo,
		brandRepo: brandRepo,
	}
}

func (s *chocolateService) CreateChocolate(req *model.CreateChocolateRequest, userID uint) (*model.Chocolate, error) {
	// The referenced brand must exist; a dangling brand id would otherwise
	// only surface as a foreign key error from the store.
	if _, err := s.brandRepo.FindByID(req.BrandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.StatusPublished
	}

	chocolate := &model.Chocolate{
		Name:         req.Name,
		Description:  req.Description,
		CacaoPercent: req.CacaoPercent,
		Price:        req.Price,
		HasMint:      req.HasMint,
		Status:       status,
		FlavorNotes:  req.FlavorNotes,
		BrandID:      req.BrandID,
		CategoryID:   req.CategoryID,
		UserID:       userID,
	}

	if err := s.repo.Create(chocolate); err != nil {
		return nil, err
	}

	logger.Info("Chocolate created", map[string]interface{}{
		"chocolate_id": chocolate.ID,
		"name":         chocolate.Name,
		"user_id":      userID,
	})

	return chocolate, nil
}

func (s *chocolateService) GetChocolate(id uint) (*model.Chocolate, error) {
	chocolate, err := s.repo.FindByIDWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChocolateNotFound
		}
		return nil, err
	}
	return chocolate, nil
}

func (s *chocolateService) GetChocolates(query *model.ChocolateListQuery) ([]model.Chocolate, int64, error) {
	return s.repo.List(query)
}

func (s *chocolateService) UpdateChocolate(id uint, req *model.UpdateChocolateRequest, userID uint, userRole model.UserRole) (*model.Chocolate, error) {
	chocolate, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChocolateNotFound
		}
		return nil, err
	}

	if err := authorizeMutation(chocolate.UserID, userID, userRole); err != nil {
		logger.Warn("Chocolate update denied", map[string]interface{}{
			"chocolate_id": id,
			"owner_id":     chocolate.UserID,
			"user_id":      userID,
		})
		return nil, err
	}

	if req.BrandID != nil && *req.BrandID != chocolate.BrandID {
		if _, err := s.brandRepo.FindByID(*req.BrandID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBrandNotFound
			}
			return nil, err
		}
		chocolate.BrandID = *req.BrandID
	}

	if req.Name != nil {
		chocolate.Name = *req.Name
	}
	if req.Description != nil {
		chocolate.Description = *req.Description
	}
	if req.CacaoPercent != nil {
		chocolate.CacaoPercent = req.CacaoPercent
	}
	if req.Price != nil {
		chocolate.Price = req.Price
	}
	if req.HasMint != nil {
		chocolate.HasMint = *req.HasMint
	}
	if req.Status != nil {
		chocolate.Status = *req.Status
	}
	if req.FlavorNotes != nil {
		chocolate.FlavorNotes = req.FlavorNotes
	}
	if req.CategoryID != nil {
		chocolate.CategoryID = req.CategoryID
	}

	if err := s.repo.Update(chocolate); err != nil {
		return nil, err
	}

	return chocolate, nil
}

func (s *chocolateService) DeleteChocolate(id uint, userID uint, userRole model.UserRole) error {
	chocolate, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChocolateNotFound
		}
		return err
	}

	if err := authorizeMutation(chocolate.UserID, userID, userRole); err != nil {
		logger.Warn("Chocolate delete denied", map[string]interface{}{
			"chocolate_id": id,
			"owner_id":     chocolate.UserID,
			"user_id":      userID,
		})
		return err
	}

	return s.repo.Delete(id)
}

package service

import (
	"errors"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/repository"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewService interface {
	CreateReview(req *model.CreateReviewRequest, userID uint) (*model.Review, error)
	GetReview(id uint) (*model.Review, error)
	GetChocolateReviews(chocolateID uint, query *model.ReviewListQuery) ([]model.Review, int64, error)
	GetUserReviews(userID uint, query *model.ReviewListQuery) ([]model.Review, int64, error)
	UpdateReview(id uint, req *model.UpdateReviewRequest, userID uint, userRole model.UserRole) (*model.Review, error)
	DeleteReview(id uint, userID uint, userRole model.UserRole) error
}

type reviewService struct {
	repo          repository.ReviewRepository
	chocolateRepo repository.ChocolateRepository
	placeService  PlaceService
}

func NewReviewService(
	repo repository.ReviewRepository,
	chocolateRepo repository.ChocolateRepository,
	placeService PlaceService,
) ReviewService {
	return &reviewService{
		repo:          repo,
		chocolateRepo: chocolateRepo,
		placeService:  placeService,
	}
}

func (s *reviewService) CreateReview(req *model.CreateReviewRequest, userID uint) (*model.Review, error) {
	if _, err := s.chocolateRepo.FindByID(req.ChocolateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChocolateNotFound
		}
		return nil, err
	}

	review := &model.Review{
		Title:         req.Title,
		Content:       req.Content,
		Mintiness:     req.Mintiness,
		ChocoRichness: req.ChocoRichness,
		ChocolateID:   req.ChocolateID,
		ImagePath:     req.ImagePath,
		UserID:        userID,
	}

	if req.GooglePlaceID != nil && *req.GooglePlaceID != "" {
		place, err := s.placeService.ResolvePlace(*req.GooglePlaceID)
		if err != nil {
			// The review is the point; a failed place lookup should not
			// block it. The review is just saved without a place.
			logger.Warn("Review saved without place after lookup failure", map[string]interface{}{
				"google_place_id": *req.GooglePlaceID,
				"error":           err.Error(),
			})
		} else {
			review.PlaceID = &place.ID
		}
	}

	if err := s.repo.Create(review); err != nil {
		return nil, err
	}

	logger.Info("Review created", map[string]interface{}{
		"review_id":    review.ID,
		"chocolate_id": review.ChocolateID,
		"user_id":      userID,
	})

	return review, nil
}

func (s *reviewService) GetReview(id uint) (*model.Review, error) {
	review, err := s.repo.FindByIDWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) GetChocolateReviews(chocolateID uint, query *model.ReviewListQuery) ([]model.Review, int64, error) {
	if _, err := s.chocolateRepo.FindByID(chocolateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrChocolateNotFound
		}
		return nil, 0, err
	}
	return s.repo.ListByChocolate(chocolateID, query)
}

func (s *reviewService) GetUserReviews(userID uint, query *model.ReviewListQuery) ([]model.Review, int64, error) {
	return s.repo.ListByUser(userID, query)
}

func (s *reviewService) UpdateReview(id uint, req *model.UpdateReviewRequest, userID uint, userRole model.UserRole) (*model.Review, error) {
	review, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if err := authorizeMutation(review.UserID, userID, userRole); err != nil {
		logger.Warn("Review update denied", map[string]interface{}{
			"review_id": id,
			"owner_id":  review.UserID,
			"user_id":   userID,
		})
		return nil, err
	}

	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Content != nil {
		review.Content = *req.Content
	}
	if req.Mintiness != nil {
		review.Mintiness = *req.Mintiness
	}
	if req.ChocoRichness != nil {
		review.ChocoRichness = *req.ChocoRichness
	}
	if req.ImagePath != nil {
		review.ImagePath = req.ImagePath
	}
	if req.GooglePlaceID != nil {
		if *req.GooglePlaceID == "" {
			review.PlaceID = nil
		} else if place, err := s.placeService.ResolvePlace(*req.GooglePlaceID); err == nil {
			review.PlaceID = &place.ID
		}
	}

	if err := s.repo.Update(review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *reviewService) DeleteReview(id uint, userID uint, userRole model.UserRole) error {
	review, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if err := authorizeMutation(review.UserID, userID, userRole); err != nil {
		logger.Warn("Review delete denied", map[string]interface{}{
			"review_id": id,
			"owner_id":  review.UserID,
			"user_id":   userID,
		})
		return err
	}

	return s.repo.Delete(id)
}

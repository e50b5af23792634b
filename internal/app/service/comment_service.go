package service

import (
	"errors"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/repository"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService interface {
	CreateComment(req *model.CreateCommentRequest, userID uint) (*model.Comment, error)
	GetReviewComments(reviewID uint) ([]model.Comment, error)
	UpdateComment(id uint, req *model.UpdateCommentRequest, userID uint, userRole model.UserRole) (*model.Comment, error)
	DeleteComment(id uint, userID uint, userRole model.UserRole) error
}

type commentService struct {
	repo       repository.CommentRepository
	reviewRepo repository.ReviewRepository
}

func NewCommentService(repo repository.CommentRepository, reviewRepo repository.ReviewRepository) CommentService {
	return &commentService{
		repo:       repo,
		reviewRepo: reviewRepo,
	}
}

func (s *commentService) CreateComment(req *model.CreateCommentRequest, userID uint) (*model.Comment, error) {
	if _, err := s.reviewRepo.FindByID(req.ReviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		Content:  req.Content,
		ReviewID: req.ReviewID,
		UserID:   userID,
	}

	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetReviewComments(reviewID uint) ([]model.Comment, error) {
	if _, err := s.reviewRepo.FindByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return s.repo.ListByReview(reviewID)
}

func (s *commentService) UpdateComment(id uint, req *model.UpdateCommentRequest, userID uint, userRole model.UserRole) (*model.Comment, error) {
	comment, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if err := authorizeMutation(comment.UserID, userID, userRole); err != nil {
		logger.Warn("Comment update denied", map[string]interface{}{
			"comment_id": id,
			"owner_id":   comment.UserID,
			"user_id":    userID,
		})
		return nil, err
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}

	if err := s.repo.Update(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) DeleteComment(id uint, userID uint, userRole model.UserRole) error {
	comment, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if err := authorizeMutation(comment.UserID, userID, userRole); err != nil {
		logger.Warn("Comment delete denied", map[string]interface{}{
			"comment_id": id,
			"owner_id":   comment.UserID,
			"user_id":    userID,
		})
		return err
	}

	return s.repo.Delete(id)
}

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/repository"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ErrSelfDemotion guards the admin view against an admin removing their
// own access by accident.
var ErrSelfDemotion = errors.New("admins cannot change or delete their own account here")

// UserService backs the admin user-management view. Routes using it sit
// behind the ADMIN role middleware; the checks here are the second line.
type UserService interface {
	GetUsers(query *model.UserListQuery) ([]model.User, int64, error)
	UpdateUserRole(id uint, role model.UserRole, callerID uint) (*model.User, error)
	DeleteUser(id uint, callerID uint) error
	ExportUsers() (*excelize.File, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetUsers(query *model.UserListQuery) ([]model.User, int64, error) {
	return s.repo.List(query)
}

func (s *userService) UpdateUserRole(id uint, role model.UserRole, callerID uint) (*model.User, error) {
	if id == callerID {
		return nil, ErrSelfDemotion
	}

	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Role = role
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}

	logger.Info("User role updated", map[string]interface{}{
		"user_id":  user.ID,
		"new_role": role,
		"admin_id": callerID,
	})

	return user, nil
}

func (s *userService) DeleteUser(id uint, callerID uint) error {
	if id == callerID {
		return ErrSelfDemotion
	}

	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	logger.Info("User deleted by admin", map[string]interface{}{
		"user_id":  id,
		"admin_id": callerID,
	})
	return nil
}

// ExportUsers builds an xlsx workbook with every user for the admin view
func (s *userService) ExportUsers() (*excelize.File, error) {
	users, _, err := s.repo.List(&model.UserListQuery{Page: 1, PageSize: 10000})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Users"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Email", "Name", "Role", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, user := range users {
		values := []interface{}{
			user.ID,
			user.Email,
			user.Name,
			string(user.Role),
			user.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	logger.Info("User export generated", map[string]interface{}{
		"user_count": len(users),
	})

	return f, nil
}

// ExportFilename is the download name for the user export
func ExportFilename() string {
	return fmt.Sprintf("users-%s.xlsx", time.Now().Format("20060102"))
}

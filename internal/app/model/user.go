package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Role         UserRole  `gorm:"type:varchar(20);default:'USER'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Brands     []Brand     `gorm:"foreignKey:UserID" json:"brands,omitempty"`
	Chocolates []Chocolate `gorm:"foreignKey:UserID" json:"chocolates,omitempty"`
	Reviews    []Review    `gorm:"foreignKey:UserID" json:"reviews,omitempty"`
	Comments   []Comment   `gorm:"foreignKey:UserID" json:"comments,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Request DTOs

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,min=2,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest uses pointer fields: nil means "not supplied",
// so partial updates never clobber existing values.
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=50"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type UpdateUserRoleRequest struct {
	Role UserRole `json:"role" binding:"required,oneof=USER ADMIN"`
}

type UserListQuery struct {
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
}

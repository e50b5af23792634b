package model

import (
	"time"
)

type Brand struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Country   *string   `json:"country,omitempty"`
	ImagePath *string   `json:"image_path,omitempty"`
	UserID    uint      `gorm:"not null;index" json:"user_id"` // creator, immutable
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User       *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Chocolates []Chocolate `gorm:"foreignKey:BrandID" json:"chocolates,omitempty"`
}

func (Brand) TableName() string {
	return "brands"
}

// Request DTOs

type CreateBrandRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=100"`
	Country   *string `json:"country" binding:"omitempty,max=100"`
	ImagePath *string `json:"image_path" binding:"omitempty,max=500"`
}

type UpdateBrandRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	Country   *string `json:"country" binding:"omitempty,max=100"`
	ImagePath *string `json:"image_path" binding:"omitempty,max=500"`
}

type BrandListQuery struct {
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
}

package model

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ReviewID  uint      `gorm:"not null;index" json:"review_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"` // author, immutable
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Review *Review `gorm:"foreignKey:ReviewID" json:"review,omitempty"`
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}

// Request DTOs

type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=1000"`
	ReviewID uint   `json:"review_id" binding:"required"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content" binding:"omitempty,min=1,max=1000"`
}
